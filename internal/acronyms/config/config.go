package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
	"github.com/nsqlite/acronyms/internal/locator"
	"github.com/nsqlite/acronyms/internal/version"
)

// Config represents the configuration for the acronyms CLI.
type Config struct {
	Term        string `arg:"positional" help:"Acronym to search for, same as --search" placeholder:"TERM"`
	Search      string `arg:"-s,--search" help:"Search for an acronym, use % as a wildcard (e.g. 'TL%')" placeholder:"TERM"`
	Latest      *int   `arg:"-l,--latest" help:"Show the N most recently added acronyms, 0 shows the default of 5" placeholder:"N"`
	Interactive bool   `arg:"-i,--interactive" help:"Start an interactive lookup prompt"`
	UTC         bool   `arg:"--utc,env:ACRONYMS_UTC" help:"Show last update times in UTC instead of local time"`
	Locale      string `arg:"--locale,env:ACRONYMS_LOCALE" help:"Language tag used to format numbers" default:"en"`
	Debug       bool   `arg:"--debug,env:ACRONYMS_DEBUG" help:"Write debug logs to stderr"`
}

func (Config) Version() string {
	return fmt.Sprintf("%s\n", version.CLIVersion())
}

func (Config) Description() string {
	return fmt.Sprintf(
		"Look up acronyms in a local SQLite database.\n\n"+
			"The database is read from the path in %s, or from %s next to the executable.\n"+
			"Without arguments a summary of the database is shown.",
		locator.DefaultEnvKey, locator.DefaultFileName,
	)
}

// SearchTerm returns the term to search for, from --search or the
// positional argument.
func (c Config) SearchTerm() string {
	if c.Search != "" {
		return c.Search
	}
	return c.Term
}

// LatestLimit returns the number of records requested with --latest, 0
// when the flag was not given or asks for the default.
func (c Config) LatestLimit() int {
	if c.Latest == nil {
		return 0
	}
	return *c.Latest
}

// MustParse parses and validates the configuration from the command
// line arguments. It returns a Config struct or exits the program
// with an error.
func MustParse(args []string) Config {
	cfg := Config{}

	parser, err := newParser(&cfg)
	if err != nil {
		log.Fatal(err)
	}
	parser.MustParse(args[1:])

	if err := validate(cfg); err != nil {
		log.Fatal(err)
	}

	return cfg
}

// Parse is like MustParse but returns errors, including arg.ErrHelp and
// arg.ErrVersion, instead of exiting.
func Parse(args []string) (Config, error) {
	cfg := Config{}

	parser, err := newParser(&cfg)
	if err != nil {
		return Config{}, err
	}
	if err := parser.Parse(args[1:]); err != nil {
		return Config{}, err
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func newParser(cfg *Config) (*arg.Parser, error) {
	return arg.NewParser(
		arg.Config{Program: version.Name},
		cfg,
	)
}

func validate(cfg Config) error {
	if err := validateLatest(cfg.Latest); err != nil {
		return err
	}
	return validateSingleCommand(cfg)
}

// validateLatest validates if n is a valid number of records. A nil n
// means --latest was not given.
func validateLatest(n *int) error {
	if n != nil && *n < 0 {
		return errors.New("invalid --latest value, must be zero or greater")
	}
	return nil
}

// validateSingleCommand validates that only one of search, latest and
// interactive was requested.
func validateSingleCommand(cfg Config) error {
	if cfg.Search != "" && cfg.Term != "" {
		return errors.New("use either --search or a positional term, not both")
	}

	requested := 0
	if cfg.SearchTerm() != "" {
		requested++
	}
	if cfg.Latest != nil {
		requested++
	}
	if cfg.Interactive {
		requested++
	}
	if requested > 1 {
		return errors.New("only one of --search, --latest and --interactive can be used at a time")
	}
	return nil
}

package acronyms

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nsqlite/acronyms/internal/acronyms/config"
	"github.com/nsqlite/acronyms/internal/acronyms/output"
	"github.com/nsqlite/acronyms/internal/acronyms/repl"
	"github.com/nsqlite/acronyms/internal/db"
	"github.com/nsqlite/acronyms/internal/locator"
	"github.com/nsqlite/acronyms/internal/log"
	"github.com/nsqlite/acronyms/internal/util/numutil"
	"github.com/nsqlite/acronyms/internal/version"
)

// Run runs the acronyms CLI.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app{
		conf:   conf,
		logger: log.NewLogger(os.Stderr, conf.Debug),
		out:    os.Stdout,
		locator: locator.Config{
			EnvKey:   locator.DefaultEnvKey,
			FileName: locator.DefaultFileName,
		},
	}
	return a.run(ctx)
}

// app holds everything a single invocation needs.
type app struct {
	conf    config.Config
	logger  log.Logger
	out     io.Writer
	locator locator.Config
}

func (a app) run(ctx context.Context) error {
	a.locator.Logger = a.logger
	loc, err := locator.New(a.locator)
	if err != nil {
		return fmt.Errorf("error creating locator: %w", err)
	}

	location, err := loc.Resolve()
	if err != nil {
		return err
	}

	ints := numutil.NewIntFormatter(a.conf.Locale)
	database, err := db.Open(ctx, db.Config{
		Logger:       a.logger,
		Location:     location,
		IntFormatter: ints,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			a.logger.ErrorNs(log.NsCLI, "error closing database", log.KV{"error": err.Error()})
		}
	}()

	printer := output.Printer{
		Out:          a.out,
		TimeLocation: a.timeLocation(),
		Ints:         ints,
	}

	cmd := selectCommand(a.conf)
	a.logger.DebugNs(log.NsCLI, "running command", log.KV{
		"command": cmd.Value,
		"session": database.ID(),
	})

	switch cmd {
	case commandSearch:
		return printer.Search(ctx, database, a.conf.SearchTerm())
	case commandLatest:
		return printer.Latest(ctx, database, a.conf.LatestLimit())
	case commandInteractive:
		fmt.Fprintln(a.out, version.CLIVersion())
		rp := repl.NewRepl(ctx, a.logger, printer, database, location)
		return rp.Start()
	}

	fmt.Fprintln(a.out, version.CLIVersion())
	fmt.Fprintln(a.out)
	printer.Info(ctx, database, location)
	return nil
}

func (a app) timeLocation() *time.Location {
	if a.conf.UTC {
		return time.UTC
	}
	return time.Local
}

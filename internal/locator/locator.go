// Package locator finds the acronyms database file on disk.
//
// The file named by an environment variable always wins. When it is not
// set, or does not name a regular file, the database is looked up next to
// the running executable.
package locator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nsqlite/acronyms/internal/log"
	"github.com/orsinium-labs/enum"
)

const (
	// DefaultEnvKey is the environment variable holding a database path.
	DefaultEnvKey = "ACRONYMS_DB"
	// DefaultFileName is the database file name next to the executable.
	DefaultFileName = "acronyms.db"
)

// Source tells where a Location was found.
type Source = enum.Member[string]

var (
	SourceEnv        = Source{Value: "environment variable"}
	SourceExecutable = Source{Value: "executable directory"}
)

// Location is a resolved database file.
type Location struct {
	// Path is the absolute path to the database file.
	Path    string
	Name    string
	ModTime time.Time
	Size    int64
	Source  Source
}

// Config represents the configuration for a Locator.
type Config struct {
	// Logger is the shared acronyms logger.
	Logger log.Logger
	// EnvKey is the environment variable checked first.
	EnvKey string
	// FileName is joined with the executable directory.
	FileName string
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	// Executable defaults to os.Executable.
	Executable func() (string, error)
}

// Locator resolves the database Location.
type Locator struct {
	Config
}

// New creates a new Locator.
func New(config Config) (*Locator, error) {
	if !config.Logger.IsInitialized() {
		return nil, errors.New("logger is required")
	}
	if config.EnvKey == "" {
		return nil, errors.New("environment variable name is required")
	}
	if config.FileName == "" {
		return nil, errors.New("database file name is required")
	}
	if config.Getenv == nil {
		config.Getenv = os.Getenv
	}
	if config.Executable == nil {
		config.Executable = os.Executable
	}

	return &Locator{Config: config}, nil
}

// Resolve returns the database Location or a *NotFoundError when
// neither the environment variable nor the executable directory yields
// a regular file.
func (l *Locator) Resolve() (Location, error) {
	notFound := &NotFoundError{EnvKey: l.EnvKey, FileName: l.FileName}

	if envPath := l.Getenv(l.EnvKey); envPath != "" {
		loc, err := l.statCandidate(envPath, SourceEnv)
		if err == nil {
			return loc, nil
		}
		notFound.Checked = append(notFound.Checked, envPath)
	} else {
		l.Logger.DebugNs(log.NsLocator, "environment variable not set", log.KV{
			"env": l.EnvKey,
		})
	}

	exePath, err := l.Executable()
	if err != nil {
		l.Logger.DebugNs(log.NsLocator, "cannot determine executable path", log.KV{
			"error": err,
		})
		return Location{}, notFound
	}
	if resolved, err := filepath.EvalSymlinks(exePath); err == nil {
		exePath = resolved
	}

	candidate := filepath.Join(filepath.Dir(exePath), l.FileName)
	loc, err := l.statCandidate(candidate, SourceExecutable)
	if err == nil {
		return loc, nil
	}
	notFound.Checked = append(notFound.Checked, candidate)

	return Location{}, notFound
}

// statCandidate returns the Location for path if it is a regular file.
func (l *Locator) statCandidate(path string, source Source) (Location, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		l.rejected(path, source, err)
		return Location{}, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		l.rejected(absPath, source, err)
		return Location{}, err
	}
	if !info.Mode().IsRegular() {
		err := fmt.Errorf("%s is not a regular file", absPath)
		l.rejected(absPath, source, err)
		return Location{}, err
	}

	l.Logger.DebugNs(log.NsLocator, "database found", log.KV{
		"path":   absPath,
		"source": source.Value,
	})
	return Location{
		Path:    absPath,
		Name:    info.Name(),
		ModTime: info.ModTime(),
		Size:    info.Size(),
		Source:  source,
	}, nil
}

func (l *Locator) rejected(path string, source Source, err error) {
	l.Logger.DebugNs(log.NsLocator, "candidate rejected", log.KV{
		"path":   path,
		"source": source.Value,
		"error":  err.Error(),
	})
}

package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nsqlite/acronyms/internal/acronyms/output"
	"github.com/nsqlite/acronyms/internal/acronyms/styled"
	"github.com/nsqlite/acronyms/internal/db"
	"github.com/nsqlite/acronyms/internal/locator"
	"github.com/nsqlite/acronyms/internal/log"
	"github.com/nsqlite/acronyms/internal/util/sysutil"
	"github.com/peterh/liner"
)

const prompt = "acronyms> "

// Repl is an interactive lookup prompt over one database session.
type Repl struct {
	ctx         context.Context
	logger      log.Logger
	printer     output.Printer
	session     output.Session
	location    locator.Location
	historyPath string
}

func NewRepl(
	ctx context.Context,
	logger log.Logger,
	printer output.Printer,
	session output.Session,
	location locator.Location,
) Repl {
	return Repl{
		ctx:         ctx,
		logger:      logger,
		printer:     printer,
		session:     session,
		location:    location,
		historyPath: filepath.Join(os.TempDir(), ".acronyms_history"),
	}
}

// Start reads input until the user quits, CTRL+C is pressed or the
// context is done.
func (r *Repl) Start() error {
	out := r.printer.Out
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Using %s\n", r.location.Path)
	fmt.Fprintln(out, `Enter an acronym to search for, ".help" for usage hints and ".quit" or "CTRL+C" to quit`)
	fmt.Fprintln(out)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(cmdHelpCompleter)

	r.readHistory(line)
	defer r.writeHistory(line)

	for {
		if r.ctx.Err() != nil {
			return nil
		}

		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintf(out, "\nGoodbye!\n\n")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if quit := r.handle(input); quit {
			fmt.Fprintf(out, "\nGoodbye!\n\n")
			return nil
		}
	}
}

// handle runs a single line of input and reports whether the user asked
// to quit.
func (r *Repl) handle(input string) bool {
	out := r.printer.Out
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case ".quit", ".exit", "exit":
		return true
	case ".clear", "clear":
		if err := sysutil.ClearTerminal(out); err != nil {
			r.logger.WarnNs(log.NsCLI, "failed to clear terminal", log.KV{"error": err.Error()})
		}
		return false
	case ".help", "help":
		cmdHelp(out)
		return false
	case ".info":
		r.printer.Info(r.ctx, r.session, r.location)
		return false
	case ".latest":
		limit := db.DefaultLatestLimit
		if arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 {
				styled.WarnColor().Fprintf(out, "Invalid number of records %q, expected a positive integer\n", arg)
				return false
			}
			limit = n
		}
		r.report(r.printer.Latest(r.ctx, r.session, limit))
		return false
	case ".search":
		if arg == "" {
			styled.WarnColor().Fprintln(out, "Missing search term, usage: .search TERM")
			return false
		}
		r.report(r.printer.Search(r.ctx, r.session, arg))
		return false
	}

	if strings.HasPrefix(cmd, ".") {
		fmt.Fprintln(out, "Unknown command, type .help for usage hints")
		return false
	}

	r.report(r.printer.Search(r.ctx, r.session, input))
	return false
}

// report prints a query error without leaving the prompt.
func (r *Repl) report(err error) {
	if err == nil {
		return
	}
	r.logger.ErrorNs(log.NsCLI, "query failed", log.KV{"error": err.Error()})
	styled.WarnColor().Fprintf(r.printer.Out, "Error: %v\n", err)
}

func (r *Repl) readHistory(line *liner.State) {
	file, err := os.Open(r.historyPath)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = line.ReadHistory(file)
}

func (r *Repl) writeHistory(line *liner.State) {
	file, err := os.Create(r.historyPath)
	if err != nil {
		r.logger.DebugNs(log.NsCLI, "failed to save history", log.KV{"error": err.Error()})
		return
	}
	defer file.Close()
	_, _ = line.WriteHistory(file)
}

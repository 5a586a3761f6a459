package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nsqlite/acronyms/internal/acronyms/styled"
)

type dotCmd struct {
	name         string
	autocomplete string
	help         string
	args         string
}

func cmdHelpCommands() []dotCmd {
	cmds := []dotCmd{
		{name: ".search [term]", autocomplete: ".search ", help: "Search for an acronym, same as typing the term", args: "term (required, % is a wildcard)"},
		{name: ".latest [n]", autocomplete: ".latest ", help: "Show the most recently added acronyms", args: "n (optional, default 5)"},

		{name: ".info", autocomplete: ".info", help: "Show a summary of the database"},
		{name: ".clear", autocomplete: ".clear", help: "Clear the terminal screen"},
		{name: ".help", autocomplete: ".help", help: "Show the help message"},
		{name: ".quit", autocomplete: ".quit", help: "Exit the application"},
		{name: ".exit", autocomplete: ".exit", help: "Exit the application"},
		{name: "CTRL+c", help: "Exit the application"},
	}

	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].name < cmds[j].name
	})

	return cmds
}

func cmdHelp(out io.Writer) {
	fmt.Fprintln(out, "Available commands:")
	cmds := cmdHelpCommands()

	tw := styled.NewTableWriter()
	tw.AppendHeader(table.Row{"Command", "Description", "Arguments"})

	for _, cmd := range cmds {
		tw.AppendRow(table.Row{cmd.name, cmd.help, cmd.args})
	}

	fmt.Fprintln(out, tw.Render())
	styled.DimmedColor().Fprintln(out, "Any other input is searched for as an acronym")
}

func cmdHelpCompleter(line string) []string {
	results := []string{}
	for _, cmd := range cmdHelpCommands() {
		if cmd.autocomplete == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(cmd.autocomplete), strings.ToLower(line)) {
			results = append(results, cmd.autocomplete)
		}
	}

	return results
}

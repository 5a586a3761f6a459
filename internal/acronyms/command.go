package acronyms

import (
	"github.com/nsqlite/acronyms/internal/acronyms/config"
	"github.com/orsinium-labs/enum"
)

// command is the action requested on the command line.
type command = enum.Member[string]

var (
	commandInfo        = command{Value: "info"}
	commandSearch      = command{Value: "search"}
	commandLatest      = command{Value: "latest"}
	commandInteractive = command{Value: "interactive"}
)

// selectCommand picks the command for conf. Without search, latest or
// interactive flags the database summary is shown.
func selectCommand(conf config.Config) command {
	switch {
	case conf.Interactive:
		return commandInteractive
	case conf.SearchTerm() != "":
		return commandSearch
	case conf.Latest != nil:
		return commandLatest
	}
	return commandInfo
}

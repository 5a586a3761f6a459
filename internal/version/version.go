package version

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
)

const (
	Version = "v0.1.0"
	Name    = "acronyms"
	URL     = "https://github.com/nsqlite/acronyms"
)

// CLIVersion returns the version banner of the acronyms CLI.
func CLIVersion() string {
	title := color.New(color.FgCyan, color.Bold).Sprintf("%s %s", Name, Version)
	return fmt.Sprintf(
		"%s\nBuilt with %s for %s/%s\nFor more information visit %s",
		title, runtime.Version(), runtime.GOOS, runtime.GOARCH, URL,
	)
}

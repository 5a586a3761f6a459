// Package styled holds the terminal styles of the acronyms CLI.
package styled

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DimmedColor returns a dimmed *color.Color to print secondary information.
func DimmedColor() *color.Color {
	return color.RGB(128, 128, 128)
}

// LabelColor returns the *color.Color used for field labels.
func LabelColor() *color.Color {
	return color.New(color.FgCyan, color.Bold)
}

// WarnColor returns the *color.Color used for notices such as no matches.
func WarnColor() *color.Color {
	return color.New(color.FgYellow)
}

// NewTableWriter returns a new table.Writer with the custom
// styles for the acronyms CLI.
func NewTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Color.Header = text.Colors{text.FgCyan, text.Bold}
	tw.Style().Color.Footer = text.Colors{text.FgCyan, text.Bold}

	return tw
}

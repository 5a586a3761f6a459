package numutil

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// IntFormatter formats large integers with the digit grouping of a locale.
//
// The zero value is valid and groups with commas.
type IntFormatter struct {
	printer *message.Printer
}

// NewIntFormatter returns an IntFormatter for the given BCP 47 language
// tag, e.g. "en", "de" or "fr-CA". Unknown or malformed tags fall back to
// comma grouping.
func NewIntFormatter(locale string) IntFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		return IntFormatter{}
	}
	return IntFormatter{printer: message.NewPrinter(tag)}
}

// Format returns n with locale-aware thousands separators.
func (f IntFormatter) Format(n int64) string {
	if f.printer == nil {
		return IntWithCommas(n)
	}
	return f.printer.Sprintf("%d", n)
}

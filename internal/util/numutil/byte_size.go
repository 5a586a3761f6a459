package numutil

import "github.com/dustin/go-humanize"

// UnknownSentinel is returned when a value cannot be formatted.
const UnknownSentinel = "UNKNOWN"

// FormatByteSize returns a human readable size using binary units.
//
// Example:
//
//	1536 -> "1.5 KiB"
func FormatByteSize(bytes int64) string {
	if bytes < 0 {
		return UnknownSentinel
	}
	return humanize.IBytes(uint64(bytes))
}

package timeutil

import "time"

const (
	// UnknownSentinel is returned for timestamps that cannot be displayed.
	UnknownSentinel = "UNKNOWN"

	// DisplayLayout renders e.g. "Wed, 13 March 2024 at 07:46:05".
	DisplayLayout = "Mon, 2 January 2006 at 15:04:05"

	// Seconds since the epoch of 0001-01-01 and 9999-12-31 23:59:59 UTC.
	minEpoch = -62135596800
	maxEpoch = 253402300799
)

// FormatTimestamp renders epoch seconds in loc using DisplayLayout.
// A nil loc means time.Local.
//
// Values whose calendar year falls outside 1 to 9999 return
// UnknownSentinel.
func FormatTimestamp(epochSeconds int64, loc *time.Location) string {
	if epochSeconds < minEpoch || epochSeconds > maxEpoch {
		return UnknownSentinel
	}
	if loc == nil {
		loc = time.Local
	}

	t := time.Unix(epochSeconds, 0).In(loc)
	if t.Year() < 1 || t.Year() > 9999 {
		return UnknownSentinel
	}
	return t.Format(DisplayLayout)
}

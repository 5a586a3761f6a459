package locator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound matches any *NotFoundError with errors.Is.
var ErrNotFound = errors.New("acronyms database not found")

// NotFoundError is returned when no database file can be resolved.
type NotFoundError struct {
	EnvKey   string
	FileName string
	// Checked lists the candidate paths that were rejected, in order.
	Checked []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf(
		"%s: set %s to the database path or place %s next to the executable",
		ErrNotFound, e.EnvKey, e.FileName,
	)
	if len(e.Checked) > 0 {
		msg += " (checked: " + strings.Join(e.Checked, ", ") + ")"
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

package booking

import (
	"errors"
	"strings"
)

// ErrBookingNotFound signals that no booking exists with the given identifier.
var ErrBookingNotFound = errors.New("booking not found")

// ErrBookingNotCancellable covers both the absent and the
// already-cancelled/completed cases; the API deliberately does not
// distinguish them.
var ErrBookingNotCancellable = errors.New("booking not found or cannot be cancelled")

// ValidationError reports the required submission fields that were missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

package activity

import (
	"errors"
	"fmt"
)

// ErrMissingTrackMaster is returned when a trackpoint comes before any trackmaster,
// there is no start time to compute its timestamp from.
var ErrMissingTrackMaster = errors.New("no trackmaster found before the first trackpoint")

// ErrInvalidStartTime is returned when the trackmaster start time can't be parsed
var ErrInvalidStartTime = errors.New("invalid trackmaster start time")

// ErrInvalidField is returned when a trackpoint field can't be parsed
var ErrInvalidField = errors.New("invalid trackpoint field")

// FieldError reports a trackpoint field that couldn't be parsed
type FieldError struct {
	Index int // trackpoint index, starting at 0
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("trackpoint %d: %s: %s", e.Index, e.Field, e.Err)
	}
	return fmt.Sprintf("trackpoint %d: %s %q: %s", e.Index, e.Field, e.Value, e.Err)
}

// Unwrap returns ErrInvalidField so that errors.Is works on FieldError
func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}

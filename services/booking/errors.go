package booking

import "errors"

// ErrNotFound is returned when an id-based booking lookup misses.
var ErrNotFound = errors.New("booking not found")

// ConflictError signals that the requested slot is already taken.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	return e.Reason
}

// IsConflict reports whether err is a booking conflict.
func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

// File: services/salon/errors.go
package salon

import "errors"

var (
	// ErrInvalidInput indicates a missing or malformed salon field.
	ErrInvalidInput = errors.New("invalid salon input")
	// ErrNotFound indicates the salon does not exist.
	ErrNotFound = errors.New("salon not found")
	// ErrForbidden indicates the caller does not own the salon.
	ErrForbidden = errors.New("caller does not own this salon")
	// ErrBadSlot indicates a schedule write carried a malformed or
	// duplicate "HH:mm" slot string.
	ErrBadSlot = errors.New("schedule slots must be unique, zero-padded HH:mm strings")
)

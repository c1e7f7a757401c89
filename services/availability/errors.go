// File: services/availability/errors.go
package availability

import "errors"

var (
	// ErrInvalidArgument indicates a missing or malformed salon id or date.
	ErrInvalidArgument = errors.New("invalid salon id or date")
	// ErrSalonNotFound indicates the salon id references no salon record.
	ErrSalonNotFound = errors.New("salon not found")
	// ErrUnavailable indicates the backing stores could not be reached.
	ErrUnavailable = errors.New("availability stores unreachable")
)

// File: services/booking/errors.go
package booking

import "errors"

var (
	// ErrInvalidInput indicates a missing or malformed booking field.
	ErrInvalidInput = errors.New("invalid booking input")
	// ErrSalonNotFound indicates the referenced salon does not exist.
	ErrSalonNotFound = errors.New("salon not found")
	// ErrServiceNotFound indicates the salon has no such catalogue entry.
	ErrServiceNotFound = errors.New("service not found in salon catalogue")
	// ErrBookingNotFound indicates the booking record does not exist.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrSlotTaken indicates the slot is not free at write time.
	ErrSlotTaken = errors.New("slot is no longer available")
	// ErrForbidden indicates the caller may not act on this booking.
	ErrForbidden = errors.New("not allowed to act on this booking")
	// ErrInvalidTransition indicates the booking is not in a status the
	// requested transition can start from.
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
)

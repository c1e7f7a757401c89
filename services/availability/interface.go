// File: services/availability/interface.go
package availability

import "context"

// ScheduleStore reads a salon's declared bookable slots. Implemented by the
// schedule repository; the resolver never writes through it.
type ScheduleStore interface {
	// SlotsForDate returns the declared slots for salonID on date, in
	// declaration order. An undeclared date yields an empty slice.
	SlotsForDate(ctx context.Context, salonID, date string) ([]string, error)
}

// BookingStore reads the slots currently claimed by bookings.
type BookingStore interface {
	// HeldSlots returns the slot strings of bookings for salonID/date
	// whose status is in the given set.
	HeldSlots(ctx context.Context, salonID, date string, statuses []string) ([]string, error)
}

// SalonDirectory answers whether a salon exists.
type SalonDirectory interface {
	Exists(ctx context.Context, salonID string) (bool, error)
}

// Service answers which of a salon's declared slots for a date are still
// bookable.
type Service interface {
	Resolve(ctx context.Context, salonID, date string) ([]string, error)
}

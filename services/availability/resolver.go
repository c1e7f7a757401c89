// File: services/availability/resolver.go
package availability

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"glamora/database/repository"
	"glamora/models"
	"glamora/utils"
)

// DefaultResolver implements Service against injected store handles.
type DefaultResolver struct {
	Salons    SalonDirectory
	Schedules ScheduleStore
	Bookings  BookingStore
}

// NewResolver constructs a resolver over the given stores.
func NewResolver(salons SalonDirectory, schedules ScheduleStore, bookings BookingStore) *DefaultResolver {
	return &DefaultResolver{
		Salons:    salons,
		Schedules: schedules,
		Bookings:  bookings,
	}
}

// Resolve returns the subset of the salon's declared slots for the date that
// no pending or confirmed booking currently holds, in declaration order.
// The schedule and booking reads are independent snapshots; no transaction
// spans them, so a booking written between the two reads may not be
// reflected. Nothing is returned on error.
func (r *DefaultResolver) Resolve(ctx context.Context, salonID, date string) ([]string, error) {
	if salonID == "" {
		return nil, fmt.Errorf("%w: empty salon id", ErrInvalidArgument)
	}
	if !utils.ValidDate(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidArgument)
	}

	exists, err := r.Salons.Exists(ctx, salonID)
	if err != nil {
		return nil, storeErr("salon lookup", err)
	}
	if !exists {
		return nil, ErrSalonNotFound
	}

	declared, err := r.Schedules.SlotsForDate(ctx, salonID, date)
	if err != nil {
		return nil, storeErr("schedule fetch", err)
	}

	held, err := r.Bookings.HeldSlots(ctx, salonID, date, models.HoldingStatuses)
	if err != nil {
		return nil, storeErr("booking fetch", err)
	}

	free := FilterSlots(declared, held)
	utils.GetLogger().Debug("availability resolved",
		zap.String("salonId", salonID),
		zap.String("date", date),
		zap.Int("declared", len(declared)),
		zap.Int("held", len(held)),
		zap.Int("free", len(free)),
	)
	return free, nil
}

// FilterSlots keeps the declared slots not present in held, preserving the
// declared order. Matching is exact string equality; slot strings are
// assumed pre-normalized ("HH:mm") by the writers.
func FilterSlots(declared, held []string) []string {
	heldSet := make(map[string]struct{}, len(held))
	for _, s := range held {
		heldSet[s] = struct{}{}
	}

	free := make([]string, 0, len(declared))
	for _, s := range declared {
		if _, taken := heldSet[s]; !taken {
			free = append(free, s)
		}
	}
	return free
}

func storeErr(op string, err error) error {
	if errors.Is(err, repository.ErrUnavailable) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

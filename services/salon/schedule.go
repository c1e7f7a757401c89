// File: services/salon/schedule.go
package salon

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"glamora/models"
	"glamora/utils"
)

// SetDaySchedule replaces the declared bookable slots for one date. Slot
// strings must be zero-padded "HH:mm" and unique within the day, since
// downstream slot matching is exact string equality. The declared order is
// stored as given.
func (s *DefaultSalonService) SetDaySchedule(ctx context.Context, salonID, ownerID, date string, slots []string) error {
	if _, err := s.requireOwned(ctx, salonID, ownerID); err != nil {
		return err
	}
	if !utils.ValidDate(date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if !utils.ValidSlot(slot) {
			return fmt.Errorf("%w: %q", ErrBadSlot, slot)
		}
		if _, dup := seen[slot]; dup {
			return fmt.Errorf("%w: duplicate %q", ErrBadSlot, slot)
		}
		seen[slot] = struct{}{}
	}

	sched := models.DaySchedule{SalonID: salonID, Date: date, Slots: slots}
	if err := s.ScheduleRepo.ReplaceDay(ctx, sched); err != nil {
		return fmt.Errorf("failed to store schedule: %w", err)
	}

	utils.GetLogger().Info("schedule updated",
		zap.String("salonId", salonID),
		zap.String("date", date),
		zap.Int("slots", len(slots)),
	)
	return nil
}

func (s *DefaultSalonService) ClearDaySchedule(ctx context.Context, salonID, ownerID, date string) error {
	if _, err := s.requireOwned(ctx, salonID, ownerID); err != nil {
		return err
	}
	if !utils.ValidDate(date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if err := s.ScheduleRepo.DeleteDay(ctx, salonID, date); err != nil {
		return fmt.Errorf("failed to clear schedule: %w", err)
	}
	return nil
}

func (s *DefaultSalonService) ListScheduledDates(ctx context.Context, salonID string) ([]string, error) {
	if _, err := s.GetSalon(ctx, salonID); err != nil {
		return nil, err
	}
	dates, err := s.ScheduleRepo.ListDates(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled dates: %w", err)
	}
	return dates, nil
}

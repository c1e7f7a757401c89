// File: services/booking/reconcile.go
package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"glamora/utils"
)

// ReconcilePastBookings marks every pending or confirmed booking dated
// before today as completed. Completed bookings no longer hold their slot;
// for past dates that is immaterial, but it keeps the lifecycle honest and
// unlocks review eligibility.
func (s *DefaultBookingService) ReconcilePastBookings(ctx context.Context) (int64, error) {
	today := time.Now().Format(utils.DateLayout)
	n, err := s.BookingRepo.CompletePastBookings(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("reconciliation failed: %w", err)
	}
	if n > 0 {
		utils.GetLogger().Info("completed past bookings", zap.Int64("count", n))
	}
	return n, nil
}

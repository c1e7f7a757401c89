// File: services/booking/booking.go
package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"glamora/database/repository"
	"glamora/models"
	"glamora/utils"
)

// CreateBooking places a new pending booking for the user. Availability is
// re-validated at write time, and the insert itself is guarded by the unique
// active-slot index, so two racing requests for the same slot cannot both
// succeed.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, in CreateInput) (*CreateResult, error) {
	logger := utils.GetLogger()

	if userID == "" || in.SalonID == "" || in.ServiceID == "" {
		return nil, fmt.Errorf("%w: missing identifier", ErrInvalidInput)
	}
	if !utils.ValidDate(in.Date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !utils.ValidSlot(in.Slot) {
		return nil, fmt.Errorf("%w: slot must be HH:mm", ErrInvalidInput)
	}

	salon, err := s.SalonRepo.GetByID(ctx, in.SalonID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, fmt.Errorf("failed to load salon: %w", err)
	}
	svc, ok := salon.ServiceByID(in.ServiceID)
	if !ok {
		return nil, ErrServiceNotFound
	}

	// Re-validate at write time rather than trusting a prior read. This
	// narrows the race window; the unique index below closes it.
	free, err := s.Availability.Resolve(ctx, in.SalonID, in.Date)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !contains(free, in.Slot) {
		return nil, ErrSlotTaken
	}

	booking := &models.Booking{
		SalonID:     in.SalonID,
		UserID:      userID,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Date:        in.Date,
		Slot:        in.Slot,
		Price:       svc.Price,
		Status:      models.BookingStatusPending,
	}
	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race to a concurrent booking for the same slot.
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	result := &CreateResult{Booking: booking}
	if svc.Price > 0 && s.Payments != nil {
		secret, err := s.Payments.CreateIntent(ctx, svc.Price, booking.ID)
		if err != nil {
			// Payment handoff is advisory at this point; the booking stands
			// and the client can retry payment.
			logger.Warn("payment intent creation failed",
				zap.String("bookingId", booking.ID), zap.Error(err))
		} else {
			result.PaymentClientSecret = secret
		}
	}

	if s.Notifier != nil {
		s.Notifier.NotifyBookingCreated(ctx, booking, salon.OwnerID)
	}

	logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("salonId", booking.SalonID),
		zap.String("date", booking.Date),
		zap.String("slot", booking.Slot),
	)
	return result, nil
}

// ConfirmBooking moves a pending booking to confirmed. Only the owner of the
// booked salon may confirm.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID, ownerID string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.requireSalonOwner(ctx, booking.SalonID, ownerID); err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, ErrInvalidTransition
	}

	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, models.BookingStatusPending, models.BookingStatusConfirmed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}
	booking.Status = models.BookingStatusConfirmed

	if s.Notifier != nil {
		s.Notifier.NotifyBookingStatusChanged(ctx, booking)
	}
	return booking, nil
}

// CancelBooking moves a pending or confirmed booking to cancelled, freeing
// its slot for rebooking. The booking's customer, the salon's owner, or an
// admin may cancel.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, actorID, actorRole string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeActor(ctx, booking, actorID, actorRole); err != nil {
		return nil, err
	}
	if !booking.IsHolding() {
		return nil, ErrInvalidTransition
	}

	if err := s.BookingRepo.UpdateStatus(ctx, bookingID, booking.Status, models.BookingStatusCancelled); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	booking.Status = models.BookingStatusCancelled

	if s.Notifier != nil {
		s.Notifier.NotifyBookingStatusChanged(ctx, booking)
	}
	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID, actorID, actorRole string) (*models.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeActor(ctx, booking, actorID, actorRole); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) ListSalonBookings(ctx context.Context, salonID, ownerID, date string) ([]models.Booking, error) {
	if date != "" && !utils.ValidDate(date) {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if err := s.requireSalonOwner(ctx, salonID, ownerID); err != nil {
		return nil, err
	}
	bookings, err := s.BookingRepo.ListBySalon(ctx, salonID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list salon bookings: %w", err)
	}
	return bookings, nil
}

func (s *DefaultBookingService) loadBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return booking, nil
}

// authorizeActor permits the booking's customer, the salon's owner, or an admin.
func (s *DefaultBookingService) authorizeActor(ctx context.Context, booking *models.Booking, actorID, actorRole string) error {
	if actorRole == models.RoleAdmin || booking.UserID == actorID {
		return nil
	}
	return s.requireSalonOwner(ctx, booking.SalonID, actorID)
}

func (s *DefaultBookingService) requireSalonOwner(ctx context.Context, salonID, actorID string) error {
	salon, err := s.SalonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSalonNotFound
		}
		return fmt.Errorf("failed to load salon: %w", err)
	}
	if salon.OwnerID != actorID {
		return ErrForbidden
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// File: services/booking/interface.go
package booking

import (
	"context"

	"glamora/database/repository/booking"
	"glamora/database/repository/salon"
	"glamora/models"
	"glamora/services/availability"
	"glamora/services/notification"
	"glamora/services/payment"
)

// CreateInput carries everything needed to place a booking.
type CreateInput struct {
	SalonID   string `json:"salonId"`
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
}

// CreateResult is the booking plus optional payment handoff data.
type CreateResult struct {
	Booking             *models.Booking `json:"booking"`
	PaymentClientSecret string          `json:"paymentClientSecret,omitempty"`
}

// Service manages the booking lifecycle: create, confirm, cancel, list.
type Service interface {
	CreateBooking(ctx context.Context, userID string, in CreateInput) (*CreateResult, error)
	ConfirmBooking(ctx context.Context, bookingID, ownerID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID, actorRole string) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID, actorID, actorRole string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListSalonBookings(ctx context.Context, salonID, ownerID, date string) ([]models.Booking, error)
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	SalonRepo    salonRepo.SalonRepository
	BookingRepo  bookingRepo.BookingRepository
	Availability availability.Service
	Payments     payment.IntentCreator
	Notifier     notification.NotificationService
}

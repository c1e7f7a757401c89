// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"glamora/database"
	"glamora/models"
)

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	// Create inserts a new booking. The unique partial index on
	// (salonId, date, slot) over active statuses makes this the atomic
	// conditional write that closes the double-booking race: a second
	// insert for an already-held slot fails with repository.ErrDuplicate.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// HeldSlots returns the slot strings of bookings for the salon/date
	// whose status is in the given set, in no particular order.
	HeldSlots(ctx context.Context, salonID, date string, statuses []string) ([]string, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListBySalon(ctx context.Context, salonID, date string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, from, to string) error
	// CompletePastBookings transitions every pending/confirmed booking
	// dated strictly before the given date to completed. Returns the
	// number of bookings transitioned.
	CompletePastBookings(ctx context.Context, before string) (int64, error)
	HasCompletedBooking(ctx context.Context, userID, salonID string) (bool, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}

// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glamora/database/repository"
	"glamora/models"
)

func (r *mongoBookingRepo) HeldSlots(ctx context.Context, salonID, date string, statuses []string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"salonId": salonID,
		"date":    date,
		"status":  bson.M{"$in": statuses},
	}
	opts := options.Find().SetProjection(bson.M{"slot": 1, "_id": 0})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Slot string `bson:"slot"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, repository.WrapFetchErr(err)
	}

	slots := make([]string, len(rows))
	for i, row := range rows {
		slots[i] = row.Slot
	}
	return slots, nil
}

func (r *mongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "slot", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	return bookings, nil
}

// ListBySalon returns a salon's bookings, optionally restricted to one date.
func (r *mongoBookingRepo) ListBySalon(ctx context.Context, salonID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"salonId": salonID}
	if date != "" {
		filter["date"] = date
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "slot", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) HasCompletedBooking(ctx context.Context, userID, salonID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"userId":  userID,
		"salonId": salonID,
		"status":  models.BookingStatusCompleted,
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, repository.WrapFetchErr(err)
	}
	return count > 0, nil
}

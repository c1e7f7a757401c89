// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glamora/database/repository"
	"glamora/models"
)

func (r *mongoScheduleRepo) SlotsForDate(ctx context.Context, salonID, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sched models.DaySchedule
	err := r.coll.FindOne(ctx, bson.M{"salonId": salonID, "date": date}).Decode(&sched)
	if err != nil {
		if errors.Is(repository.WrapFetchErr(err), repository.ErrNotFound) {
			// No declared entry for this date: empty schedule, not an error.
			return []string{}, nil
		}
		return nil, repository.WrapFetchErr(err)
	}
	if sched.Slots == nil {
		return []string{}, nil
	}
	return sched.Slots, nil
}

func (r *mongoScheduleRepo) ReplaceDay(ctx context.Context, sched models.DaySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"salonId": sched.SalonID, "date": sched.Date}
	_, err := r.coll.ReplaceOne(ctx, filter, sched, options.Replace().SetUpsert(true))
	return repository.WrapFetchErr(err)
}

func (r *mongoScheduleRepo) DeleteDay(ctx context.Context, salonID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"salonId": salonID, "date": date})
	if err != nil {
		return repository.WrapFetchErr(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoScheduleRepo) ListDates(ctx context.Context, salonID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetProjection(bson.M{"date": 1, "_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{"salonId": salonID}, opts)
	if err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Date string `bson:"date"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, repository.WrapFetchErr(err)
	}

	dates := make([]string, len(rows))
	for i, row := range rows {
		dates[i] = row.Date
	}
	return dates, nil
}

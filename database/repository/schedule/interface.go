// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"glamora/database"
	"glamora/models"
)

// ScheduleRepository holds, per salon and per calendar date, the declared
// set of bookable time slots. Mutated only through the salon management
// workflow; the availability resolver reads it.
type ScheduleRepository interface {
	// SlotsForDate returns the declared slots for the given salon/date in
	// declaration order. A date with no entry yields an empty slice, not
	// an error.
	SlotsForDate(ctx context.Context, salonID, date string) ([]string, error)
	// ReplaceDay overwrites (or creates) the declared slots for one date.
	ReplaceDay(ctx context.Context, sched models.DaySchedule) error
	// DeleteDay removes the declared slots for one date.
	DeleteDay(ctx context.Context, salonID, date string) error
	// ListDates returns all dates with a declared entry for the salon,
	// ascending.
	ListDates(ctx context.Context, salonID string) ([]string, error)
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("schedules"),
	}
}

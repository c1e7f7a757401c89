// File: database/repository/review/interface.go
package reviewRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"glamora/database"
	"glamora/models"
)

// ReviewRepository defines data access for review records.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListBySalon(ctx context.Context, salonID string, limit, offset int64) ([]models.Review, error)
	Delete(ctx context.Context, id string) error
	// Aggregate returns the average rating and review count for a salon.
	Aggregate(ctx context.Context, salonID string) (avg float64, count int, err error)
	ExistsForBooking(ctx context.Context, bookingID string) (bool, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	return &mongoReviewRepo{
		coll: database.DB().Collection("reviews"),
	}
}

// File: database/repository/salon/interface.go
package salonRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"glamora/database"
	"glamora/models"
)

// SalonRepository defines data access for salon records.
type SalonRepository interface {
	Create(ctx context.Context, salon *models.Salon) error
	GetByID(ctx context.Context, id string) (*models.Salon, error)
	Exists(ctx context.Context, id string) (bool, error)
	UpdateWithDocument(ctx context.Context, id string, update interface{}) error
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context, city, query string, limit, offset int64) ([]models.Salon, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Salon, error)
	ListAll(ctx context.Context, limit, offset int64) ([]models.Salon, error)
	ApplyRating(ctx context.Context, id string, average float64, count int) error
}

type mongoSalonRepo struct {
	coll *mongo.Collection
}

// NewMongoSalonRepo constructs a new MongoDB SalonRepository.
func NewMongoSalonRepo() SalonRepository {
	return &mongoSalonRepo{
		coll: database.DB().Collection("salons"),
	}
}

// File: database/repository/salon/crud.go
package salonRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"glamora/database/repository"
	"glamora/models"
)

func (r *mongoSalonRepo) Create(ctx context.Context, salon *models.Salon) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if salon.ID == "" {
		salon.ID = uuid.New().String()
	}
	now := time.Now()
	salon.CreatedAt = now
	salon.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, salon)
	return repository.WrapFetchErr(err)
}

func (r *mongoSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var salon models.Salon
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&salon)
	if err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	return &salon, nil
}

func (r *mongoSalonRepo) Exists(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return false, repository.WrapFetchErr(err)
	}
	return count > 0, nil
}

func (r *mongoSalonRepo) UpdateWithDocument(ctx context.Context, id string, update interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return repository.WrapFetchErr(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoSalonRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return repository.WrapFetchErr(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoSalonRepo) ApplyRating(ctx context.Context, id string, average float64, count int) error {
	update := bson.M{"$set": bson.M{
		"rating.average": average,
		"rating.count":   count,
		"updatedAt":      time.Now(),
	}}
	return r.UpdateWithDocument(ctx, id, update)
}

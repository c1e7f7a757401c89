// File: database/repository/salon/queries.go
package salonRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glamora/database/repository"
	"glamora/models"
)

// ListPublished returns publicly browsable salons, optionally narrowed by
// city (exact, case-insensitive) and a free-text name query.
func (r *mongoSalonRepo) ListPublished(ctx context.Context, city, query string, limit, offset int64) ([]models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"published": true}
	if city != "" {
		filter["city"] = bson.M{"$regex": primitive.Regex{Pattern: "^" + city + "$", Options: "i"}}
	}
	if query != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating.average", Value: -1}, {Key: "name", Value: 1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	defer cursor.Close(ctx)

	var salons []models.Salon
	if err := cursor.All(ctx, &salons); err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	return salons, nil
}

func (r *mongoSalonRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	defer cursor.Close(ctx)

	var salons []models.Salon
	if err := cursor.All(ctx, &salons); err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	return salons, nil
}

// ListAll returns every salon regardless of published state (admin view).
func (r *mongoSalonRepo) ListAll(ctx context.Context, limit, offset int64) ([]models.Salon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit).SetSkip(offset)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	defer cursor.Close(ctx)

	var salons []models.Salon
	if err := cursor.All(ctx, &salons); err != nil {
		return nil, repository.WrapFetchErr(err)
	}
	return salons, nil
}

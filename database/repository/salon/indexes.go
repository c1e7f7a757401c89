// FILE: database/repository/salon/indexes.go
package salonRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the salons collection.
func (r *mongoSalonRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}},
			Options: options.Index().SetName("owner_idx"),
		},
		// Browse queries filter on published + city and sort by rating.
		{
			Keys:    bson.D{{Key: "published", Value: 1}, {Key: "city", Value: 1}, {Key: "rating.average", Value: -1}},
			Options: options.Index().SetName("published_city_rating_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create salon indexes: %w", err)
	}
	return nil
}

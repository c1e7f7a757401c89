// File: services/salon/crud.go
package salon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"glamora/database/repository"
	"glamora/models"
	"glamora/utils"
)

func (s *DefaultSalonService) CreateSalon(ctx context.Context, ownerID string, in CreateInput) (*models.Salon, error) {
	if ownerID == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: owner and name are required", ErrInvalidInput)
	}

	services := make([]models.Service, 0, len(in.Services))
	for _, svc := range in.Services {
		if svc.Name == "" || svc.Price < 0 {
			return nil, fmt.Errorf("%w: service needs a name and a non-negative price", ErrInvalidInput)
		}
		if svc.ID == "" {
			svc.ID = uuid.New().String()
		}
		services = append(services, svc)
	}

	salon := &models.Salon{
		OwnerID:     ownerID,
		Name:        in.Name,
		Description: in.Description,
		PhoneNumber: in.PhoneNumber,
		City:        in.City,
		Address:     in.Address,
		Services:    services,
		Published:   true,
	}
	if in.LocationGeo != nil {
		salon.LocationGeo = *in.LocationGeo
	}

	if err := s.Repo.Create(ctx, salon); err != nil {
		return nil, fmt.Errorf("failed to create salon: %w", err)
	}
	utils.GetLogger().Info("salon created", zap.String("salonId", salon.ID), zap.String("ownerId", ownerID))
	return salon, nil
}

func (s *DefaultSalonService) GetSalon(ctx context.Context, id string) (*models.Salon, error) {
	salon, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load salon: %w", err)
	}
	return salon, nil
}

// UpdateSalon merges allowed updates and returns the updated record.
// It implements patch-style updates.
func (s *DefaultSalonService) UpdateSalon(ctx context.Context, id, ownerID string, updates map[string]interface{}) (*models.Salon, error) {
	if _, err := s.requireOwned(ctx, id, ownerID); err != nil {
		return nil, err
	}

	updateFields := bson.M{}
	if v, ok := updates["name"].(string); ok && v != "" {
		updateFields["name"] = v
	}
	if v, ok := updates["description"].(string); ok {
		updateFields["description"] = v
	}
	if v, ok := updates["phone_number"].(string); ok && v != "" {
		updateFields["phoneNumber"] = v
	}
	if v, ok := updates["city"].(string); ok && v != "" {
		updateFields["city"] = v
	}
	if v, ok := updates["address"].(string); ok && v != "" {
		updateFields["address"] = v
	}
	if v, ok := updates["published"].(bool); ok {
		updateFields["published"] = v
	}
	if geo, ok := updates["location_geo"].(map[string]interface{}); ok {
		if t, ok := geo["type"].(string); ok && t == "Point" {
			if coords, ok := geo["coordinates"].([]interface{}); ok && len(coords) == 2 {
				var newCoords []float64
				for _, cVal := range coords {
					switch v := cVal.(type) {
					case float64:
						newCoords = append(newCoords, v)
					case int:
						newCoords = append(newCoords, float64(v))
					}
				}
				if len(newCoords) == 2 {
					updateFields["locationGeo"] = models.GeoPoint{Type: "Point", Coordinates: newCoords}
				}
			}
		}
	}
	if len(updateFields) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields supplied", ErrInvalidInput)
	}
	updateFields["updatedAt"] = time.Now()

	if err := s.Repo.UpdateWithDocument(ctx, id, bson.M{"$set": updateFields}); err != nil {
		return nil, fmt.Errorf("failed to update salon: %w", err)
	}
	return s.GetSalon(ctx, id)
}

func (s *DefaultSalonService) DeleteSalon(ctx context.Context, id, ownerID string) error {
	if _, err := s.requireOwned(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete salon %s: %w", id, err)
	}
	return nil
}

func (s *DefaultSalonService) BrowseSalons(ctx context.Context, city, query string, limit, offset int64) ([]models.Salon, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	salons, err := s.Repo.ListPublished(ctx, city, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to browse salons: %w", err)
	}
	return salons, nil
}

func (s *DefaultSalonService) ListOwnerSalons(ctx context.Context, ownerID string) ([]models.Salon, error) {
	salons, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owner salons: %w", err)
	}
	return salons, nil
}

func (s *DefaultSalonService) RefreshRating(ctx context.Context, salonID string, average float64, count int) error {
	if err := s.Repo.ApplyRating(ctx, salonID, average, count); err != nil {
		return fmt.Errorf("failed to refresh salon rating: %w", err)
	}
	return nil
}

func (s *DefaultSalonService) AttachPhoto(ctx context.Context, salonID, ownerID, localFilePath string) (string, error) {
	if _, err := s.requireOwned(ctx, salonID, ownerID); err != nil {
		return "", err
	}
	publicID, err := s.Storage.UploadFile(ctx, localFilePath, "salons/"+salonID)
	if err != nil {
		return "", fmt.Errorf("failed to upload salon photo: %w", err)
	}

	update := bson.M{
		"$push": bson.M{"photoIds": publicID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if err := s.Repo.UpdateWithDocument(ctx, salonID, update); err != nil {
		return "", fmt.Errorf("failed to attach photo: %w", err)
	}
	return publicID, nil
}

// PhotoURL builds the public delivery URL for an attached photo.
func (s *DefaultSalonService) PhotoURL(ctx context.Context, publicID string) (string, error) {
	url, err := s.Storage.GetDownloadURL(ctx, "image", publicID, 0)
	if err != nil {
		return "", fmt.Errorf("failed to build photo URL: %w", err)
	}
	return url, nil
}

func (s *DefaultSalonService) requireOwned(ctx context.Context, salonID, ownerID string) (*models.Salon, error) {
	salon, err := s.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if salon.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return salon, nil
}

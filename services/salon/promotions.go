// File: services/salon/promotions.go
package salon

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"glamora/models"
)

func (s *DefaultSalonService) AddPromotion(ctx context.Context, salonID, ownerID string, promo models.Promotion) (*models.Salon, error) {
	if _, err := s.requireOwned(ctx, salonID, ownerID); err != nil {
		return nil, err
	}
	if promo.Title == "" {
		return nil, fmt.Errorf("%w: promotion needs a title", ErrInvalidInput)
	}
	if promo.DiscountPercent < 1 || promo.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount must be 1-100 percent", ErrInvalidInput)
	}
	if promo.ID == "" {
		promo.ID = uuid.New().String()
	}

	update := bson.M{
		"$push": bson.M{"promotions": promo},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if err := s.Repo.UpdateWithDocument(ctx, salonID, update); err != nil {
		return nil, fmt.Errorf("failed to add promotion: %w", err)
	}
	return s.GetSalon(ctx, salonID)
}

func (s *DefaultSalonService) RemovePromotion(ctx context.Context, salonID, ownerID, promoID string) error {
	if _, err := s.requireOwned(ctx, salonID, ownerID); err != nil {
		return err
	}
	update := bson.M{
		"$pull": bson.M{"promotions": bson.M{"id": promoID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if err := s.Repo.UpdateWithDocument(ctx, salonID, update); err != nil {
		return fmt.Errorf("failed to remove promotion: %w", err)
	}
	return nil
}

func (s *DefaultSalonService) UpsertService(ctx context.Context, salonID, ownerID string, svc models.Service) (*models.Salon, error) {
	salon, err := s.requireOwned(ctx, salonID, ownerID)
	if err != nil {
		return nil, err
	}
	if svc.Name == "" || svc.Price < 0 || svc.DurationMin <= 0 {
		return nil, fmt.Errorf("%w: service needs a name, a duration and a non-negative price", ErrInvalidInput)
	}

	if svc.ID == "" {
		svc.ID = uuid.New().String()
		update := bson.M{
			"$push": bson.M{"services": svc},
			"$set":  bson.M{"updatedAt": time.Now()},
		}
		if err := s.Repo.UpdateWithDocument(ctx, salonID, update); err != nil {
			return nil, fmt.Errorf("failed to add service: %w", err)
		}
		return s.GetSalon(ctx, salonID)
	}

	if _, ok := salon.ServiceByID(svc.ID); !ok {
		return nil, fmt.Errorf("%w: unknown service id %s", ErrInvalidInput, svc.ID)
	}
	services := make([]models.Service, len(salon.Services))
	copy(services, salon.Services)
	for i := range services {
		if services[i].ID == svc.ID {
			services[i] = svc
		}
	}
	update := bson.M{
		"$set": bson.M{"services": services, "updatedAt": time.Now()},
	}
	if err := s.Repo.UpdateWithDocument(ctx, salonID, update); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return s.GetSalon(ctx, salonID)
}

func (s *DefaultSalonService) RemoveService(ctx context.Context, salonID, ownerID, serviceID string) error {
	if _, err := s.requireOwned(ctx, salonID, ownerID); err != nil {
		return err
	}
	update := bson.M{
		"$pull": bson.M{"services": bson.M{"id": serviceID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if err := s.Repo.UpdateWithDocument(ctx, salonID, update); err != nil {
		return fmt.Errorf("failed to remove service: %w", err)
	}
	return nil
}

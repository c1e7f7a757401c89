// File: services/salon/interface.go
package salon

import (
	"context"

	"glamora/database/repository/salon"
	"glamora/database/repository/schedule"
	"glamora/models"
	"glamora/services/storage"
)

// CreateInput carries the owner-supplied fields for a new salon.
type CreateInput struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	PhoneNumber string           `json:"phoneNumber"`
	City        string           `json:"city"`
	Address     string           `json:"address"`
	LocationGeo *models.GeoPoint `json:"locationGeo"`
	Services    []models.Service `json:"services"`
}

// SalonService manages salon profiles, catalogues, schedules and promotions.
type SalonService interface {
	CreateSalon(ctx context.Context, ownerID string, in CreateInput) (*models.Salon, error)
	GetSalon(ctx context.Context, id string) (*models.Salon, error)
	UpdateSalon(ctx context.Context, id, ownerID string, updates map[string]interface{}) (*models.Salon, error)
	DeleteSalon(ctx context.Context, id, ownerID string) error
	BrowseSalons(ctx context.Context, city, query string, limit, offset int64) ([]models.Salon, error)
	ListOwnerSalons(ctx context.Context, ownerID string) ([]models.Salon, error)

	// Service catalogue.
	UpsertService(ctx context.Context, salonID, ownerID string, svc models.Service) (*models.Salon, error)
	RemoveService(ctx context.Context, salonID, ownerID, serviceID string) error

	// Declared schedule (read-only to the availability resolver).
	SetDaySchedule(ctx context.Context, salonID, ownerID, date string, slots []string) error
	ClearDaySchedule(ctx context.Context, salonID, ownerID, date string) error
	ListScheduledDates(ctx context.Context, salonID string) ([]string, error)

	// Promotions.
	AddPromotion(ctx context.Context, salonID, ownerID string, promo models.Promotion) (*models.Salon, error)
	RemovePromotion(ctx context.Context, salonID, ownerID, promoID string) error

	// Photos.
	AttachPhoto(ctx context.Context, salonID, ownerID, localFilePath string) (string, error)
	PhotoURL(ctx context.Context, publicID string) (string, error)

	// RefreshRating recomputes the aggregate from the review store.
	RefreshRating(ctx context.Context, salonID string, average float64, count int) error
}

// DefaultSalonService implements SalonService.
type DefaultSalonService struct {
	Repo         salonRepo.SalonRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
	Storage      storage.StorageService
}

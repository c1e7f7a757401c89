// File: services/review/review.go
package review

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"glamora/database/repository"
	"glamora/database/repository/booking"
	"glamora/database/repository/review"
	"glamora/models"
	"glamora/utils"
)

var (
	// ErrInvalidInput indicates a missing or out-of-range review field.
	ErrInvalidInput = errors.New("invalid review input")
	// ErrNotEligible indicates the user has no completed booking backing
	// the review.
	ErrNotEligible = errors.New("reviews require a completed booking at this salon")
	// ErrAlreadyReviewed indicates the booking already carries a review.
	ErrAlreadyReviewed = errors.New("this booking has already been reviewed")
	// ErrNotFound indicates the review does not exist.
	ErrNotFound = errors.New("review not found")
)

// SalonRatingSink receives recomputed aggregates after a review write.
type SalonRatingSink interface {
	RefreshRating(ctx context.Context, salonID string, average float64, count int) error
}

// ReviewService manages customer reviews and the salon rating aggregate.
type ReviewService interface {
	CreateReview(ctx context.Context, userID string, in CreateInput) (*models.Review, error)
	ListSalonReviews(ctx context.Context, salonID string, limit, offset int64) ([]models.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
}

// CreateInput carries the customer-supplied review fields.
type CreateInput struct {
	SalonID   string `json:"salonId" binding:"required"`
	BookingID string `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	BookingRepo bookingRepo.BookingRepository
	Salons      SalonRatingSink
}

func (s *DefaultReviewService) CreateReview(ctx context.Context, userID string, in CreateInput) (*models.Review, error) {
	if userID == "" || in.SalonID == "" || in.BookingID == "" {
		return nil, fmt.Errorf("%w: missing identifier", ErrInvalidInput)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be 1-5", ErrInvalidInput)
	}

	booking, err := s.BookingRepo.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotEligible
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.UserID != userID || booking.SalonID != in.SalonID || booking.Status != models.BookingStatusCompleted {
		return nil, ErrNotEligible
	}

	taken, err := s.Repo.ExistsForBooking(ctx, in.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if taken {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		SalonID:   in.SalonID,
		UserID:    userID,
		BookingID: in.BookingID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyReviewed
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.refresh(ctx, in.SalonID)
	return review, nil
}

func (s *DefaultReviewService) ListSalonReviews(ctx context.Context, salonID string, limit, offset int64) ([]models.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	reviews, err := s.Repo.ListBySalon(ctx, salonID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// DeleteReview removes a review (admin moderation). The salon aggregate is
// repaired on the next review write.
func (s *DefaultReviewService) DeleteReview(ctx context.Context, reviewID string) error {
	if err := s.Repo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

// refresh recomputes and stores the salon aggregate. Aggregate drift on
// failure is tolerated; the next review write repairs it.
func (s *DefaultReviewService) refresh(ctx context.Context, salonID string) {
	avg, count, err := s.Repo.Aggregate(ctx, salonID)
	if err != nil {
		utils.GetLogger().Warn("failed to aggregate reviews", zap.String("salonId", salonID), zap.Error(err))
		return
	}
	if err := s.Salons.RefreshRating(ctx, salonID, avg, count); err != nil {
		utils.GetLogger().Warn("failed to store salon rating", zap.String("salonId", salonID), zap.Error(err))
	}
}

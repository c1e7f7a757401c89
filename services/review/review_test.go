package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glamora/database/repository"
	"glamora/models"
)

type fakeReviewRepo struct {
	reviews map[string]*models.Review
	seq     int
}

func (f *fakeReviewRepo) Create(_ context.Context, r *models.Review) error {
	for _, existing := range f.reviews {
		if existing.BookingID == r.BookingID {
			return repository.ErrDuplicate
		}
	}
	if r.ID == "" {
		f.seq++
		r.ID = string(rune('a' + f.seq))
	}
	f.reviews[r.ID] = r
	return nil
}

func (f *fakeReviewRepo) ListBySalon(_ context.Context, salonID string, _, _ int64) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.SalonID == salonID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) Aggregate(_ context.Context, salonID string) (float64, int, error) {
	var sum, count int
	for _, r := range f.reviews {
		if r.SalonID == salonID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (f *fakeReviewRepo) ExistsForBooking(_ context.Context, bookingID string) (bool, error) {
	for _, r := range f.reviews {
		if r.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

type fakeBookingLookup struct {
	bookings map[string]*models.Booking
}

func (f *fakeBookingLookup) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (f *fakeBookingLookup) Create(_ context.Context, _ *models.Booking) error { return nil }
func (f *fakeBookingLookup) HeldSlots(_ context.Context, _, _ string, _ []string) ([]string, error) {
	return nil, nil
}
func (f *fakeBookingLookup) ListByUser(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingLookup) ListBySalon(_ context.Context, _, _ string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingLookup) UpdateStatus(_ context.Context, _, _, _ string) error { return nil }
func (f *fakeBookingLookup) CompletePastBookings(_ context.Context, _ string) (int64, error) {
	return 0, nil
}
func (f *fakeBookingLookup) HasCompletedBooking(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

type ratingRecorder struct {
	salonID string
	average float64
	count   int
}

func (r *ratingRecorder) RefreshRating(_ context.Context, salonID string, average float64, count int) error {
	r.salonID = salonID
	r.average = average
	r.count = count
	return nil
}

func newTestService() (*DefaultReviewService, *ratingRecorder) {
	bookings := &fakeBookingLookup{bookings: map[string]*models.Booking{
		"done": {ID: "done", SalonID: "S1", UserID: "user-1", Status: models.BookingStatusCompleted},
		"open": {ID: "open", SalonID: "S1", UserID: "user-1", Status: models.BookingStatusConfirmed},
	}}
	sink := &ratingRecorder{}
	svc := &DefaultReviewService{
		Repo:        &fakeReviewRepo{reviews: map[string]*models.Review{}},
		BookingRepo: bookings,
		Salons:      sink,
	}
	return svc, sink
}

func TestCreateReview_RequiresCompletedBooking(t *testing.T) {
	svc, _ := newTestService()

	t.Run("completed booking passes", func(t *testing.T) {
		r, err := svc.CreateReview(context.Background(), "user-1", CreateInput{
			SalonID: "S1", BookingID: "done", Rating: 5, Comment: "great cut",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, r.Rating)
	})

	t.Run("active booking is not eligible", func(t *testing.T) {
		_, err := svc.CreateReview(context.Background(), "user-1", CreateInput{
			SalonID: "S1", BookingID: "open", Rating: 4,
		})
		assert.ErrorIs(t, err, ErrNotEligible)
	})

	t.Run("someone else's booking is not eligible", func(t *testing.T) {
		_, err := svc.CreateReview(context.Background(), "user-2", CreateInput{
			SalonID: "S1", BookingID: "done", Rating: 4,
		})
		assert.ErrorIs(t, err, ErrNotEligible)
	})
}

func TestCreateReview_OnePerBooking(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateReview(context.Background(), "user-1", CreateInput{
		SalonID: "S1", BookingID: "done", Rating: 5,
	})
	require.NoError(t, err)

	_, err = svc.CreateReview(context.Background(), "user-1", CreateInput{
		SalonID: "S1", BookingID: "done", Rating: 1,
	})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreateReview_RatingBounds(t *testing.T) {
	svc, _ := newTestService()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(context.Background(), "user-1", CreateInput{
			SalonID: "S1", BookingID: "done", Rating: rating,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestCreateReview_UpdatesSalonAggregate(t *testing.T) {
	svc, sink := newTestService()

	_, err := svc.CreateReview(context.Background(), "user-1", CreateInput{
		SalonID: "S1", BookingID: "done", Rating: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "S1", sink.salonID)
	assert.Equal(t, 4.0, sink.average)
	assert.Equal(t, 1, sink.count)
}

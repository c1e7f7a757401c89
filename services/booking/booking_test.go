package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glamora/database/repository"
	"glamora/models"
)

type fakeSalonRepo struct {
	salons map[string]*models.Salon
}

func (f *fakeSalonRepo) Create(_ context.Context, s *models.Salon) error {
	f.salons[s.ID] = s
	return nil
}

func (f *fakeSalonRepo) GetByID(_ context.Context, id string) (*models.Salon, error) {
	s, ok := f.salons[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeSalonRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.salons[id]
	return ok, nil
}

func (f *fakeSalonRepo) UpdateWithDocument(_ context.Context, _ string, _ interface{}) error {
	return nil
}
func (f *fakeSalonRepo) Delete(_ context.Context, _ string) error { return nil }
func (f *fakeSalonRepo) ListPublished(_ context.Context, _, _ string, _, _ int64) ([]models.Salon, error) {
	return nil, nil
}
func (f *fakeSalonRepo) ListByOwner(_ context.Context, _ string) ([]models.Salon, error) {
	return nil, nil
}
func (f *fakeSalonRepo) ListAll(_ context.Context, _, _ int64) ([]models.Salon, error) {
	return nil, nil
}
func (f *fakeSalonRepo) ApplyRating(_ context.Context, _ string, _ float64, _ int) error {
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	seq      int
}

func (f *fakeBookingRepo) activeConflict(b *models.Booking) bool {
	for _, other := range f.bookings {
		if other.SalonID == b.SalonID && other.Date == b.Date && other.Slot == b.Slot && other.IsHolding() {
			return true
		}
	}
	return false
}

func (f *fakeBookingRepo) Create(_ context.Context, b *models.Booking) error {
	if f.activeConflict(b) {
		return repository.ErrDuplicate
	}
	if b.ID == "" {
		f.seq++
		b.ID = string(rune('a' + f.seq))
	}
	clone := *b
	f.bookings[b.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) HeldSlots(_ context.Context, salonID, date string, statuses []string) ([]string, error) {
	var held []string
	for _, b := range f.bookings {
		if b.SalonID != salonID || b.Date != date {
			continue
		}
		for _, st := range statuses {
			if b.Status == st {
				held = append(held, b.Slot)
				break
			}
		}
	}
	return held, nil
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListBySalon(_ context.Context, salonID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.SalonID == salonID && (date == "" || b.Date == date) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id, from, to string) error {
	b, ok := f.bookings[id]
	if !ok || b.Status != from {
		return repository.ErrNotFound
	}
	b.Status = to
	return nil
}

func (f *fakeBookingRepo) CompletePastBookings(_ context.Context, before string) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.Date < before && b.IsHolding() {
			b.Status = models.BookingStatusCompleted
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) HasCompletedBooking(_ context.Context, userID, salonID string) (bool, error) {
	for _, b := range f.bookings {
		if b.UserID == userID && b.SalonID == salonID && b.Status == models.BookingStatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

// fakeAvailability reports the slots it was configured with, regardless of
// salon/date.
type fakeAvailability struct {
	free []string
	err  error
}

func (f *fakeAvailability) Resolve(_ context.Context, _, _ string) ([]string, error) {
	return f.free, f.err
}

func newTestService(free []string) (*DefaultBookingService, *fakeBookingRepo) {
	salons := &fakeSalonRepo{salons: map[string]*models.Salon{
		"S1": {
			ID:      "S1",
			OwnerID: "owner-1",
			Name:    "Shear Genius",
			Services: []models.Service{
				{ID: "cut", Name: "Haircut", DurationMin: 30, Price: 25},
				{ID: "free-consult", Name: "Consultation", DurationMin: 15, Price: 0},
			},
		},
	}}
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{}}
	svc := &DefaultBookingService{
		SalonRepo:    salons,
		BookingRepo:  bookings,
		Availability: &fakeAvailability{free: free},
	}
	return svc, bookings
}

func validInput() CreateInput {
	return CreateInput{SalonID: "S1", ServiceID: "cut", Date: "2024-06-01", Slot: "10:00"}
}

func TestCreateBooking_Succeeds(t *testing.T) {
	svc, repo := newTestService([]string{"09:00", "10:00"})

	res, err := svc.CreateBooking(context.Background(), "user-1", validInput())
	require.NoError(t, err)
	require.NotNil(t, res.Booking)
	assert.Equal(t, models.BookingStatusPending, res.Booking.Status)
	assert.Equal(t, "Haircut", res.Booking.ServiceName)
	assert.Equal(t, 25.0, res.Booking.Price)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBooking_SlotNotFree(t *testing.T) {
	svc, _ := newTestService([]string{"09:00"})

	_, err := svc.CreateBooking(context.Background(), "user-1", validInput())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBooking_RaceLoserGetsSlotTaken(t *testing.T) {
	// Both requests saw the slot free; the second insert hits the unique
	// active-slot constraint.
	svc, _ := newTestService([]string{"10:00"})

	_, err := svc.CreateBooking(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	_, err = svc.CreateBooking(context.Background(), "user-2", validInput())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBooking_CancelledBookingFreesSlot(t *testing.T) {
	svc, _ := newTestService([]string{"10:00"})

	res, err := svc.CreateBooking(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), res.Booking.ID, "user-1", models.RoleCustomer)
	require.NoError(t, err)

	_, err = svc.CreateBooking(context.Background(), "user-2", validInput())
	assert.NoError(t, err)
}

func TestCreateBooking_Validation(t *testing.T) {
	svc, _ := newTestService([]string{"10:00"})

	tests := []struct {
		name   string
		mutate func(*CreateInput)
		want   error
	}{
		{"bad date", func(in *CreateInput) { in.Date = "06/01/2024" }, ErrInvalidInput},
		{"unpadded slot", func(in *CreateInput) { in.Slot = "9:00" }, ErrInvalidInput},
		{"missing salon", func(in *CreateInput) { in.SalonID = "" }, ErrInvalidInput},
		{"unknown salon", func(in *CreateInput) { in.SalonID = "ghost" }, ErrSalonNotFound},
		{"unknown service", func(in *CreateInput) { in.ServiceID = "perm" }, ErrServiceNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.CreateBooking(context.Background(), "user-1", in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConfirmBooking(t *testing.T) {
	svc, _ := newTestService([]string{"10:00"})
	res, err := svc.CreateBooking(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	t.Run("non-owner cannot confirm", func(t *testing.T) {
		_, err := svc.ConfirmBooking(context.Background(), res.Booking.ID, "someone-else")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner confirms pending", func(t *testing.T) {
		b, err := svc.ConfirmBooking(context.Background(), res.Booking.ID, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	})

	t.Run("confirm is not repeatable", func(t *testing.T) {
		_, err := svc.ConfirmBooking(context.Background(), res.Booking.ID, "owner-1")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestCancelBooking_Authorization(t *testing.T) {
	svc, _ := newTestService([]string{"10:00", "11:00"})

	res, err := svc.CreateBooking(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	t.Run("stranger cannot cancel", func(t *testing.T) {
		_, err := svc.CancelBooking(context.Background(), res.Booking.ID, "user-9", models.RoleCustomer)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner can cancel", func(t *testing.T) {
		b, err := svc.CancelBooking(context.Background(), res.Booking.ID, "owner-1", models.RoleOwner)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, b.Status)
	})

	t.Run("cancelled booking cannot be cancelled again", func(t *testing.T) {
		_, err := svc.CancelBooking(context.Background(), res.Booking.ID, "user-1", models.RoleCustomer)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestReconcilePastBookings(t *testing.T) {
	svc, repo := newTestService([]string{"10:00"})
	repo.bookings["b1"] = &models.Booking{ID: "b1", SalonID: "S1", UserID: "user-1", Date: "2001-01-01", Slot: "10:00", Status: models.BookingStatusConfirmed}
	repo.bookings["b2"] = &models.Booking{ID: "b2", SalonID: "S1", UserID: "user-1", Date: "2999-01-01", Slot: "10:00", Status: models.BookingStatusPending}
	repo.bookings["b3"] = &models.Booking{ID: "b3", SalonID: "S1", UserID: "user-1", Date: "2001-01-02", Slot: "10:00", Status: models.BookingStatusCancelled}

	n, err := svc.ReconcilePastBookings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, models.BookingStatusCompleted, repo.bookings["b1"].Status)
	assert.Equal(t, models.BookingStatusPending, repo.bookings["b2"].Status)
	assert.Equal(t, models.BookingStatusCancelled, repo.bookings["b3"].Status)
}

func TestGetBooking_Authorization(t *testing.T) {
	svc, _ := newTestService([]string{"10:00"})
	res, err := svc.CreateBooking(context.Background(), "user-1", validInput())
	require.NoError(t, err)

	_, err = svc.GetBooking(context.Background(), res.Booking.ID, "user-1", models.RoleCustomer)
	assert.NoError(t, err)

	_, err = svc.GetBooking(context.Background(), res.Booking.ID, "admin-1", models.RoleAdmin)
	assert.NoError(t, err)

	_, err = svc.GetBooking(context.Background(), res.Booking.ID, "user-9", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetBooking(context.Background(), "missing", "user-1", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

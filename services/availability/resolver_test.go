package availability

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glamora/database/repository"
	"glamora/models"
)

type fakeSalons struct {
	ids map[string]bool
	err error
}

func (f *fakeSalons) Exists(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.ids[id], nil
}

type fakeSchedules struct {
	// keyed by salonID + "|" + date
	days map[string][]string
	err  error
}

func (f *fakeSchedules) SlotsForDate(_ context.Context, salonID, date string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	slots, ok := f.days[salonID+"|"+date]
	if !ok {
		return []string{}, nil
	}
	return slots, nil
}

type fakeBookings struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookings) HeldSlots(_ context.Context, salonID, date string, statuses []string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	inSet := func(s string) bool {
		for _, st := range statuses {
			if st == s {
				return true
			}
		}
		return false
	}
	var held []string
	for _, b := range f.bookings {
		if b.SalonID == salonID && b.Date == date && inSet(b.Status) {
			held = append(held, b.Slot)
		}
	}
	return held, nil
}

func newTestResolver(salons *fakeSalons, schedules *fakeSchedules, bookings *fakeBookings) *DefaultResolver {
	if salons == nil {
		salons = &fakeSalons{ids: map[string]bool{"S1": true}}
	}
	if schedules == nil {
		schedules = &fakeSchedules{days: map[string][]string{}}
	}
	if bookings == nil {
		bookings = &fakeBookings{}
	}
	return NewResolver(salons, schedules, bookings)
}

func TestResolve_ConfirmedBookingRemovesSlot(t *testing.T) {
	schedules := &fakeSchedules{days: map[string][]string{
		"S1|2024-06-01": {"09:00", "10:00", "14:00"},
	}}
	bookings := &fakeBookings{bookings: []models.Booking{
		{SalonID: "S1", Date: "2024-06-01", Slot: "10:00", Status: models.BookingStatusConfirmed},
		{SalonID: "S1", Date: "2024-06-01", Slot: "14:00", Status: models.BookingStatusCancelled},
	}}

	got, err := newTestResolver(nil, schedules, bookings).Resolve(context.Background(), "S1", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "14:00"}, got)
}

func TestResolve_NoBookingsReturnsScheduleUnchanged(t *testing.T) {
	schedules := &fakeSchedules{days: map[string][]string{
		"S1|2024-06-01": {"09:00", "10:00", "14:00"},
	}}

	got, err := newTestResolver(nil, schedules, nil).Resolve(context.Background(), "S1", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "14:00"}, got)
}

func TestResolve_EmptyScheduleWithStrayBooking(t *testing.T) {
	bookings := &fakeBookings{bookings: []models.Booking{
		{SalonID: "S1", Date: "2024-06-01", Slot: "10:00", Status: models.BookingStatusPending},
	}}

	got, err := newTestResolver(nil, nil, bookings).Resolve(context.Background(), "S1", "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, got, "bookings never add slots, only remove declared ones")
}

func TestResolve_UndeclaredDateIsEmptyNotError(t *testing.T) {
	got, err := newTestResolver(nil, nil, nil).Resolve(context.Background(), "S1", "2030-12-24")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolve_NonHoldingStatusesNeverRemoveSlots(t *testing.T) {
	schedules := &fakeSchedules{days: map[string][]string{
		"S1|2024-06-01": {"09:00", "10:00"},
	}}
	bookings := &fakeBookings{bookings: []models.Booking{
		{SalonID: "S1", Date: "2024-06-01", Slot: "09:00", Status: models.BookingStatusCancelled},
		{SalonID: "S1", Date: "2024-06-01", Slot: "10:00", Status: models.BookingStatusCompleted},
	}}

	got, err := newTestResolver(nil, schedules, bookings).Resolve(context.Background(), "S1", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, got)
}

func TestResolve_UnknownSalon(t *testing.T) {
	_, err := newTestResolver(nil, nil, nil).Resolve(context.Background(), "ghost", "2024-06-01")
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestResolve_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		salonID string
		date    string
	}{
		{"empty salon id", "", "2024-06-01"},
		{"empty date", "S1", ""},
		{"malformed date", "S1", "01-06-2024"},
		{"date with time", "S1", "2024-06-01T10:00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newTestResolver(nil, nil, nil).Resolve(context.Background(), tc.salonID, tc.date)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestResolve_StoreUnavailable(t *testing.T) {
	wrapped := fmt.Errorf("find: %w", repository.ErrUnavailable)

	t.Run("schedule store down", func(t *testing.T) {
		schedules := &fakeSchedules{err: wrapped}
		_, err := newTestResolver(nil, schedules, nil).Resolve(context.Background(), "S1", "2024-06-01")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("booking store down", func(t *testing.T) {
		bookings := &fakeBookings{err: wrapped}
		_, err := newTestResolver(nil, nil, bookings).Resolve(context.Background(), "S1", "2024-06-01")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("no partial result on error", func(t *testing.T) {
		bookings := &fakeBookings{err: wrapped}
		got, err := newTestResolver(nil, nil, bookings).Resolve(context.Background(), "S1", "2024-06-01")
		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestResolve_UnexpectedStoreError(t *testing.T) {
	bookings := &fakeBookings{err: errors.New("decode failure")}
	_, err := newTestResolver(nil, nil, bookings).Resolve(context.Background(), "S1", "2024-06-01")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrSalonNotFound)
}

func TestFilterSlots(t *testing.T) {
	tests := []struct {
		name     string
		declared []string
		held     []string
		want     []string
	}{
		{"empty declared", []string{}, []string{"10:00"}, []string{}},
		{"nothing held", []string{"09:00", "10:00"}, nil, []string{"09:00", "10:00"}},
		{"order preserved", []string{"14:00", "09:00", "10:00"}, []string{"09:00"}, []string{"14:00", "10:00"}},
		{"all held", []string{"09:00", "10:00"}, []string{"09:00", "10:00"}, []string{}},
		{"held slot not declared is ignored", []string{"09:00"}, []string{"22:00"}, []string{"09:00"}},
		{"exact string match, no normalization", []string{"09:00"}, []string{"9:00"}, []string{"09:00"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FilterSlots(tc.declared, tc.held))
		})
	}
}

// The output must always be a sub-sequence of the declared schedule.
func TestFilterSlots_SubsequenceProperty(t *testing.T) {
	declared := []string{"08:00", "09:30", "11:00", "13:00", "16:45"}
	held := []string{"09:30", "16:45", "12:00"}

	got := FilterSlots(declared, held)

	idx := 0
	for _, s := range got {
		found := false
		for ; idx < len(declared); idx++ {
			if declared[idx] == s {
				found = true
				idx++
				break
			}
		}
		require.True(t, found, "slot %q out of declared order or not declared", s)
	}
}

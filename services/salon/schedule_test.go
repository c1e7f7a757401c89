package salon

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
	if s.ID == "" {
		s.ID = "generated"
	}
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

func (f *fakeSalonRepo) UpdateWithDocument(_ context.Context, id string, _ interface{}) error {
	if _, ok := f.salons[id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (f *fakeSalonRepo) Delete(_ context.Context, id string) error {
	delete(f.salons, id)
	return nil
}

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

type fakeScheduleRepo struct {
	days map[string]models.DaySchedule
}

func (f *fakeScheduleRepo) SlotsForDate(_ context.Context, salonID, date string) ([]string, error) {
	if day, ok := f.days[salonID+"|"+date]; ok {
		return day.Slots, nil
	}
	return []string{}, nil
}

func (f *fakeScheduleRepo) ReplaceDay(_ context.Context, sched models.DaySchedule) error {
	f.days[sched.SalonID+"|"+sched.Date] = sched
	return nil
}

func (f *fakeScheduleRepo) DeleteDay(_ context.Context, salonID, date string) error {
	key := salonID + "|" + date
	if _, ok := f.days[key]; !ok {
		return repository.ErrNotFound
	}
	delete(f.days, key)
	return nil
}

func (f *fakeScheduleRepo) ListDates(_ context.Context, salonID string) ([]string, error) {
	var dates []string
	for _, day := range f.days {
		if day.SalonID == salonID {
			dates = append(dates, day.Date)
		}
	}
	return dates, nil
}

func newTestService() (*DefaultSalonService, *fakeScheduleRepo) {
	salons := &fakeSalonRepo{salons: map[string]*models.Salon{
		"S1": {ID: "S1", OwnerID: "owner-1", Name: "Shear Genius"},
	}}
	schedules := &fakeScheduleRepo{days: map[string]models.DaySchedule{}}
	return &DefaultSalonService{Repo: salons, ScheduleRepo: schedules}, schedules
}

func TestSetDaySchedule_StoresDeclaredOrder(t *testing.T) {
	svc, schedules := newTestService()

	slots := []string{"14:00", "09:00", "10:30"}
	err := svc.SetDaySchedule(context.Background(), "S1", "owner-1", "2024-06-01", slots)
	require.NoError(t, err)

	stored := schedules.days["S1|2024-06-01"]
	assert.Equal(t, slots, stored.Slots, "declared order is preserved, not sorted")
}

func TestSetDaySchedule_RejectsMalformedSlots(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name  string
		slots []string
	}{
		{"unpadded hour", []string{"9:00"}},
		{"seconds included", []string{"09:00:00"}},
		{"out of range", []string{"25:00"}},
		{"duplicate slot", []string{"09:00", "09:00"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.SetDaySchedule(context.Background(), "S1", "owner-1", "2024-06-01", tc.slots)
			assert.ErrorIs(t, err, ErrBadSlot)
		})
	}
}

func TestSetDaySchedule_Ownership(t *testing.T) {
	svc, _ := newTestService()

	err := svc.SetDaySchedule(context.Background(), "S1", "intruder", "2024-06-01", []string{"09:00"})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.SetDaySchedule(context.Background(), "ghost", "owner-1", "2024-06-01", []string{"09:00"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetDaySchedule_RejectsBadDate(t *testing.T) {
	svc, _ := newTestService()

	err := svc.SetDaySchedule(context.Background(), "S1", "owner-1", "June 1st", []string{"09:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClearDaySchedule(t *testing.T) {
	svc, schedules := newTestService()
	require.NoError(t, svc.SetDaySchedule(context.Background(), "S1", "owner-1", "2024-06-01", []string{"09:00"}))

	err := svc.ClearDaySchedule(context.Background(), "S1", "owner-1", "2024-06-01")
	require.NoError(t, err)
	assert.Empty(t, schedules.days)
}

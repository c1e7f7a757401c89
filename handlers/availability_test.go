package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glamora/services/availability"
)

type stubAvailability struct {
	slots []string
	err   error
}

func (s *stubAvailability) Resolve(ctx context.Context, salonID, date string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.slots, nil
}

func newAvailabilityRouter(svc availability.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &AvailabilityHandler{Service: svc}
	r.GET("/api/salons/:id/availability", h.GetAvailabilityHandler)
	return r
}

func TestGetAvailabilityHandler_OK(t *testing.T) {
	r := newAvailabilityRouter(&stubAvailability{slots: []string{"09:00", "14:00"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/salons/salon-1/availability?date=2026-09-01", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Slots []string `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"09:00", "14:00"}, body.Slots)
}

func TestGetAvailabilityHandler_EmptySlotsIsJSONArray(t *testing.T) {
	r := newAvailabilityRouter(&stubAvailability{slots: []string{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/salons/salon-1/availability?date=2026-09-01", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"slots":[]}`, w.Body.String())
}

func TestGetAvailabilityHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", availability.ErrInvalidArgument, http.StatusBadRequest},
		{"salon not found", availability.ErrSalonNotFound, http.StatusNotFound},
		{"stores unreachable", availability.ErrUnavailable, http.StatusServiceUnavailable},
		{"internal", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newAvailabilityRouter(&stubAvailability{err: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/salons/salon-1/availability?date=2026-09-01", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

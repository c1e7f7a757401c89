package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"glamora/models"
	"glamora/services/booking"
)

type stubBookingService struct {
	createErr error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, userID string, in booking.CreateInput) (*booking.CreateResult, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &booking.CreateResult{Booking: &models.Booking{ID: "bk-1", Status: models.BookingStatusPending}}, nil
}
func (s *stubBookingService) ConfirmBooking(ctx context.Context, bookingID, ownerID string) (*models.Booking, error) {
	return nil, booking.ErrBookingNotFound
}
func (s *stubBookingService) CancelBooking(ctx context.Context, bookingID, actorID, actorRole string) (*models.Booking, error) {
	return nil, booking.ErrBookingNotFound
}
func (s *stubBookingService) GetBooking(ctx context.Context, bookingID, actorID, actorRole string) (*models.Booking, error) {
	return nil, booking.ErrBookingNotFound
}
func (s *stubBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}
func (s *stubBookingService) ListSalonBookings(ctx context.Context, salonID, ownerID, date string) ([]models.Booking, error) {
	return nil, nil
}

func newBookingRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", "user-1")
		c.Set("role", models.RoleCustomer)
	})
	h := &BookingHandler{Service: svc}
	r.POST("/api/bookings", h.CreateBookingHandler)
	return r
}

func TestCreateBookingHandler_Created(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	payload := `{"salonId":"salon-1","serviceId":"svc-1","date":"2026-09-01","slot":"09:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"bk-1"`)
}

func TestCreateBookingHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", booking.ErrInvalidInput, http.StatusBadRequest},
		{"salon not found", booking.ErrSalonNotFound, http.StatusNotFound},
		{"service not found", booking.ErrServiceNotFound, http.StatusNotFound},
		{"slot taken", booking.ErrSlotTaken, http.StatusConflict},
		{"internal", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newBookingRouter(&stubBookingService{createErr: tc.err})

			payload := `{"salonId":"salon-1","serviceId":"svc-1","date":"2026-09-01","slot":"09:00"}`
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}

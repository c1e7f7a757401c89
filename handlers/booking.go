package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamora/services/booking"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.Service
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	var in booking.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.CreateBooking(c.Request.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrSalonNotFound), errors.Is(err, booking.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create booking", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("id")
	actorID := c.GetString("userID")
	actorRole := c.GetString("role")

	bk, err := h.Service.GetBooking(c.Request.Context(), bookingID, actorID, actorRole)
	if err != nil {
		h.writeLifecycleError(c, logger, bookingID, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ConfirmBookingHandler handles POST /api/bookings/:id/confirm (salon owner).
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("id")
	ownerID := c.GetString("userID")

	bk, err := h.Service.ConfirmBooking(c.Request.Context(), bookingID, ownerID)
	if err != nil {
		h.writeLifecycleError(c, logger, bookingID, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("id")
	actorID := c.GetString("userID")
	actorRole := c.GetString("role")

	bk, err := h.Service.CancelBooking(c.Request.Context(), bookingID, actorID, actorRole)
	if err != nil {
		h.writeLifecycleError(c, logger, bookingID, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListMyBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	bookings, err := h.Service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list user bookings", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListSalonBookingsHandler handles GET /api/salons/:id/bookings (salon owner).
// An optional ?date=yyyy-MM-dd query narrows the listing to one day.
func (h *BookingHandler) ListSalonBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	salonID := c.Param("id")
	ownerID := c.GetString("userID")
	date := c.Query("date")

	bookings, err := h.Service.ListSalonBookings(c.Request.Context(), salonID, ownerID, date)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSalonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to list salon bookings", zap.String("salonId", salonID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) writeLifecycleError(c *gin.Context, logger *zap.Logger, bookingID string, err error) {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Booking operation failed", zap.String("bookingId", bookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking operation failed"})
	}
}

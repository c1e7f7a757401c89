package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamora/services/availability"
)

// AvailabilityHandler serves the bookable-slot lookup.
type AvailabilityHandler struct {
	Service availability.Service
}

// GetAvailabilityHandler handles GET /api/salons/:id/availability?date=yyyy-MM-dd.
func (h *AvailabilityHandler) GetAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	salonID := c.Param("id")
	date := c.Query("date")

	slots, err := h.Service.Resolve(c.Request.Context(), salonID, date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, availability.ErrSalonNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, availability.ErrUnavailable):
			logger.Error("Availability stores unreachable",
				zap.String("salonId", salonID), zap.String("date", date), zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
		default:
			logger.Error("Failed to resolve availability",
				zap.String("salonId", salonID), zap.String("date", date), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve availability"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

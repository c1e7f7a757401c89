package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamora/services/review"
)

// ReviewHandler serves customer review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

// CreateReviewHandler handles POST /api/reviews (customer).
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := c.GetString("userID")

	var in review.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	r, err := h.Service.CreateReview(c.Request.Context(), userID, in)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrNotEligible):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, review.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create review", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		}
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ListSalonReviewsHandler handles GET /api/salons/:id/reviews (public).
func (h *ReviewHandler) ListSalonReviewsHandler(c *gin.Context) {
	logger := getLogger(c)
	salonID := c.Param("id")
	limit := parseInt64Query(c, "limit", 20)
	offset := parseInt64Query(c, "offset", 0)

	reviews, err := h.Service.ListSalonReviews(c.Request.Context(), salonID, limit, offset)
	if err != nil {
		logger.Error("Failed to list reviews", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

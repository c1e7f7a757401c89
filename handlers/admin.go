package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	salonRepo "glamora/database/repository/salon"
	"glamora/services/review"
	"glamora/services/user"
)

// AdminHandler serves the moderation endpoints. Routes using it are guarded
// by the admin middleware chain.
type AdminHandler struct {
	Users   user.UserService
	Reviews review.ReviewService
	Salons  salonRepo.SalonRepository
}

// ListUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	logger := getLogger(c)
	limit := parseInt64Query(c, "limit", 50)
	offset := parseInt64Query(c, "offset", 0)

	users, err := h.Users.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListSalonsHandler handles GET /api/admin/salons. Unlike the public browse
// endpoint this includes unpublished salons.
func (h *AdminHandler) ListSalonsHandler(c *gin.Context) {
	logger := getLogger(c)
	limit := parseInt64Query(c, "limit", 50)
	offset := parseInt64Query(c, "offset", 0)

	salons, err := h.Salons.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list salons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list salons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

// DeleteUserHandler handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Users.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to delete user", zap.String("userId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// DeleteSalonHandler handles DELETE /api/admin/salons/:id. Ownership checks
// do not apply to moderators.
func (h *AdminHandler) DeleteSalonHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Salons.Delete(c.Request.Context(), id); err != nil {
		logger.Error("Failed to delete salon", zap.String("salonId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete salon"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Salon deleted"})
}

// DeleteReviewHandler handles DELETE /api/admin/reviews/:id.
func (h *AdminHandler) DeleteReviewHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Reviews.DeleteReview(c.Request.Context(), id); err != nil {
		if errors.Is(err, review.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to delete review", zap.String("reviewId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

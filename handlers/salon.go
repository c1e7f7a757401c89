package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamora/models"
	"glamora/services/salon"
)

// SalonHandler serves salon profiles, catalogues, schedules and promotions.
type SalonHandler struct {
	Service salon.SalonService
}

// CreateSalonHandler handles POST /api/salons (owner).
func (h *SalonHandler) CreateSalonHandler(c *gin.Context) {
	logger := getLogger(c)
	ownerID := c.GetString("userID")

	var in salon.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	s, err := h.Service.CreateSalon(c.Request.Context(), ownerID, in)
	if err != nil {
		if errors.Is(err, salon.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create salon", zap.String("ownerId", ownerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create salon"})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// GetSalonHandler handles GET /api/salons/:id (public).
func (h *SalonHandler) GetSalonHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	s, err := h.Service.GetSalon(c.Request.Context(), id)
	if err != nil {
		h.writeSalonError(c, logger, id, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// BrowseSalonsHandler handles GET /api/salons?city=&q=&limit=&offset= (public).
func (h *SalonHandler) BrowseSalonsHandler(c *gin.Context) {
	logger := getLogger(c)
	city := c.Query("city")
	query := c.Query("q")
	limit := parseInt64Query(c, "limit", 20)
	offset := parseInt64Query(c, "offset", 0)

	salons, err := h.Service.BrowseSalons(c.Request.Context(), city, query, limit, offset)
	if err != nil {
		logger.Error("Failed to browse salons", zap.String("city", city), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to browse salons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

// ListMySalonsHandler handles GET /api/owner/salons (owner).
func (h *SalonHandler) ListMySalonsHandler(c *gin.Context) {
	logger := getLogger(c)
	ownerID := c.GetString("userID")

	salons, err := h.Service.ListOwnerSalons(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list owner salons", zap.String("ownerId", ownerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list salons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

// UpdateSalonHandler handles PATCH /api/salons/:id (owner).
func (h *SalonHandler) UpdateSalonHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	s, err := h.Service.UpdateSalon(c.Request.Context(), id, ownerID, updates)
	if err != nil {
		h.writeSalonError(c, logger, id, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteSalonHandler handles DELETE /api/salons/:id (owner).
func (h *SalonHandler) DeleteSalonHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")

	if err := h.Service.DeleteSalon(c.Request.Context(), id, ownerID); err != nil {
		h.writeSalonError(c, logger, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Salon deleted"})
}

// UpsertServiceHandler handles PUT /api/salons/:id/services (owner).
func (h *SalonHandler) UpsertServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")

	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	s, err := h.Service.UpsertService(c.Request.Context(), id, ownerID, svc)
	if err != nil {
		h.writeSalonError(c, logger, id, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// RemoveServiceHandler handles DELETE /api/salons/:id/services/:serviceId (owner).
func (h *SalonHandler) RemoveServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")
	serviceID := c.Param("serviceId")

	if err := h.Service.RemoveService(c.Request.Context(), id, ownerID, serviceID); err != nil {
		h.writeSalonError(c, logger, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service removed"})
}

// SetDayScheduleHandler handles PUT /api/salons/:id/schedule/:date (owner).
// The payload replaces the declared slot sequence for the day.
func (h *SalonHandler) SetDayScheduleHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")
	date := c.Param("date")

	var req struct {
		Slots []string `json:"slots"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.SetDaySchedule(c.Request.Context(), id, ownerID, date, req.Slots); err != nil {
		if errors.Is(err, salon.ErrBadSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.writeSalonError(c, logger, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": req.Slots})
}

// ClearDayScheduleHandler handles DELETE /api/salons/:id/schedule/:date (owner).
func (h *SalonHandler) ClearDayScheduleHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")
	date := c.Param("date")

	if err := h.Service.ClearDaySchedule(c.Request.Context(), id, ownerID, date); err != nil {
		h.writeSalonError(c, logger, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule cleared", "date": date})
}

// ListScheduledDatesHandler handles GET /api/salons/:id/schedule (public).
func (h *SalonHandler) ListScheduledDatesHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	dates, err := h.Service.ListScheduledDates(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to list scheduled dates", zap.String("salonId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list scheduled dates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// AddPromotionHandler handles POST /api/salons/:id/promotions (owner).
func (h *SalonHandler) AddPromotionHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")

	var promo models.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	s, err := h.Service.AddPromotion(c.Request.Context(), id, ownerID, promo)
	if err != nil {
		h.writeSalonError(c, logger, id, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// RemovePromotionHandler handles DELETE /api/salons/:id/promotions/:promoId (owner).
func (h *SalonHandler) RemovePromotionHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")
	promoID := c.Param("promoId")

	if err := h.Service.RemovePromotion(c.Request.Context(), id, ownerID, promoID); err != nil {
		h.writeSalonError(c, logger, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promotion removed"})
}

// UploadPhotoHandler handles POST /api/salons/:id/photos (owner, multipart).
func (h *SalonHandler) UploadPhotoHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.Service.AttachPhoto(c.Request.Context(), id, ownerID, tempFilePath)
	if err != nil {
		h.writeSalonError(c, logger, id, err)
		return
	}

	url, err := h.Service.PhotoURL(c.Request.Context(), publicID)
	if err != nil {
		logger.Warn("Failed to build photo URL", zap.String("photoId", publicID), zap.Error(err))
	}
	c.JSON(http.StatusCreated, gin.H{"photoId": publicID, "url": url})
}

func (h *SalonHandler) writeSalonError(c *gin.Context, logger *zap.Logger, salonID string, err error) {
	switch {
	case errors.Is(err, salon.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, salon.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, salon.ErrInvalidInput), errors.Is(err, salon.ErrBadSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Salon operation failed", zap.String("salonId", salonID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "salon operation failed"})
	}
}

func parseInt64Query(c *gin.Context, key string, def int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return def
	}
	return v
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamora/models"
	"glamora/services/intelligence"
	"glamora/services/salon"
)

// IntelligenceHandler serves AI copywriting endpoints for salon owners.
type IntelligenceHandler struct {
	Copywriter intelligence.CopywriterService
	Salons     salon.SalonService
}

// GenerateDescriptionHandler handles POST /api/ai/salons/:id/description.
func (h *IntelligenceHandler) GenerateDescriptionHandler(c *gin.Context) {
	logger := getLogger(c)
	s, ok := h.requireOwnedSalon(c)
	if !ok {
		return
	}

	text, err := h.Copywriter.SalonDescription(c.Request.Context(), s)
	if err != nil {
		logger.Error("Failed to generate salon description", zap.String("salonId", s.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "text generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// GenerateServiceBlurbHandler handles POST /api/ai/salons/:id/services/:serviceId/blurb.
func (h *IntelligenceHandler) GenerateServiceBlurbHandler(c *gin.Context) {
	logger := getLogger(c)
	s, ok := h.requireOwnedSalon(c)
	if !ok {
		return
	}

	svc, found := s.ServiceByID(c.Param("serviceId"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found in salon catalogue"})
		return
	}

	text, err := h.Copywriter.ServiceBlurb(c.Request.Context(), s.Name, svc)
	if err != nil {
		logger.Error("Failed to generate service blurb", zap.String("salonId", s.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "text generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// GeneratePromotionCopyHandler handles POST /api/ai/salons/:id/promotions/:promoId/copy.
func (h *IntelligenceHandler) GeneratePromotionCopyHandler(c *gin.Context) {
	logger := getLogger(c)
	s, ok := h.requireOwnedSalon(c)
	if !ok {
		return
	}

	promoID := c.Param("promoId")
	for i := range s.Promotions {
		if s.Promotions[i].ID == promoID {
			text, err := h.Copywriter.PromotionCopy(c.Request.Context(), s.Name, &s.Promotions[i])
			if err != nil {
				logger.Error("Failed to generate promotion copy", zap.String("salonId", s.ID), zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "text generation failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"text": text})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "promotion not found"})
}

func (h *IntelligenceHandler) requireOwnedSalon(c *gin.Context) (*models.Salon, bool) {
	logger := getLogger(c)
	id := c.Param("id")
	ownerID := c.GetString("userID")

	s, err := h.Salons.GetSalon(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, salon.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return nil, false
		}
		logger.Error("Failed to load salon", zap.String("salonId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load salon"})
		return nil, false
	}
	if s.OwnerID != ownerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "caller does not own this salon"})
		return nil, false
	}
	return s, true
}

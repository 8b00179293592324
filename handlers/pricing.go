package handlers

import (
	"net/http"

	"maidly/models"
	"maidly/services/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler exposes the catalog, the preset gallery and stateless quotes.
type PricingHandler struct {
	ConfiguratorSvc pricing.ConfiguratorService
	Logger          *zap.Logger
}

func NewPricingHandler(svc pricing.ConfiguratorService, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{ConfiguratorSvc: svc, Logger: logger}
}

// GetCatalog handles GET /api/pricing/catalog.
func (h *PricingHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.ConfiguratorSvc.Catalog())
}

// GetPresets handles GET /api/pricing/presets.
func (h *PricingHandler) GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": h.ConfiguratorSvc.PresetOffers()})
}

// Quote handles POST /api/pricing/quote. It prices a selection without
// creating a session, for the configurator's live summary bar.
func (h *PricingHandler) Quote(c *gin.Context) {
	var input struct {
		Selection models.Selection `json:"selection"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	quote, err := h.ConfiguratorSvc.Quote(input.Selection)
	if err != nil {
		h.Logger.Warn("Quote: rejected selection", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, quote)
}

package handlers

import (
	"errors"
	"net/http"

	"maidly/models"
	"maidly/services/pricing"
	"maidly/services/reservation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConfiguratorHandler exposes the stateful configurator session endpoints.
type ConfiguratorHandler struct {
	ConfiguratorSvc pricing.ConfiguratorService
	ReservationSvc  reservation.ReservationService
	Logger          *zap.Logger
}

func NewConfiguratorHandler(cfgSvc pricing.ConfiguratorService, resSvc reservation.ReservationService, logger *zap.Logger) *ConfiguratorHandler {
	return &ConfiguratorHandler{
		ConfiguratorSvc: cfgSvc,
		ReservationSvc:  resSvc,
		Logger:          logger,
	}
}

// InitiateSession handles POST /api/configurator/session.
func (h *ConfiguratorHandler) InitiateSession(c *gin.Context) {
	session, err := h.ConfiguratorSvc.InitiateSession()
	if err != nil {
		h.Logger.Error("InitiateSession: failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create configurator session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession handles GET /api/configurator/session/:sessionID.
func (h *ConfiguratorHandler) GetSession(c *gin.Context) {
	session, err := h.ConfiguratorSvc.GetSession(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "configurator session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession handles PATCH /api/configurator/session/:sessionID. The body
// is a partial selection update; the response carries the recomputed quote.
func (h *ConfiguratorHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var update models.SelectionUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.ConfiguratorSvc.UpdateSession(sessionID, update)
	if err != nil {
		var sessionErr *pricing.SessionError
		if errors.As(err, &sessionErr) && sessionErr.Code == "sessionNotFound" {
			c.JSON(http.StatusNotFound, gin.H{"error": "configurator session not found or expired"})
			return
		}
		h.Logger.Warn("UpdateSession: rejected update", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// CancelSession handles DELETE /api/configurator/session/:sessionID.
func (h *ConfiguratorHandler) CancelSession(c *gin.Context) {
	if err := h.ConfiguratorSvc.CancelSession(c.Param("sessionID")); err != nil {
		h.Logger.Error("CancelSession: failed to delete session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel configurator session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ConfirmReservation handles POST /api/configurator/session/:sessionID/reserve.
// It freezes the session's quote into a reservation and drops the session.
func (h *ConfiguratorHandler) ConfirmReservation(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.ConfiguratorSvc.GetSession(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "configurator session not found or expired"})
		return
	}

	res, err := h.ReservationSvc.CreateFromSession(c.Request.Context(), session, req)
	if err != nil {
		var validationErr *reservation.ValidationError
		var sessionErr *pricing.SessionError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation", "details": validationErr.Error()})
		case errors.As(err, &sessionErr):
			c.JSON(http.StatusConflict, gin.H{"error": "selection incomplete", "details": sessionErr.Message})
		default:
			h.Logger.Error("ConfirmReservation: failed to create reservation",
				zap.String("sessionID", sessionID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reservation"})
		}
		return
	}

	// The session served its purpose; a cleanup failure only shortens its TTL.
	if err := h.ConfiguratorSvc.CancelSession(sessionID); err != nil {
		h.Logger.Warn("ConfirmReservation: failed to clean up session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	c.JSON(http.StatusOK, res)
}

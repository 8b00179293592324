package handlers

import (
	"errors"
	"net/http"
	"strconv"

	reservationRepo "maidly/database/repository/reservation"
	"maidly/models"
	"maidly/services/reservation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the reservation back-office.
type AdminHandler struct {
	ReservationSvc reservation.ReservationService
	Logger         *zap.Logger
}

func NewAdminHandler(resSvc reservation.ReservationService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{ReservationSvc: resSvc, Logger: logger}
}

// ListReservationsHandler handles GET /api/admin/reservations.
func (h *AdminHandler) ListReservationsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "50"))

	filter := reservationRepo.ListFilter{
		Status:   models.ReservationStatus(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	reservations, err := h.ReservationSvc.List(c.Request.Context(), filter)
	if err != nil {
		h.Logger.Error("ListReservations: failed to fetch reservations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reservations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// GetReservationHandler handles GET /api/admin/reservations/:id.
func (h *AdminHandler) GetReservationHandler(c *gin.Context) {
	res, err := h.ReservationSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, reservationRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		h.Logger.Error("GetReservation: failed to fetch reservation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reservation"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateReservationStatusHandler handles PATCH /api/admin/reservations/:id/status.
func (h *AdminHandler) UpdateReservationStatusHandler(c *gin.Context) {
	var input struct {
		Status models.ReservationStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.ReservationSvc.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		var validationErr *reservation.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status", "details": validationErr.Error()})
		case errors.Is(err, reservationRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		default:
			h.Logger.Error("UpdateReservationStatus: failed to update", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reservation"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

package handlers

import (
	"net/http"

	inquiryRepo "maidly/database/repository/inquiry"
	"maidly/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler accepts contact inquiries from the website.
type InquiryHandler struct {
	Repo   inquiryRepo.InquiryRepository
	Logger *zap.Logger
}

func NewInquiryHandler(repo inquiryRepo.InquiryRepository, logger *zap.Logger) *InquiryHandler {
	return &InquiryHandler{Repo: repo, Logger: logger}
}

// CreateInquiry handles POST /api/inquiries.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var inq models.Inquiry
	if err := c.ShouldBindJSON(&inq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), inq)
	if err != nil {
		h.Logger.Error("CreateInquiry: failed to persist inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save inquiry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListInquiries handles GET /api/admin/inquiries.
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.Repo.List(c.Request.Context(), 0)
	if err != nil {
		h.Logger.Error("ListInquiries: failed to fetch inquiries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inquiries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}

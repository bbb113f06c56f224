package refund

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/refunds/queue", h.ListQueue)
	rg.POST("/refunds/:bookingId/process", h.Process)
	rg.POST("/refunds/:bookingId/emergency-override", h.EmergencyOverride)
}

func (h *Handler) ListQueue(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, total, err := h.service.ListQueue(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load refund queue")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"refunds": entries,
		"total":   total,
	})
}

func (h *Handler) Process(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	cancellation, err := h.service.Process(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancellation": cancellation})
}

func (h *Handler) EmergencyOverride(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	cancellation, err := h.service.ApplyEmergencyOverride(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cancellation": cancellation})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or cancellation not found")
	case ErrAlreadyProcessed:
		response.Error(c, http.StatusConflict, "CONFLICT", "Refund already processed")
	case ErrNotCancelled:
		response.Error(c, http.StatusConflict, "CONFLICT", "Booking is not cancelled")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Refund operation failed")
	}
}

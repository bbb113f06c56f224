package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tourbook/internal/domain"
	"tourbook/internal/middleware"
	"tourbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.Get)
	rg.PUT("/settings/cancellation-rules", h.UpdateCancellationRules)
	rg.PUT("/settings/commission-rules", h.UpdateCommissionRules)
	rg.PUT("/settings/permissions", h.UpdatePermissions)
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load settings")
		return
	}
	response.Success(c, http.StatusOK, s)
}

func (h *Handler) UpdateCancellationRules(c *gin.Context) {
	var rules domain.CancellationRuleSet
	if err := c.ShouldBindJSON(&rules); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, _ := middleware.SessionFrom(c)
	s, err := h.service.UpdateCancellationRules(c.Request.Context(), sess.UserID, rules)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save cancellation rules")
		return
	}
	response.Success(c, http.StatusOK, s)
}

func (h *Handler) UpdateCommissionRules(c *gin.Context) {
	var rules domain.CommissionRuleSet
	if err := c.ShouldBindJSON(&rules); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, _ := middleware.SessionFrom(c)
	s, err := h.service.UpdateCommissionRules(c.Request.Context(), sess.UserID, rules)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save commission rules")
		return
	}
	response.Success(c, http.StatusOK, s)
}

func (h *Handler) UpdatePermissions(c *gin.Context) {
	var perms domain.PermissionSet
	if err := c.ShouldBindJSON(&perms); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, _ := middleware.SessionFrom(c)
	s, err := h.service.UpdatePermissions(c.Request.Context(), sess.UserID, perms)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save permissions")
		return
	}
	response.Success(c, http.StatusOK, s)
}

package review

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourbook/internal/domain"
	"tourbook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.List)
	rg.POST("/reviews/:id/approve", h.action(h.service.Approve))
	rg.POST("/reviews/:id/reject", h.action(h.service.Reject))
	rg.POST("/reviews/:id/flag", h.action(h.service.Flag))
	rg.POST("/reviews/:id/unflag", h.action(h.service.Unflag))
	rg.POST("/reviews/:id/hide", h.action(h.service.Hide))
	rg.POST("/reviews/:id/show", h.action(h.service.Show))
}

func (h *Handler) List(c *gin.Context) {
	var filter ListFilter

	if v := c.Query("package_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid package_id")
			return
		}
		filter.PackageID = &id
	}
	filter.Status = c.Query("status")
	if v := c.Query("flagged"); v != "" {
		b := v == "true"
		filter.Flagged = &b
	}
	if v := c.Query("hidden"); v != "" {
		b := v == "true"
		filter.Hidden = &b
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reviews, total, err := h.service.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
	})
}

// action wraps the one-id moderation operations that only differ in the
// service method they call.
func (h *Handler) action(fn func(ctx context.Context, id int64) (*domain.Review, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review id")
			return
		}

		rv, err := fn(c.Request.Context(), id)
		if err != nil {
			if err == ErrNotFound {
				response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update review")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"review": rv})
	}
}

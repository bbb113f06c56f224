package announcement

import (
	"time"

	"tourbook/internal/domain"
)

type CreateAnnouncementRequest struct {
	Title          string                      `json:"title" binding:"required"`
	Message        string                      `json:"message" binding:"required"`
	Type           domain.AnnouncementType     `json:"type" binding:"required"`
	Priority       domain.AnnouncementPriority `json:"priority" binding:"required"`
	TargetAudience []domain.Audience           `json:"target_audience" binding:"required"`
	StartDate      time.Time                   `json:"start_date" binding:"required"`
	EndDate        time.Time                   `json:"end_date" binding:"required"`
	IsActive       *bool                       `json:"is_active"`
}

type UpdateAnnouncementRequest struct {
	Title          *string                      `json:"title"`
	Message        *string                      `json:"message"`
	Type           *domain.AnnouncementType     `json:"type"`
	Priority       *domain.AnnouncementPriority `json:"priority"`
	TargetAudience []domain.Audience            `json:"target_audience"`
	StartDate      *time.Time                   `json:"start_date"`
	EndDate        *time.Time                   `json:"end_date"`
	IsActive       *bool                        `json:"is_active"`
}

type ListAnnouncementsQuery struct {
	Active   *bool
	Type     string
	Priority string
	Page     int
	Limit    int
}

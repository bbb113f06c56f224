package catalog

import (
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/policy"
)

type CreatePackageRequest struct {
	Title        string             `json:"title" binding:"required"`
	Description  string             `json:"description"`
	Destination  string             `json:"destination" binding:"required"`
	DurationDays int                `json:"duration_days" binding:"required,gte=1"`
	BasePrice    float64            `json:"base_price" binding:"gte=0"`
	Type         domain.PackageType `json:"type" binding:"required"`
}

type UpdatePackageRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Destination  *string             `json:"destination"`
	DurationDays *int                `json:"duration_days"`
	BasePrice    *float64            `json:"base_price"`
	Type         *domain.PackageType `json:"type"`
}

type CreateDepartureRequest struct {
	StartDate time.Time     `json:"start_date" binding:"required"`
	EndDate   time.Time     `json:"end_date" binding:"required"`
	Capacity  int           `json:"capacity" binding:"required,gte=1"`
	Season    domain.Season `json:"season"`
}

type ListPackagesQuery struct {
	OperatorID *int64
	Status     string
	Query      string
	Page       int
	Limit      int
}

type PricePreviewRequest struct {
	DepartureID int64 `json:"departure_id" binding:"required"`
	PartySize   int   `json:"party_size" binding:"required,gte=1"`
}

type PricePreviewResponse struct {
	PerPerson policy.PriceBreakdown `json:"per_person"`
	PartySize int                   `json:"party_size"`
	Total     float64               `json:"total"`
}

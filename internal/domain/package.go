package domain

import "time"

type PackageType string

const (
	PackageGroup   PackageType = "GROUP"
	PackagePrivate PackageType = "PRIVATE"
)

type PackageStatus string

const (
	PackageDraft     PackageStatus = "DRAFT"
	PackagePublished PackageStatus = "PUBLISHED"
	PackageArchived  PackageStatus = "ARCHIVED"
)

type Season string

const (
	SeasonPeak   Season = "PEAK"
	SeasonOff    Season = "OFF"
	SeasonNormal Season = "NORMAL"
)

type TourPackage struct {
	ID           int64         `json:"id"`
	OperatorID   int64         `json:"operator_id"`
	Title        string        `json:"title" validate:"required"`
	Description  string        `json:"description,omitempty" gorm:"type:text"`
	Destination  string        `json:"destination"`
	DurationDays int           `json:"duration_days" validate:"gte=1"`
	BasePrice    float64       `json:"base_price" validate:"gte=0"`
	Type         PackageType   `json:"type"`
	Status       PackageStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	Departures []Departure `json:"departures,omitempty" gorm:"foreignKey:PackageID"`
}

// Departure is a scheduled instance of a GROUP package with fixed seat capacity.
type Departure struct {
	ID          int64      `json:"id"`
	PackageID   int64      `json:"package_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Capacity    int        `json:"capacity"`
	SeatsSold   int        `json:"seats_sold"`
	Season      Season     `json:"season"`
	Cancelled   bool       `json:"cancelled"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

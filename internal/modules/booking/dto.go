package booking

import (
	"time"

	"tourbook/internal/domain"
)

type CancelBookingRequest struct {
	Reason    string `json:"reason" binding:"required"`
	Emergency bool   `json:"emergency"`
}

type ListBookingsQuery struct {
	Status      string `form:"status"`
	CustomerID  *int64 `form:"customer_id"`
	PackageID   *int64 `form:"package_id"`
	DepartureID *int64 `form:"departure_id"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}

// BookingSummary is the list row the admin table renders: the stored fields
// plus derived payment totals.
type BookingSummary struct {
	domain.Booking
	TotalPaid float64 `json:"total_paid"`
}

type BookingStatsQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// BookingStats is the dashboard counter: bookings created inside the window.
type BookingStats struct {
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Created int64     `json:"created"`
}

type CancelDepartureResult struct {
	DepartureID       int64   `json:"departure_id"`
	BookingsCancelled int     `json:"bookings_cancelled"`
	TotalRefunded     float64 `json:"total_refunded"`
}

package booking

import (
	"context"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

// BookingRepository defines the storage operations the service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]domain.Booking, int64, error)
	ListByDeparture(ctx context.Context, departureID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	CreateCancellation(ctx context.Context, c *domain.Cancellation) error
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// DepartureRepository resolves the departure a booking belongs to.
type DepartureRepository interface {
	GetDeparture(ctx context.Context, id int64) (*domain.Departure, error)
	UpdateDeparture(ctx context.Context, d *domain.Departure) error
	MarkDepartureCancelled(ctx context.Context, id int64, at time.Time) error
}

// SettingsReader supplies the rule sets in force at cancellation time.
type SettingsReader interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
}

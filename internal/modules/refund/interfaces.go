package refund

import (
	"context"

	"tourbook/internal/domain"
)

// BookingRepository is the slice of booking storage the queue needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListPendingRefunds(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	UpdateCancellation(ctx context.Context, c *domain.Cancellation) error
}

// SettingsReader supplies the rule set for emergency recomputation.
type SettingsReader interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
}

// Executor performs the actual payment-gateway reversal. The policy code
// never calls it; only the queue does, once per approved refund. The
// idempotency key lets the gateway dedupe a retried request.
type Executor interface {
	ExecuteRefund(ctx context.Context, bookingID int64, amount float64, idempotencyKey string) error
}

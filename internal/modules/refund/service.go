package refund

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tourbook/internal/domain"
	"tourbook/internal/policy"
)

type Service struct {
	bookings BookingRepository
	settings SettingsReader
	executor Executor

	now func() time.Time
}

func NewService(bookings BookingRepository, settings SettingsReader, executor Executor) *Service {
	return &Service{
		bookings: bookings,
		settings: settings,
		executor: executor,
		now:      time.Now,
	}
}

// QueueEntry is one row of the admin refund queue.
type QueueEntry struct {
	Booking      domain.Booking      `json:"booking"`
	Cancellation domain.Cancellation `json:"cancellation"`
	TotalPaid    float64             `json:"total_paid"`
}

func (s *Service) ListQueue(ctx context.Context, page, limit int) ([]QueueEntry, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, total, err := s.bookings.ListPendingRefunds(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]QueueEntry, 0, len(rows))
	for _, b := range rows {
		if b.Cancellation == nil {
			continue
		}
		out = append(out, QueueEntry{
			Booking:      b,
			Cancellation: *b.Cancellation,
			TotalPaid:    b.TotalPaid(),
		})
	}
	return out, total, nil
}

// Process executes one pending refund and transitions the booking to
// REFUNDED. The amount was fixed at cancellation time; it is re-clamped to
// the paid total as a last defence before money moves.
func (s *Service) Process(ctx context.Context, bookingID int64) (*domain.Cancellation, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil || b.Cancellation == nil {
		return nil, ErrNotFound
	}
	if b.Status != domain.BookingCancelled {
		return nil, ErrNotCancelled
	}
	c := b.Cancellation
	if c.RefundProcessed {
		return nil, ErrAlreadyProcessed
	}

	amount := c.RefundAmount
	if paid := b.TotalPaid(); amount > paid {
		amount = paid
	}

	if s.executor != nil && amount > 0 {
		key := uuid.NewString()
		if err := s.executor.ExecuteRefund(ctx, bookingID, amount, key); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrExecutorFailed, err.Error())
		}
	}

	now := s.now()
	c.RefundAmount = amount
	c.RefundProcessed = true
	c.ProcessedAt = &now
	if err := s.bookings.UpdateCancellation(ctx, c); err != nil {
		return nil, err
	}
	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingRefunded); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyEmergencyOverride recomputes a pending refund at the emergency
// percentage. Only unprocessed refunds can be overridden.
func (s *Service) ApplyEmergencyOverride(ctx context.Context, bookingID int64) (*domain.Cancellation, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil || b.Cancellation == nil {
		return nil, ErrNotFound
	}
	c := b.Cancellation
	if c.RefundProcessed {
		return nil, ErrAlreadyProcessed
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	days := 0
	if b.Departure != nil {
		days = int(b.Departure.StartDate.Sub(c.CancelledAt).Hours() / 24)
	}

	res := policy.ResolveRefund(b.TotalPaid(), days, c.CancelledBy, true, cfg.CancellationRules)

	c.RefundAmount = res.NetAmount
	c.RefundTier = res.TierDescription
	if err := s.bookings.UpdateCancellation(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

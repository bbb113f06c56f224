package booking

import (
	"context"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/policy"
	"tourbook/internal/repository"
)

type Service struct {
	bookings   BookingRepository
	departures DepartureRepository
	settings   SettingsReader

	// now is swappable for tests.
	now func() time.Time
}

func NewService(bookings BookingRepository, departures DepartureRepository, settings SettingsReader) *Service {
	return &Service{
		bookings:   bookings,
		departures: departures,
		settings:   settings,
		now:        time.Now,
	}
}

func (s *Service) List(ctx context.Context, q ListBookingsQuery) ([]BookingSummary, int64, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	filter := repository.BookingFilter{
		Status:      q.Status,
		CustomerID:  q.CustomerID,
		PackageID:   q.PackageID,
		DepartureID: q.DepartureID,
	}

	rows, total, err := s.bookings.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]BookingSummary, 0, len(rows))
	for _, b := range rows {
		out = append(out, BookingSummary{Booking: b, TotalPaid: b.TotalPaid()})
	}
	return out, total, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*BookingSummary, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return &BookingSummary{Booking: *b, TotalPaid: b.TotalPaid()}, nil
}

// Stats counts bookings created inside the window; both bounds optional,
// defaulting to the last thirty days.
func (s *Service) Stats(ctx context.Context, from, to time.Time) (*BookingStats, error) {
	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	if !to.After(from) {
		return nil, ErrInvalidPeriod
	}

	created, err := s.bookings.CountCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &BookingStats{From: from, To: to, Created: created}, nil
}

// Cancel cancels one booking and records the refund owed under the current
// rule set. The refund itself is executed later through the refund queue.
func (s *Service) Cancel(
	ctx context.Context,
	bookingID int64,
	initiator domain.CancellationInitiator,
	reason string,
	emergency bool,
) (*domain.Cancellation, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if b.Status == domain.BookingCancelled || b.Status == domain.BookingRefunded {
		return nil, ErrInvalidStatusTransition
	}

	days, err := s.daysBeforeStart(ctx, b)
	if err != nil {
		return nil, err
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	res := policy.ResolveRefund(b.TotalPaid(), days, initiator, emergency, cfg.CancellationRules)

	cancellation := &domain.Cancellation{
		BookingID:    b.ID,
		Reason:       reason,
		CancelledAt:  s.now(),
		CancelledBy:  initiator,
		RefundAmount: res.NetAmount,
		RefundTier:   res.TierDescription,
	}
	if err := s.bookings.CreateCancellation(ctx, cancellation); err != nil {
		return nil, err
	}
	if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingCancelled); err != nil {
		return nil, err
	}

	if b.Departure != nil && b.Departure.SeatsSold >= b.PartySize {
		d := *b.Departure
		d.SeatsSold -= b.PartySize
		if err := s.departures.UpdateDeparture(ctx, &d); err != nil {
			return nil, err
		}
	}

	return cancellation, nil
}

// CancelDeparture is the operator path: the whole group departure is called
// off and every active booking on it is cancelled at the operator tariff.
func (s *Service) CancelDeparture(ctx context.Context, departureID int64, reason string) (*CancelDepartureResult, error) {
	d, err := s.departures.GetDeparture(ctx, departureID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}
	if d.Cancelled {
		return nil, ErrInvalidStatusTransition
	}

	bookings, err := s.bookings.ListByDeparture(ctx, departureID)
	if err != nil {
		return nil, err
	}

	result := &CancelDepartureResult{DepartureID: departureID}
	for _, b := range bookings {
		c, err := s.Cancel(ctx, b.ID, domain.InitiatorOperator, reason, false)
		if err != nil {
			return nil, err
		}
		result.BookingsCancelled++
		result.TotalRefunded += c.RefundAmount
	}

	// Each Cancel above released the seats of its booking; writing the row
	// fetched before the loop would put them back. Touch only the
	// cancellation columns.
	if err := s.departures.MarkDepartureCancelled(ctx, departureID, s.now()); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Service) daysBeforeStart(ctx context.Context, b *domain.Booking) (int, error) {
	d := b.Departure
	if d == nil {
		var err error
		d, err = s.departures.GetDeparture(ctx, b.DepartureID)
		if err != nil {
			return 0, err
		}
		if d == nil {
			return 0, ErrNotFound
		}
	}
	return int(d.StartDate.Sub(s.now()).Hours() / 24), nil
}

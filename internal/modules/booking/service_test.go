package booking

import (
	"context"
	"testing"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, filter repository.BookingFilter, limit, offset int) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) ListByDeparture(ctx context.Context, departureID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, departureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CreateCancellation(ctx context.Context, c *domain.Cancellation) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 777 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockDepartureRepository struct {
	mock.Mock
}

func (m *MockDepartureRepository) GetDeparture(ctx context.Context, id int64) (*domain.Departure, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Departure), args.Error(1)
}

func (m *MockDepartureRepository) UpdateDeparture(ctx context.Context, d *domain.Departure) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDepartureRepository) MarkDepartureCancelled(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

type MockSettingsReader struct {
	mock.Mock
}

func (m *MockSettingsReader) Get(ctx context.Context) (*domain.SystemSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemSettings), args.Error(1)
}

func defaultSettings() *domain.SystemSettings {
	return &domain.SystemSettings{
		CancellationRules: domain.DefaultCancellationRules(),
		CommissionRules:   domain.DefaultCommissionRules(),
		Permissions:       domain.DefaultPermissions(),
	}
}

func paidBooking(id int64, departure *domain.Departure, amount float64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		DepartureID: departure.ID,
		CustomerID:  55,
		PartySize:   2,
		TotalAmount: amount,
		Status:      domain.BookingConfirmed,
		Payments: []domain.Payment{
			{BookingID: id, Amount: amount, Status: domain.PaymentSuccess},
		},
		Departure: departure,
	}
}

func TestService_Cancel_CustomerTenDaysOut(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	departure := &domain.Departure{ID: 3, StartDate: now.Add(10 * 24 * time.Hour)}

	bookings := new(MockBookingRepository)
	departures := new(MockDepartureRepository)
	settings := new(MockSettingsReader)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(paidBooking(1, departure, 1000), nil)
	settings.On("Get", mock.Anything).Return(defaultSettings(), nil)
	bookings.On("CreateCancellation", mock.Anything, mock.Anything).Return(nil)
	bookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingCancelled).Return(nil)

	service := NewService(bookings, departures, settings)
	service.now = func() time.Time { return now }

	c, err := service.Cancel(context.Background(), 1, domain.InitiatorCustomer, "change of plans", false)

	assert.NoError(t, err)
	// 10 days out matches the 7-day tier: 50% of 1000, minus 5% fee.
	assert.Equal(t, 475.0, c.RefundAmount)
	assert.Equal(t, domain.InitiatorCustomer, c.CancelledBy)
	assert.False(t, c.RefundProcessed)
	bookings.AssertExpectations(t)
}

func TestService_Cancel_FailedPaymentsDoNotCount(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	departure := &domain.Departure{ID: 3, StartDate: now.Add(45 * 24 * time.Hour)}

	b := paidBooking(2, departure, 1000)
	b.Payments = append(b.Payments, domain.Payment{BookingID: 2, Amount: 500, Status: domain.PaymentFailed})

	bookings := new(MockBookingRepository)
	departures := new(MockDepartureRepository)
	settings := new(MockSettingsReader)

	bookings.On("GetByID", mock.Anything, int64(2)).Return(b, nil)
	settings.On("Get", mock.Anything).Return(defaultSettings(), nil)
	bookings.On("CreateCancellation", mock.Anything, mock.Anything).Return(nil)
	bookings.On("UpdateStatus", mock.Anything, int64(2), domain.BookingCancelled).Return(nil)

	service := NewService(bookings, departures, settings)
	service.now = func() time.Time { return now }

	c, err := service.Cancel(context.Background(), 2, domain.InitiatorCustomer, "reason", false)

	assert.NoError(t, err)
	// Refund base is the 1000 actually collected, not 1500: 100% minus fee.
	assert.Equal(t, 950.0, c.RefundAmount)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	departure := &domain.Departure{ID: 3, StartDate: now.Add(10 * 24 * time.Hour)}

	b := paidBooking(4, departure, 1000)
	b.Status = domain.BookingCancelled

	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(4)).Return(b, nil)

	service := NewService(bookings, new(MockDepartureRepository), new(MockSettingsReader))
	service.now = func() time.Time { return now }

	_, err := service.Cancel(context.Background(), 4, domain.InitiatorCustomer, "reason", false)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_Cancel_NotFound(t *testing.T) {
	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	service := NewService(bookings, new(MockDepartureRepository), new(MockSettingsReader))

	_, err := service.Cancel(context.Background(), 99, domain.InitiatorCustomer, "reason", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Cancel_EmergencyOverride(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	// One day before departure, which would normally be the 0% tier.
	departure := &domain.Departure{ID: 3, StartDate: now.Add(24 * time.Hour)}

	bookings := new(MockBookingRepository)
	departures := new(MockDepartureRepository)
	settings := new(MockSettingsReader)

	bookings.On("GetByID", mock.Anything, int64(5)).Return(paidBooking(5, departure, 1000), nil)
	settings.On("Get", mock.Anything).Return(defaultSettings(), nil)
	bookings.On("CreateCancellation", mock.Anything, mock.Anything).Return(nil)
	bookings.On("UpdateStatus", mock.Anything, int64(5), domain.BookingCancelled).Return(nil)

	service := NewService(bookings, departures, settings)
	service.now = func() time.Time { return now }

	c, err := service.Cancel(context.Background(), 5, domain.InitiatorCustomer, "medical emergency", true)

	assert.NoError(t, err)
	assert.Equal(t, 950.0, c.RefundAmount)
}

func TestService_CancelDeparture_RefundsAllActiveBookings(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	departure := &domain.Departure{ID: 7, StartDate: now.Add(2 * 24 * time.Hour), SeatsSold: 4}

	b1 := paidBooking(10, departure, 1000)
	b2 := paidBooking(11, departure, 500)

	bookings := new(MockBookingRepository)
	departures := new(MockDepartureRepository)
	settings := new(MockSettingsReader)

	departures.On("GetDeparture", mock.Anything, int64(7)).Return(departure, nil)
	bookings.On("ListByDeparture", mock.Anything, int64(7)).Return([]domain.Booking{*b1, *b2}, nil)
	bookings.On("GetByID", mock.Anything, int64(10)).Return(b1, nil)
	bookings.On("GetByID", mock.Anything, int64(11)).Return(b2, nil)
	settings.On("Get", mock.Anything).Return(defaultSettings(), nil)
	bookings.On("CreateCancellation", mock.Anything, mock.Anything).Return(nil)
	bookings.On("UpdateStatus", mock.Anything, mock.Anything, domain.BookingCancelled).Return(nil)
	departures.On("UpdateDeparture", mock.Anything, mock.Anything).Return(nil)
	departures.On("MarkDepartureCancelled", mock.Anything, int64(7), now).Return(nil)

	service := NewService(bookings, departures, settings)
	service.now = func() time.Time { return now }

	result, err := service.CancelDeparture(context.Background(), 7, "guide unavailable")

	assert.NoError(t, err)
	assert.Equal(t, 2, result.BookingsCancelled)
	// Operator fault: full refunds even two days out, fee waived.
	assert.Equal(t, 1500.0, result.TotalRefunded)
	departures.AssertExpectations(t)
}

func TestService_CancelDeparture_KeepsReleasedSeats(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(2 * 24 * time.Hour)

	// Each booking carries the departure row as the store would return it at
	// that point: four seats sold before the first release, two before the
	// second.
	b1 := paidBooking(10, &domain.Departure{ID: 7, StartDate: start, SeatsSold: 4}, 1000)
	b2 := paidBooking(11, &domain.Departure{ID: 7, StartDate: start, SeatsSold: 2}, 500)

	bookings := new(MockBookingRepository)
	departures := new(MockDepartureRepository)
	settings := new(MockSettingsReader)

	departures.On("GetDeparture", mock.Anything, int64(7)).
		Return(&domain.Departure{ID: 7, StartDate: start, SeatsSold: 4}, nil)
	bookings.On("ListByDeparture", mock.Anything, int64(7)).Return([]domain.Booking{*b1, *b2}, nil)
	bookings.On("GetByID", mock.Anything, int64(10)).Return(b1, nil)
	bookings.On("GetByID", mock.Anything, int64(11)).Return(b2, nil)
	settings.On("Get", mock.Anything).Return(defaultSettings(), nil)
	bookings.On("CreateCancellation", mock.Anything, mock.Anything).Return(nil)
	bookings.On("UpdateStatus", mock.Anything, mock.Anything, domain.BookingCancelled).Return(nil)

	var seatWrites []int
	departures.On("UpdateDeparture", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			seatWrites = append(seatWrites, args.Get(1).(*domain.Departure).SeatsSold)
		}).
		Return(nil)
	departures.On("MarkDepartureCancelled", mock.Anything, int64(7), now).Return(nil)

	service := NewService(bookings, departures, settings)
	service.now = func() time.Time { return now }

	_, err := service.CancelDeparture(context.Background(), 7, "guide unavailable")

	assert.NoError(t, err)
	// Two releases of two seats each, and no later write putting them back.
	assert.Equal(t, []int{2, 0}, seatWrites)
	departures.AssertExpectations(t)
}

func TestService_Stats_DefaultsToLastThirtyDays(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	bookings := new(MockBookingRepository)
	bookings.On("CountCreatedBetween", mock.Anything, now.AddDate(0, 0, -30), now).
		Return(int64(7), nil)

	service := NewService(bookings, new(MockDepartureRepository), new(MockSettingsReader))
	service.now = func() time.Time { return now }

	stats, err := service.Stats(context.Background(), time.Time{}, time.Time{})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), stats.Created)
	assert.Equal(t, now, stats.To)
	bookings.AssertExpectations(t)
}

func TestService_Stats_RejectsInvertedPeriod(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	service := NewService(new(MockBookingRepository), new(MockDepartureRepository), new(MockSettingsReader))
	service.now = func() time.Time { return now }

	_, err := service.Stats(context.Background(), now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestService_List_ComputesTotalPaid(t *testing.T) {
	bookings := new(MockBookingRepository)
	departures := new(MockDepartureRepository)
	settings := new(MockSettingsReader)

	rows := []domain.Booking{
		{
			ID:     1,
			Status: domain.BookingConfirmed,
			Payments: []domain.Payment{
				{Amount: 300, Status: domain.PaymentSuccess},
				{Amount: 200, Status: domain.PaymentConfirmed},
				{Amount: 999, Status: domain.PaymentFailed},
			},
		},
	}
	bookings.On("List", mock.Anything, mock.Anything, 20, 0).Return(rows, int64(1), nil)

	service := NewService(bookings, departures, settings)
	out, total, err := service.List(context.Background(), ListBookingsQuery{})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, 500.0, out[0].TotalPaid)
}

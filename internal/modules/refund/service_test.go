package refund

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourbook/internal/domain"

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

func (m *MockBookingRepository) ListPendingRefunds(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateCancellation(ctx context.Context, c *domain.Cancellation) error {
	args := m.Called(ctx, c)
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

type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) ExecuteRefund(ctx context.Context, bookingID int64, amount float64, idempotencyKey string) error {
	args := m.Called(ctx, bookingID, amount, idempotencyKey)
	return args.Error(0)
}

func cancelledBooking(id int64, paid, refund float64) *domain.Booking {
	return &domain.Booking{
		ID:     id,
		Status: domain.BookingCancelled,
		Payments: []domain.Payment{
			{BookingID: id, Amount: paid, Status: domain.PaymentSuccess},
		},
		Cancellation: &domain.Cancellation{
			ID:           1,
			BookingID:    id,
			CancelledBy:  domain.InitiatorCustomer,
			CancelledAt:  time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
			RefundAmount: refund,
			RefundTier:   "50% refund",
		},
	}
}

func TestService_Process_ExecutesAndMarksRefunded(t *testing.T) {
	bookings := new(MockBookingRepository)
	executor := new(MockExecutor)

	bookings.On("GetByID", mock.Anything, int64(1)).Return(cancelledBooking(1, 1000, 475), nil)
	executor.On("ExecuteRefund", mock.Anything, int64(1), 475.0, mock.AnythingOfType("string")).Return(nil)
	bookings.On("UpdateCancellation", mock.Anything, mock.Anything).Return(nil)
	bookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingRefunded).Return(nil)

	service := NewService(bookings, new(MockSettingsReader), executor)
	c, err := service.Process(context.Background(), 1)

	assert.NoError(t, err)
	assert.True(t, c.RefundProcessed)
	assert.NotNil(t, c.ProcessedAt)
	executor.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestService_Process_ClampsToPaidTotal(t *testing.T) {
	bookings := new(MockBookingRepository)
	executor := new(MockExecutor)

	// A stale cancellation record claims more than was ever collected.
	bookings.On("GetByID", mock.Anything, int64(2)).Return(cancelledBooking(2, 300, 475), nil)
	executor.On("ExecuteRefund", mock.Anything, int64(2), 300.0, mock.AnythingOfType("string")).Return(nil)
	bookings.On("UpdateCancellation", mock.Anything, mock.Anything).Return(nil)
	bookings.On("UpdateStatus", mock.Anything, int64(2), domain.BookingRefunded).Return(nil)

	service := NewService(bookings, new(MockSettingsReader), executor)
	c, err := service.Process(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, 300.0, c.RefundAmount)
}

func TestService_Process_AlreadyProcessed(t *testing.T) {
	b := cancelledBooking(3, 1000, 475)
	b.Cancellation.RefundProcessed = true

	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(3)).Return(b, nil)

	service := NewService(bookings, new(MockSettingsReader), new(MockExecutor))
	_, err := service.Process(context.Background(), 3)

	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestService_Process_ExecutorFailureLeavesQueueEntry(t *testing.T) {
	bookings := new(MockBookingRepository)
	executor := new(MockExecutor)

	bookings.On("GetByID", mock.Anything, int64(4)).Return(cancelledBooking(4, 1000, 475), nil)
	executor.On("ExecuteRefund", mock.Anything, int64(4), 475.0, mock.AnythingOfType("string")).
		Return(errors.New("gateway timeout"))

	service := NewService(bookings, new(MockSettingsReader), executor)
	_, err := service.Process(context.Background(), 4)

	assert.ErrorIs(t, err, ErrExecutorFailed)
	// The cancellation stays unprocessed so the admin can retry.
	bookings.AssertNotCalled(t, "UpdateCancellation", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Process_NotCancelled(t *testing.T) {
	b := cancelledBooking(5, 1000, 475)
	b.Status = domain.BookingConfirmed

	bookings := new(MockBookingRepository)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)

	service := NewService(bookings, new(MockSettingsReader), new(MockExecutor))
	_, err := service.Process(context.Background(), 5)

	assert.ErrorIs(t, err, ErrNotCancelled)
}

func TestService_ApplyEmergencyOverride_Recomputes(t *testing.T) {
	b := cancelledBooking(6, 1000, 0)
	b.Cancellation.RefundTier = "no refund"
	// Cancelled one day before departure.
	start := b.Cancellation.CancelledAt.Add(24 * time.Hour)
	b.Departure = &domain.Departure{ID: 9, StartDate: start}

	bookings := new(MockBookingRepository)
	settings := new(MockSettingsReader)

	bookings.On("GetByID", mock.Anything, int64(6)).Return(b, nil)
	settings.On("Get", mock.Anything).Return(&domain.SystemSettings{
		CancellationRules: domain.DefaultCancellationRules(),
	}, nil)
	bookings.On("UpdateCancellation", mock.Anything, mock.Anything).Return(nil)

	service := NewService(bookings, settings, new(MockExecutor))
	c, err := service.ApplyEmergencyOverride(context.Background(), 6)

	assert.NoError(t, err)
	// Emergency percentage 100 minus the 5% fee.
	assert.Equal(t, 950.0, c.RefundAmount)
	assert.Equal(t, "emergency refund override", c.RefundTier)
}

func TestService_ListQueue_SkipsRowsWithoutCancellation(t *testing.T) {
	bookings := new(MockBookingRepository)
	rows := []domain.Booking{
		*cancelledBooking(1, 1000, 475),
		{ID: 2, Status: domain.BookingCancelled}, // no cancellation loaded
	}
	bookings.On("ListPendingRefunds", mock.Anything, 20, 0).Return(rows, int64(2), nil)

	service := NewService(bookings, new(MockSettingsReader), new(MockExecutor))
	entries, total, err := service.ListQueue(context.Background(), 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1000.0, entries[0].TotalPaid)
}

package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Payments").
		Preload("Cancellation").
		Preload("Departure").
		First(&b, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &b, nil
}

type BookingFilter struct {
	Status      string
	CustomerID  *int64
	PackageID   *int64
	DepartureID *int64
}

func (r *BookingRepository) List(ctx context.Context, filter BookingFilter, limit, offset int) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.PackageID != nil {
		q = q.Where("package_id = ?", *filter.PackageID)
	}
	if filter.DepartureID != nil {
		q = q.Where("departure_id = ?", *filter.DepartureID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []domain.Booking
	if err := q.
		Preload("Payments").
		Preload("Cancellation").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *BookingRepository) ListByDeparture(ctx context.Context, departureID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Payments").
		Where("departure_id = ? AND status IN ?", departureID,
			[]string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Update("status", string(status)).Error
}

func (r *BookingRepository) CreateCancellation(ctx context.Context, c *domain.Cancellation) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *BookingRepository) UpdateCancellation(ctx context.Context, c *domain.Cancellation) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// ListPendingRefunds returns cancelled bookings whose refund has not been
// executed yet, oldest cancellation first.
func (r *BookingRepository) ListPendingRefunds(ctx context.Context, limit, offset int) ([]domain.Booking, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Joins("JOIN cancellations c ON c.booking_id = bookings.id").
		Where("bookings.status = ? AND c.refund_processed = ? AND c.refund_amount > 0",
			string(domain.BookingCancelled), false)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []domain.Booking
	if err := base.
		Preload("Payments").
		Preload("Cancellation").
		Order("c.cancelled_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *BookingRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&cnt).Error
	return cnt, err
}

package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) Create(ctx context.Context, p *domain.TourPackage) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PackageRepository) GetByID(ctx context.Context, id int64) (*domain.TourPackage, error) {
	var p domain.TourPackage
	tx := r.db.WithContext(ctx).Preload("Departures").First(&p, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PackageRepository) Update(ctx context.Context, p *domain.TourPackage) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PackageRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.TourPackage{}, id).Error
}

type PackageFilter struct {
	OperatorID *int64
	Status     string
	Query      string
}

func (r *PackageRepository) List(ctx context.Context, filter PackageFilter, limit, offset int) ([]domain.TourPackage, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.TourPackage{})

	if filter.OperatorID != nil {
		q = q.Where("operator_id = ?", *filter.OperatorID)
	}
	if strings.TrimSpace(filter.Status) != "" {
		q = q.Where("status = ?", strings.TrimSpace(filter.Status))
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		sv := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(destination) LIKE ?", sv, sv)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var pkgs []domain.TourPackage
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&pkgs).Error; err != nil {
		return nil, 0, err
	}
	return pkgs, total, nil
}

func (r *PackageRepository) CreateDeparture(ctx context.Context, d *domain.Departure) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *PackageRepository) GetDeparture(ctx context.Context, id int64) (*domain.Departure, error) {
	var d domain.Departure
	tx := r.db.WithContext(ctx).First(&d, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &d, nil
}

func (r *PackageRepository) UpdateDeparture(ctx context.Context, d *domain.Departure) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// MarkDepartureCancelled flips the cancellation columns without rewriting the
// rest of the row, so a stale in-memory copy cannot clobber seats_sold.
func (r *PackageRepository) MarkDepartureCancelled(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Departure{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"cancelled":    true,
			"cancelled_at": at,
		}).Error
}

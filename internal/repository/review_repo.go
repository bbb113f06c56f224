package repository

import (
	"context"
	"errors"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	tx := r.db.WithContext(ctx).First(&rv, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &rv, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

type ReviewFilter struct {
	PackageID *int64
	Status    string
	Flagged   *bool
	Hidden    *bool
}

func (r *ReviewRepository) List(ctx context.Context, filter ReviewFilter, limit, offset int) ([]domain.Review, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Review{})

	if filter.PackageID != nil {
		q = q.Where("package_id = ?", *filter.PackageID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Flagged != nil {
		q = q.Where("is_flagged = ?", *filter.Flagged)
	}
	if filter.Hidden != nil {
		q = q.Where("is_hidden = ?", *filter.Hidden)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []domain.Review
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*domain.Announcement, error) {
	var a domain.Announcement
	tx := r.db.WithContext(ctx).First(&a, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &a, nil
}

func (r *AnnouncementRepository) Update(ctx context.Context, a *domain.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Announcement{}, id).Error
}

type AnnouncementFilter struct {
	Active   *bool
	Type     string
	Priority string
}

func (r *AnnouncementRepository) List(ctx context.Context, filter AnnouncementFilter, limit, offset int) ([]domain.Announcement, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Announcement{})

	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var anns []domain.Announcement
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&anns).Error; err != nil {
		return nil, 0, err
	}
	return anns, total, nil
}

// ListActive returns announcements whose window covers now. Audience
// filtering happens in the service because the list is small and the
// target_audience column is serialized JSON.
func (r *AnnouncementRepository) ListActive(ctx context.Context, now time.Time) ([]domain.Announcement, error) {
	var anns []domain.Announcement
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("created_at DESC").
		Find(&anns).Error
	return anns, err
}

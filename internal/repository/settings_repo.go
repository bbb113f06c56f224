package repository

import (
	"context"
	"errors"

	"tourbook/internal/domain"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the single settings row, or nil if none has been saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.SystemSettings, error) {
	var s domain.SystemSettings
	tx := r.db.WithContext(ctx).Order("id DESC").First(&s)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &s, nil
}

// Save persists the document whole. Validation happens in the service; a
// document never reaches here partially valid.
func (r *SettingsRepository) Save(ctx context.Context, s *domain.SystemSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}

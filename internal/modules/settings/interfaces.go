package settings

import (
	"context"

	"tourbook/internal/domain"
)

// SettingsRepository persists the configuration document.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
	Save(ctx context.Context, s *domain.SystemSettings) error
}

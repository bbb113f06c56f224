package settings

import (
	"context"
	"fmt"

	"tourbook/internal/domain"
	"tourbook/internal/policy"
)

type Service struct {
	repo SettingsRepository
}

func NewService(repo SettingsRepository) *Service {
	return &Service{repo: repo}
}

// Get returns the current settings document, falling back to the defaults
// when nothing has been saved yet.
func (s *Service) Get(ctx context.Context) (*domain.SystemSettings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &domain.SystemSettings{
			CancellationRules: domain.DefaultCancellationRules(),
			CommissionRules:   domain.DefaultCommissionRules(),
			Permissions:       domain.DefaultPermissions(),
		}, nil
	}
	return current, nil
}

// UpdateCancellationRules validates and persists a new tier table. A rule
// set that fails validation is rejected whole; nothing is persisted.
func (s *Service) UpdateCancellationRules(ctx context.Context, adminID int64, rules domain.CancellationRuleSet) (*domain.SystemSettings, error) {
	if err := policy.ValidateCancellationRules(rules); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.CancellationRules = rules
	current.UpdatedBy = adminID
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) UpdateCommissionRules(ctx context.Context, adminID int64, rules domain.CommissionRuleSet) (*domain.SystemSettings, error) {
	if err := policy.ValidateCommissionRules(rules); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.CommissionRules = rules
	current.UpdatedBy = adminID
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// UpdatePermissions applies the role table. The admin settings grant is
// immutable: a request that clears it is saved with the flag restored
// rather than rejected, so the toggle is a no-op.
func (s *Service) UpdatePermissions(ctx context.Context, adminID int64, perms domain.PermissionSet) (*domain.SystemSettings, error) {
	perms = policy.EnforceImmutable(perms)

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	current.Permissions = perms
	current.UpdatedBy = adminID
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

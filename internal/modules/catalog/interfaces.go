package catalog

import (
	"context"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

type PackageRepository interface {
	Create(ctx context.Context, p *domain.TourPackage) error
	GetByID(ctx context.Context, id int64) (*domain.TourPackage, error)
	Update(ctx context.Context, p *domain.TourPackage) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter repository.PackageFilter, limit, offset int) ([]domain.TourPackage, int64, error)
	CreateDeparture(ctx context.Context, d *domain.Departure) error
	GetDeparture(ctx context.Context, id int64) (*domain.Departure, error)
	UpdateDeparture(ctx context.Context, d *domain.Departure) error
}

// SettingsReader supplies the commission rules used by the price preview.
type SettingsReader interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
}

package catalog

import (
	"context"
	"fmt"
	"math"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/policy"
	"tourbook/internal/repository"
)

type Service struct {
	packages PackageRepository
	settings SettingsReader

	now func() time.Time
}

func NewService(packages PackageRepository, settings SettingsReader) *Service {
	return &Service{
		packages: packages,
		settings: settings,
		now:      time.Now,
	}
}

// Actor identifies who is performing a catalog operation. Operators may
// only touch their own packages; admins may touch any.
type Actor struct {
	UserID int64
	Role   domain.UserRole
}

func (a Actor) canManage(p *domain.TourPackage) bool {
	return a.Role == domain.RoleAdmin || p.OperatorID == a.UserID
}

func (s *Service) Create(ctx context.Context, actor Actor, req CreatePackageRequest) (*domain.TourPackage, error) {
	if req.Type != domain.PackageGroup && req.Type != domain.PackagePrivate {
		return nil, fmt.Errorf("%w: unknown package type %q", ErrValidation, req.Type)
	}

	p := &domain.TourPackage{
		OperatorID:   actor.UserID,
		Title:        req.Title,
		Description:  req.Description,
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		BasePrice:    req.BasePrice,
		Type:         req.Type,
		Status:       domain.PackageDraft,
	}
	if err := s.packages.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, actor Actor, id int64, req UpdatePackageRequest) (*domain.TourPackage, error) {
	p, err := s.requireManageable(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Destination != nil {
		p.Destination = *req.Destination
	}
	if req.DurationDays != nil {
		if *req.DurationDays < 1 {
			return nil, fmt.Errorf("%w: duration_days must be at least 1", ErrValidation)
		}
		p.DurationDays = *req.DurationDays
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return nil, fmt.Errorf("%w: base_price cannot be negative", ErrValidation)
		}
		p.BasePrice = *req.BasePrice
	}
	if req.Type != nil {
		if *req.Type != domain.PackageGroup && *req.Type != domain.PackagePrivate {
			return nil, fmt.Errorf("%w: unknown package type %q", ErrValidation, *req.Type)
		}
		p.Type = *req.Type
	}

	if err := s.packages.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Publish(ctx context.Context, actor Actor, id int64) (*domain.TourPackage, error) {
	return s.setStatus(ctx, actor, id, domain.PackageDraft, domain.PackagePublished)
}

func (s *Service) Archive(ctx context.Context, actor Actor, id int64) (*domain.TourPackage, error) {
	return s.setStatus(ctx, actor, id, domain.PackagePublished, domain.PackageArchived)
}

func (s *Service) setStatus(ctx context.Context, actor Actor, id int64, from, to domain.PackageStatus) (*domain.TourPackage, error) {
	p, err := s.requireManageable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if p.Status != from {
		return nil, ErrInvalidStatusTransition
	}
	p.Status = to
	if err := s.packages.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a package that was never published. Published packages are
// archived instead so existing bookings keep their reference.
func (s *Service) Delete(ctx context.Context, actor Actor, id int64) error {
	p, err := s.requireManageable(ctx, actor, id)
	if err != nil {
		return err
	}
	if p.Status != domain.PackageDraft {
		return ErrInvalidStatusTransition
	}
	return s.packages.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.TourPackage, error) {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, actor Actor, query ListPackagesQuery) ([]domain.TourPackage, int64, error) {
	page := query.Page
	limit := query.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	filter := repository.PackageFilter{
		OperatorID: query.OperatorID,
		Status:     query.Status,
		Query:      query.Query,
	}
	// Operators see only their own catalog regardless of the filter asked for.
	if actor.Role == domain.RoleTourOperator {
		filter.OperatorID = &actor.UserID
	}

	return s.packages.List(ctx, filter, limit, (page-1)*limit)
}

func (s *Service) AddDeparture(ctx context.Context, actor Actor, packageID int64, req CreateDepartureRequest) (*domain.Departure, error) {
	p, err := s.requireManageable(ctx, actor, packageID)
	if err != nil {
		return nil, err
	}
	if p.Type != domain.PackageGroup {
		return nil, fmt.Errorf("%w: only GROUP packages have scheduled departures", ErrValidation)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: end_date must be after start_date", ErrValidation)
	}
	season := req.Season
	if season == "" {
		season = domain.SeasonNormal
	}
	switch season {
	case domain.SeasonPeak, domain.SeasonOff, domain.SeasonNormal:
	default:
		return nil, fmt.Errorf("%w: unknown season %q", ErrValidation, season)
	}

	d := &domain.Departure{
		PackageID: packageID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Capacity:  req.Capacity,
		Season:    season,
	}
	if err := s.packages.CreateDeparture(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// PreviewPrice quotes a departure for a party under the current commission
// rules without creating anything.
func (s *Service) PreviewPrice(ctx context.Context, req PricePreviewRequest) (*PricePreviewResponse, error) {
	d, err := s.packages.GetDeparture(ctx, req.DepartureID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrNotFound
	}

	p, err := s.packages.GetByID(ctx, d.PackageID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	days := int(d.StartDate.Sub(s.now()).Hours() / 24)
	bd := policy.ComputeFinalPrice(p.BasePrice, d.Season, days, req.PartySize, cfg.CommissionRules)

	return &PricePreviewResponse{
		PerPerson: bd,
		PartySize: req.PartySize,
		Total:     math.Round(bd.FinalPrice*float64(req.PartySize)*100) / 100,
	}, nil
}

func (s *Service) requireManageable(ctx context.Context, actor Actor, id int64) (*domain.TourPackage, error) {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if !actor.canManage(p) {
		return nil, ErrForbidden
	}
	return p, nil
}

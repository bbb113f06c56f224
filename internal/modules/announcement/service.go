package announcement

import (
	"context"
	"fmt"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

type Service struct {
	announcements AnnouncementRepository

	now func() time.Time
}

func NewService(announcements AnnouncementRepository) *Service {
	return &Service{
		announcements: announcements,
		now:           time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateAnnouncementRequest, createdBy int64) (*domain.Announcement, error) {
	a := &domain.Announcement{
		Title:          req.Title,
		Message:        req.Message,
		Type:           req.Type,
		Priority:       req.Priority,
		TargetAudience: req.TargetAudience,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		IsActive:       true,
		CreatedBy:      createdBy,
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := validate(a); err != nil {
		return nil, err
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateAnnouncementRequest) (*domain.Announcement, error) {
	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Message != nil {
		a.Message = *req.Message
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Priority != nil {
		a.Priority = *req.Priority
	}
	if req.TargetAudience != nil {
		a.TargetAudience = req.TargetAudience
	}
	if req.StartDate != nil {
		a.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		a.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}

	if err := validate(a); err != nil {
		return nil, err
	}
	if err := s.announcements.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrNotFound
	}
	return s.announcements.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Announcement, error) {
	a, err := s.announcements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, query ListAnnouncementsQuery) ([]domain.Announcement, int64, error) {
	page := query.Page
	limit := query.Limit
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	return s.announcements.List(ctx, repository.AnnouncementFilter{
		Active:   query.Active,
		Type:     query.Type,
		Priority: query.Priority,
	}, limit, (page-1)*limit)
}

// ListActiveFor returns the announcements currently in their display window
// that target the given role.
func (s *Service) ListActiveFor(ctx context.Context, role domain.UserRole) ([]domain.Announcement, error) {
	anns, err := s.announcements.ListActive(ctx, s.now())
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Announcement, 0, len(anns))
	for i := range anns {
		if anns[i].TargetsRole(role) {
			visible = append(visible, anns[i])
		}
	}
	return visible, nil
}

func validate(a *domain.Announcement) error {
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if a.Message == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}

	switch a.Type {
	case domain.AnnouncementInfo, domain.AnnouncementWarning, domain.AnnouncementSuccess,
		domain.AnnouncementError, domain.AnnouncementMaintenance:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrValidation, a.Type)
	}

	switch a.Priority {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, a.Priority)
	}

	if len(a.TargetAudience) == 0 {
		return fmt.Errorf("%w: at least one target audience is required", ErrValidation)
	}
	hasAll := false
	for _, aud := range a.TargetAudience {
		switch aud {
		case domain.AudienceAll:
			hasAll = true
		case domain.AudienceCustomers, domain.AudienceOperators, domain.AudienceAdmins:
		default:
			return fmt.Errorf("%w: unknown audience %q", ErrValidation, aud)
		}
	}
	// ALL already covers everyone; combining it with specific audiences is a
	// client mistake, not a broader target.
	if hasAll && len(a.TargetAudience) > 1 {
		return fmt.Errorf("%w: ALL cannot be combined with other audiences", ErrValidation)
	}

	if !a.EndDate.After(a.StartDate) {
		return fmt.Errorf("%w: end_date must be after start_date", ErrValidation)
	}
	return nil
}

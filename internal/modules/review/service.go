package review

import (
	"context"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

type Service struct {
	reviews ReviewRepository
}

func NewService(reviews ReviewRepository) *Service {
	return &Service{reviews: reviews}
}

type ListFilter struct {
	PackageID *int64
	Status    string
	Flagged   *bool
	Hidden    *bool
}

func (s *Service) List(ctx context.Context, filter ListFilter, page, limit int) ([]domain.Review, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	return s.reviews.List(ctx, repository.ReviewFilter{
		PackageID: filter.PackageID,
		Status:    filter.Status,
		Flagged:   filter.Flagged,
		Hidden:    filter.Hidden,
	}, limit, (page-1)*limit)
}

// Approve and Reject record the moderation outcome. Approving also clears
// the flag: a moderator looked and found nothing wrong.
func (s *Service) Approve(ctx context.Context, reviewID int64) (*domain.Review, error) {
	return s.setStatus(ctx, reviewID, domain.ReviewApproved)
}

func (s *Service) Reject(ctx context.Context, reviewID int64) (*domain.Review, error) {
	return s.setStatus(ctx, reviewID, domain.ReviewRejected)
}

func (s *Service) setStatus(ctx context.Context, reviewID int64, status domain.ReviewStatus) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, ErrNotFound
	}

	rv.Status = status
	if status == domain.ReviewApproved {
		rv.IsFlagged = false
	}
	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Flag(ctx context.Context, reviewID int64) (*domain.Review, error) {
	return s.setFlagged(ctx, reviewID, true)
}

func (s *Service) Unflag(ctx context.Context, reviewID int64) (*domain.Review, error) {
	return s.setFlagged(ctx, reviewID, false)
}

func (s *Service) setFlagged(ctx context.Context, reviewID int64, flagged bool) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, ErrNotFound
	}

	rv.IsFlagged = flagged
	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// Hide and Show toggle visibility without touching the moderation status;
// the two vocabularies are independent on purpose.
func (s *Service) Hide(ctx context.Context, reviewID int64) (*domain.Review, error) {
	return s.setHidden(ctx, reviewID, true)
}

func (s *Service) Show(ctx context.Context, reviewID int64) (*domain.Review, error) {
	return s.setHidden(ctx, reviewID, false)
}

func (s *Service) setHidden(ctx context.Context, reviewID int64, hidden bool) (*domain.Review, error) {
	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, ErrNotFound
	}

	rv.IsHidden = hidden
	if err := s.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

package review

import (
	"context"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

type ReviewRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	Update(ctx context.Context, rv *domain.Review) error
	List(ctx context.Context, filter repository.ReviewFilter, limit, offset int) ([]domain.Review, int64, error)
}

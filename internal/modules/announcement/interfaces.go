package announcement

import (
	"context"
	"time"

	"tourbook/internal/domain"
	"tourbook/internal/repository"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) error
	GetByID(ctx context.Context, id int64) (*domain.Announcement, error)
	Update(ctx context.Context, a *domain.Announcement) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter repository.AnnouncementFilter, limit, offset int) ([]domain.Announcement, int64, error)
	ListActive(ctx context.Context, now time.Time) ([]domain.Announcement, error)
}

package auth

import (
	"context"

	"tourbook/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, role string, limit, offset int) ([]domain.User, int64, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role domain.UserRole) (string, error)
}

package domain

import "time"

type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleTourOperator UserRole = "TOUR_OPERATOR"
	RoleCustomer     UserRole = "CUSTOMER"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	IsBlocked    bool      `json:"is_blocked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

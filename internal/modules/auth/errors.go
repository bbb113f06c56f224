package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserBlocked        = errors.New("user account is blocked")
	ErrUserNotFound       = errors.New("user not found")
)

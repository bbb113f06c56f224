package catalog

import "errors"

var (
	ErrNotFound                = errors.New("package not found")
	ErrValidation              = errors.New("invalid package")
	ErrForbidden               = errors.New("package belongs to another operator")
	ErrInvalidStatusTransition = errors.New("invalid package status transition")
)

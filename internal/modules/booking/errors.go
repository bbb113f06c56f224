package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidPeriod           = errors.New("period end must be after its start")
)

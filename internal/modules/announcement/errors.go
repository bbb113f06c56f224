package announcement

import "errors"

var (
	ErrNotFound   = errors.New("announcement not found")
	ErrValidation = errors.New("invalid announcement")
)

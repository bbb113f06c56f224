package review

import "errors"

var ErrNotFound = errors.New("review not found")

package refund

import "errors"

var (
	ErrNotFound         = errors.New("booking or cancellation not found")
	ErrAlreadyProcessed = errors.New("refund already processed")
	ErrNotCancelled     = errors.New("booking is not cancelled")
	ErrExecutorFailed   = errors.New("refund execution failed")
)

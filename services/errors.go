package services

import (
	"errors"
	"fmt"
)

// Expected outcomes are sentinel errors so controllers can map them to HTTP
// codes with errors.Is instead of matching message strings.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrValidation   = errors.New("validation failed")

	// ErrStorage wraps a failed transactional write. The underlying cause is
	// logged where it happens; callers only see a generic retryable failure.
	ErrStorage = errors.New("storage failure")

	ErrInvalidTransition = fmt.Errorf("%w: invalid status transition", ErrValidation)
)

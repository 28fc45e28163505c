package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidDuration indicates a booking whose duration cannot be billed
// (non-positive, or not made of full units). Submission must be blocked.
var ErrInvalidDuration = errors.New("invalid booking duration")

// ErrCurrencyMismatch indicates arithmetic between amounts in different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// DurationError carries the message key the storefront shows next to the booking form.
type DurationError struct {
	MessageKey string
	Reason     string
}

func (e *DurationError) Error() string {
	return ErrInvalidDuration.Error() + ": " + e.Reason
}

// Unwrap lets errors.Is match ErrInvalidDuration.
func (e *DurationError) Unwrap() error {
	return ErrInvalidDuration
}

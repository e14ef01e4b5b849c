package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrIntegrityBlock indicates that a mutation was refused because another
// record still depends on the target (e.g. a client that is referenced by
// invoices). Distinct from ErrValidation so callers can surface a
// remediation message instead of a generic failure.
var ErrIntegrityBlock = errors.New("operation blocked by dependent records")

// ErrLastBusiness indicates an attempt to delete the only remaining
// business profile. The system requires at least one at all times.
var ErrLastBusiness = errors.New("cannot delete the last remaining business profile")

// AppError wraps an underlying error with a status code and a message
// suitable for API responses.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

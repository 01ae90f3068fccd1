package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates that the acting user is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrConflict indicates that the operation conflicts with the current state of a resource.
var ErrConflict = errors.New("resource conflict")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level failure with a status code and message,
// mostly used by the pgsql repositories.
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
	if e.Err != nil {
		return e.Err
	}
	return ErrInternal
}

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationFailedError wraps ErrValidation with a reason.
func NewValidationFailedError(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// NewConflictError wraps ErrConflict with a reason.
func NewConflictError(reason string) error {
	return fmt.Errorf("%w: %s", ErrConflict, reason)
}

// NewForbiddenError wraps ErrForbidden with a reason.
func NewForbiddenError(reason string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, reason)
}

// NewNotFoundError wraps ErrNotFound with a reason.
func NewNotFoundError(reason string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, reason)
}

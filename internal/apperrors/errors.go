package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists,
// or that a change would break a uniqueness rule.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the user is authenticated but lacks the role for the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrPendingApproval indicates a user whose company access has not been approved yet.
var ErrPendingApproval = errors.New("account pending approval")

// AppError carries an HTTP-ish status code and a client safe message next to the cause.
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

// Unwrap exposes the cause so errors.Is/As keep working through the wrapper.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is maps the status code of an AppError onto the package sentinels.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrDuplicate:
		return e.Code == http.StatusConflict
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	}
	return false
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// NewValidationFailedError reports invalid input.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewConflictError reports a uniqueness or referential conflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

// NewForbiddenError reports a missing permission.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}

// Package apperror defines the domain error taxonomy shared by every layer.
//
// Services return these errors; handlers and the CLI translate them into
// whatever their protocol needs (HTTP status codes, exit messages).
// Callers test for a category with errors.Is and read the human-readable
// message and offending field with errors.As:
//
//	var appErr *apperror.AppError
//	if errors.As(err, &appErr) && errors.Is(err, apperror.ErrConflict) {
//	    fmt.Println(appErr.Field, appErr.Message)
//	}
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

type AppError struct {
	Err     error  // sentinel category
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func Conflict(resource, id string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s conflict with id %s", resource, id),
	}
}

// InvalidEmail reports an email that does not have the local@domain.tld shape.
func InvalidEmail(email string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: fmt.Sprintf("invalid email format: %q", email),
		Field:   "email",
	}
}

// DuplicateUsername reports a username already held by another stored user.
// HTTP handlers map this to 409 Conflict.
func DuplicateUsername(username string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("username %q already exists", username),
		Field:   "username",
	}
}

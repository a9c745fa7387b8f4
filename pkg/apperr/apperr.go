// Package apperr defines the error taxonomy shared by services, controllers
// and GraphQL resolvers.
//
// Services return sentinel-wrapped errors; the boundary maps them to HTTP
// status codes with HTTPStatus. A remove of an absent item is NOT an error —
// those paths return the unchanged document.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the failure classes the backend distinguishes.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrStorage         = errors.New("storage failure")
)

// AppError is a structured application error with an HTTP status mapping.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// Unauthenticated reports a missing or invalid identity on an operation that
// requires one.
func Unauthenticated() *AppError {
	return &AppError{
		Code:    "UNAUTHENTICATED",
		Message: "authentication required",
		Status:  http.StatusUnauthorized,
		Err:     ErrUnauthenticated,
	}
}

// InvalidArgument reports a malformed identifier or filter value.
func InvalidArgument(message string) *AppError {
	return &AppError{
		Code:    "INVALID_ARGUMENT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidArgument,
	}
}

// NotFound reports an absent referenced entity.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// Storage wraps a failed document store call. The underlying error is
// preserved for logs but never shown to clients.
func Storage(op string, err error) *AppError {
	return &AppError{
		Code:    "STORAGE_FAILURE",
		Message: "storage operation failed",
		Status:  http.StatusServiceUnavailable,
		Err:     fmt.Errorf("%s: %w", op, errors.Join(ErrStorage, err)),
	}
}

// HTTPStatus maps err to the HTTP status code the boundary should answer with.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for err. Unknown errors collapse to
// a generic message so internals never leak.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal error"
}

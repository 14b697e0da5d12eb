package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/enroll-api/internal/service"
	"github.com/phrazzld/enroll-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrStudentNotFound),
		errors.Is(err, service.ErrProductNotFound):
		return http.StatusNotFound

	// The enrollment window has closed
	case errors.Is(err, service.ErrWindowClosed):
		return http.StatusBadRequest

	// Repeat purchase
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return http.StatusConflict

	// Authorization errors
	case errors.Is(err, service.ErrAccessDenied):
		return http.StatusForbidden

	// Allocation kept losing to concurrent purchases; retryable
	case errors.Is(err, service.ErrCapacityConflict):
		return http.StatusServiceUnavailable

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return "Student not found"

	case errors.Is(err, service.ErrProductNotFound):
		return "Product not found"

	case errors.Is(err, service.ErrWindowClosed):
		return "Product is no longer available for purchase"

	case errors.Is(err, service.ErrAlreadyEnrolled):
		return "Product already purchased"

	case errors.Is(err, service.ErrAccessDenied):
		return "You do not have access to this product"

	case errors.Is(err, service.ErrCapacityConflict):
		return "Enrollment is busy, please retry"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

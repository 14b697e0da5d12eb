package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service
// implementations. These represent the outcomes callers are expected to
// check for with errors.Is(); the API layer maps each to an HTTP status.
var (
	// ErrStudentNotFound indicates the referenced student does not exist.
	ErrStudentNotFound = errors.New("student not found")

	// ErrProductNotFound indicates the referenced product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrWindowClosed indicates the product's enrollment window has closed:
	// its start date is no longer in the future, so it cannot be purchased.
	ErrWindowClosed = errors.New("product is no longer purchasable")

	// ErrAlreadyEnrolled indicates the student already holds access to the
	// product. Purchase is idempotent in effect: the first call succeeds,
	// every later call reports this error and changes nothing.
	ErrAlreadyEnrolled = errors.New("student already has access to this product")

	// ErrAccessDenied indicates the student does not hold access to the
	// product and therefore may not view its lessons.
	ErrAccessDenied = errors.New("student does not have access to this product")

	// ErrCapacityConflict indicates the allocation lost its race with
	// concurrent purchases repeatedly and gave up after the retry bound.
	// The purchase did not happen; the caller may retry.
	ErrCapacityConflict = errors.New("allocation conflict with concurrent purchases")
)

// EnrollmentError wraps unexpected errors from the enrollment services
// with operation context.
type EnrollmentError struct {
	// Operation is the operation that failed (e.g., "purchase", "list_lessons")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for EnrollmentError.
func (e *EnrollmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("enrollment %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("enrollment %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *EnrollmentError) Unwrap() error {
	return e.Err
}

// NewEnrollmentError creates a new EnrollmentError. Known service
// sentinels pass through unchanged so callers can still match them.
func NewEnrollmentError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range []error{
		ErrStudentNotFound,
		ErrProductNotFound,
		ErrWindowClosed,
		ErrAlreadyEnrolled,
		ErrAccessDenied,
		ErrCapacityConflict,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	return &EnrollmentError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrStudentNotFound, ErrProductNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a group with an already-taken name).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrConflict is returned when a transactional read-modify-write lost a
	// race with a concurrent writer (serialization failure or deadlock).
	// The operation did not take effect and may be retried.
	ErrConflict = errors.New("write conflict")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrTeacherNotFound indicates that the requested teacher does not exist.
	ErrTeacherNotFound = fmt.Errorf("%w: teacher", ErrNotFound)

	// ErrStudentNotFound indicates that the requested student does not exist.
	ErrStudentNotFound = fmt.Errorf("%w: student", ErrNotFound)

	// ErrProductNotFound indicates that the requested product does not exist.
	ErrProductNotFound = fmt.Errorf("%w: product", ErrNotFound)

	// ErrGroupNotFound indicates that the requested group does not exist.
	ErrGroupNotFound = fmt.Errorf("%w: group", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a teacher or student with the given
	// email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrProductNameExists indicates that a product with the given name
	// already exists.
	ErrProductNameExists = fmt.Errorf("%w: product name", ErrDuplicate)

	// ErrGroupNameExists indicates that a group with the given name already
	// exists. Under concurrent first purchases this doubles as a conflict
	// signal: the allocation engine regenerates the name and retries.
	ErrGroupNameExists = fmt.Errorf("%w: group name", ErrDuplicate)

	// ErrAccessExists indicates that the student already holds access to
	// the product.
	ErrAccessExists = fmt.Errorf("%w: product access", ErrDuplicate)

	// ErrMembershipExists indicates that the student is already a member of
	// a group of the product.
	ErrMembershipExists = fmt.Errorf("%w: group membership", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsConflictError checks if the error is a retryable write conflict.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}

// StoreError is a custom error type for store-specific errors with
// additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "student", "group")
	Operation string // The operation that failed (e.g., "create", "list")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

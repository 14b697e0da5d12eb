package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/enroll-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// serializationFailureCode is the PostgreSQL error code for a
	// serialization failure of a concurrent transaction
	serializationFailureCode = "40001"

	// deadlockDetectedCode is the PostgreSQL error code for a detected deadlock
	deadlockDetectedCode = "40P01"
)

// Unique constraints defined by the migrations. MapError dispatches on the
// violated constraint so callers get the precise duplicate sentinel.
const (
	teacherEmailConstraint = "teachers_email_key"
	studentEmailConstraint = "students_email_key"
	productNameConstraint  = "products_name_key"
	groupNameConstraint    = "groups_name_key"
	accessConstraint       = "student_products_pkey"
	membershipConstraint   = "group_members_product_id_student_id_key"
)

// MapError maps a database error to the appropriate store sentinel error.
// It wraps the original error to preserve context for debugging.
// This function should be used in all database operations to ensure
// consistent error handling.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", uniqueSentinel(pgErr.ConstraintName), err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case checkViolationCode:
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case serializationFailureCode, deadlockDetectedCode:
			return fmt.Errorf("%w: %v", store.ErrConflict, err)
		}
	}

	return err
}

// uniqueSentinel resolves the violated unique constraint to its
// entity-specific duplicate sentinel.
func uniqueSentinel(constraint string) error {
	switch constraint {
	case teacherEmailConstraint, studentEmailConstraint:
		return store.ErrEmailExists
	case productNameConstraint:
		return store.ErrProductNameExists
	case groupNameConstraint:
		return store.ErrGroupNameExists
	case accessConstraint:
		return store.ErrAccessExists
	case membershipConstraint:
		return store.ErrMembershipExists
	default:
		return store.ErrDuplicate
	}
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsSerializationFailure checks if the given error is a PostgreSQL
// serialization failure or deadlock, both of which are safe to retry.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		(pgErr.Code == serializationFailureCode || pgErr.Code == deadlockDetectedCode)
}

// CheckRowsAffected examines the number of rows affected by a database
// operation. If no rows were affected, it returns store.ErrNotFound wrapped
// with the entity name. This is used for UPDATE operations where the
// absence of affected rows means the entity does not exist.
func CheckRowsAffected(result sql.Result, entity string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", store.ErrNotFound, entity)
	}
	return nil
}

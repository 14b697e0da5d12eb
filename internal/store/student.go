package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/enroll-api/internal/domain"
)

// StudentStore defines the interface for student data persistence,
// including the student's purchased-products relation (the access facts).
type StudentStore interface {
	// Create saves a new student and assigns its ID.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain Student if data is invalid.
	Create(ctx context.Context, student *domain.Student) error

	// GetByID retrieves a student by their unique ID.
	// Returns ErrStudentNotFound if the student does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Student, error)

	// HasAccess reports whether the student holds access to the product,
	// i.e. whether the product is in the student's purchased set.
	HasAccess(ctx context.Context, studentID, productID int64) (bool, error)

	// GrantAccess records the access fact for the (student, product) pair.
	// Returns ErrAccessExists if the student already holds access.
	GrantAccess(ctx context.Context, studentID, productID int64) error

	// CountAll returns the total number of students in the system.
	CountAll(ctx context.Context) (int64, error)

	// WithTx returns a new StudentStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) StudentStore
}

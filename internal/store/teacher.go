package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/enroll-api/internal/domain"
)

// TeacherStore defines the interface for teacher data persistence.
// Teachers are created administratively, out of band of the allocation
// engine; the engine itself only ever reads them.
type TeacherStore interface {
	// Create saves a new teacher and assigns its ID.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain Teacher if data is invalid.
	Create(ctx context.Context, teacher *domain.Teacher) error

	// GetByID retrieves a teacher by their unique ID.
	// Returns ErrTeacherNotFound if the teacher does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Teacher, error)

	// WithTx returns a new TeacherStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) TeacherStore
}

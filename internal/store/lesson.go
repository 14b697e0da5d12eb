package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/enroll-api/internal/domain"
)

// LessonStore defines the interface for lesson data persistence.
type LessonStore interface {
	// Create saves a new lesson and assigns its ID.
	// Returns ErrDuplicate if the product already has a lesson with the
	// same name.
	// Returns ErrInvalidEntity if the parent product does not exist.
	// Returns validation errors from the domain Lesson if data is invalid.
	Create(ctx context.Context, lesson *domain.Lesson) error

	// ListByProduct returns the product's lessons in creation order.
	ListByProduct(ctx context.Context, productID int64) ([]*domain.Lesson, error)

	// WithTx returns a new LessonStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) LessonStore
}

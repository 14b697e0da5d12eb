package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/enroll-api/internal/domain"
)

// ProductListing is a product joined with its teacher and lesson count,
// as served by the public catalog.
type ProductListing struct {
	Product     domain.Product
	Teacher     domain.Teacher
	LessonCount int
}

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// Create saves a new product and assigns its ID.
	// Returns ErrProductNameExists if the name is already taken.
	// Returns ErrInvalidEntity if the owning teacher does not exist.
	// Returns validation errors from the domain Product if data is invalid.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its unique ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// GetForUpdate retrieves a product by ID and locks its row for the
	// remainder of the surrounding transaction, serializing concurrent
	// allocation against the same product. Must be called through a store
	// obtained via WithTx.
	// Returns ErrProductNotFound if the product does not exist.
	GetForUpdate(ctx context.Context, id int64) (*domain.Product, error)

	// Update modifies an existing product's details.
	// Returns ErrProductNotFound if the product does not exist.
	// Returns validation errors from the domain Product if data is invalid.
	Update(ctx context.Context, product *domain.Product) error

	// ListPurchasable returns the products whose enrollment window is still
	// open at the given instant (start date strictly after now), joined
	// with their teacher and lesson count, ordered by ID.
	ListPurchasable(ctx context.Context, now time.Time, offset, limit int) ([]*ProductListing, error)

	// CountPurchasable returns the number of products whose enrollment
	// window is still open at the given instant.
	CountPurchasable(ctx context.Context, now time.Time) (int64, error)

	// WithTx returns a new ProductStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) ProductStore
}

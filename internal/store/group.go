package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/enroll-api/internal/domain"
)

// GroupOccupancy is a group together with its current member count, as
// consumed by the allocation engine's first-fit scan.
type GroupOccupancy struct {
	Group   domain.Group
	Members int
}

// GroupStore defines the interface for group data persistence, including
// the group-membership relation of the enrollment ledger.
type GroupStore interface {
	// Create saves a new group and assigns its ID.
	// Returns ErrGroupNameExists if the name is already taken.
	// Returns ErrInvalidEntity if the parent product does not exist.
	// Returns validation errors from the domain Group if data is invalid.
	Create(ctx context.Context, group *domain.Group) error

	// GetByID retrieves a group by its unique ID.
	// Returns ErrGroupNotFound if the group does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Group, error)

	// ListByProduct returns the product's groups with their current member
	// counts, in creation order.
	ListByProduct(ctx context.Context, productID int64) ([]*GroupOccupancy, error)

	// CountByProduct returns the number of groups the product has.
	CountByProduct(ctx context.Context, productID int64) (int, error)

	// CountMembers returns the current occupancy of the group.
	CountMembers(ctx context.Context, groupID int64) (int, error)

	// AddMember records the student's membership in the group. The product
	// ID is carried on the membership row so the schema itself rejects a
	// second membership for the same (product, student) pair.
	// Returns ErrMembershipExists on such a second membership.
	AddMember(ctx context.Context, groupID, productID, studentID int64) error

	// WithTx returns a new GroupStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) GroupStore
}

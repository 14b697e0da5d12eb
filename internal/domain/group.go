package domain

import (
	"errors"
	"fmt"
	"time"
)

// Group-specific validation errors
var (
	// ErrGroupProductIDEmpty is returned when a group has no parent product.
	ErrGroupProductIDEmpty = errors.New("group product ID cannot be empty")

	// ErrEmptyGroupName is returned when a group name is empty.
	ErrEmptyGroupName = errors.New("group name cannot be empty")

	// ErrGroupNameTooLong is returned when a group name exceeds 60 characters.
	ErrGroupNameTooLong = errors.New("group name cannot exceed 60 characters")
)

const maxGroupNameLength = 60

// Group represents a capacity-bounded cohort of students enrolled in one
// product. Groups are created lazily by the allocation engine and are never
// deleted by it; the capacity bound is enforced at admission time, not by
// the entity itself. Group names are unique across the system.
type Group struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupName derives the display name for a product's n-th group (1-based).
// The name is deterministic and human-readable; uniqueness is still
// guaranteed by the store's unique constraint, so a collision under a
// pathological race surfaces as a conflict rather than a duplicate name.
func GroupName(productName string, index int) string {
	return fmt.Sprintf("%s, group %d", productName, index)
}

// NewGroup creates a new Group under the given product.
// The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewGroup(productID int64, name string) (*Group, error) {
	group := &Group{
		ProductID: productID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := group.Validate(); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate checks if the Group has valid data.
// Returns an error if any field fails validation.
func (g *Group) Validate() error {
	if g.ProductID <= 0 {
		return ErrGroupProductIDEmpty
	}
	if g.Name == "" {
		return ErrEmptyGroupName
	}
	if len(g.Name) > maxGroupNameLength {
		return ErrGroupNameTooLong
	}
	return nil
}

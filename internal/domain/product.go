package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Product-specific validation errors
var (
	// ErrProductTeacherIDEmpty is returned when a product has no owning teacher.
	ErrProductTeacherIDEmpty = errors.New("product teacher ID cannot be empty")

	// ErrEmptyProductName is returned when a product name is empty.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrProductNameTooLong is returned when a product name exceeds 40 characters.
	ErrProductNameTooLong = errors.New("product name cannot exceed 40 characters")

	// ErrProductStartDateZero is returned when a product has no start date.
	ErrProductStartDateZero = errors.New("product start date must be set")

	// ErrNegativePrice is returned when a product price is negative.
	ErrNegativePrice = errors.New("product price cannot be negative")

	// ErrMinGroupSizeTooSmall is returned when min_group_size is below 1.
	ErrMinGroupSizeTooSmall = errors.New("minimum group size must be at least 1")

	// ErrGroupSizeBoundsInverted is returned when max_group_size is below
	// min_group_size. This invariant is enforced whenever a product is
	// created or updated.
	ErrGroupSizeBoundsInverted = errors.New(
		"maximum group size cannot be less than minimum group size")
)

const maxProductNameLength = 40

// Product represents a purchasable learning offering with a start time,
// a price, and per-group size bounds. From the allocation engine's point
// of view a product is immutable except for its derived group set.
type Product struct {
	ID           int64           `json:"id"`
	TeacherID    int64           `json:"teacher_id"`
	Name         string          `json:"name"`
	StartDate    time.Time       `json:"start_date"`
	Price        decimal.Decimal `json:"price"`
	MinGroupSize int             `json:"min_group_size"`
	MaxGroupSize int             `json:"max_group_size"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// NewProduct creates a new Product owned by the given teacher and sets the
// creation/update timestamps. The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewProduct(
	teacherID int64,
	name string,
	startDate time.Time,
	price decimal.Decimal,
	minGroupSize, maxGroupSize int,
) (*Product, error) {
	product := &Product{
		TeacherID:    teacherID,
		Name:         name,
		StartDate:    startDate,
		Price:        price,
		MinGroupSize: minGroupSize,
		MaxGroupSize: maxGroupSize,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks if the Product has valid data.
// Returns an error if any field fails validation.
func (p *Product) Validate() error {
	if p.TeacherID <= 0 {
		return ErrProductTeacherIDEmpty
	}
	if p.Name == "" {
		return ErrEmptyProductName
	}
	if len(p.Name) > maxProductNameLength {
		return ErrProductNameTooLong
	}
	if p.StartDate.IsZero() {
		return ErrProductStartDateZero
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.MinGroupSize < 1 {
		return ErrMinGroupSizeTooSmall
	}
	if p.MaxGroupSize < p.MinGroupSize {
		return ErrGroupSizeBoundsInverted
	}
	return nil
}

// IsPurchasable reports whether the product's enrollment window is still
// open at the given instant. Purchase is allowed strictly before the
// product's start date.
func (p *Product) IsPurchasable(now time.Time) bool {
	return now.Before(p.StartDate)
}

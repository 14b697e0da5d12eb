package domain

import (
	"fmt"
	"time"
)

// Student represents a client who purchases access to learning products.
// Purchased products and group memberships are relations held by the
// enrollment ledger, not fields on the entity: a student may belong to
// groups of many products, but to at most one group per product.
type Student struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStudent creates a new Student with the given profile fields and sets
// the creation/update timestamps. The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewStudent(firstName, lastName, email string, age int) (*Student, error) {
	student := &Student{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Age:       age,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := student.Validate(); err != nil {
		return nil, err
	}

	return student, nil
}

// Validate checks if the Student has valid data.
// Returns an error if any field fails validation.
func (s *Student) Validate() error {
	return validateProfile(s.FirstName, s.LastName, s.Email, s.Age)
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return fmt.Sprintf("%s %s", s.FirstName, s.LastName)
}

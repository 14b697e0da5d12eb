package domain

import (
	"fmt"
	"time"
)

// Teacher represents an author of learning products. A teacher may own
// any number of products; products are cascade-deleted with their teacher.
type Teacher struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTeacher creates a new Teacher with the given profile fields and sets
// the creation/update timestamps. The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewTeacher(firstName, lastName, email string, age int) (*Teacher, error) {
	teacher := &Teacher{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Age:       age,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := teacher.Validate(); err != nil {
		return nil, err
	}

	return teacher, nil
}

// Validate checks if the Teacher has valid data.
// Returns an error if any field fails validation.
func (t *Teacher) Validate() error {
	return validateProfile(t.FirstName, t.LastName, t.Email, t.Age)
}

// FullName returns the teacher's display name.
func (t *Teacher) FullName() string {
	return fmt.Sprintf("%s %s", t.FirstName, t.LastName)
}

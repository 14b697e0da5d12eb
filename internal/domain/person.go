package domain

import (
	"errors"
	"net/mail"
)

// Profile field limits shared by teachers and students.
const (
	maxFirstNameLength = 30
	maxLastNameLength  = 40
	maxEmailLength     = 254
	minAge             = 16
)

// Profile validation errors shared by Teacher and Student.
var (
	ErrEmptyFirstName   = errors.New("first name cannot be empty")
	ErrFirstNameTooLong = errors.New("first name cannot exceed 30 characters")
	ErrEmptyLastName    = errors.New("last name cannot be empty")
	ErrLastNameTooLong  = errors.New("last name cannot exceed 40 characters")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrEmailTooLong     = errors.New("email cannot exceed 254 characters")
	ErrAgeTooLow        = errors.New("age must be at least 16")
)

// validateProfile checks the profile fields carried by both teachers
// and students. Returns the first validation error encountered.
func validateProfile(firstName, lastName, email string, age int) error {
	if firstName == "" {
		return ErrEmptyFirstName
	}
	if len(firstName) > maxFirstNameLength {
		return ErrFirstNameTooLong
	}
	if lastName == "" {
		return ErrEmptyLastName
	}
	if len(lastName) > maxLastNameLength {
		return ErrLastNameTooLong
	}
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxEmailLength {
		return ErrEmailTooLong
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	if age < minAge {
		return ErrAgeTooLow
	}
	return nil
}

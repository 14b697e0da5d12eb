// Package domain contains the core business entities of the enrollment
// system: teachers, students, products, lessons, and training groups.
// Entities carry their own validation; they have no knowledge of storage
// or transport concerns.
package domain

// Package postgres implements the store interfaces on a PostgreSQL
// database accessed through database/sql with the pgx driver. All
// implementations translate driver errors into the store package's
// sentinel errors via MapError.
package postgres

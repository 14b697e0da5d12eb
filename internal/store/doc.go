// Package store defines the persistence interfaces of the enrollment
// ledger and catalog, together with the sentinel errors every
// implementation must return. Implementations live under
// internal/platform; services depend only on these interfaces.
package store

package store

import "context"

// ProductStatsRow is the raw per-product aggregation the statistics
// projector computes its percentages from.
type ProductStatsRow struct {
	ProductID    int64
	ProductName  string
	MaxGroupSize int
	StudentCount int64 // students holding access to the product
	GroupCount   int64 // groups created for the product so far
}

// StatsStore defines the read-only aggregation queries used by the
// reporting component. It never mutates the ledger.
type StatsStore interface {
	// ProductStats returns the per-product aggregation rows ordered by
	// product ID.
	ProductStats(ctx context.Context, offset, limit int) ([]*ProductStatsRow, error)

	// CountProducts returns the total number of products.
	CountProducts(ctx context.Context) (int64, error)

	// CountStudents returns the total number of students, the denominator
	// of the purchase-rate percentage.
	CountStudents(ctx context.Context) (int64, error)
}

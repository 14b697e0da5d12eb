package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/enroll-api/internal/platform/logger"
	"github.com/phrazzld/enroll-api/internal/store"
)

// PostgresStatsStore implements the store.StatsStore interface.
// It is strictly read-only: the reporting component aggregates over the
// enrollment ledger without ever writing to it.
type PostgresStatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStatsStore creates a new PostgreSQL implementation of the
// StatsStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresStatsStore(db store.DBTX, logger *slog.Logger) *PostgresStatsStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

// Ensure PostgresStatsStore implements store.StatsStore interface
var _ store.StatsStore = (*PostgresStatsStore)(nil)

// ProductStats implements store.StatsStore.ProductStats
func (s *PostgresStatsStore) ProductStats(ctx context.Context, offset, limit int) ([]*store.ProductStatsRow, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT p.id, p.name, p.max_group_size,
			(SELECT count(*) FROM student_products sp WHERE sp.product_id = p.id) AS student_count,
			(SELECT count(*) FROM groups g WHERE g.product_id = p.id) AS group_count
		FROM products p
		ORDER BY p.id
		OFFSET $1 LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		log.Error("failed to query product stats",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var stats []*store.ProductStatsRow
	for rows.Next() {
		var row store.ProductStatsRow
		err := rows.Scan(
			&row.ProductID,
			&row.ProductName,
			&row.MaxGroupSize,
			&row.StudentCount,
			&row.GroupCount,
		)
		if err != nil {
			log.Error("failed to scan product stats row",
				slog.String("error", err.Error()))
			return nil, err
		}
		stats = append(stats, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// CountProducts implements store.StatsStore.CountProducts
func (s *PostgresStatsStore) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM products`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountStudents implements store.StatsStore.CountStudents
func (s *PostgresStatsStore) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

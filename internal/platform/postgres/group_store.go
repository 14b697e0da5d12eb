package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/platform/logger"
	"github.com/phrazzld/enroll-api/internal/store"
)

// PostgresGroupStore implements the store.GroupStore interface
// using a PostgreSQL database as the storage backend.
type PostgresGroupStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresGroupStore creates a new PostgreSQL implementation of the
// GroupStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresGroupStore(db store.DBTX, logger *slog.Logger) *PostgresGroupStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresGroupStore{
		db:     db,
		logger: logger.With(slog.String("component", "group_store")),
	}
}

// Ensure PostgresGroupStore implements store.GroupStore interface
var _ store.GroupStore = (*PostgresGroupStore)(nil)

// Create implements store.GroupStore.Create
func (s *PostgresGroupStore) Create(ctx context.Context, group *domain.Group) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := group.Validate(); err != nil {
		log.Warn("group validation failed during create",
			slog.String("error", err.Error()),
			slog.String("group_name", group.Name))
		return err
	}

	query := `
		INSERT INTO groups (product_id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		group.ProductID,
		group.Name,
		group.CreatedAt,
	).Scan(&group.ID)

	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrGroupNameExists) {
			// Expected under concurrent first purchases; the engine
			// regenerates the name and retries.
			log.Debug("group name already taken",
				slog.String("group_name", group.Name),
				slog.Int64("product_id", group.ProductID))
		} else {
			log.Error("failed to create group",
				slog.String("error", err.Error()),
				slog.String("group_name", group.Name))
		}
		return mapped
	}

	log.Info("group created successfully",
		slog.Int64("group_id", group.ID),
		slog.Int64("product_id", group.ProductID),
		slog.String("group_name", group.Name))
	return nil
}

// GetByID implements store.GroupStore.GetByID
func (s *PostgresGroupStore) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, product_id, name, created_at
		FROM groups
		WHERE id = $1
	`

	var group domain.Group
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.ProductID,
		&group.Name,
		&group.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("group not found", slog.Int64("group_id", id))
			return nil, store.ErrGroupNotFound
		}
		log.Error("failed to get group by ID",
			slog.String("error", err.Error()),
			slog.Int64("group_id", id))
		return nil, err
	}

	return &group, nil
}

// ListByProduct implements store.GroupStore.ListByProduct
// Groups are returned in creation order (ascending ID) with their current
// member counts, which is exactly the order the first-fit scan consumes.
func (s *PostgresGroupStore) ListByProduct(ctx context.Context, productID int64) ([]*store.GroupOccupancy, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT g.id, g.product_id, g.name, g.created_at,
			count(m.student_id) AS members
		FROM groups g
		LEFT JOIN group_members m ON m.group_id = g.id
		WHERE g.product_id = $1
		GROUP BY g.id
		ORDER BY g.id
	`

	rows, err := s.db.QueryContext(ctx, query, productID)
	if err != nil {
		log.Error("failed to list groups for product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", productID))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var occupancies []*store.GroupOccupancy
	for rows.Next() {
		var occ store.GroupOccupancy
		err := rows.Scan(
			&occ.Group.ID,
			&occ.Group.ProductID,
			&occ.Group.Name,
			&occ.Group.CreatedAt,
			&occ.Members,
		)
		if err != nil {
			log.Error("failed to scan group occupancy",
				slog.String("error", err.Error()))
			return nil, err
		}
		occupancies = append(occupancies, &occ)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return occupancies, nil
}

// CountByProduct implements store.GroupStore.CountByProduct
func (s *PostgresGroupStore) CountByProduct(ctx context.Context, productID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM groups WHERE product_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountMembers implements store.GroupStore.CountMembers
func (s *PostgresGroupStore) CountMembers(ctx context.Context, groupID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM group_members WHERE group_id = $1`, groupID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// AddMember implements store.GroupStore.AddMember
func (s *PostgresGroupStore) AddMember(ctx context.Context, groupID, productID, studentID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO group_members (group_id, product_id, student_id, joined_at)
		VALUES ($1, $2, $3, now())
	`

	if _, err := s.db.ExecContext(ctx, query, groupID, productID, studentID); err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrMembershipExists) {
			log.Debug("student already belongs to a group of this product",
				slog.Int64("student_id", studentID),
				slog.Int64("product_id", productID))
		} else {
			log.Error("failed to add group member",
				slog.String("error", err.Error()),
				slog.Int64("group_id", groupID),
				slog.Int64("student_id", studentID))
		}
		return mapped
	}

	log.Info("student added to group",
		slog.Int64("group_id", groupID),
		slog.Int64("product_id", productID),
		slog.Int64("student_id", studentID))
	return nil
}

// WithTx implements store.GroupStore.WithTx
func (s *PostgresGroupStore) WithTx(tx *sql.Tx) store.GroupStore {
	return &PostgresGroupStore{
		db:     tx,
		logger: s.logger,
	}
}

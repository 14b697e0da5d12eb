package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/platform/logger"
	"github.com/phrazzld/enroll-api/internal/store"
)

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the
// ProductStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProductStore(db store.DBTX, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore interface
var _ store.ProductStore = (*PostgresProductStore)(nil)

const productColumns = `id, teacher_id, name, start_date, price,
	min_group_size, max_group_size, created_at, updated_at`

// scanProduct reads one product row from the given scanner.
func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(
		&product.ID,
		&product.TeacherID,
		&product.Name,
		&product.StartDate,
		&product.Price,
		&product.MinGroupSize,
		&product.MaxGroupSize,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create implements store.ProductStore.Create
func (s *PostgresProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed during create",
			slog.String("error", err.Error()),
			slog.String("product_name", product.Name))
		return err
	}

	query := `
		INSERT INTO products (teacher_id, name, start_date, price,
			min_group_size, max_group_size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		product.TeacherID,
		product.Name,
		product.StartDate,
		product.Price,
		product.MinGroupSize,
		product.MaxGroupSize,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)

	if err != nil {
		mapped := MapError(err)
		log.Error("failed to create product",
			slog.String("error", err.Error()),
			slog.String("product_name", product.Name))
		return mapped
	}

	log.Info("product created successfully",
		slog.Int64("product_id", product.ID),
		slog.String("product_name", product.Name))
	return nil
}

// GetByID implements store.ProductStore.GetByID
func (s *PostgresProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := scanProduct(s.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found", slog.Int64("product_id", id))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product by ID",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, err
	}

	return product, nil
}

// GetForUpdate implements store.ProductStore.GetForUpdate
// The FOR UPDATE row lock serializes all allocation work against the same
// product for the remainder of the surrounding transaction.
func (s *PostgresProductStore) GetForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := scanProduct(s.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found for update", slog.Int64("product_id", id))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to lock product row",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, MapError(err)
	}

	return product, nil
}

// Update implements store.ProductStore.Update
func (s *PostgresProductStore) Update(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("product_id", product.ID))
		return err
	}

	product.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE products
		SET teacher_id = $1, name = $2, start_date = $3, price = $4,
			min_group_size = $5, max_group_size = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		product.TeacherID,
		product.Name,
		product.StartDate,
		product.Price,
		product.MinGroupSize,
		product.MaxGroupSize,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		mapped := MapError(err)
		log.Error("failed to update product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", product.ID))
		return mapped
	}

	if err := CheckRowsAffected(result, "product"); err != nil {
		return store.ErrProductNotFound
	}

	log.Info("product updated successfully",
		slog.Int64("product_id", product.ID))
	return nil
}

// ListPurchasable implements store.ProductStore.ListPurchasable
func (s *PostgresProductStore) ListPurchasable(
	ctx context.Context,
	now time.Time,
	offset, limit int,
) ([]*store.ProductListing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT p.id, p.teacher_id, p.name, p.start_date, p.price,
			p.min_group_size, p.max_group_size, p.created_at, p.updated_at,
			t.id, t.first_name, t.last_name, t.email, t.age, t.created_at, t.updated_at,
			(SELECT count(*) FROM lessons l WHERE l.product_id = p.id) AS lesson_count
		FROM products p
		JOIN teachers t ON t.id = p.teacher_id
		WHERE p.start_date > $1
		ORDER BY p.id
		OFFSET $2 LIMIT $3
	`

	rows, err := s.db.QueryContext(ctx, query, now, offset, limit)
	if err != nil {
		log.Error("failed to list purchasable products",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var listings []*store.ProductListing
	for rows.Next() {
		var listing store.ProductListing
		err := rows.Scan(
			&listing.Product.ID,
			&listing.Product.TeacherID,
			&listing.Product.Name,
			&listing.Product.StartDate,
			&listing.Product.Price,
			&listing.Product.MinGroupSize,
			&listing.Product.MaxGroupSize,
			&listing.Product.CreatedAt,
			&listing.Product.UpdatedAt,
			&listing.Teacher.ID,
			&listing.Teacher.FirstName,
			&listing.Teacher.LastName,
			&listing.Teacher.Email,
			&listing.Teacher.Age,
			&listing.Teacher.CreatedAt,
			&listing.Teacher.UpdatedAt,
			&listing.LessonCount,
		)
		if err != nil {
			log.Error("failed to scan product listing",
				slog.String("error", err.Error()))
			return nil, err
		}
		listings = append(listings, &listing)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}

// CountPurchasable implements store.ProductStore.CountPurchasable
func (s *PostgresProductStore) CountPurchasable(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM products WHERE start_date > $1`, now).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// WithTx implements store.ProductStore.WithTx
func (s *PostgresProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return &PostgresProductStore{
		db:     tx,
		logger: s.logger,
	}
}

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

// PostgresStudentStore implements the store.StudentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStudentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStudentStore creates a new PostgreSQL implementation of the
// StudentStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresStudentStore(db store.DBTX, logger *slog.Logger) *PostgresStudentStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStudentStore{
		db:     db,
		logger: logger.With(slog.String("component", "student_store")),
	}
}

// Ensure PostgresStudentStore implements store.StudentStore interface
var _ store.StudentStore = (*PostgresStudentStore)(nil)

// Create implements store.StudentStore.Create
func (s *PostgresStudentStore) Create(ctx context.Context, student *domain.Student) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := student.Validate(); err != nil {
		log.Warn("student validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO students (first_name, last_name, email, age, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Age,
		student.CreatedAt,
		student.UpdatedAt,
	).Scan(&student.ID)

	if err != nil {
		mapped := MapError(err)
		log.Error("failed to create student",
			slog.String("error", err.Error()))
		return mapped
	}

	log.Info("student created successfully",
		slog.Int64("student_id", student.ID))
	return nil
}

// GetByID implements store.StudentStore.GetByID
func (s *PostgresStudentStore) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, first_name, last_name, email, age, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var student domain.Student
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Age,
		&student.CreatedAt,
		&student.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("student not found", slog.Int64("student_id", id))
			return nil, store.ErrStudentNotFound
		}
		log.Error("failed to get student by ID",
			slog.String("error", err.Error()),
			slog.Int64("student_id", id))
		return nil, err
	}

	return &student, nil
}

// HasAccess implements store.StudentStore.HasAccess
// The access fact is authoritative: a student has access to a product iff
// a student_products row exists for the pair.
func (s *PostgresStudentStore) HasAccess(ctx context.Context, studentID, productID int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM student_products
			WHERE student_id = $1 AND product_id = $2
		)
	`

	var hasAccess bool
	if err := s.db.QueryRowContext(ctx, query, studentID, productID).Scan(&hasAccess); err != nil {
		log.Error("failed to check product access",
			slog.String("error", err.Error()),
			slog.Int64("student_id", studentID),
			slog.Int64("product_id", productID))
		return false, err
	}

	return hasAccess, nil
}

// GrantAccess implements store.StudentStore.GrantAccess
func (s *PostgresStudentStore) GrantAccess(ctx context.Context, studentID, productID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO student_products (student_id, product_id, purchased_at)
		VALUES ($1, $2, now())
	`

	if _, err := s.db.ExecContext(ctx, query, studentID, productID); err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrAccessExists) {
			log.Debug("student already holds access",
				slog.Int64("student_id", studentID),
				slog.Int64("product_id", productID))
		} else {
			log.Error("failed to grant product access",
				slog.String("error", err.Error()),
				slog.Int64("student_id", studentID),
				slog.Int64("product_id", productID))
		}
		return mapped
	}

	log.Info("product access granted",
		slog.Int64("student_id", studentID),
		slog.Int64("product_id", productID))
	return nil
}

// CountAll implements store.StudentStore.CountAll
func (s *PostgresStudentStore) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// WithTx implements store.StudentStore.WithTx
func (s *PostgresStudentStore) WithTx(tx *sql.Tx) store.StudentStore {
	return &PostgresStudentStore{
		db:     tx,
		logger: s.logger,
	}
}

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

// PostgresTeacherStore implements the store.TeacherStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTeacherStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTeacherStore creates a new PostgreSQL implementation of the
// TeacherStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTeacherStore(db store.DBTX, logger *slog.Logger) *PostgresTeacherStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTeacherStore{
		db:     db,
		logger: logger.With(slog.String("component", "teacher_store")),
	}
}

// Ensure PostgresTeacherStore implements store.TeacherStore interface
var _ store.TeacherStore = (*PostgresTeacherStore)(nil)

// Create implements store.TeacherStore.Create
func (s *PostgresTeacherStore) Create(ctx context.Context, teacher *domain.Teacher) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := teacher.Validate(); err != nil {
		log.Warn("teacher validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO teachers (first_name, last_name, email, age, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		teacher.FirstName,
		teacher.LastName,
		teacher.Email,
		teacher.Age,
		teacher.CreatedAt,
		teacher.UpdatedAt,
	).Scan(&teacher.ID)

	if err != nil {
		mapped := MapError(err)
		log.Error("failed to create teacher",
			slog.String("error", err.Error()))
		return mapped
	}

	log.Info("teacher created successfully",
		slog.Int64("teacher_id", teacher.ID))
	return nil
}

// GetByID implements store.TeacherStore.GetByID
func (s *PostgresTeacherStore) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, first_name, last_name, email, age, created_at, updated_at
		FROM teachers
		WHERE id = $1
	`

	var teacher domain.Teacher
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&teacher.ID,
		&teacher.FirstName,
		&teacher.LastName,
		&teacher.Email,
		&teacher.Age,
		&teacher.CreatedAt,
		&teacher.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("teacher not found", slog.Int64("teacher_id", id))
			return nil, store.ErrTeacherNotFound
		}
		log.Error("failed to get teacher by ID",
			slog.String("error", err.Error()),
			slog.Int64("teacher_id", id))
		return nil, err
	}

	return &teacher, nil
}

// WithTx implements store.TeacherStore.WithTx
func (s *PostgresTeacherStore) WithTx(tx *sql.Tx) store.TeacherStore {
	return &PostgresTeacherStore{
		db:     tx,
		logger: s.logger,
	}
}

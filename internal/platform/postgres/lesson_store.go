package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/platform/logger"
	"github.com/phrazzld/enroll-api/internal/store"
)

// PostgresLessonStore implements the store.LessonStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLessonStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLessonStore creates a new PostgreSQL implementation of the
// LessonStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresLessonStore(db store.DBTX, logger *slog.Logger) *PostgresLessonStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLessonStore{
		db:     db,
		logger: logger.With(slog.String("component", "lesson_store")),
	}
}

// Ensure PostgresLessonStore implements store.LessonStore interface
var _ store.LessonStore = (*PostgresLessonStore)(nil)

// Create implements store.LessonStore.Create
func (s *PostgresLessonStore) Create(ctx context.Context, lesson *domain.Lesson) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := lesson.Validate(); err != nil {
		log.Warn("lesson validation failed during create",
			slog.String("error", err.Error()),
			slog.String("lesson_name", lesson.Name))
		return err
	}

	query := `
		INSERT INTO lessons (product_id, name, video_url, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		lesson.ProductID,
		lesson.Name,
		lesson.VideoURL,
		lesson.CreatedAt,
	).Scan(&lesson.ID)

	if err != nil {
		mapped := MapError(err)
		log.Error("failed to create lesson",
			slog.String("error", err.Error()),
			slog.String("lesson_name", lesson.Name))
		return mapped
	}

	log.Info("lesson created successfully",
		slog.Int64("lesson_id", lesson.ID),
		slog.Int64("product_id", lesson.ProductID))
	return nil
}

// ListByProduct implements store.LessonStore.ListByProduct
// Lessons are returned in creation order (ascending ID), the stable order
// the access guard serves them in.
func (s *PostgresLessonStore) ListByProduct(ctx context.Context, productID int64) ([]*domain.Lesson, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, product_id, name, video_url, created_at
		FROM lessons
		WHERE product_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, productID)
	if err != nil {
		log.Error("failed to list lessons for product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", productID))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var lessons []*domain.Lesson
	for rows.Next() {
		var lesson domain.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.ProductID,
			&lesson.Name,
			&lesson.VideoURL,
			&lesson.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan lesson",
				slog.String("error", err.Error()))
			return nil, err
		}
		lessons = append(lessons, &lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lessons, nil
}

// WithTx implements store.LessonStore.WithTx
func (s *PostgresLessonStore) WithTx(tx *sql.Tx) store.LessonStore {
	return &PostgresLessonStore{
		db:     tx,
		logger: s.logger,
	}
}

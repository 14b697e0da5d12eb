package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/store"
)

// LessonService provides access-guarded lesson retrieval. Lessons are
// only visible to students who purchased the owning product.
type LessonService interface {
	// ListLessons returns the product's lessons in creation order,
	// provided the student holds access to the product.
	//
	// Returns ErrStudentNotFound or ErrProductNotFound if either party
	// does not exist, and ErrAccessDenied if the student never purchased
	// the product. A purchased product with no lessons yields an empty
	// slice, not an error.
	ListLessons(ctx context.Context, studentID, productID int64) ([]*domain.Lesson, error)
}

// lessonServiceImpl implements the LessonService interface
type lessonServiceImpl struct {
	studentStore store.StudentStore
	productStore store.ProductStore
	lessonStore  store.LessonStore
	logger       *slog.Logger
}

// NewLessonService creates a new LessonService.
// It returns an error if any of the required dependencies are nil.
func NewLessonService(
	studentStore store.StudentStore,
	productStore store.ProductStore,
	lessonStore store.LessonStore,
	logger *slog.Logger,
) (LessonService, error) {
	if studentStore == nil {
		return nil, &EnrollmentError{
			Operation: "create_service",
			Message:   "studentStore cannot be nil",
		}
	}
	if productStore == nil {
		return nil, &EnrollmentError{
			Operation: "create_service",
			Message:   "productStore cannot be nil",
		}
	}
	if lessonStore == nil {
		return nil, &EnrollmentError{
			Operation: "create_service",
			Message:   "lessonStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &lessonServiceImpl{
		studentStore: studentStore,
		productStore: productStore,
		lessonStore:  lessonStore,
		logger:       logger.With("component", "lesson_service"),
	}, nil
}

// ListLessons implements LessonService.ListLessons. The access check uses
// the same ledger the purchase operation writes, so a student sees a
// product's lessons exactly when a purchase for it has succeeded.
func (s *lessonServiceImpl) ListLessons(
	ctx context.Context,
	studentID, productID int64,
) ([]*domain.Lesson, error) {
	if _, err := s.studentStore.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, store.ErrStudentNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, NewEnrollmentError("list_lessons", "failed to load student", err)
	}

	if _, err := s.productStore.GetByID(ctx, productID); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, NewEnrollmentError("list_lessons", "failed to load product", err)
	}

	hasAccess, err := s.studentStore.HasAccess(ctx, studentID, productID)
	if err != nil {
		return nil, NewEnrollmentError("list_lessons", "failed to check access", err)
	}
	if !hasAccess {
		s.logger.Debug("lesson access denied",
			"student_id", studentID,
			"product_id", productID)
		return nil, ErrAccessDenied
	}

	lessons, err := s.lessonStore.ListByProduct(ctx, productID)
	if err != nil {
		return nil, NewEnrollmentError("list_lessons", "failed to list lessons", err)
	}

	return lessons, nil
}

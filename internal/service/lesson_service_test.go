package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/store"
)

type lessonFixture struct {
	students *MockStudentStore
	products *MockProductStore
	lessons  *MockLessonStore
	svc      LessonService
}

func newLessonFixture(t *testing.T) *lessonFixture {
	t.Helper()
	f := &lessonFixture{
		students: new(MockStudentStore),
		products: new(MockProductStore),
		lessons:  new(MockLessonStore),
	}
	svc, err := NewLessonService(f.students, f.products, f.lessons, testLogger())
	require.NoError(t, err)
	f.svc = svc
	return f
}

func TestListLessonsReturnsLessonsForPurchasedProduct(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	f.students.On("GetByID", mock.Anything, int64(10)).Return(testStudent(10), nil)
	f.products.On("GetByID", mock.Anything, int64(1)).
		Return(testProduct(1, 3, fixedNow.Add(time.Hour)), nil)
	f.students.On("HasAccess", mock.Anything, int64(10), int64(1)).Return(true, nil)

	want := []*domain.Lesson{
		{ID: 1, ProductID: 1, Name: "Introduction", VideoURL: "https://videos.example.com/1"},
		{ID: 2, ProductID: 1, Name: "Interfaces", VideoURL: "https://videos.example.com/2"},
	}
	f.lessons.On("ListByProduct", mock.Anything, int64(1)).Return(want, nil)

	got, err := f.svc.ListLessons(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListLessonsDeniesUnpurchasedProduct(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	f.students.On("GetByID", mock.Anything, int64(10)).Return(testStudent(10), nil)
	f.products.On("GetByID", mock.Anything, int64(1)).
		Return(testProduct(1, 3, fixedNow.Add(time.Hour)), nil)
	f.students.On("HasAccess", mock.Anything, int64(10), int64(1)).Return(false, nil)

	_, err := f.svc.ListLessons(context.Background(), 10, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)
	f.lessons.AssertNotCalled(t, "ListByProduct", mock.Anything, mock.Anything)
}

func TestListLessonsEmptyProduct(t *testing.T) {
	t.Parallel()

	f := newLessonFixture(t)
	f.students.On("GetByID", mock.Anything, int64(10)).Return(testStudent(10), nil)
	f.products.On("GetByID", mock.Anything, int64(1)).
		Return(testProduct(1, 3, fixedNow.Add(time.Hour)), nil)
	f.students.On("HasAccess", mock.Anything, int64(10), int64(1)).Return(true, nil)
	f.lessons.On("ListByProduct", mock.Anything, int64(1)).Return([]*domain.Lesson{}, nil)

	got, err := f.svc.ListLessons(context.Background(), 10, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListLessonsUnknownParties(t *testing.T) {
	t.Parallel()

	t.Run("unknown student", func(t *testing.T) {
		t.Parallel()

		f := newLessonFixture(t)
		f.students.On("GetByID", mock.Anything, int64(99)).
			Return(nil, store.ErrStudentNotFound)

		_, err := f.svc.ListLessons(context.Background(), 99, 1)
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("unknown product", func(t *testing.T) {
		t.Parallel()

		f := newLessonFixture(t)
		f.students.On("GetByID", mock.Anything, int64(10)).Return(testStudent(10), nil)
		f.products.On("GetByID", mock.Anything, int64(99)).
			Return(nil, store.ErrProductNotFound)

		_, err := f.svc.ListLessons(context.Background(), 10, 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

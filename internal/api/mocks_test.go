package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/service"
)

// MockEnrollmentService mocks the service.EnrollmentService interface
type MockEnrollmentService struct {
	mock.Mock
}

func (m *MockEnrollmentService) Purchase(
	ctx context.Context,
	studentID, productID int64,
) (*service.EnrollmentResult, error) {
	args := m.Called(ctx, studentID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EnrollmentResult), args.Error(1)
}

// MockLessonService mocks the service.LessonService interface
type MockLessonService struct {
	mock.Mock
}

func (m *MockLessonService) ListLessons(
	ctx context.Context,
	studentID, productID int64,
) ([]*domain.Lesson, error) {
	args := m.Called(ctx, studentID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lesson), args.Error(1)
}

// MockCatalogService mocks the service.CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListPurchasable(
	ctx context.Context,
	page, pageSize int,
) (*service.CatalogPage, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CatalogPage), args.Error(1)
}

// MockStatsService mocks the service.StatsService interface
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) ProductStats(
	ctx context.Context,
	page, pageSize int,
) (*service.StatsPage, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatsPage), args.Error(1)
}

package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/store"
)

// MockStudentStore mocks the store.StudentStore interface
type MockStudentStore struct {
	mock.Mock
}

func (m *MockStudentStore) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentStore) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

func (m *MockStudentStore) HasAccess(ctx context.Context, studentID, productID int64) (bool, error) {
	args := m.Called(ctx, studentID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStudentStore) GrantAccess(ctx context.Context, studentID, productID int64) error {
	args := m.Called(ctx, studentID, productID)
	return args.Error(0)
}

func (m *MockStudentStore) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStudentStore) WithTx(tx *sql.Tx) store.StudentStore {
	return m
}

// MockProductStore mocks the store.ProductStore interface
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductStore) GetForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductStore) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductStore) ListPurchasable(
	ctx context.Context,
	now time.Time,
	offset, limit int,
) ([]*store.ProductListing, error) {
	args := m.Called(ctx, now, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.ProductListing), args.Error(1)
}

func (m *MockProductStore) CountPurchasable(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return m
}

// MockGroupStore mocks the store.GroupStore interface
type MockGroupStore struct {
	mock.Mock
}

func (m *MockGroupStore) Create(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupStore) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *MockGroupStore) ListByProduct(
	ctx context.Context,
	productID int64,
) ([]*store.GroupOccupancy, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.GroupOccupancy), args.Error(1)
}

func (m *MockGroupStore) CountByProduct(ctx context.Context, productID int64) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

func (m *MockGroupStore) CountMembers(ctx context.Context, groupID int64) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *MockGroupStore) AddMember(ctx context.Context, groupID, productID, studentID int64) error {
	args := m.Called(ctx, groupID, productID, studentID)
	return args.Error(0)
}

func (m *MockGroupStore) WithTx(tx *sql.Tx) store.GroupStore {
	return m
}

// MockLessonStore mocks the store.LessonStore interface
type MockLessonStore struct {
	mock.Mock
}

func (m *MockLessonStore) Create(ctx context.Context, lesson *domain.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonStore) ListByProduct(
	ctx context.Context,
	productID int64,
) ([]*domain.Lesson, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Lesson), args.Error(1)
}

func (m *MockLessonStore) WithTx(tx *sql.Tx) store.LessonStore {
	return m
}

// MockStatsStore mocks the store.StatsStore interface
type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) ProductStats(
	ctx context.Context,
	offset, limit int,
) ([]*store.ProductStatsRow, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.ProductStatsRow), args.Error(1)
}

func (m *MockStatsStore) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsStore) CountStudents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockStatsCache mocks the StatsCache interface
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, key string, dest any) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockStatsCache) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// passthroughTx substitutes for store.RunInTransaction in unit tests: it
// invokes the function with a nil transaction, which the mock stores
// ignore, and surfaces its error the way a rolled-back transaction would.
func passthroughTx(ctx context.Context, db *sql.DB, fn store.TxFn) error {
	return fn(ctx, nil)
}

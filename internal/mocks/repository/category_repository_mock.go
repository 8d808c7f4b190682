package repository

import (
	"context"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a testify mock of the CategoryRepository interface.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock that asserts its expectations when the test ends.
func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCategoryRepository_Expecter registers expectations with typed method names.
type MockCategoryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCategoryRepository) EXPECT() *MockCategoryRepository_Expecter {
	return &MockCategoryRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Category
	if v, ok := ret.Get(0).(*entity.Category); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Category
	if v, ok := ret.Get(0).([]*entity.Category); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryRepository_Expecter) List(ctx any) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	ret := _m.Called(ctx, category)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) Create(ctx any, category any) *mock.Call {
	return _e.mock.On("Create", ctx, category)
}

func (_m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	ret := _m.Called(ctx, category)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) Update(ctx any, category any) *mock.Call {
	return _e.mock.On("Update", ctx, category)
}

func (_m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockCategoryRepository_Expecter) Delete(ctx any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

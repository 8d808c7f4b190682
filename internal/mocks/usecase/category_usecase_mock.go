package usecase

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCategoryUsecase is a testify mock of the CategoryUsecase interface.
type MockCategoryUsecase struct {
	mock.Mock
}

// NewMockCategoryUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCategoryUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryUsecase {
	m := &MockCategoryUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCategoryUsecase_Expecter registers expectations with typed method names.
type MockCategoryUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCategoryUsecase) EXPECT() *MockCategoryUsecase_Expecter {
	return &MockCategoryUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockCategoryUsecase) ListCategories(ctx context.Context) ([]usecase.CategoryStats, error) {
	ret := _m.Called(ctx)

	var r0 []usecase.CategoryStats
	if v, ok := ret.Get(0).([]usecase.CategoryStats); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryUsecase_Expecter) ListCategories(ctx any) *mock.Call {
	return _e.mock.On("ListCategories", ctx)
}

func (_m *MockCategoryUsecase) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.Category
	if v, ok := ret.Get(0).(*entity.Category); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryUsecase_Expecter) CreateCategory(ctx any, input any) *mock.Call {
	return _e.mock.On("CreateCategory", ctx, input)
}

func (_m *MockCategoryUsecase) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input usecase.CategoryInput) (*entity.Category, error) {
	ret := _m.Called(ctx, categoryID, input)

	var r0 *entity.Category
	if v, ok := ret.Get(0).(*entity.Category); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockCategoryUsecase_Expecter) UpdateCategory(ctx any, categoryID any, input any) *mock.Call {
	return _e.mock.On("UpdateCategory", ctx, categoryID, input)
}

func (_m *MockCategoryUsecase) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	ret := _m.Called(ctx, categoryID)

	return ret.Error(0)
}

func (_e *MockCategoryUsecase_Expecter) DeleteCategory(ctx any, categoryID any) *mock.Call {
	return _e.mock.On("DeleteCategory", ctx, categoryID)
}

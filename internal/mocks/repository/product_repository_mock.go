package repository

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a testify mock of the ProductRepository interface.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock that asserts its expectations when the test ends.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockProductRepository_Expecter registers expectations with typed method names.
type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Product
	if v, ok := ret.Get(0).(*entity.Product); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	ret := _m.Called(ctx, ids)

	var r0 []*entity.Product
	if v, ok := ret.Get(0).([]*entity.Product); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) FindByIDs(ctx any, ids any) *mock.Call {
	return _e.mock.On("FindByIDs", ctx, ids)
}

func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_e *MockProductRepository_Expecter) Create(ctx any, product any) *mock.Call {
	return _e.mock.On("Create", ctx, product)
}

func (_m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_e *MockProductRepository_Expecter) Update(ctx any, product any) *mock.Call {
	return _e.mock.On("Update", ctx, product)
}

func (_m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockProductRepository_Expecter) Delete(ctx any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

func (_m *MockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.Product
	if v, ok := ret.Get(0).([]*entity.Product); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) List(ctx any, filter any) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_m *MockProductRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	ret := _m.Called(ctx, limit)

	var r0 []*entity.Product
	if v, ok := ret.Get(0).([]*entity.Product); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) ListRecent(ctx any, limit any) *mock.Call {
	return _e.mock.On("ListRecent", ctx, limit)
}

func (_m *MockProductRepository) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	ret := _m.Called(ctx, filter)

	var r0 int64
	if v, ok := ret.Get(0).(int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) Count(ctx any, filter any) *mock.Call {
	return _e.mock.On("Count", ctx, filter)
}

func (_m *MockProductRepository) SumCarbonScore(ctx context.Context, filter repository.ProductFilter) (decimal.Decimal, error) {
	ret := _m.Called(ctx, filter)

	var r0 decimal.Decimal
	if v, ok := ret.Get(0).(decimal.Decimal); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) SumCarbonScore(ctx any, filter any) *mock.Call {
	return _e.mock.On("SumCarbonScore", ctx, filter)
}

func (_m *MockProductRepository) TotalsBySeller(ctx context.Context, sellerIDs ...uuid.UUID) ([]repository.SellerCatalogTotals, error) {
	ret := _m.Called(ctx, sellerIDs)

	var r0 []repository.SellerCatalogTotals
	if v, ok := ret.Get(0).([]repository.SellerCatalogTotals); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) TotalsBySeller(ctx any, sellerIDs any) *mock.Call {
	return _e.mock.On("TotalsBySeller", ctx, sellerIDs)
}

func (_m *MockProductRepository) CountByCategory(ctx context.Context) (map[uuid.UUID]int64, error) {
	ret := _m.Called(ctx)

	var r0 map[uuid.UUID]int64
	if v, ok := ret.Get(0).(map[uuid.UUID]int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductRepository_Expecter) CountByCategory(ctx any) *mock.Call {
	return _e.mock.On("CountByCategory", ctx)
}

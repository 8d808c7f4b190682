package repository

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a testify mock of the OrderRepository interface.
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository creates a mock that asserts its expectations when the test ends.
func NewMockOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockOrderRepository_Expecter registers expectations with typed method names.
type MockOrderRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrderRepository) EXPECT() *MockOrderRepository_Expecter {
	return &MockOrderRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Order
	if v, ok := ret.Get(0).(*entity.Order); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockOrderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.Order
	if v, ok := ret.Get(0).([]*entity.Order); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) List(ctx any, filter any) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_m *MockOrderRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	ret := _m.Called(ctx, limit)

	var r0 []*entity.Order
	if v, ok := ret.Get(0).([]*entity.Order); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) ListRecent(ctx any, limit any) *mock.Call {
	return _e.mock.On("ListRecent", ctx, limit)
}

func (_m *MockOrderRepository) Count(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	ret := _m.Called(ctx, filter)

	var r0 int64
	if v, ok := ret.Get(0).(int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) Count(ctx any, filter any) *mock.Call {
	return _e.mock.On("Count", ctx, filter)
}

func (_m *MockOrderRepository) SumTotalPrice(ctx context.Context, filter repository.OrderFilter) (decimal.Decimal, error) {
	ret := _m.Called(ctx, filter)

	var r0 decimal.Decimal
	if v, ok := ret.Get(0).(decimal.Decimal); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) SumTotalPrice(ctx any, filter any) *mock.Call {
	return _e.mock.On("SumTotalPrice", ctx, filter)
}

func (_m *MockOrderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	ret := _m.Called(ctx)

	var r0 map[entity.OrderStatus]int64
	if v, ok := ret.Get(0).(map[entity.OrderStatus]int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) CountByStatus(ctx any) *mock.Call {
	return _e.mock.On("CountByStatus", ctx)
}

func (_m *MockOrderRepository) SalesBySeller(ctx context.Context, sellerIDs ...uuid.UUID) ([]repository.SellerSalesTotals, error) {
	ret := _m.Called(ctx, sellerIDs)

	var r0 []repository.SellerSalesTotals
	if v, ok := ret.Get(0).([]repository.SellerSalesTotals); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) SalesBySeller(ctx any, sellerIDs any) *mock.Call {
	return _e.mock.On("SalesBySeller", ctx, sellerIDs)
}

func (_m *MockOrderRepository) SpendByCustomer(ctx context.Context, customerIDs ...uuid.UUID) ([]repository.CustomerSpendTotals, error) {
	ret := _m.Called(ctx, customerIDs)

	var r0 []repository.CustomerSpendTotals
	if v, ok := ret.Get(0).([]repository.CustomerSpendTotals); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) SpendByCustomer(ctx any, customerIDs any) *mock.Call {
	return _e.mock.On("SpendByCustomer", ctx, customerIDs)
}

func (_m *MockOrderRepository) SalesOfProduct(ctx context.Context, productID uuid.UUID) (repository.SalesTotals, error) {
	ret := _m.Called(ctx, productID)

	var r0 repository.SalesTotals
	if v, ok := ret.Get(0).(repository.SalesTotals); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRepository_Expecter) SalesOfProduct(ctx any, productID any) *mock.Call {
	return _e.mock.On("SalesOfProduct", ctx, productID)
}

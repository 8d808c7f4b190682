package usecase

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockOrderRollup is a testify mock of the OrderRollup interface.
type MockOrderRollup struct {
	mock.Mock
}

// NewMockOrderRollup creates a mock that asserts its expectations when the test ends.
func NewMockOrderRollup(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRollup {
	m := &MockOrderRollup{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockOrderRollup_Expecter registers expectations with typed method names.
type MockOrderRollup_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrderRollup) EXPECT() *MockOrderRollup_Expecter {
	return &MockOrderRollup_Expecter{mock: &_m.Mock}
}

func (_m *MockOrderRollup) CountOrders(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	var r0 int64
	if v, ok := ret.Get(0).(int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRollup_Expecter) CountOrders(ctx any) *mock.Call {
	return _e.mock.On("CountOrders", ctx)
}

func (_m *MockOrderRollup) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	ret := _m.Called(ctx)

	var r0 decimal.Decimal
	if v, ok := ret.Get(0).(decimal.Decimal); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRollup_Expecter) TotalRevenue(ctx any) *mock.Call {
	return _e.mock.On("TotalRevenue", ctx)
}

func (_m *MockOrderRollup) StatusBreakdown(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	ret := _m.Called(ctx)

	var r0 map[entity.OrderStatus]int64
	if v, ok := ret.Get(0).(map[entity.OrderStatus]int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRollup_Expecter) StatusBreakdown(ctx any) *mock.Call {
	return _e.mock.On("StatusBreakdown", ctx)
}

func (_m *MockOrderRollup) SellerSales(ctx context.Context, sellerID uuid.UUID) (*usecase.SalesStats, error) {
	ret := _m.Called(ctx, sellerID)

	var r0 *usecase.SalesStats
	if v, ok := ret.Get(0).(*usecase.SalesStats); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRollup_Expecter) SellerSales(ctx any, sellerID any) *mock.Call {
	return _e.mock.On("SellerSales", ctx, sellerID)
}

func (_m *MockOrderRollup) CustomerSpend(ctx context.Context, customerID uuid.UUID) (*usecase.CustomerSpend, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *usecase.CustomerSpend
	if v, ok := ret.Get(0).(*usecase.CustomerSpend); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRollup_Expecter) CustomerSpend(ctx any, customerID any) *mock.Call {
	return _e.mock.On("CustomerSpend", ctx, customerID)
}

func (_m *MockOrderRollup) ProductSales(ctx context.Context, productID uuid.UUID) (*usecase.SalesStats, error) {
	ret := _m.Called(ctx, productID)

	var r0 *usecase.SalesStats
	if v, ok := ret.Get(0).(*usecase.SalesStats); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRollup_Expecter) ProductSales(ctx any, productID any) *mock.Call {
	return _e.mock.On("ProductSales", ctx, productID)
}

func (_m *MockOrderRollup) OrderCarbonFootprint(ctx context.Context, orderID uuid.UUID) (*usecase.OrderCarbon, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *usecase.OrderCarbon
	if v, ok := ret.Get(0).(*usecase.OrderCarbon); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRollup_Expecter) OrderCarbonFootprint(ctx any, orderID any) *mock.Call {
	return _e.mock.On("OrderCarbonFootprint", ctx, orderID)
}

func (_m *MockOrderRollup) CustomerOrders(ctx context.Context, customerID *uuid.UUID) ([]usecase.CustomerOrder, error) {
	ret := _m.Called(ctx, customerID)

	var r0 []usecase.CustomerOrder
	if v, ok := ret.Get(0).([]usecase.CustomerOrder); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockOrderRollup_Expecter) CustomerOrders(ctx any, customerID any) *mock.Call {
	return _e.mock.On("CustomerOrders", ctx, customerID)
}

package usecase

import (
	"context"

	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockProductUsecase is a testify mock of the ProductUsecase interface.
type MockProductUsecase struct {
	mock.Mock
}

// NewMockProductUsecase creates a mock that asserts its expectations when the test ends.
func NewMockProductUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductUsecase {
	m := &MockProductUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockProductUsecase_Expecter registers expectations with typed method names.
type MockProductUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductUsecase) EXPECT() *MockProductUsecase_Expecter {
	return &MockProductUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockProductUsecase) CreateProduct(ctx context.Context, sellerID uuid.UUID, input usecase.ProductInput) (*usecase.ProductDetails, error) {
	ret := _m.Called(ctx, sellerID, input)

	var r0 *usecase.ProductDetails
	if v, ok := ret.Get(0).(*usecase.ProductDetails); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) CreateProduct(ctx any, sellerID any, input any) *mock.Call {
	return _e.mock.On("CreateProduct", ctx, sellerID, input)
}

func (_m *MockProductUsecase) UpdateProduct(ctx context.Context, sellerID uuid.UUID, productID uuid.UUID, input usecase.ProductInput) (*usecase.ProductDetails, error) {
	ret := _m.Called(ctx, sellerID, productID, input)

	var r0 *usecase.ProductDetails
	if v, ok := ret.Get(0).(*usecase.ProductDetails); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) UpdateProduct(ctx any, sellerID any, productID any, input any) *mock.Call {
	return _e.mock.On("UpdateProduct", ctx, sellerID, productID, input)
}

func (_m *MockProductUsecase) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetails, error) {
	ret := _m.Called(ctx, productID)

	var r0 *usecase.ProductDetails
	if v, ok := ret.Get(0).(*usecase.ProductDetails); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) GetProduct(ctx any, productID any) *mock.Call {
	return _e.mock.On("GetProduct", ctx, productID)
}

func (_m *MockProductUsecase) ListProducts(ctx context.Context, filter usecase.ProductFilter) ([]usecase.ProductDetails, error) {
	ret := _m.Called(ctx, filter)

	var r0 []usecase.ProductDetails
	if v, ok := ret.Get(0).([]usecase.ProductDetails); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) ListProducts(ctx any, filter any) *mock.Call {
	return _e.mock.On("ListProducts", ctx, filter)
}

func (_m *MockProductUsecase) DeleteProduct(ctx context.Context, sellerID uuid.UUID, productID uuid.UUID) error {
	ret := _m.Called(ctx, sellerID, productID)

	return ret.Error(0)
}

func (_e *MockProductUsecase_Expecter) DeleteProduct(ctx any, sellerID any, productID any) *mock.Call {
	return _e.mock.On("DeleteProduct", ctx, sellerID, productID)
}

func (_m *MockProductUsecase) PreviewScore(ctx context.Context, weightKg decimal.Decimal, shippingDistanceKm decimal.Decimal, ecoFriendly bool) (*usecase.ScoreResult, error) {
	ret := _m.Called(ctx, weightKg, shippingDistanceKm, ecoFriendly)

	var r0 *usecase.ScoreResult
	if v, ok := ret.Get(0).(*usecase.ScoreResult); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockProductUsecase_Expecter) PreviewScore(ctx any, weightKg any, shippingDistanceKm any, ecoFriendly any) *mock.Call {
	return _e.mock.On("PreviewScore", ctx, weightKg, shippingDistanceKm, ecoFriendly)
}

package usecase

import (
	"context"

	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockModerationUsecase is a testify mock of the ModerationUsecase interface.
type MockModerationUsecase struct {
	mock.Mock
}

// NewMockModerationUsecase creates a mock that asserts its expectations when the test ends.
func NewMockModerationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockModerationUsecase {
	m := &MockModerationUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockModerationUsecase_Expecter registers expectations with typed method names.
type MockModerationUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockModerationUsecase) EXPECT() *MockModerationUsecase_Expecter {
	return &MockModerationUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockModerationUsecase) ApproveSeller(ctx context.Context, sellerID uuid.UUID, notes string) error {
	ret := _m.Called(ctx, sellerID, notes)

	return ret.Error(0)
}

func (_e *MockModerationUsecase_Expecter) ApproveSeller(ctx any, sellerID any, notes any) *mock.Call {
	return _e.mock.On("ApproveSeller", ctx, sellerID, notes)
}

func (_m *MockModerationUsecase) RejectSeller(ctx context.Context, sellerID uuid.UUID, notes string) error {
	ret := _m.Called(ctx, sellerID, notes)

	return ret.Error(0)
}

func (_e *MockModerationUsecase_Expecter) RejectSeller(ctx any, sellerID any, notes any) *mock.Call {
	return _e.mock.On("RejectSeller", ctx, sellerID, notes)
}

func (_m *MockModerationUsecase) BlockSeller(ctx context.Context, sellerID uuid.UUID, reason string) error {
	ret := _m.Called(ctx, sellerID, reason)

	return ret.Error(0)
}

func (_e *MockModerationUsecase_Expecter) BlockSeller(ctx any, sellerID any, reason any) *mock.Call {
	return _e.mock.On("BlockSeller", ctx, sellerID, reason)
}

func (_m *MockModerationUsecase) UpdateUserStatus(ctx context.Context, userID uuid.UUID, active bool) error {
	ret := _m.Called(ctx, userID, active)

	return ret.Error(0)
}

func (_e *MockModerationUsecase_Expecter) UpdateUserStatus(ctx any, userID any, active any) *mock.Call {
	return _e.mock.On("UpdateUserStatus", ctx, userID, active)
}

func (_m *MockModerationUsecase) ApproveAdmin(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}

func (_e *MockModerationUsecase_Expecter) ApproveAdmin(ctx any, userID any) *mock.Call {
	return _e.mock.On("ApproveAdmin", ctx, userID)
}

func (_m *MockModerationUsecase) RejectUser(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}

func (_e *MockModerationUsecase_Expecter) RejectUser(ctx any, userID any) *mock.Call {
	return _e.mock.On("RejectUser", ctx, userID)
}

func (_m *MockModerationUsecase) ApproveProduct(ctx context.Context, productID uuid.UUID, notes string) error {
	ret := _m.Called(ctx, productID, notes)

	return ret.Error(0)
}

func (_e *MockModerationUsecase_Expecter) ApproveProduct(ctx any, productID any, notes any) *mock.Call {
	return _e.mock.On("ApproveProduct", ctx, productID, notes)
}

func (_m *MockModerationUsecase) RejectProduct(ctx context.Context, productID uuid.UUID, reason string) error {
	ret := _m.Called(ctx, productID, reason)

	return ret.Error(0)
}

func (_e *MockModerationUsecase_Expecter) RejectProduct(ctx any, productID any, reason any) *mock.Call {
	return _e.mock.On("RejectProduct", ctx, productID, reason)
}

func (_m *MockModerationUsecase) UpdateProductStatus(ctx context.Context, productID uuid.UUID, active bool) error {
	ret := _m.Called(ctx, productID, active)

	return ret.Error(0)
}

func (_e *MockModerationUsecase_Expecter) UpdateProductStatus(ctx any, productID any, active any) *mock.Call {
	return _e.mock.On("UpdateProductStatus", ctx, productID, active)
}

func (_m *MockModerationUsecase) RemoveProduct(ctx context.Context, productID uuid.UUID, reason string) error {
	ret := _m.Called(ctx, productID, reason)

	return ret.Error(0)
}

func (_e *MockModerationUsecase_Expecter) RemoveProduct(ctx any, productID any, reason any) *mock.Call {
	return _e.mock.On("RemoveProduct", ctx, productID, reason)
}

func (_m *MockModerationUsecase) UpdateProductEcoData(ctx context.Context, productID uuid.UUID, input usecase.EcoDataInput) (*usecase.ProductDetails, error) {
	ret := _m.Called(ctx, productID, input)

	var r0 *usecase.ProductDetails
	if v, ok := ret.Get(0).(*usecase.ProductDetails); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockModerationUsecase_Expecter) UpdateProductEcoData(ctx any, productID any, input any) *mock.Call {
	return _e.mock.On("UpdateProductEcoData", ctx, productID, input)
}

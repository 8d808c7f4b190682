package usecase

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAdminDashboardUsecase is a testify mock of the AdminDashboardUsecase interface.
type MockAdminDashboardUsecase struct {
	mock.Mock
}

// NewMockAdminDashboardUsecase creates a mock that asserts its expectations when the test ends.
func NewMockAdminDashboardUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAdminDashboardUsecase {
	m := &MockAdminDashboardUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAdminDashboardUsecase_Expecter registers expectations with typed method names.
type MockAdminDashboardUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAdminDashboardUsecase) EXPECT() *MockAdminDashboardUsecase_Expecter {
	return &MockAdminDashboardUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockAdminDashboardUsecase) Overview(ctx context.Context) (*usecase.AdminOverview, error) {
	ret := _m.Called(ctx)

	var r0 *usecase.AdminOverview
	if v, ok := ret.Get(0).(*usecase.AdminOverview); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockAdminDashboardUsecase_Expecter) Overview(ctx any) *mock.Call {
	return _e.mock.On("Overview", ctx)
}

func (_m *MockAdminDashboardUsecase) SellersWithStats(ctx context.Context) ([]usecase.SellerStats, error) {
	ret := _m.Called(ctx)

	var r0 []usecase.SellerStats
	if v, ok := ret.Get(0).([]usecase.SellerStats); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockAdminDashboardUsecase_Expecter) SellersWithStats(ctx any) *mock.Call {
	return _e.mock.On("SellersWithStats", ctx)
}

func (_m *MockAdminDashboardUsecase) UsersWithStats(ctx context.Context, role *entity.Role) ([]usecase.UserStats, error) {
	ret := _m.Called(ctx, role)

	var r0 []usecase.UserStats
	if v, ok := ret.Get(0).([]usecase.UserStats); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockAdminDashboardUsecase_Expecter) UsersWithStats(ctx any, role any) *mock.Call {
	return _e.mock.On("UsersWithStats", ctx, role)
}

func (_m *MockAdminDashboardUsecase) SellerStats(ctx context.Context, sellerID uuid.UUID) (*usecase.SellerStats, error) {
	ret := _m.Called(ctx, sellerID)

	var r0 *usecase.SellerStats
	if v, ok := ret.Get(0).(*usecase.SellerStats); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockAdminDashboardUsecase_Expecter) SellerStats(ctx any, sellerID any) *mock.Call {
	return _e.mock.On("SellerStats", ctx, sellerID)
}

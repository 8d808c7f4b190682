package usecase

import (
	"context"

	"ecobazaar/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRollup is a testify mock of the UserRollup interface.
type MockUserRollup struct {
	mock.Mock
}

// NewMockUserRollup creates a mock that asserts its expectations when the test ends.
func NewMockUserRollup(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRollup {
	m := &MockUserRollup{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserRollup_Expecter registers expectations with typed method names.
type MockUserRollup_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRollup) EXPECT() *MockUserRollup_Expecter {
	return &MockUserRollup_Expecter{mock: &_m.Mock}
}

func (_m *MockUserRollup) CountUsers(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	var r0 int64
	if v, ok := ret.Get(0).(int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRollup_Expecter) CountUsers(ctx any) *mock.Call {
	return _e.mock.On("CountUsers", ctx)
}

func (_m *MockUserRollup) CountByRole(ctx context.Context, role entity.Role) (int64, error) {
	ret := _m.Called(ctx, role)

	var r0 int64
	if v, ok := ret.Get(0).(int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRollup_Expecter) CountByRole(ctx any, role any) *mock.Call {
	return _e.mock.On("CountByRole", ctx, role)
}

func (_m *MockUserRollup) CountActiveByRole(ctx context.Context, role entity.Role) (int64, error) {
	ret := _m.Called(ctx, role)

	var r0 int64
	if v, ok := ret.Get(0).(int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRollup_Expecter) CountActiveByRole(ctx any, role any) *mock.Call {
	return _e.mock.On("CountActiveByRole", ctx, role)
}

func (_m *MockUserRollup) PendingAdmins(ctx context.Context) ([]*entity.User, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.User
	if v, ok := ret.Get(0).([]*entity.User); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRollup_Expecter) PendingAdmins(ctx any) *mock.Call {
	return _e.mock.On("PendingAdmins", ctx)
}

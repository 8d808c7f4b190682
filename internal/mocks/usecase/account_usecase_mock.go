// Package usecase provides testify mocks of the use case interfaces.
package usecase

import (
	"context"

	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountUsecase is a testify mock of the AccountUsecase interface.
type MockAccountUsecase struct {
	mock.Mock
}

// NewMockAccountUsecase creates a mock that asserts its expectations when the test ends.
func NewMockAccountUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUsecase {
	m := &MockAccountUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAccountUsecase_Expecter registers expectations with typed method names.
type MockAccountUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountUsecase) EXPECT() *MockAccountUsecase_Expecter {
	return &MockAccountUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockAccountUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *usecase.LoginOutput
	if v, ok := ret.Get(0).(*usecase.LoginOutput); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockAccountUsecase_Expecter) Login(ctx any, input any) *mock.Call {
	return _e.mock.On("Login", ctx, input)
}

func (_m *MockAccountUsecase) Summary(ctx context.Context, userID uuid.UUID) (*usecase.AccountSummary, error) {
	ret := _m.Called(ctx, userID)

	var r0 *usecase.AccountSummary
	if v, ok := ret.Get(0).(*usecase.AccountSummary); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockAccountUsecase_Expecter) Summary(ctx any, userID any) *mock.Call {
	return _e.mock.On("Summary", ctx, userID)
}

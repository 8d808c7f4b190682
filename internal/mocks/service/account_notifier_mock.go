// Package service provides testify mocks of the domain service ports.
package service

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockAccountNotifier is a testify mock of the AccountNotifier interface.
type MockAccountNotifier struct {
	mock.Mock
}

// NewMockAccountNotifier creates a mock that asserts its expectations when the test ends.
func NewMockAccountNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountNotifier {
	m := &MockAccountNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAccountNotifier_Expecter registers expectations with typed method names.
type MockAccountNotifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountNotifier) EXPECT() *MockAccountNotifier_Expecter {
	return &MockAccountNotifier_Expecter{mock: &_m.Mock}
}

func (_m *MockAccountNotifier) Record(ctx context.Context, notifications repository.NotificationRepository, notification *entity.Notification) error {
	ret := _m.Called(ctx, notifications, notification)

	return ret.Error(0)
}

func (_e *MockAccountNotifier_Expecter) Record(ctx any, notifications any, notification any) *mock.Call {
	return _e.mock.On("Record", ctx, notifications, notification)
}

func (_m *MockAccountNotifier) Publish(ctx context.Context, notification *entity.Notification) {
	_m.Called(ctx, notification)
}

func (_e *MockAccountNotifier_Expecter) Publish(ctx any, notification any) *mock.Call {
	return _e.mock.On("Publish", ctx, notification)
}

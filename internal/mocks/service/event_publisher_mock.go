package service

import (
	"context"

	"ecobazaar/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a testify mock of the EventPublisher interface.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a mock that asserts its expectations when the test ends.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockEventPublisher_Expecter registers expectations with typed method names.
type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

func (_m *MockEventPublisher) Publish(ctx context.Context, event *service.MarketplaceEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (_e *MockEventPublisher_Expecter) Publish(ctx any, event any) *mock.Call {
	return _e.mock.On("Publish", ctx, event)
}

func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}

func (_e *MockEventPublisher_Expecter) Close() *mock.Call {
	return _e.mock.On("Close")
}

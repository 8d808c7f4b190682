package usecase

import (
	"context"

	"ecobazaar/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockActivityFeedBuilder is a testify mock of the ActivityFeedBuilder interface.
type MockActivityFeedBuilder struct {
	mock.Mock
}

// NewMockActivityFeedBuilder creates a mock that asserts its expectations when the test ends.
func NewMockActivityFeedBuilder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockActivityFeedBuilder {
	m := &MockActivityFeedBuilder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockActivityFeedBuilder_Expecter registers expectations with typed method names.
type MockActivityFeedBuilder_Expecter struct {
	mock *mock.Mock
}

func (_m *MockActivityFeedBuilder) EXPECT() *MockActivityFeedBuilder_Expecter {
	return &MockActivityFeedBuilder_Expecter{mock: &_m.Mock}
}

func (_m *MockActivityFeedBuilder) Build(ctx context.Context, limit int) ([]entity.ActivityEvent, error) {
	ret := _m.Called(ctx, limit)

	var r0 []entity.ActivityEvent
	if v, ok := ret.Get(0).([]entity.ActivityEvent); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockActivityFeedBuilder_Expecter) Build(ctx any, limit any) *mock.Call {
	return _e.mock.On("Build", ctx, limit)
}

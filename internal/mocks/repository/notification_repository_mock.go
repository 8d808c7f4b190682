package repository

import (
	"context"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNotificationRepository is a testify mock of the NotificationRepository interface.
type MockNotificationRepository struct {
	mock.Mock
}

// NewMockNotificationRepository creates a mock that asserts its expectations when the test ends.
func NewMockNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockNotificationRepository_Expecter registers expectations with typed method names.
type MockNotificationRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationRepository) EXPECT() *MockNotificationRepository_Expecter {
	return &MockNotificationRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	ret := _m.Called(ctx, notification)

	return ret.Error(0)
}

func (_e *MockNotificationRepository_Expecter) Create(ctx any, notification any) *mock.Call {
	return _e.mock.On("Create", ctx, notification)
}

func (_m *MockNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*entity.Notification, error) {
	ret := _m.Called(ctx, userID, limit, offset)

	var r0 []*entity.Notification
	if v, ok := ret.Get(0).([]*entity.Notification); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockNotificationRepository_Expecter) ListByUser(ctx any, userID any, limit any, offset any) *mock.Call {
	return _e.mock.On("ListByUser", ctx, userID, limit, offset)
}

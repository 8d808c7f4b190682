package usecase

import (
	"context"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNotificationUsecase is a testify mock of the NotificationUsecase interface.
type MockNotificationUsecase struct {
	mock.Mock
}

// NewMockNotificationUsecase creates a mock that asserts its expectations when the test ends.
func NewMockNotificationUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationUsecase {
	m := &MockNotificationUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockNotificationUsecase_Expecter registers expectations with typed method names.
type MockNotificationUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationUsecase) EXPECT() *MockNotificationUsecase_Expecter {
	return &MockNotificationUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockNotificationUsecase) ListNotifications(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*entity.Notification, error) {
	ret := _m.Called(ctx, userID, limit, offset)

	var r0 []*entity.Notification
	if v, ok := ret.Get(0).([]*entity.Notification); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockNotificationUsecase_Expecter) ListNotifications(ctx any, userID any, limit any, offset any) *mock.Call {
	return _e.mock.On("ListNotifications", ctx, userID, limit, offset)
}

package repository

import (
	"context"

	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of the UserRepository interface.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock that asserts its expectations when the test ends.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserRepository_Expecter registers expectations with typed method names.
type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if v, ok := ret.Get(0).(*entity.User); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByID(ctx any, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *entity.User
	if v, ok := ret.Get(0).(*entity.User); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepository_Expecter) FindByEmail(ctx any, email any) *mock.Call {
	return _e.mock.On("FindByEmail", ctx, email)
}

func (_m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_e *MockUserRepository_Expecter) Create(ctx any, user any) *mock.Call {
	return _e.mock.On("Create", ctx, user)
}

func (_m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)

	return ret.Error(0)
}

func (_e *MockUserRepository_Expecter) Update(ctx any, user any) *mock.Call {
	return _e.mock.On("Update", ctx, user)
}

func (_m *MockUserRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.User
	if v, ok := ret.Get(0).([]*entity.User); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepository_Expecter) List(ctx any, filter any) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_m *MockUserRepository) ListRecentByRole(ctx context.Context, role entity.Role, limit int) ([]*entity.User, error) {
	ret := _m.Called(ctx, role, limit)

	var r0 []*entity.User
	if v, ok := ret.Get(0).([]*entity.User); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepository_Expecter) ListRecentByRole(ctx any, role any, limit any) *mock.Call {
	return _e.mock.On("ListRecentByRole", ctx, role, limit)
}

func (_m *MockUserRepository) Count(ctx context.Context, filter repository.UserFilter) (int64, error) {
	ret := _m.Called(ctx, filter)

	var r0 int64
	if v, ok := ret.Get(0).(int64); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockUserRepository_Expecter) Count(ctx any, filter any) *mock.Call {
	return _e.mock.On("Count", ctx, filter)
}

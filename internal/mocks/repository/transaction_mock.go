// Package repository provides testify mocks of the domain repository interfaces.
package repository

import (
	"context"

	"ecobazaar/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock of the TransactionManager interface.
// When the expectation returns a repository.RepositoryFactory, Execute runs the
// callback against it and returns the callback's error, the way a real
// transaction would.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock that asserts its expectations when the test ends.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTransactionManager_Expecter registers expectations with typed method names.
type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &_m.Mock}
}

func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	if factory, ok := ret.Get(0).(repository.RepositoryFactory); ok {
		return fn(factory)
	}

	return ret.Error(0)
}

func (_e *MockTransactionManager_Expecter) Execute(ctx any, fn any) *mock.Call {
	return _e.mock.On("Execute", ctx, fn)
}

// StubRepositoryFactory hands out fixed repositories to transactional callbacks.
type StubRepositoryFactory struct {
	Users         repository.UserRepository
	Products      repository.ProductRepository
	Categories    repository.CategoryRepository
	Notifications repository.NotificationRepository
}

func (f *StubRepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.Users
}

func (f *StubRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.Products
}

func (f *StubRepositoryFactory) NewCategoryRepository() repository.CategoryRepository {
	return f.Categories
}

func (f *StubRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return f.Notifications
}

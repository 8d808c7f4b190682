package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of the PasswordHasher interface.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock that asserts its expectations when the test ends.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPasswordHasher_Expecter registers expectations with typed method names.
type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	var r0 string
	if v, ok := ret.Get(0).(string); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockPasswordHasher_Expecter) Hash(password any) *mock.Call {
	return _e.mock.On("Hash", password)
}

func (_m *MockPasswordHasher) Check(password string, hash string) bool {
	ret := _m.Called(password, hash)

	var r0 bool
	if v, ok := ret.Get(0).(bool); ok {
		r0 = v
	}

	return r0
}

func (_e *MockPasswordHasher_Expecter) Check(password any, hash any) *mock.Call {
	return _e.mock.On("Check", password, hash)
}

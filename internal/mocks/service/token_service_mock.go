package service

import (
	"time"

	"ecobazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of the TokenService interface.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock that asserts its expectations when the test ends.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenService_Expecter registers expectations with typed method names.
type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenService) GenerateAccessToken(userID uuid.UUID, roles []string) (string, time.Time, error) {
	ret := _m.Called(userID, roles)

	var r0 string
	if v, ok := ret.Get(0).(string); ok {
		r0 = v
	}
	var r1 time.Time
	if v, ok := ret.Get(1).(time.Time); ok {
		r1 = v
	}

	return r0, r1, ret.Error(2)
}

func (_e *MockTokenService_Expecter) GenerateAccessToken(userID any, roles any) *mock.Call {
	return _e.mock.On("GenerateAccessToken", userID, roles)
}

func (_m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	var r0 *service.Claims
	if v, ok := ret.Get(0).(*service.Claims); ok {
		r0 = v
	}

	return r0, ret.Error(1)
}

func (_e *MockTokenService_Expecter) ValidateToken(tokenString any) *mock.Call {
	return _e.mock.On("ValidateToken", tokenString)
}

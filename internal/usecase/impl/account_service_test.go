package impl

import (
	"context"
	"testing"
	"time"

	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	mockRepo "ecobazaar/internal/mocks/repository"
	mockService "ecobazaar/internal/mocks/service"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	orderRepo    *mockRepo.MockOrderRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Orders:       NewOrderRollup(orderRepo, productRepo, userRepo, newDiscardLogger()),
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	seller := newSeller(true)
	seller.PasswordHash = "$2a$hash"
	expiresAt := time.Now().Add(15 * time.Minute)

	fx.userRepo.EXPECT().FindByEmail(ctx, "seller@example.com").Return(seller, nil)
	fx.hasher.EXPECT().Check("s3cret!", "$2a$hash").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(seller.ID, []string{"SELLER"}).Return("signed.jwt", expiresAt, nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: " Seller@Example.com ", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", output.AccessToken)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, seller, output.User)
}

func TestAccountService_Login_Rejections(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		customer := newCustomer()

		fx.userRepo.EXPECT().FindByEmail(ctx, customer.Email).Return(customer, nil)
		fx.hasher.EXPECT().Check("wrong", customer.PasswordHash).Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: customer.Email, Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		seller := newSeller(false)

		fx.userRepo.EXPECT().FindByEmail(ctx, seller.Email).Return(seller, nil)
		fx.hasher.EXPECT().Check("pw", seller.PasswordHash).Return(true)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: seller.Email, Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestAccountService_Summary(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	customer := newCustomer()
	customer.EcoPoints = 42

	fx.userRepo.EXPECT().FindByID(ctx, customer.ID).Return(customer, nil).Twice()
	fx.orderRepo.EXPECT().SpendByCustomer(ctx, []uuid.UUID{customer.ID}).Return([]repository.CustomerSpendTotals{{
		CustomerID: customer.ID, OrderCount: 3, TotalSpent: dec("99.90"),
	}}, nil)

	summary, err := fx.service.Summary(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, summary.EcoPoints)
	assert.Equal(t, entity.RoleCustomer, summary.Role)
	assert.Equal(t, int64(3), summary.OrderCount)
	assert.True(t, dec("99.90").Equal(summary.TotalSpent))
}

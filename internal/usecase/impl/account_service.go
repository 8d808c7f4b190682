package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ecobazaar/internal/delivery/context"
	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/domain/service"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountService struct {
	userRepo     repository.UserRepository
	orders       usecase.OrderRollup
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Orders       usecase.OrderRollup
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService creates the sign-in and account summary use case.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		orders:       params.Orders,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the password and issues an access token carrying the account role.
// Unknown emails and wrong passwords produce the same error.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is not active")
	}

	token, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, entity.Roles{user.Role}.Strings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}

// Summary returns the account with its order count and total spend.
func (srv *accountService) Summary(ctx context.Context, userID uuid.UUID) (*usecase.AccountSummary, error) {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	spend, err := srv.orders.CustomerSpend(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.AccountSummary{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       user.Role,
		EcoPoints:  user.EcoPoints,
		IsActive:   user.IsActive,
		OrderCount: spend.OrderCount,
		TotalSpent: spend.TotalSpent,
	}, nil
}

package handler

import (
	"net/http"
	"time"

	"ecobazaar/internal/delivery/api/response"
	deliverycontext "ecobazaar/internal/delivery/context"
	"ecobazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC      usecase.AccountUsecase
	NotificationUC usecase.NotificationUsecase
}

// AccountHandler serves sign-in and the signed-in account's own data.
type AccountHandler struct {
	accountUC      usecase.AccountUsecase
	notificationUC usecase.NotificationUsecase
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC:      params.AccountUC,
		notificationUC: params.NotificationUC,
	}
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token and the account
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   output.ExpiresAt,
		User:        newUserResponse(output.User),
	})
}

// GetStats returns the signed-in account with its order figures.
func (h *AccountHandler) GetStats(c echo.Context) error {
	userID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	summary, err := h.accountUC.Summary(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// ListNotifications returns one page of the signed-in account's notifications.
func (h *AccountHandler) ListNotifications(c echo.Context) error {
	userID, ok := deliverycontext.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

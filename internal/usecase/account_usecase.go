package usecase

import (
	"context"
	"time"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the access token issued after a successful login.
type LoginOutput struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        *entity.User
}

// AccountSummary is the signed-in account together with its order figures.
type AccountSummary struct {
	ID         uuid.UUID       `json:"id"`
	Username   string          `json:"username"`
	Email      string          `json:"email"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Role       entity.Role     `json:"role"`
	EcoPoints  int             `json:"ecoPoints"`
	IsActive   bool            `json:"isActive"`
	OrderCount int64           `json:"orderCount"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

// AccountUsecase defines sign-in and self-service account reads.
type AccountUsecase interface {
	// Login checks the credentials and issues an access token. Inactive accounts cannot sign in.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Summary returns the signed-in account with its order figures.
	Summary(ctx context.Context, userID uuid.UUID) (*AccountSummary, error)
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of an EcoBazaar access token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the bearer tokens used by the API.
type TokenService interface {
	// GenerateAccessToken signs a short-lived token for the account.
	GenerateAccessToken(userID uuid.UUID, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken verifies the signature, expiry and token type.
	ValidateToken(tokenString string) (*Claims, error)
}

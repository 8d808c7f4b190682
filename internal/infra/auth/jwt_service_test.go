package auth

import (
	"testing"
	"time"

	"ecobazaar/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.AccessTTL = time.Minute

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"ADMIN"}

	token, expiresAt, err := svc.GenerateAccessToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "another_secret_key_that_does_not_match"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, _, err := issuer.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	issued := svc.(*jwtService)
	issued.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, _, err := issued.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	issued.now = time.Now
	_, err = issued.ValidateToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNonAccessToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"uid":  uuid.NewString(),
		"type": "refresh",
		"exp":  time.Now().Add(time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(newTestConfig().SecretKey.Access))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

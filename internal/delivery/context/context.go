// Package context carries request-scoped values (request ID, logger and the
// authenticated account) from the HTTP middleware down to the use cases.
package context

import (
	"context"
	"log/slog"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyUserID    ContextKey = "userID"
	KeyRoles     ContextKey = "roles"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on the echo.Context, or a fresh
// UUID when the request-id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// RequestIDFrom returns the request ID of ctx, or "" outside a request.
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, falling back
// to the given logger outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetAccount records the authenticated account on the echo.Context.
func SetAccount(c echo.Context, userID uuid.UUID, roles entity.Roles) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoles), roles)
}

// AccountID returns the authenticated account ID. It reports false for
// anonymous requests.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// AccountRoles returns the roles carried by the access token.
func AccountRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(string(KeyRoles)).(entity.Roles)

	return roles, ok
}

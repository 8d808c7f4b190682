package middleware

import (
	"strings"

	"ecobazaar/internal/delivery/api/response"
	deliverycontext "ecobazaar/internal/delivery/context"
	"ecobazaar/internal/domain/entity"
	"ecobazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates bearer access tokens and enforces account roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the account ID and roles
// on the echo.Context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetAccount(c, claims.UserID, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole rejects accounts that do not hold the role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := deliverycontext.AccountRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !roles.Contains(required) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+required.String()+"' role")
			}

			return next(c)
		}
	}
}

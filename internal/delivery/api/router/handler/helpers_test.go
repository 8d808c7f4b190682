package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"ecobazaar/internal/delivery/api/response"
	"ecobazaar/internal/delivery/api/validator"
	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestContext builds an echo.Context for a JSON request. Path parameters
// are given as name/value pairs.
func newTestContext(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c, rec
}

// signIn marks the context as authenticated, the way AuthMiddleware does.
func signIn(c echo.Context, userID uuid.UUID, roles ...entity.Role) {
	c.Set("userID", userID)
	c.Set("roles", entity.Roles(roles))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, data any) {
	t.Helper()

	body := struct {
		Data any `json:"data"`
	}{Data: data}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

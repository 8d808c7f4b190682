// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"strconv"

	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}

// queryID parses an optional UUID query parameter.
func queryID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return &id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return v, nil
}

// queryBool parses an optional boolean query parameter; absent means false.
func queryBool(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return v, nil
}

// queryRole parses an optional role filter.
func queryRole(c echo.Context, name string) (*entity.Role, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	role, ok := entity.ParseRole(raw)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return &role, nil
}

// bind decodes and validates the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}

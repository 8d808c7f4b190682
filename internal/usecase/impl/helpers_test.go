package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"ecobazaar/internal/domain/carbon"
	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestEngine(t *testing.T) *carbon.Engine {
	t.Helper()

	engine, err := carbon.NewEngine(carbon.DefaultCoefficients())
	require.NoError(t, err)

	return engine
}

func newSeller(active bool) *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Username:  "greenleaf",
		Email:     "seller@example.com",
		FirstName: "Asha",
		LastName:  "Rao",
		Role:      entity.RoleSeller,
		IsActive:  active,
		CreatedAt: time.Now().Add(-time.Hour),
	}
}

func newCustomer() *entity.User {
	return &entity.User{
		ID:        uuid.New(),
		Username:  "shopper",
		Email:     "customer@example.com",
		FirstName: "Lena",
		LastName:  "Park",
		Role:      entity.RoleCustomer,
		IsActive:  true,
		CreatedAt: time.Now().Add(-time.Hour),
	}
}

func newScoredProduct(t *testing.T, seller *entity.User, weight, distance string, eco bool) *entity.Product {
	t.Helper()

	footprint, err := newTestEngine(t).Score(dec(weight), dec(distance), eco)
	require.NoError(t, err)

	return &entity.Product{
		ID:        uuid.New(),
		Name:      "Jute Bag",
		Price:     dec("12.50"),
		SellerID:  seller.ID,
		IsActive:  true,
		Footprint: footprint,
		CreatedAt: time.Now(),
		Seller:    seller,
	}
}

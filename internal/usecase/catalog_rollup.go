package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellerCatalogStats summarizes the catalog of one seller.
type SellerCatalogStats struct {
	ProductCount       int64           `json:"productCount"`
	ActiveProductCount int64           `json:"activeProductCount"`
	CarbonImpact       decimal.Decimal `json:"carbonImpact"`
	CarbonReduction    decimal.Decimal `json:"carbonReduction"`
}

// CategoryStats is a category together with its derived product count.
type CategoryStats struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	ProductCount int64     `json:"productCount"`
}

// CatalogRollup aggregates counters and sums over products.
type CatalogRollup interface {
	CountProducts(ctx context.Context) (int64, error)
	CountActiveProducts(ctx context.Context) (int64, error)

	// TotalCarbonImpact sums the carbon score of every product. It is zero for an empty catalog.
	TotalCarbonImpact(ctx context.Context) (decimal.Decimal, error)

	// SellerCatalog summarizes the products of one seller.
	SellerCatalog(ctx context.Context, sellerID uuid.UUID) (*SellerCatalogStats, error)

	// CategoryBreakdown lists every category with its product count, including empty ones.
	CategoryBreakdown(ctx context.Context) ([]CategoryStats, error)

	// CategoryProductCount counts the products of one category.
	CategoryProductCount(ctx context.Context, categoryID uuid.UUID) (int64, error)
}

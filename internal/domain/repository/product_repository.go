package repository

import (
	"context"
	"errors"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows product listings, counts and sums. Zero values do not filter.
type ProductFilter struct {
	SellerID   *uuid.UUID
	CategoryID *uuid.UUID
	IsActive   *bool
	EcoOnly    bool
}

// SellerCatalogTotals is one row of the per-seller product aggregate.
type SellerCatalogTotals struct {
	SellerID           uuid.UUID
	ProductCount       int64
	ActiveProductCount int64
	CarbonImpact       decimal.Decimal
	CarbonReduction    decimal.Decimal
}

// ProductRepository defines persistence operations for catalog products.
// Reads preload the seller and the category.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns the products matching the filter, newest first.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// ListRecent returns at most limit products, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Product, error)

	// Count returns the number of products matching the filter.
	Count(ctx context.Context, filter ProductFilter) (int64, error)

	// SumCarbonScore returns the total carbon score of the matching products, zero when none match.
	SumCarbonScore(ctx context.Context, filter ProductFilter) (decimal.Decimal, error)

	// TotalsBySeller aggregates the catalog per seller. With no ids every seller
	// owning at least one product is returned.
	TotalsBySeller(ctx context.Context, sellerIDs ...uuid.UUID) ([]SellerCatalogTotals, error)

	// CountByCategory returns the product count of every category that has products.
	CountByCategory(ctx context.Context) (map[uuid.UUID]int64, error)
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the seller-editable fields of a product.
type ProductInput struct {
	Name               string
	Description        string
	Price              decimal.Decimal
	StockQuantity      int
	ImageURL           string
	CategoryID         *uuid.UUID
	WeightKg           decimal.Decimal
	ShippingDistanceKm decimal.Decimal
	IsEcoFriendly      bool
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	CategoryID *uuid.UUID
	SellerID   *uuid.UUID
	EcoOnly    bool
	ActiveOnly bool
	// PendingOnly keeps inactive products only. It wins over ActiveOnly.
	PendingOnly bool
}

// ScoreResult is the derived triple of a carbon scoring.
type ScoreResult struct {
	CarbonScore     decimal.Decimal `json:"carbonScore"`
	EcoPoints       int             `json:"ecoPoints"`
	CarbonReduction decimal.Decimal `json:"carbonReduction"`
}

// ProductDetails is the flattened product view returned to clients.
type ProductDetails struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	StockQuantity      int             `json:"stockQuantity"`
	ImageURL           string          `json:"imageUrl"`
	SellerID           uuid.UUID       `json:"sellerId"`
	SellerName         string          `json:"sellerName"`
	CategoryID         *uuid.UUID      `json:"categoryId,omitempty"`
	CategoryName       string          `json:"categoryName,omitempty"`
	IsActive           bool            `json:"isActive"`
	Status             string          `json:"status"`
	WeightKg           decimal.Decimal `json:"weightKg"`
	ShippingDistanceKm decimal.Decimal `json:"shippingDistanceKm"`
	IsEcoFriendly      bool            `json:"isEcoFriendly"`
	ScoreResult
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProductDetails flattens a product and its preloaded seller and category.
func NewProductDetails(product *entity.Product) ProductDetails {
	footprint := product.Footprint

	return ProductDetails{
		ID:                 product.ID,
		Name:               product.Name,
		Description:        product.Description,
		Price:              product.Price,
		StockQuantity:      product.StockQuantity,
		ImageURL:           product.ImageURL,
		SellerID:           product.SellerID,
		SellerName:         product.SellerName(),
		CategoryID:         product.CategoryID,
		CategoryName:       product.CategoryName(),
		IsActive:           product.IsActive,
		Status:             product.ApprovalStatus(),
		WeightKg:           footprint.WeightKg(),
		ShippingDistanceKm: footprint.ShippingDistanceKm(),
		IsEcoFriendly:      footprint.EcoFriendly(),
		ScoreResult: ScoreResult{
			CarbonScore:     footprint.CarbonScore(),
			EcoPoints:       footprint.EcoPoints(),
			CarbonReduction: footprint.CarbonReduction(),
		},
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

// ProductUsecase defines the catalog operations available to shoppers and sellers.
type ProductUsecase interface {
	// CreateProduct scores and stores a new listing owned by an active seller.
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input ProductInput) (*ProductDetails, error)

	// UpdateProduct replaces the editable fields of a listing the seller owns and rescores it.
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input ProductInput) (*ProductDetails, error)

	// GetProduct returns a single listing.
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetails, error)

	// ListProducts returns the listings matching the filter, newest first.
	ListProducts(ctx context.Context, filter ProductFilter) ([]ProductDetails, error)

	// DeleteProduct removes a listing the seller owns.
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error

	// PreviewScore scores product attributes without storing anything.
	PreviewScore(ctx context.Context, weightKg, shippingDistanceKm decimal.Decimal, ecoFriendly bool) (*ScoreResult, error)
}

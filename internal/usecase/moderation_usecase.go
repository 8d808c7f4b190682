package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EcoDataInput overrides the scoring inputs of a product. Nil measurements keep the stored value.
type EcoDataInput struct {
	IsEcoFriendly      bool
	WeightKg           *decimal.Decimal
	ShippingDistanceKm *decimal.Decimal
	AdminNotes         string
}

// ModerationUsecase defines the admin actions on accounts and listings.
// Every action notifies the affected account.
type ModerationUsecase interface {
	ApproveSeller(ctx context.Context, sellerID uuid.UUID, notes string) error
	RejectSeller(ctx context.Context, sellerID uuid.UUID, notes string) error
	BlockSeller(ctx context.Context, sellerID uuid.UUID, reason string) error

	UpdateUserStatus(ctx context.Context, userID uuid.UUID, active bool) error
	ApproveAdmin(ctx context.Context, userID uuid.UUID) error
	RejectUser(ctx context.Context, userID uuid.UUID) error

	ApproveProduct(ctx context.Context, productID uuid.UUID, notes string) error
	RejectProduct(ctx context.Context, productID uuid.UUID, reason string) error
	UpdateProductStatus(ctx context.Context, productID uuid.UUID, active bool) error
	RemoveProduct(ctx context.Context, productID uuid.UUID, reason string) error

	// UpdateProductEcoData rescores a product from the given inputs.
	UpdateProductEcoData(ctx context.Context, productID uuid.UUID, input EcoDataInput) (*ProductDetails, error)
}

package entity

import (
	"time"

	"ecobazaar/internal/domain/carbon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// StatusApproved labels an active seller or product.
	StatusApproved = "APPROVED"
	// StatusPending labels a seller or product awaiting approval.
	StatusPending = "PENDING"
)

// Product is a catalog listing owned by a seller.
type Product struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	ImageURL      string
	SellerID      uuid.UUID
	CategoryID    *uuid.UUID
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Footprint holds the scoring inputs together with the derived carbon score,
	// eco points and carbon reduction. Replace it as a whole.
	Footprint carbon.Footprint

	// Seller and Category are populated only by queries that preload them.
	Seller   *User
	Category *Category
}

// ApprovalStatus returns the moderation label used on the admin dashboard.
func (p *Product) ApprovalStatus() string {
	return approvalStatus(p.IsActive)
}

// SellerName returns the preloaded seller's full name, or "" when not loaded.
func (p *Product) SellerName() string {
	if p.Seller == nil {
		return ""
	}

	return p.Seller.FullName()
}

// CategoryName returns the preloaded category name, or "" when not loaded.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}

	return p.Category.Name
}

func approvalStatus(active bool) string {
	if active {
		return StatusApproved
	}

	return StatusPending
}

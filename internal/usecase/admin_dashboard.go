package usecase

import (
	"context"
	"time"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdminOverview is the admin dashboard summary.
type AdminOverview struct {
	TotalUsers                int64           `json:"totalUsers"`
	TotalSellers              int64           `json:"totalSellers"`
	TotalCustomers            int64           `json:"totalCustomers"`
	ActiveSellers             int64           `json:"activeSellers"`
	TotalProducts             int64           `json:"totalProducts"`
	TotalCarbonImpact         decimal.Decimal `json:"totalCarbonImpact"`
	PendingSellerApplications int64           `json:"pendingSellerApplications"`
	TotalOrders               int64           `json:"totalOrders"`
	TotalRevenue              decimal.Decimal `json:"totalRevenue"`
}

// SellerStats is a seller account together with its catalog and sales figures.
type SellerStats struct {
	ID                 uuid.UUID       `json:"id"`
	Username           string          `json:"username"`
	Email              string          `json:"email"`
	FirstName          string          `json:"firstName"`
	LastName           string          `json:"lastName"`
	IsActive           bool            `json:"isActive"`
	CreatedAt          time.Time       `json:"createdAt"`
	ProductCount       int64           `json:"productCount"`
	ActiveProductCount int64           `json:"activeProductCount"`
	CarbonImpact       decimal.Decimal `json:"carbonImpact"`
	CarbonReduction    decimal.Decimal `json:"carbonReduction"`
	Revenue            decimal.Decimal `json:"revenue"`
	OrderCount         int64           `json:"orderCount"`
}

// UserStats is an account together with its order figures.
type UserStats struct {
	ID         uuid.UUID       `json:"id"`
	Username   string          `json:"username"`
	Email      string          `json:"email"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Role       entity.Role     `json:"role"`
	EcoPoints  int             `json:"ecoPoints"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	OrderCount int64           `json:"orderCount"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

// AdminDashboardUsecase assembles the dashboard views from the rollups.
type AdminDashboardUsecase interface {
	// Overview issues the summary reads concurrently. Any failed read fails the whole overview.
	Overview(ctx context.Context) (*AdminOverview, error)

	// SellersWithStats lists every seller with catalog and sales figures.
	SellersWithStats(ctx context.Context) ([]SellerStats, error)

	// UsersWithStats lists accounts, optionally of one role, with their order figures.
	UsersWithStats(ctx context.Context, role *entity.Role) ([]UserStats, error)

	// SellerStats returns the figures of one seller for the seller dashboard.
	SellerStats(ctx context.Context, sellerID uuid.UUID) (*SellerStats, error)
}

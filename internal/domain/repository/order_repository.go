package repository

import (
	"context"
	"errors"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings and sums. Nil fields do not filter.
type OrderFilter struct {
	CustomerID *uuid.UUID
}

// SalesTotals counts distinct orders and sums line revenue (unit price x quantity).
type SalesTotals struct {
	OrderCount int64
	Revenue    decimal.Decimal
}

// SellerSalesTotals is one row of the per-seller sales aggregate.
type SellerSalesTotals struct {
	SellerID uuid.UUID
	SalesTotals
}

// CustomerSpendTotals is one row of the per-customer spend aggregate.
type CustomerSpendTotals struct {
	CustomerID uuid.UUID
	OrderCount int64
	TotalSpent decimal.Decimal
}

// OrderRepository defines read operations over placed orders.
type OrderRepository interface {
	// FindByID returns the order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns matching orders newest first, with customer, items and item products.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// ListRecent returns at most limit orders newest first, with their customer.
	ListRecent(ctx context.Context, limit int) ([]*entity.Order, error)

	Count(ctx context.Context, filter OrderFilter) (int64, error)

	// SumTotalPrice returns the summed order totals, zero when no order matches.
	SumTotalPrice(ctx context.Context, filter OrderFilter) (decimal.Decimal, error)

	// CountByStatus returns the number of orders per lifecycle status.
	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// SalesBySeller aggregates order lines per product seller. With no ids every
	// seller with at least one sold line is returned.
	SalesBySeller(ctx context.Context, sellerIDs ...uuid.UUID) ([]SellerSalesTotals, error)

	// SpendByCustomer aggregates orders per customer. With no ids every
	// customer with at least one order is returned.
	SpendByCustomer(ctx context.Context, customerIDs ...uuid.UUID) ([]CustomerSpendTotals, error)

	// SalesOfProduct aggregates the order lines of one product.
	SalesOfProduct(ctx context.Context, productID uuid.UUID) (SalesTotals, error)
}

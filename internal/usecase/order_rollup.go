package usecase

import (
	"context"
	"time"

	"ecobazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesStats counts distinct orders and sums the matching line revenue.
type SalesStats struct {
	OrderCount int64           `json:"orderCount"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// CustomerSpend summarizes the orders of one customer.
type CustomerSpend struct {
	OrderCount int64           `json:"orderCount"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
}

// CustomerOrderItem is one line of a monitored order.
type CustomerOrderItem struct {
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CustomerOrder is the admin monitoring view of an order.
type CustomerOrder struct {
	ID               uuid.UUID           `json:"id"`
	CustomerID       uuid.UUID           `json:"customerId"`
	CustomerName     string              `json:"customerName"`
	Items            []CustomerOrderItem `json:"items"`
	TotalPrice       decimal.Decimal     `json:"totalPrice"`
	TotalCarbonScore decimal.Decimal     `json:"totalCarbonScore"`
	Status           entity.OrderStatus  `json:"status"`
	ShippingAddress  string              `json:"shippingAddress"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// OrderCarbon is the carbon footprint of an order recomputed from current product data.
type OrderCarbon struct {
	OrderID uuid.UUID `json:"orderId"`
	// CarbonScore is the sum of current product carbon score times quantity.
	CarbonScore decimal.Decimal `json:"carbonScore"`
	// RecordedCarbonScore is the total stored when the order was placed.
	RecordedCarbonScore decimal.Decimal `json:"recordedCarbonScore"`
	// MissingProducts counts lines whose product no longer exists.
	MissingProducts int `json:"missingProducts"`
}

// OrderRollup aggregates order counts and revenue.
type OrderRollup interface {
	CountOrders(ctx context.Context) (int64, error)

	// TotalRevenue sums every order total. It is zero when there are no orders.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)

	// StatusBreakdown counts orders per lifecycle status.
	StatusBreakdown(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// SellerSales counts the distinct orders containing the seller's products and sums their line revenue.
	SellerSales(ctx context.Context, sellerID uuid.UUID) (*SalesStats, error)

	// CustomerSpend summarizes the orders placed by one customer.
	CustomerSpend(ctx context.Context, customerID uuid.UUID) (*CustomerSpend, error)

	// ProductSales counts the orders containing a product and sums its line revenue.
	ProductSales(ctx context.Context, productID uuid.UUID) (*SalesStats, error)

	// OrderCarbonFootprint recomputes the carbon total of an order from current product state.
	OrderCarbonFootprint(ctx context.Context, orderID uuid.UUID) (*OrderCarbon, error)

	// CustomerOrders lists orders newest first, optionally for one customer.
	CustomerOrders(ctx context.Context, customerID *uuid.UUID) ([]CustomerOrder, error)
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle tag of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// Order is a placed customer order.
type Order struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	Items            []OrderItem
	TotalPrice       decimal.Decimal
	TotalCarbonScore decimal.Decimal // Value recorded at checkout; analytics recompute it from current products.
	Status           OrderStatus
	ShippingAddress  string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Customer is populated only by queries that preload it.
	Customer *User
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal // Unit price at checkout.

	// Product is populated only by queries that preload it.
	Product *Product
}

// LineTotal returns unit price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CustomerName returns the preloaded customer's full name, or "" when not loaded.
func (o *Order) CustomerName() string {
	if o.Customer == nil {
		return ""
	}

	return o.Customer.FullName()
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalCarbonScore decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	Status           string          `gorm:"type:varchar(20);not null;index"`
	ShippingAddress  string          `gorm:"type:text"`
	CreatedAt        time.Time       `gorm:"index"`
	UpdatedAt        time.Time

	Customer *UserModel       `gorm:"foreignKey:CustomerID"`
	Items    []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Price is the unit price at checkout.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

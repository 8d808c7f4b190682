package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. The carbon columns are unscaled
// numerics so scores round-trip exactly.
type ProductModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name               string          `gorm:"type:varchar(200);not null"`
	Description        string          `gorm:"type:text"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	StockQuantity      int             `gorm:"not null;default:0"`
	ImageURL           string          `gorm:"type:text"`
	SellerID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index"`
	IsActive           bool            `gorm:"not null;default:false;index"`
	WeightKg           decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	ShippingDistanceKm decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	IsEcoFriendly      bool            `gorm:"not null;default:false"`
	CarbonScore        decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	EcoPoints          int             `gorm:"not null;default:0"`
	CarbonReduction    decimal.Decimal `gorm:"type:numeric;not null;default:0"`
	CreatedAt          time.Time       `gorm:"index"`
	UpdatedAt          time.Time

	Seller   *UserModel     `gorm:"foreignKey:SellerID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

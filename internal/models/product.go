package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item. StockQuantity is only ever mutated
// through the inventory reserve/release primitives and never drops below
// zero.
type Product struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CategoryID    string          `json:"category_id" gorm:"index;type:varchar(36)" validate:"required"`
	Name          string          `json:"name" gorm:"type:varchar(255)" validate:"required,min=3,max=255"`
	Description   string          `json:"description" validate:"omitempty,max=2000"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	SKU           string          `json:"sku" gorm:"uniqueIndex;type:varchar(100)" validate:"required,max=100"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
	ImageURL      string          `json:"image_url,omitempty" gorm:"type:varchar(255)"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions is the only legal set of status changes:
// pending -> processing -> shipped -> delivered, with cancellation
// allowed from pending or processing. Delivered and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a single line of an order. PricePerUnit is the product
// price captured when the stock was reserved and never changes afterwards,
// even if the product is repriced.
type OrderItem struct {
	ID           string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID      string          `json:"order_id" gorm:"type:varchar(36);uniqueIndex:uk_order_product"`
	ProductID    string          `json:"product_id" gorm:"type:varchar(36);uniqueIndex:uk_order_product" validate:"required"`
	Quantity     int             `json:"quantity" validate:"required,gte=1"`
	PricePerUnit decimal.Decimal `json:"price_per_unit" gorm:"type:decimal(10,2)"`
}

// Order represents a customer order. TotalAmount is computed once at
// creation from the reserved unit prices and never recomputed.
type Order struct {
	ID                string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID            string          `json:"user_id" gorm:"index;type:varchar(36)"`
	ShippingAddressID string          `json:"shipping_address_id" gorm:"type:varchar(36)"`
	OrderDate         time.Time       `json:"order_date"`
	Status            OrderStatus     `json:"status" gorm:"type:varchar(20)"`
	TotalAmount       decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2)"`
	ShippingMethod    string          `json:"shipping_method" gorm:"type:varchar(50)"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	Items    []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Payments []Payment   `json:"payments,omitempty" gorm:"foreignKey:OrderID"`
}

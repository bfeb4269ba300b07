package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the payment lifecycle state.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// paymentTransitions: pending -> completed|failed, completed -> refunded.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:   {PaymentStatusCompleted, PaymentStatusFailed},
	PaymentStatusCompleted: {PaymentStatusRefunded},
}

// CanTransitionTo reports whether moving from s to target is legal.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	for _, next := range paymentTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Payment records one payment attempt against an order. Amount must match
// the order's total exactly; partial payments are not modeled.
type Payment struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID       string          `json:"order_id" gorm:"index;type:varchar(36)" validate:"required"`
	PaymentMethod string          `json:"payment_method" gorm:"type:varchar(50)" validate:"required,max=50"`
	TransactionID string          `json:"transaction_id" gorm:"type:varchar(255)"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Status        PaymentStatus   `json:"status" gorm:"type:varchar(20)"`
	PaymentDate   time.Time       `json:"payment_date"`
}

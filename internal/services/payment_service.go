package services

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/repositories"
	"github.com/HuynhPham0302/Ecommerce/pkg/rabbitmq"
)

// PaymentService records payment outcomes against orders and drives the
// order-status side effects of settlement. It does not talk to any payment
// gateway; the caller reports what the gateway decided.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	orders      *OrderService
	mqClient    rabbitmq.Publisher
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repositories.PaymentRepository, orders *OrderService,
	mqClient rabbitmq.Publisher) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orders:      orders,
		mqClient:    mqClient,
	}
}

// GetPaymentByID retrieves a single payment.
func (s *PaymentService) GetPaymentByID(id string) (*models.Payment, error) {
	return s.paymentRepo.GetByID(id)
}

// RecordPayment persists a payment attempt against an order. The amount
// must match the order total exactly; partial payments are not modeled.
// An order carries at most one pending or completed payment at a time,
// so a new attempt is only accepted after a previous one failed or was
// refunded. When the gateway reports synchronous settlement the payment
// is recorded as completed and the order advances to processing.
func (s *PaymentService) RecordPayment(orderID, method, transactionID string,
	amount decimal.Decimal, settled bool) (*models.Payment, error) {

	order, err := s.orders.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if !amount.Equal(order.TotalAmount) {
		return nil, fmt.Errorf("payment of %s against order total %s: %w",
			amount.StringFixed(2), order.TotalAmount.StringFixed(2), models.ErrAmountMismatch)
	}

	// Every payment covers the full total, so one pending or completed
	// payment already accounts for the whole order.
	open, err := s.paymentExists(orderID, "",
		models.PaymentStatusPending, models.PaymentStatusCompleted)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, fmt.Errorf("order %s: %w", orderID, models.ErrOrderAlreadyPaid)
	}

	status := models.PaymentStatusPending
	if settled {
		status = models.PaymentStatusCompleted
	}

	payment := &models.Payment{
		OrderID:       orderID,
		PaymentMethod: method,
		TransactionID: transactionID,
		Amount:        amount,
		Status:        status,
		PaymentDate:   time.Now(),
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	if settled {
		if err := s.orders.handlePaymentCompleted(orderID); err != nil {
			log.Printf("Payment %s completed but order %s not advanced: %v", payment.ID, orderID, err)
		}
	}

	publishEvent(s.mqClient, rabbitmq.PaymentEventsQueue, "payment.recorded", map[string]interface{}{
		"payment_id": payment.ID,
		"order_id":   orderID,
		"amount":     payment.Amount,
		"status":     payment.Status,
	})

	return payment, nil
}

// SettlePayment resolves a pending payment to completed or failed. A
// completed settlement advances the order from pending to processing. A
// failed settlement leaves the order pending with its stock still
// reserved; releasing it requires an explicit cancellation.
func (s *PaymentService) SettlePayment(id string, outcome models.PaymentStatus) (*models.Payment, error) {
	if outcome != models.PaymentStatusCompleted && outcome != models.PaymentStatusFailed {
		return nil, fmt.Errorf("payment %s: settle to %s: %w", id, outcome, models.ErrInvalidTransition)
	}

	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// A second completed payment would push the settled sum past the
	// order total.
	if outcome == models.PaymentStatusCompleted {
		settled, err := s.paymentExists(payment.OrderID, id, models.PaymentStatusCompleted)
		if err != nil {
			return nil, err
		}
		if settled {
			return nil, fmt.Errorf("order %s: %w", payment.OrderID, models.ErrOrderAlreadyPaid)
		}
	}

	if err := s.paymentRepo.UpdateStatus(id, models.PaymentStatusPending, outcome); err != nil {
		return nil, err
	}

	payment, err = s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if outcome == models.PaymentStatusCompleted {
		if err := s.orders.handlePaymentCompleted(payment.OrderID); err != nil {
			log.Printf("Payment %s completed but order %s not advanced: %v", id, payment.OrderID, err)
		}
	}

	publishEvent(s.mqClient, rabbitmq.PaymentEventsQueue, "payment.settled", map[string]interface{}{
		"payment_id": payment.ID,
		"order_id":   payment.OrderID,
		"status":     payment.Status,
	})

	return payment, nil
}

// paymentExists reports whether the order carries a payment in any of
// the given statuses, skipping excludeID.
func (s *PaymentService) paymentExists(orderID, excludeID string,
	statuses ...models.PaymentStatus) (bool, error) {

	payments, err := s.paymentRepo.GetAllByOrder(orderID)
	if err != nil {
		return false, err
	}
	for _, p := range payments {
		if p.ID == excludeID {
			continue
		}
		for _, status := range statuses {
			if p.Status == status {
				return true, nil
			}
		}
	}
	return false, nil
}

// RefundPayment moves a completed payment to refunded. Refunding does not
// by itself change the order status; cancellation is a separate call.
func (s *PaymentService) RefundPayment(id string) (*models.Payment, error) {
	if err := s.paymentRepo.UpdateStatus(id, models.PaymentStatusCompleted, models.PaymentStatusRefunded); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	publishEvent(s.mqClient, rabbitmq.PaymentEventsQueue, "payment.settled", map[string]interface{}{
		"payment_id": payment.ID,
		"order_id":   payment.OrderID,
		"status":     payment.Status,
	})

	return payment, nil
}

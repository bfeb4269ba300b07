package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
)

// MockPaymentRepository is an in-memory implementation of PaymentRepository.
type MockPaymentRepository struct {
	payments map[string]models.Payment
	mu       sync.RWMutex
}

// NewMockPaymentRepository creates a new instance of MockPaymentRepository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]models.Payment),
	}
}

// GetByID returns a payment by its ID.
func (r *MockPaymentRepository) GetByID(id string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, fmt.Errorf("payment with ID %s: %w", id, models.ErrPaymentNotFound)
	}
	return &payment, nil
}

// GetAllByOrder returns all payments recorded against the given order.
func (r *MockPaymentRepository) GetAllByOrder(orderID string) ([]models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paymentList := make([]models.Payment, 0)
	for _, payment := range r.payments {
		if payment.OrderID == orderID {
			paymentList = append(paymentList, payment)
		}
	}
	return paymentList, nil
}

// Create adds a new payment.
func (r *MockPaymentRepository) Create(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	r.payments[payment.ID] = *payment
	return nil
}

// UpdateStatus moves the payment from the expected status to the target
// status under the repository lock.
func (r *MockPaymentRepository) UpdateStatus(id string, from, to models.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[id]
	if !ok {
		return fmt.Errorf("payment with ID %s: %w", id, models.ErrPaymentNotFound)
	}
	if payment.Status != from {
		return fmt.Errorf("payment %s is %s, not %s: %w", id, payment.Status, from, models.ErrInvalidTransition)
	}
	payment.Status = to
	r.payments[id] = payment
	return nil
}

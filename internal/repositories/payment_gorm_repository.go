package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
)

// GORMPaymentRepository is a GORM implementation of PaymentRepository.
type GORMPaymentRepository struct {
	db *gorm.DB
}

// NewGORMPaymentRepository creates a new instance of GORMPaymentRepository.
func NewGORMPaymentRepository(db *gorm.DB) *GORMPaymentRepository {
	return &GORMPaymentRepository{db: db}
}

// GetByID retrieves a single payment by its ID.
func (r *GORMPaymentRepository) GetByID(id string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment with ID %s: %w", id, models.ErrPaymentNotFound)
		}
		return nil, fmt.Errorf("failed to get payment by ID %s: %w", id, err)
	}
	return &payment, nil
}

// GetAllByOrder retrieves all payments recorded against the given order.
func (r *GORMPaymentRepository) GetAllByOrder(orderID string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Find(&payments, "order_id = ?", orderID).Error; err != nil {
		return nil, fmt.Errorf("failed to get payments for order %s: %w", orderID, err)
	}
	return payments, nil
}

// Create persists a new payment.
func (r *GORMPaymentRepository) Create(payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now()
	}
	if err := r.db.Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// UpdateStatus performs a conditional status update guarded on the
// expected current status.
func (r *GORMPaymentRepository) UpdateStatus(id string, from, to models.PaymentStatus) error {
	res := r.db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for payment %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		var payment models.Payment
		if err := r.db.First(&payment, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("payment with ID %s: %w", id, models.ErrPaymentNotFound)
			}
			return fmt.Errorf("failed to check payment %s: %w", id, err)
		}
		return fmt.Errorf("payment %s is %s, not %s: %w", id, payment.Status, from, models.ErrInvalidTransition)
	}
	return nil
}

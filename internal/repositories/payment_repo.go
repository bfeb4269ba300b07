package repositories

import "github.com/HuynhPham0302/Ecommerce/internal/models"

// PaymentRepository defines the interface for payment data access.
type PaymentRepository interface {
	GetByID(id string) (*models.Payment, error)
	GetAllByOrder(orderID string) ([]models.Payment, error)
	Create(payment *models.Payment) error

	// UpdateStatus moves the payment from the expected current status to
	// the target status, failing with models.ErrInvalidTransition if the
	// payment is no longer in the expected status.
	UpdateStatus(id string, from, to models.PaymentStatus) error
}

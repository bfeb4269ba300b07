package repositories

import "github.com/HuynhPham0302/Ecommerce/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetAllByUser(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)

	// Create persists the order together with its items as one unit.
	Create(order *models.Order) error

	// UpdateStatus moves the order from the expected current status to the
	// target status, failing with models.ErrInvalidTransition if the order
	// is no longer in the expected status. The guard makes concurrent
	// duplicate transitions (and the stock release a cancellation
	// triggers) happen at most once.
	UpdateStatus(id string, from, to models.OrderStatus) error
}

package repositories

import "github.com/HuynhPham0302/Ecommerce/internal/models"

// AddressRepository defines the interface for address data access.
type AddressRepository interface {
	Create(address *models.Address) error
	GetByID(id string) (*models.Address, error)
	GetAllByUser(userID string) ([]models.Address, error)
}

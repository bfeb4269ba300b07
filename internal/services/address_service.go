package services

import (
	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/repositories"
)

// AddressService handles address creation and listing for a user.
type AddressService struct {
	repo repositories.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(repo repositories.AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

// CreateAddress stores a new address owned by the given user.
func (s *AddressService) CreateAddress(userID string, address *models.Address) error {
	address.UserID = userID
	return s.repo.Create(address)
}

// GetAddressesForUser lists the user's addresses.
func (s *AddressService) GetAddressesForUser(userID string) ([]models.Address, error) {
	return s.repo.GetAllByUser(userID)
}

package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
)

// MockAddressRepository is an in-memory implementation of AddressRepository.
type MockAddressRepository struct {
	addresses map[string]models.Address
	mu        sync.RWMutex
}

// NewMockAddressRepository creates a new instance of MockAddressRepository.
func NewMockAddressRepository() *MockAddressRepository {
	return &MockAddressRepository{
		addresses: make(map[string]models.Address),
	}
}

// Create adds a new address.
func (r *MockAddressRepository) Create(address *models.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if address.ID == "" {
		address.ID = uuid.New().String()
	}
	r.addresses[address.ID] = *address
	return nil
}

// GetByID returns an address by its ID.
func (r *MockAddressRepository) GetByID(id string) (*models.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	address, ok := r.addresses[id]
	if !ok {
		return nil, fmt.Errorf("address with ID %s: %w", id, models.ErrAddressNotFound)
	}
	return &address, nil
}

// GetAllByUser returns all addresses owned by the given user.
func (r *MockAddressRepository) GetAllByUser(userID string) ([]models.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	addressList := make([]models.Address, 0)
	for _, address := range r.addresses {
		if address.UserID == userID {
			addressList = append(addressList, address)
		}
	}
	return addressList, nil
}

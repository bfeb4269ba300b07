package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// The mutex makes the check-and-decrement in ReserveStock a single atomic
// step, mirroring the conditional UPDATE of the GORM implementation.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, models.ErrProductNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for _, p := range r.products {
		if p.SKU == product.SKU {
			return fmt.Errorf("product %s: %w", product.SKU, models.ErrDuplicateSKU)
		}
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %s: %w", product.ID, models.ErrProductNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// ReserveStock atomically checks and decrements stock, returning the unit
// price at reservation time.
func (r *MockProductRepository) ReserveStock(productID string, quantity int) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return decimal.Zero, fmt.Errorf("product with ID %s: %w", productID, models.ErrProductNotFound)
	}
	if product.StockQuantity < quantity {
		return decimal.Zero, fmt.Errorf("product %s (requested: %d, available: %d): %w",
			product.Name, quantity, product.StockQuantity, models.ErrInsufficientStock)
	}
	product.StockQuantity -= quantity
	r.products[productID] = product
	return product.Price, nil
}

// ReleaseStock atomically increments stock by quantity.
func (r *MockProductRepository) ReleaseStock(productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[productID]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", productID, models.ErrProductNotFound)
	}
	product.StockQuantity += quantity
	r.products[productID] = product
	return nil
}

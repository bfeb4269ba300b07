package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/repositories"
)

// InventoryService mediates every stock mutation. All reservation and
// release traffic goes through here; nothing else writes stock quantities.
type InventoryService struct {
	productRepo repositories.ProductRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(productRepo repositories.ProductRepository) *InventoryService {
	return &InventoryService{productRepo: productRepo}
}

// Reserve atomically decrements the product's stock by quantity and
// returns the unit price at the moment of reservation. A reservation
// either succeeds or fails immediately; there is no waiting for restock.
func (s *InventoryService) Reserve(productID string, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return decimal.Zero, fmt.Errorf("quantity %d for product %s: %w", quantity, productID, models.ErrInvalidQuantity)
	}
	return s.productRepo.ReserveStock(productID, quantity)
}

// Release restores quantity units of stock, undoing a prior reservation.
// Must be invoked exactly once per reservation it undoes.
func (s *InventoryService) Release(productID string, quantity int) error {
	return s.productRepo.ReleaseStock(productID, quantity)
}

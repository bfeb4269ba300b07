package repositories

import (
	"github.com/shopspring/decimal"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// ReserveStock and ReleaseStock are the only operations that may mutate a
// product's stock quantity. ReserveStock must perform the availability
// check and the decrement as one atomic step so that concurrent callers
// can never jointly drive the stock below zero.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error

	// ReserveStock atomically decrements the product's stock by quantity
	// if enough is available, returning the unit price at the moment of
	// reservation. Fails with models.ErrProductNotFound or
	// models.ErrInsufficientStock.
	ReserveStock(productID string, quantity int) (decimal.Decimal, error)

	// ReleaseStock atomically increments the product's stock by quantity,
	// undoing a prior reservation. The caller is responsible for invoking
	// it exactly once per reservation.
	ReleaseStock(productID string, quantity int) error
}

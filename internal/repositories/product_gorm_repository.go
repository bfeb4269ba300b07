package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, models.ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product %s: %w", product.SKU, models.ErrDuplicateSKU)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", product.ID, models.ErrProductNotFound)
	}
	return nil
}

// ReserveStock atomically decrements stock if sufficient, returning the
// unit price at reservation time. The availability check and the decrement
// are a single conditional UPDATE; there is no read-then-write window.
func (r *GORMProductRepository) ReserveStock(productID string, quantity int) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock_quantity >= ?", productID, quantity).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to reserve stock for product %s: %w", productID, res.Error)
		}
		if res.RowsAffected == 0 {
			// Either the product does not exist or there is not enough stock.
			var product models.Product
			if err := tx.First(&product, "id = ?", productID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("product with ID %s: %w", productID, models.ErrProductNotFound)
				}
				return fmt.Errorf("failed to check product %s: %w", productID, err)
			}
			return fmt.Errorf("product %s (requested: %d, available: %d): %w",
				product.Name, quantity, product.StockQuantity, models.ErrInsufficientStock)
		}

		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			return fmt.Errorf("failed to read reserved product %s: %w", productID, err)
		}
		price = product.Price
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

// ReleaseStock atomically increments stock by quantity.
func (r *GORMProductRepository) ReleaseStock(productID string, quantity int) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("failed to release stock for product %s: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", productID, models.ErrProductNotFound)
	}
	return nil
}

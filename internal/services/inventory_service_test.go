package services_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/repositories"
	"github.com/HuynhPham0302/Ecommerce/internal/services"
)

func newInventoryFixture(t *testing.T, stock int, price string) (*services.InventoryService, *repositories.MockProductRepository, string) {
	t.Helper()
	productRepo := repositories.NewMockProductRepository()
	product := &models.Product{
		CategoryID:    "cat-1",
		Name:          "Widget",
		Price:         decimal.RequireFromString(price),
		SKU:           "WID-001",
		StockQuantity: stock,
	}
	assert.NoError(t, productRepo.Create(product))
	return services.NewInventoryService(productRepo), productRepo, product.ID
}

func TestInventoryService_ReserveAndRelease(t *testing.T) {
	inventory, productRepo, productID := newInventoryFixture(t, 5, "10.00")

	price, err := inventory.Reserve(productID, 3)
	assert.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("10.00")))

	product, err := productRepo.GetByID(productID)
	assert.NoError(t, err)
	assert.Equal(t, 2, product.StockQuantity)

	assert.NoError(t, inventory.Release(productID, 3))
	product, err = productRepo.GetByID(productID)
	assert.NoError(t, err)
	assert.Equal(t, 5, product.StockQuantity)
}

func TestInventoryService_ReserveFailures(t *testing.T) {
	inventory, productRepo, productID := newInventoryFixture(t, 2, "10.00")

	_, err := inventory.Reserve(productID, 3)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	// A failed reservation leaves stock untouched.
	product, err := productRepo.GetByID(productID)
	assert.NoError(t, err)
	assert.Equal(t, 2, product.StockQuantity)

	_, err = inventory.Reserve("no-such-product", 1)
	assert.ErrorIs(t, err, models.ErrProductNotFound)

	_, err = inventory.Reserve(productID, 0)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)
}

// With stock N and M > N concurrent single-unit reservations, exactly N
// succeed, M-N fail with ErrInsufficientStock and the final stock is zero.
func TestInventoryService_ConcurrentReservations(t *testing.T) {
	const (
		stock    = 5
		requests = 40
	)
	inventory, productRepo, productID := newInventoryFixture(t, stock, "10.00")

	var successes, insufficient int32
	var g errgroup.Group
	for i := 0; i < requests; i++ {
		g.Go(func() error {
			_, err := inventory.Reserve(productID, 1)
			switch {
			case err == nil:
				atomic.AddInt32(&successes, 1)
			case errors.Is(err, models.ErrInsufficientStock):
				atomic.AddInt32(&insufficient, 1)
			default:
				return err
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	assert.Equal(t, int32(stock), successes)
	assert.Equal(t, int32(requests-stock), insufficient)

	product, err := productRepo.GetByID(productID)
	assert.NoError(t, err)
	assert.Equal(t, 0, product.StockQuantity)
}

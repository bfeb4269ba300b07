package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/repositories"
	"github.com/HuynhPham0302/Ecommerce/internal/services"
)

type orderFixture struct {
	orders      *services.OrderService
	orderRepo   *repositories.MockOrderRepository
	productRepo *repositories.MockProductRepository
	addressRepo *repositories.MockAddressRepository
	addressID   string
}

const (
	buyerID = "user-1"
	otherID = "user-2"
)

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	orderRepo := repositories.NewMockOrderRepository()
	productRepo := repositories.NewMockProductRepository()
	addressRepo := repositories.NewMockAddressRepository()

	address := &models.Address{
		UserID:              buyerID,
		AddressLine1:        "1 Main St",
		City:                "Springfield",
		StateProvinceRegion: "IL",
		PostalCode:          "62701",
		Country:             "USA",
	}
	assert.NoError(t, addressRepo.Create(address))

	inventory := services.NewInventoryService(productRepo)
	orders := services.NewOrderService(orderRepo, addressRepo, inventory, nil)

	return &orderFixture{
		orders:      orders,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		addressID:   address.ID,
	}
}

func (f *orderFixture) seedProduct(t *testing.T, sku, price string, stock int) string {
	t.Helper()
	product := &models.Product{
		CategoryID:    "cat-1",
		Name:          "Product " + sku,
		Price:         decimal.RequireFromString(price),
		SKU:           sku,
		StockQuantity: stock,
	}
	assert.NoError(t, f.productRepo.Create(product))
	return product.ID
}

func (f *orderFixture) stockOf(t *testing.T, productID string) int {
	t.Helper()
	product, err := f.productRepo.GetByID(productID)
	assert.NoError(t, err)
	return product.StockQuantity
}

func TestOrderService_CreateOrder(t *testing.T) {
	f := newOrderFixture(t)
	productID := f.seedProduct(t, "SKU-A", "10.00", 5)

	order, err := f.orders.CreateOrder(buyerID, f.addressID,
		[]services.OrderItemRequest{{ProductID: productID, Quantity: 3}}, "standard")
	assert.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("30.00")),
		"total is %s", order.TotalAmount)
	assert.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].PricePerUnit.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, 2, f.stockOf(t, productID))

	// Repricing the product never changes the captured unit price.
	product, err := f.productRepo.GetByID(productID)
	assert.NoError(t, err)
	product.Price = decimal.RequireFromString("12.00")
	assert.NoError(t, f.productRepo.Update(product))

	persisted, err := f.orderRepo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.True(t, persisted.Items[0].PricePerUnit.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, persisted.TotalAmount.Equal(decimal.RequireFromString("30.00")))
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	f := newOrderFixture(t)
	productID := f.seedProduct(t, "SKU-A", "10.00", 5)

	// Empty line items.
	_, err := f.orders.CreateOrder(buyerID, f.addressID, nil, "standard")
	assert.ErrorIs(t, err, models.ErrEmptyOrder)

	// Address owned by somebody else.
	foreign := &models.Address{
		UserID:              otherID,
		AddressLine1:        "2 Elm St",
		City:                "Springfield",
		StateProvinceRegion: "IL",
		PostalCode:          "62702",
		Country:             "USA",
	}
	assert.NoError(t, f.addressRepo.Create(foreign))
	_, err = f.orders.CreateOrder(buyerID, foreign.ID,
		[]services.OrderItemRequest{{ProductID: productID, Quantity: 1}}, "standard")
	assert.ErrorIs(t, err, models.ErrAddressNotOwned)

	// Unknown address.
	_, err = f.orders.CreateOrder(buyerID, "no-such-address",
		[]services.OrderItemRequest{{ProductID: productID, Quantity: 1}}, "standard")
	assert.ErrorIs(t, err, models.ErrAddressNotOwned)

	// Zero quantity.
	_, err = f.orders.CreateOrder(buyerID, f.addressID,
		[]services.OrderItemRequest{{ProductID: productID, Quantity: 0}}, "standard")
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)

	// Two lines for the same product.
	_, err = f.orders.CreateOrder(buyerID, f.addressID,
		[]services.OrderItemRequest{
			{ProductID: productID, Quantity: 1},
			{ProductID: productID, Quantity: 2},
		}, "standard")
	assert.ErrorIs(t, err, models.ErrDuplicateItem)

	// No stock was touched by any of the failures.
	assert.Equal(t, 5, f.stockOf(t, productID))
}

// A failing reservation mid-order rolls back every reservation already
// made: no partial decrement is observable after the failure.
func TestOrderService_CreateOrder_RollbackOnPartialFailure(t *testing.T) {
	f := newOrderFixture(t)
	firstID := f.seedProduct(t, "SKU-A", "10.00", 5)
	secondID := f.seedProduct(t, "SKU-B", "20.00", 1)

	_, err := f.orders.CreateOrder(buyerID, f.addressID,
		[]services.OrderItemRequest{
			{ProductID: firstID, Quantity: 2},
			{ProductID: secondID, Quantity: 3},
		}, "standard")
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	assert.Equal(t, 5, f.stockOf(t, firstID))
	assert.Equal(t, 1, f.stockOf(t, secondID))

	// Unknown product in the second line rolls back the first as well.
	_, err = f.orders.CreateOrder(buyerID, f.addressID,
		[]services.OrderItemRequest{
			{ProductID: firstID, Quantity: 2},
			{ProductID: "no-such-product", Quantity: 1},
		}, "standard")
	assert.ErrorIs(t, err, models.ErrProductNotFound)
	assert.Equal(t, 5, f.stockOf(t, firstID))
}

func TestOrderService_UpdateOrderStatus_Transitions(t *testing.T) {
	f := newOrderFixture(t)
	productID := f.seedProduct(t, "SKU-A", "10.00", 5)

	order, err := f.orders.CreateOrder(buyerID, f.addressID,
		[]services.OrderItemRequest{{ProductID: productID, Quantity: 1}}, "standard")
	assert.NoError(t, err)

	// pending -> shipped skips processing and is rejected.
	_, err = f.orders.UpdateOrderStatus(order.ID, models.OrderStatusShipped, "admin-1", models.RoleAdmin)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	// Walk the happy path as admin.
	for _, target := range []models.OrderStatus{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
	} {
		updated, err := f.orders.UpdateOrderStatus(order.ID, target, "admin-1", models.RoleAdmin)
		assert.NoError(t, err)
		assert.Equal(t, target, updated.Status)
	}

	// Delivered is terminal: moving back is rejected and the status is
	// left unchanged.
	_, err = f.orders.UpdateOrderStatus(order.ID, models.OrderStatusProcessing, "admin-1", models.RoleAdmin)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	persisted, err := f.orderRepo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, persisted.Status)

	// Unknown order.
	_, err = f.orders.UpdateOrderStatus("no-such-order", models.OrderStatusProcessing, "admin-1", models.RoleAdmin)
	assert.ErrorIs(t, err, models.ErrOrderNotFound)

	// Bogus target status.
	_, err = f.orders.UpdateOrderStatus(order.ID, models.OrderStatus("teleported"), "admin-1", models.RoleAdmin)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestOrderService_UpdateOrderStatus_Authorization(t *testing.T) {
	f := newOrderFixture(t)
	productID := f.seedProduct(t, "SKU-A", "10.00", 5)

	order, err := f.orders.CreateOrder(buyerID, f.addressID,
		[]services.OrderItemRequest{{ProductID: productID, Quantity: 1}}, "standard")
	assert.NoError(t, err)

	// A different customer may not touch the order.
	_, err = f.orders.UpdateOrderStatus(order.ID, models.OrderStatusCancelled, otherID, models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrForbidden)

	// The owner may not perform fulfillment transitions.
	_, err = f.orders.UpdateOrderStatus(order.ID, models.OrderStatusProcessing, buyerID, models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrForbidden)

	// The owner may cancel.
	updated, err := f.orders.UpdateOrderStatus(order.ID, models.OrderStatusCancelled, buyerID, models.RoleCustomer)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, updated.Status)
}

// Cancelling restores the reserved stock exactly once, even if a second
// cancellation is attempted.
func TestOrderService_CancelReleasesStockOnce(t *testing.T) {
	f := newOrderFixture(t)
	productID := f.seedProduct(t, "SKU-A", "10.00", 5)

	order, err := f.orders.CreateOrder(buyerID, f.addressID,
		[]services.OrderItemRequest{{ProductID: productID, Quantity: 3}}, "standard")
	assert.NoError(t, err)
	assert.Equal(t, 2, f.stockOf(t, productID))

	_, err = f.orders.UpdateOrderStatus(order.ID, models.OrderStatusCancelled, buyerID, models.RoleCustomer)
	assert.NoError(t, err)
	assert.Equal(t, 5, f.stockOf(t, productID))

	_, err = f.orders.UpdateOrderStatus(order.ID, models.OrderStatusCancelled, buyerID, models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.Equal(t, 5, f.stockOf(t, productID))
}

func TestOrderService_GetOrderByID_Authorization(t *testing.T) {
	f := newOrderFixture(t)
	productID := f.seedProduct(t, "SKU-A", "10.00", 5)

	order, err := f.orders.CreateOrder(buyerID, f.addressID,
		[]services.OrderItemRequest{{ProductID: productID, Quantity: 1}}, "standard")
	assert.NoError(t, err)

	_, err = f.orders.GetOrderByID(order.ID, buyerID, models.RoleCustomer)
	assert.NoError(t, err)

	_, err = f.orders.GetOrderByID(order.ID, otherID, models.RoleCustomer)
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = f.orders.GetOrderByID(order.ID, otherID, models.RoleAdmin)
	assert.NoError(t, err)
}

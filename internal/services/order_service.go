package services

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/repositories"
	"github.com/HuynhPham0302/Ecommerce/pkg/rabbitmq"
)

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// OrderService orchestrates order creation and lifecycle transitions.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	addressRepo repositories.AddressRepository
	inventory   *InventoryService
	mqClient    rabbitmq.Publisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, addressRepo repositories.AddressRepository,
	inventory *InventoryService, mqClient rabbitmq.Publisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		addressRepo: addressRepo,
		inventory:   inventory,
		mqClient:    mqClient,
	}
}

// GetAllOrders retrieves every order. Admin-only at the handler layer.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersForUser retrieves the orders placed by the given user.
func (s *OrderService) GetOrdersForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetAllByUser(userID)
}

// GetOrderByID retrieves a single order. Customers may only read their own
// orders; admins may read any.
func (s *OrderService) GetOrderByID(orderID, actingUserID string, role models.UserRole) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && order.UserID != actingUserID {
		return nil, fmt.Errorf("order %s: %w", orderID, models.ErrForbidden)
	}
	return order, nil
}

// CreateOrder validates the request, reserves stock for every line item,
// computes the total from the reservation-time unit prices and persists
// the order with its items. Any failure after the first reservation
// releases every reservation already made, so a failed creation never
// leaves a partial stock decrement behind.
func (s *OrderService) CreateOrder(userID, shippingAddressID string, items []OrderItemRequest,
	shippingMethod string) (*models.Order, error) {

	address, err := s.addressRepo.GetByID(shippingAddressID)
	if err != nil {
		return nil, fmt.Errorf("address %s: %w", shippingAddressID, models.ErrAddressNotOwned)
	}
	if address.UserID != userID {
		return nil, fmt.Errorf("address %s: %w", shippingAddressID, models.ErrAddressNotOwned)
	}

	if len(items) == 0 {
		return nil, models.ErrEmptyOrder
	}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, models.ErrInvalidQuantity)
		}
		if seen[item.ProductID] {
			return nil, fmt.Errorf("product %s: %w", item.ProductID, models.ErrDuplicateItem)
		}
		seen[item.ProductID] = true
	}

	// Reserve stock item by item. On any failure, release all
	// reservations made so far before surfacing the error.
	var reserved []models.OrderItem
	totalAmount := decimal.Zero
	for _, item := range items {
		unitPrice, err := s.inventory.Reserve(item.ProductID, item.Quantity)
		if err != nil {
			s.releaseItems(reserved)
			return nil, err
		}
		reserved = append(reserved, models.OrderItem{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			PricePerUnit: unitPrice,
		})
		totalAmount = totalAmount.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	newOrder := &models.Order{
		UserID:            userID,
		ShippingAddressID: shippingAddressID,
		OrderDate:         time.Now(),
		Status:            models.OrderStatusPending,
		TotalAmount:       totalAmount,
		ShippingMethod:    shippingMethod,
		Items:             reserved,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		s.releaseItems(reserved)
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	publishEvent(s.mqClient, rabbitmq.OrderEventsQueue, "order.created", map[string]interface{}{
		"order_id": newOrder.ID,
		"user_id":  newOrder.UserID,
		"status":   newOrder.Status,
		"total":    newOrder.TotalAmount,
	})

	return newOrder, nil
}

// UpdateOrderStatus advances the order along the lifecycle
// pending -> processing -> shipped -> delivered, with cancellation from
// pending or processing. The order owner may cancel; fulfillment
// transitions require the admin role. Cancelling releases every item's
// stock exactly once.
func (s *OrderService) UpdateOrderStatus(orderID string, target models.OrderStatus,
	actingUserID string, role models.UserRole) (*models.Order, error) {

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if role != models.RoleAdmin {
		if order.UserID != actingUserID {
			return nil, fmt.Errorf("order %s: %w", orderID, models.ErrForbidden)
		}
		if target != models.OrderStatusCancelled {
			return nil, fmt.Errorf("order %s: only cancellation is allowed: %w", orderID, models.ErrForbidden)
		}
	}

	if !target.Valid() || !order.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("order %s: %s -> %s: %w", orderID, order.Status, target, models.ErrInvalidTransition)
	}

	// The update is conditional on the status we just read, so a
	// concurrent transition makes exactly one caller win. The loser gets
	// ErrInvalidTransition and, crucially, never releases stock.
	if err := s.orderRepo.UpdateStatus(orderID, order.Status, target); err != nil {
		return nil, err
	}

	if target == models.OrderStatusCancelled {
		s.releaseItems(order.Items)
	}

	publishEvent(s.mqClient, rabbitmq.OrderEventsQueue, "order.status_changed", map[string]interface{}{
		"order_id": orderID,
		"from":     order.Status,
		"to":       target,
	})

	order.Status = target
	return order, nil
}

// handlePaymentCompleted advances the order from pending to processing
// once a completed payment is reported. A completed payment is what
// releases an order for fulfillment.
func (s *OrderService) handlePaymentCompleted(orderID string) error {
	if err := s.orderRepo.UpdateStatus(orderID, models.OrderStatusPending, models.OrderStatusProcessing); err != nil {
		return err
	}
	publishEvent(s.mqClient, rabbitmq.OrderEventsQueue, "order.status_changed", map[string]interface{}{
		"order_id": orderID,
		"from":     models.OrderStatusPending,
		"to":       models.OrderStatusProcessing,
	})
	return nil
}

func (s *OrderService) releaseItems(items []models.OrderItem) {
	for _, item := range items {
		if err := s.inventory.Release(item.ProductID, item.Quantity); err != nil {
			log.Printf("Failed to release %d units of product %s: %v", item.Quantity, item.ProductID, err)
		}
	}
}

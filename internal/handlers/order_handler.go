package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app. All order
// routes require authentication.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleGetOrders lists the caller's orders; admins see every order.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(models.UserRole)

	var (
		orders []models.Order
		err    error
	)
	if role == models.RoleAdmin {
		orders, err = h.service.GetAllOrders()
	} else {
		orders, err = h.service.GetOrdersForUser(userID)
	}
	if err != nil {
		log.Printf("Error getting orders: %v", err)
		return DomainError(c, err)
	}
	return Success(c, fiber.StatusOK, "Orders retrieved successfully", orders)
}

// HandleGetOrderByID retrieves a single order.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(models.UserRole)

	order, err := h.service.GetOrderByID(c.Params("id"), userID, role)
	if err != nil {
		return DomainError(c, err)
	}
	return Success(c, fiber.StatusOK, "Order retrieved successfully", order)
}

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	ShippingAddressID string                      `json:"shipping_address_id" validate:"required"`
	ShippingMethod    string                      `json:"shipping_method" validate:"required,max=50"`
	Items             []services.OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// HandleCreateOrder creates a new order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.validate.Struct(req); err != nil {
		return Fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	order, err := h.service.CreateOrder(userID, req.ShippingAddressID, req.Items, req.ShippingMethod)
	if err != nil {
		log.Printf("Error creating order for user %s: %v", userID, err)
		return DomainError(c, err)
	}

	return Success(c, fiber.StatusCreated, "Order created successfully", order)
}

// UpdateOrderStatusRequest represents the request body for a status change.
type UpdateOrderStatusRequest struct {
	TargetStatus models.OrderStatus `json:"target_status" validate:"required"`
}

// HandleUpdateOrderStatus advances an order along its lifecycle.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(models.UserRole)

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return Fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	order, err := h.service.UpdateOrderStatus(c.Params("id"), req.TargetStatus, userID, role)
	if err != nil {
		log.Printf("Error updating status of order %s: %v", c.Params("id"), err)
		return DomainError(c, err)
	}

	return Success(c, fiber.StatusOK, "Order status updated successfully", order)
}

package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/services"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment routes with the Fiber app. All
// payment routes require authentication.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Get("/:id", h.HandleGetPaymentByID)
	paymentRoutes.Post("/", h.HandleRecordPayment)
	paymentRoutes.Patch("/:id", h.HandleSettlePayment)
	paymentRoutes.Post("/:id/refund", h.HandleRefundPayment)
}

// HandleGetPaymentByID retrieves a single payment.
func (h *PaymentHandler) HandleGetPaymentByID(c *fiber.Ctx) error {
	payment, err := h.service.GetPaymentByID(c.Params("id"))
	if err != nil {
		return DomainError(c, err)
	}
	return Success(c, fiber.StatusOK, "Payment retrieved successfully", payment)
}

// RecordPaymentRequest represents the request body for recording a payment
// outcome reported by the payment gateway. Status may be "completed" when
// the gateway settled synchronously; it defaults to "pending".
type RecordPaymentRequest struct {
	OrderID       string          `json:"order_id" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required,max=50"`
	TransactionID string          `json:"transaction_id" validate:"required,max=255"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status" validate:"omitempty,oneof=pending completed"`
}

// HandleRecordPayment records a payment attempt against an order.
func (h *PaymentHandler) HandleRecordPayment(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return Fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	settled := req.Status == string(models.PaymentStatusCompleted)
	payment, err := h.service.RecordPayment(req.OrderID, req.PaymentMethod, req.TransactionID, req.Amount, settled)
	if err != nil {
		log.Printf("Error recording payment for order %s: %v", req.OrderID, err)
		return DomainError(c, err)
	}

	return Success(c, fiber.StatusCreated, "Payment recorded successfully", payment)
}

// SettlePaymentRequest represents the request body for settling a payment.
type SettlePaymentRequest struct {
	Outcome models.PaymentStatus `json:"outcome" validate:"required,oneof=completed failed"`
}

// HandleSettlePayment resolves a pending payment to completed or failed.
func (h *PaymentHandler) HandleSettlePayment(c *fiber.Ctx) error {
	var req SettlePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return Fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	payment, err := h.service.SettlePayment(c.Params("id"), req.Outcome)
	if err != nil {
		log.Printf("Error settling payment %s: %v", c.Params("id"), err)
		return DomainError(c, err)
	}

	return Success(c, fiber.StatusOK, "Payment settled successfully", payment)
}

// HandleRefundPayment refunds a completed payment.
func (h *PaymentHandler) HandleRefundPayment(c *fiber.Ctx) error {
	payment, err := h.service.RefundPayment(c.Params("id"))
	if err != nil {
		log.Printf("Error refunding payment %s: %v", c.Params("id"), err)
		return DomainError(c, err)
	}
	return Success(c, fiber.StatusOK, "Payment refunded successfully", payment)
}

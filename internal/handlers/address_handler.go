package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/services"
)

// AddressHandler handles HTTP requests for the caller's addresses.
type AddressHandler struct {
	service  *services.AddressService
	validate *validator.Validate
}

// NewAddressHandler creates a new AddressHandler.
func NewAddressHandler(service *services.AddressService) *AddressHandler {
	return &AddressHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the address routes with the Fiber app. All
// address routes require authentication.
func (h *AddressHandler) RegisterRoutes(router fiber.Router) {
	addressRoutes := router.Group("/addresses")
	addressRoutes.Get("/", h.HandleGetAddresses)
	addressRoutes.Post("/", h.HandleCreateAddress)
}

// HandleGetAddresses lists the caller's addresses.
func (h *AddressHandler) HandleGetAddresses(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	addresses, err := h.service.GetAddressesForUser(userID)
	if err != nil {
		log.Printf("Error getting addresses for user %s: %v", userID, err)
		return DomainError(c, err)
	}
	return Success(c, fiber.StatusOK, "Addresses retrieved successfully", addresses)
}

// HandleCreateAddress stores a new address owned by the caller.
func (h *AddressHandler) HandleCreateAddress(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(address); err != nil {
		return Fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := h.service.CreateAddress(userID, &address); err != nil {
		log.Printf("Error creating address for user %s: %v", userID, err)
		return DomainError(c, err)
	}
	return Success(c, fiber.StatusCreated, "Address created successfully", address)
}

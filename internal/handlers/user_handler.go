package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HuynhPham0302/Ecommerce/internal/services"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// RegisterRoutes registers the user routes with the Fiber app. Requires
// authentication.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/me", h.HandleGetMe)
}

// HandleGetMe returns the authenticated user's profile.
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		return DomainError(c, err)
	}
	return Success(c, fiber.StatusOK, "User retrieved successfully", user)
}

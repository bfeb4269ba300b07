package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/HuynhPham0302/Ecommerce/internal/handlers"
	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/services"
)

// AuthRequired is a Fiber middleware that verifies the bearer token and
// stores the caller's identity in the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return handlers.Fail(c, fiber.StatusUnauthorized, "Authorization header is required")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return handlers.Fail(c, fiber.StatusUnauthorized, "Authorization header format must be 'Bearer <token>'")
		}

		userID, role, err := authService.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, models.ErrTokenExpired) {
				return handlers.Fail(c, fiber.StatusUnauthorized, models.ErrTokenExpired.Error())
			}
			return handlers.Fail(c, fiber.StatusUnauthorized, models.ErrTokenInvalid.Error())
		}

		c.Locals("user_id", userID)
		c.Locals("role", role)

		return c.Next()
	}
}

// AdminOnly restricts a route to users carrying the admin role. Must run
// after AuthRequired.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(models.UserRole)
		if role != models.RoleAdmin {
			return handlers.Fail(c, fiber.StatusForbidden, models.ErrForbidden.Error())
		}
		return c.Next()
	}
}

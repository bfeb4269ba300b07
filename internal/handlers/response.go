package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
)

// Success writes the uniform response envelope for a successful request.
func Success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success":   true,
		"message":   message,
		"data":      data,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Fail writes the uniform error envelope. The numeric error_code mirrors
// the HTTP status.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success":    false,
		"message":    message,
		"data":       nil,
		"error_code": status,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// statusOf maps each domain error to its HTTP status.
var statusOf = []struct {
	err    error
	status int
}{
	{models.ErrEmptyOrder, fiber.StatusBadRequest},
	{models.ErrInvalidQuantity, fiber.StatusBadRequest},
	{models.ErrDuplicateItem, fiber.StatusBadRequest},
	{models.ErrAmountMismatch, fiber.StatusBadRequest},
	{models.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{models.ErrTokenExpired, fiber.StatusUnauthorized},
	{models.ErrTokenInvalid, fiber.StatusUnauthorized},
	{models.ErrForbidden, fiber.StatusForbidden},
	{models.ErrAddressNotOwned, fiber.StatusForbidden},
	{models.ErrUserNotFound, fiber.StatusNotFound},
	{models.ErrAddressNotFound, fiber.StatusNotFound},
	{models.ErrCategoryNotFound, fiber.StatusNotFound},
	{models.ErrProductNotFound, fiber.StatusNotFound},
	{models.ErrOrderNotFound, fiber.StatusNotFound},
	{models.ErrPaymentNotFound, fiber.StatusNotFound},
	{models.ErrDuplicateEmail, fiber.StatusConflict},
	{models.ErrDuplicateSKU, fiber.StatusConflict},
	{models.ErrInsufficientStock, fiber.StatusConflict},
	{models.ErrInvalidTransition, fiber.StatusConflict},
	{models.ErrOrderAlreadyPaid, fiber.StatusConflict},
}

// DomainError resolves err against the closed domain error set and writes
// the matching envelope. Unrecognized errors are logged and reported as a
// generic internal failure; no internal detail reaches the client.
func DomainError(c *fiber.Ctx, err error) error {
	for _, entry := range statusOf {
		if errors.Is(err, entry.err) {
			return Fail(c, entry.status, entry.err.Error())
		}
	}
	log.Printf("Unexpected error handling %s %s: %v", c.Method(), c.Path(), err)
	return Fail(c, fiber.StatusInternalServerError, "An unexpected error occurred")
}

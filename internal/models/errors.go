package models

import "errors"

// Closed set of domain errors. Services wrap these with context via
// fmt.Errorf and %w; handlers match them with errors.Is to choose the
// HTTP status and error code.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrUserNotFound     = errors.New("user not found")
	ErrAddressNotFound  = errors.New("address not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateSKU     = errors.New("sku already exists")

	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("item quantity must be at least 1")
	ErrDuplicateItem     = errors.New("duplicate product in order items")
	ErrAddressNotOwned   = errors.New("shipping address does not belong to user")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")

	ErrPaymentNotFound  = errors.New("payment not found")
	ErrAmountMismatch   = errors.New("payment amount does not match order total")
	ErrOrderAlreadyPaid = errors.New("order already has an open or completed payment")
)

package domain

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidQuantity   = errors.New("item quantity must be a positive integer")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidCategory   = errors.New("unknown product category")
	ErrInvalidRole       = errors.New("unknown role")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password so login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrForbidden      = errors.New("insufficient permissions")
	ErrProtectedAdmin = errors.New("cannot delete main administrator")

	ErrNameTaken  = errors.New("username already taken")
	ErrEmailTaken = errors.New("email already taken")
)

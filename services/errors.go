package services

import "errors"

// Sentinel errors controllers map onto HTTP statuses.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderPlacement     = errors.New("failed to place order")
)

package entity

import "errors"

var (
	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNameRequired     = errors.New("customer name is required")

	// Product errors
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNameRequired = errors.New("product name is required")
	ErrNegativePrice       = errors.New("product price cannot be negative")

	// Purchase errors
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// General errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrDatabaseError = errors.New("database error")
)

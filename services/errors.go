package services

import "errors"

// Sentinels the controllers translate into HTTP statuses.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCategoryInUse     = errors.New("category still referenced by menu items")
	ErrCheckoutConflict  = errors.New("cart changed during checkout")
)

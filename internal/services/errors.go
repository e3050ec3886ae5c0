package services

import "errors"

// Outcome classes surfaced to the transport layer. Handlers map these to
// HTTP statuses; anything else is treated as an internal failure.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrTableNotFound     = errors.New("table not found")

	ErrTableRefRequired = errors.New("exactly one of table id or table number is required")
	ErrNoItems          = errors.New("no items provided")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrMissingField     = errors.New("missing required field")

	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrMenuItemInUse     = errors.New("menu item is referenced by existing order items")
	ErrNegativeTotal     = errors.New("order total would become negative")
)

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemCreatedEvent is broadcast to kitchen displays whenever a line is
// added to an order. Delivery is best-effort.
type OrderItemCreatedEvent struct {
	ItemID      uint64          `json:"itemId"`
	OrderID     uint64          `json:"orderId"`
	MenuItemID  uint64          `json:"menuItemId"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TableNumber string          `json:"tableNumber,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusPaid      OrderStatus = "PAID"
)

// ParseOrderStatus accepts the lowercase values the clients send as well as
// the stored form.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusPaid:
		return StatusPaid, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// CanTransitionTo encodes the order lifecycle: PENDING -> COMPLETED,
// PENDING|COMPLETED -> PAID. PAID is terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusCompleted || next == StatusPaid
	case StatusCompleted:
		return next == StatusPaid
	default:
		return false
	}
}

type ItemStatus string

const (
	ItemPending ItemStatus = "PENDING"
	ItemReady   ItemStatus = "READY"
	ItemServed  ItemStatus = "SERVED"
)

// Order is the aggregate root for a table visit. Total is kept equal to the
// sum of the line totals of its items after every mutation.
type Order struct {
	ID            uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	TableID       uint64          `json:"tableId" gorm:"not null;index"`
	Table         Table           `json:"table" gorm:"foreignKey:TableID;references:ID"`
	Status        OrderStatus     `json:"status" gorm:"type:enum('PENDING','COMPLETED','PAID');default:'PENDING'"`
	Total         decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	PaymentMethod *string         `json:"paymentMethod" gorm:"size:32"`
	PaidAt        *time.Time      `json:"paidAt"`
	CreatedAt     time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	Items         []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// IsClosed reports whether the order's active lifecycle has ended and it no
// longer holds its table.
func (o *Order) IsClosed() bool {
	return o.Status == StatusPaid
}

// OrderItem is one line of an order. Price is the unit price captured when
// the line was created, never re-read from the menu item.
type OrderItem struct {
	ID         uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID    uint64          `json:"orderId" gorm:"not null;index"`
	Order      *Order          `json:"-" gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	MenuItemID uint64          `json:"menuItemId" gorm:"not null;index"`
	MenuItem   MenuItem        `json:"menuItem" gorm:"foreignKey:MenuItemID;references:ID;constraint:OnDelete:RESTRICT"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Status     ItemStatus      `json:"status" gorm:"type:enum('PENDING','READY','SERVED');default:'PENDING'"`
	CreatedAt  time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}

// LineTotal is the extended price of the line: unit price times quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SumItems computes an order total from scratch over a full item set.
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

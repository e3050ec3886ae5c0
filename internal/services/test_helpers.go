package services

import (
	"github.com/shopspring/decimal"

	"tableside/internal/domain"
)

func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func CreateMockOrder(id, tableID uint64, status domain.OrderStatus, total string) *domain.Order {
	return &domain.Order{
		ID:      id,
		TableID: tableID,
		Status:  status,
		Total:   Dec(total),
	}
}

func CreateMockItem(id, orderID, menuItemID uint64, qty int, price string) domain.OrderItem {
	return domain.OrderItem{
		ID:         id,
		OrderID:    orderID,
		MenuItemID: menuItemID,
		Quantity:   qty,
		Price:      Dec(price),
		Status:     domain.ItemPending,
	}
}

package http

import "github.com/shopspring/decimal"

type OrderItemRequest struct {
	MenuItemID uint64          `json:"menuItemId" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
	Price      decimal.Decimal `json:"price"`
}

type CreateOrderRequest struct {
	TableID     *uint64            `json:"tableId"`
	TableNumber *string            `json:"tableNumber"`
	Items       []OrderItemRequest `json:"items"`
}

type AppendItemsRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required"`
}

type CreateOrderItemRequest struct {
	OrderID    uint64          `json:"orderId" binding:"required"`
	MenuItemID uint64          `json:"menuItemId" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
	Price      decimal.Decimal `json:"price"`
}

type DeleteOrderItemRequest struct {
	ID uint64 `json:"id" binding:"required"`
}

type UpdateOrderRequest struct {
	Status        string  `json:"status" binding:"required"`
	PaymentMethod *string `json:"paymentMethod"`
}

type MenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" binding:"required"`
	Image       *string         `json:"image"`
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"tableside/internal/domain"
)

// ErrDuplicateKey reports a unique-constraint violation on insert. Callers
// racing to create the same row catch it and fetch the winner instead.
var ErrDuplicateKey = errors.New("duplicate key")

// Store is the persistence surface of the application. Finders return
// (nil, nil) when the row does not exist; callers translate that into their
// own not-found errors.
//
// Transaction runs fn against a store bound to a single database
// transaction. Every multi-step mutation (create order + occupy table,
// append items + recompute total, remove item + decrement total) goes
// through it so partial failures never leave the order total out of sync
// with its items.
type Store interface {
	Transaction(ctx context.Context, fn func(Store) error) error

	CreateMenuItem(ctx context.Context, item *domain.MenuItem) error
	FindMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	FindMenuItemByID(ctx context.Context, id uint64) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id uint64) error
	CountItemsForMenuItem(ctx context.Context, menuItemID uint64) (int64, error)

	CreateTable(ctx context.Context, table *domain.Table) error
	FindTableByID(ctx context.Context, id uint64) (*domain.Table, error)
	FindTableByIDForUpdate(ctx context.Context, id uint64) (*domain.Table, error)
	FindTableByNumberForUpdate(ctx context.Context, number string) (*domain.Table, error)
	UpdateTableStatus(ctx context.Context, id uint64, status domain.TableStatus) error

	CreateOrder(ctx context.Context, order *domain.Order) error
	FindOrderByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindOrderByIDForUpdate(ctx context.Context, id uint64) (*domain.Order, error)
	FindOrders(ctx context.Context) ([]domain.Order, error)
	FindActiveOrderByTable(ctx context.Context, tableID uint64) (*domain.Order, error)
	CountActiveOrdersByTable(ctx context.Context, tableID uint64) (int64, error)
	UpdateOrderStatus(ctx context.Context, id uint64, status domain.OrderStatus, paymentMethod *string, paidAt *time.Time) error
	UpdateOrderTotal(ctx context.Context, id uint64, total decimal.Decimal) error
	DeleteOrder(ctx context.Context, id uint64) error

	CreateOrderItems(ctx context.Context, items []domain.OrderItem) error
	FindOrderItems(ctx context.Context, orderID uint64) ([]domain.OrderItem, error)
	FindOrderItemByID(ctx context.Context, id uint64) (*domain.OrderItem, error)
	DeleteOrderItem(ctx context.Context, id uint64) error
	FindPendingOrderItems(ctx context.Context) ([]domain.OrderItem, error)
}

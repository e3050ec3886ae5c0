package mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"tableside/internal/domain"
	"tableside/internal/repository"
)

type MockStore struct {
	mock.Mock
}

var _ repository.Store = (*MockStore)(nil)

// Transaction runs fn against the mock itself, so expectations set on the
// mock cover the transactional path too.
func (m *MockStore) Transaction(ctx context.Context, fn func(repository.Store) error) error {
	return fn(m)
}

func (m *MockStore) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStore) FindMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockStore) FindMenuItemByID(ctx context.Context, id uint64) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockStore) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStore) DeleteMenuItem(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) CountItemsForMenuItem(ctx context.Context, menuItemID uint64) (int64, error) {
	args := m.Called(ctx, menuItemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreateTable(ctx context.Context, table *domain.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

func (m *MockStore) FindTableByID(ctx context.Context, id uint64) (*domain.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockStore) FindTableByIDForUpdate(ctx context.Context, id uint64) (*domain.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockStore) FindTableByNumberForUpdate(ctx context.Context, number string) (*domain.Table, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockStore) UpdateTableStatus(ctx context.Context, id uint64, status domain.TableStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockStore) FindOrderByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockStore) FindOrderByIDForUpdate(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockStore) FindOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockStore) FindActiveOrderByTable(ctx context.Context, tableID uint64) (*domain.Order, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockStore) CountActiveOrdersByTable(ctx context.Context, tableID uint64) (int64, error) {
	args := m.Called(ctx, tableID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) UpdateOrderStatus(ctx context.Context, id uint64, status domain.OrderStatus, paymentMethod *string, paidAt *time.Time) error {
	args := m.Called(ctx, id, status, paymentMethod, paidAt)
	return args.Error(0)
}

func (m *MockStore) UpdateOrderTotal(ctx context.Context, id uint64, total decimal.Decimal) error {
	args := m.Called(ctx, id, total)
	return args.Error(0)
}

func (m *MockStore) DeleteOrder(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) CreateOrderItems(ctx context.Context, items []domain.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockStore) FindOrderItems(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}

func (m *MockStore) FindOrderItemByID(ctx context.Context, id uint64) (*domain.OrderItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockStore) DeleteOrderItem(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) FindPendingOrderItems(ctx context.Context) ([]domain.OrderItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) OrderItemCreated(ctx context.Context, evt domain.OrderItemCreatedEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

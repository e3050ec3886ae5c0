package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tableside/internal/domain"
	"tableside/internal/mocks"
)

func pendingRow(id, orderID uint64, name string, qty int, price string, order *domain.Order) domain.OrderItem {
	row := CreateMockItem(id, orderID, 1, qty, price)
	row.MenuItem = domain.MenuItem{ID: 1, Name: name, Price: Dec(price)}
	row.Order = order
	return row
}

func TestOrderService_GroupedItems(t *testing.T) {
	store := new(mocks.MockStore)

	fries := domain.MenuItem{ID: 1, Name: "Fries", Price: Dec("4.50")}
	burger := domain.MenuItem{ID: 2, Name: "Burger", Price: Dec("10.00")}

	order := CreateMockOrder(1, 7, domain.StatusPending, "23.50")
	order.Table = domain.Table{ID: 7, Number: "5", Status: domain.TableOccupied}
	order.Items = []domain.OrderItem{
		{ID: 10, OrderID: 1, MenuItemID: 1, Quantity: 1, Price: Dec("4.50"), MenuItem: fries},
		{ID: 11, OrderID: 1, MenuItemID: 2, Quantity: 1, Price: Dec("10.00"), MenuItem: burger},
		{ID: 12, OrderID: 1, MenuItemID: 1, Quantity: 2, Price: Dec("4.50"), MenuItem: fries},
	}
	store.On("FindOrderByID", mock.Anything, uint64(1)).Return(order, nil)

	service := newTestService(store, new(mocks.MockNotifier))
	view, err := service.GroupedItems(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), view.OrderID)
	assert.Equal(t, "5", view.TableNumber)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, "Fries", view.Items[0].Name)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, "Burger", view.Items[1].Name)
	assert.Equal(t, 1, view.Items[1].Quantity)
}

func TestOrderService_GroupedItems_MissingOrder(t *testing.T) {
	store := new(mocks.MockStore)
	store.On("FindOrderByID", mock.Anything, uint64(99)).Return(nil, nil)

	service := newTestService(store, new(mocks.MockNotifier))
	_, err := service.GroupedItems(context.Background(), 99)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_PendingServiceView_GroupsByName(t *testing.T) {
	store := new(mocks.MockStore)

	order := CreateMockOrder(1, 7, domain.StatusPending, "13.50")
	order.Table = domain.Table{ID: 7, Number: "5", Status: domain.TableOccupied}

	// Two pending Fries rows from the same table merge into one row with
	// the quantities summed.
	store.On("FindPendingOrderItems", mock.Anything).Return([]domain.OrderItem{
		pendingRow(11, 1, "Fries", 2, "4.50", order),
		pendingRow(10, 1, "Fries", 1, "4.50", order),
	}, nil)
	store.On("FindOrders", mock.Anything).Return([]domain.Order{*order}, nil)

	service := newTestService(store, new(mocks.MockNotifier))
	views, err := service.PendingServiceView(context.Background())

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "5", views[0].TableNumber)
	assert.Equal(t, domain.StatusPending, views[0].PaymentStatus)
	assert.Len(t, views[0].Items, 1)
	assert.Equal(t, "Fries", views[0].Items[0].Name)
	assert.Equal(t, 3, views[0].Items[0].Quantity)
}

func TestOrderService_PendingServiceView_BucketsPerOrder(t *testing.T) {
	store := new(mocks.MockStore)

	older := CreateMockOrder(1, 7, domain.StatusPending, "10.00")
	older.Table = domain.Table{ID: 7, Number: "5"}
	older.CreatedAt = time.Now().Add(-time.Hour)

	newer := CreateMockOrder(2, 8, domain.StatusPending, "4.50")
	newer.Table = domain.Table{ID: 8, Number: "9"}
	newer.CreatedAt = time.Now()

	store.On("FindPendingOrderItems", mock.Anything).Return([]domain.OrderItem{
		pendingRow(21, 2, "Fries", 1, "4.50", newer),
		pendingRow(20, 1, "Burger", 1, "10.00", older),
	}, nil)
	// Orders arrive newest first from the store.
	store.On("FindOrders", mock.Anything).Return([]domain.Order{*newer, *older}, nil)

	service := newTestService(store, new(mocks.MockNotifier))
	views, err := service.PendingServiceView(context.Background())

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, uint64(2), views[0].OrderID)
	assert.Equal(t, "Fries", views[0].Items[0].Name)
	assert.Equal(t, uint64(1), views[1].OrderID)
	assert.Equal(t, "Burger", views[1].Items[0].Name)
}

func TestOrderService_PendingServiceView_SkipsOrdersWithoutPendingItems(t *testing.T) {
	store := new(mocks.MockStore)

	active := CreateMockOrder(1, 7, domain.StatusPending, "10.00")
	active.Table = domain.Table{ID: 7, Number: "5"}

	served := CreateMockOrder(2, 8, domain.StatusCompleted, "4.50")
	served.Table = domain.Table{ID: 8, Number: "9"}

	store.On("FindPendingOrderItems", mock.Anything).Return([]domain.OrderItem{
		pendingRow(20, 1, "Burger", 1, "10.00", active),
	}, nil)
	store.On("FindOrders", mock.Anything).Return([]domain.Order{*served, *active}, nil)

	service := newTestService(store, new(mocks.MockNotifier))
	views, err := service.PendingServiceView(context.Background())

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, uint64(1), views[0].OrderID)
}

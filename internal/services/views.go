package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"tableside/internal/domain"
)

// GroupedItem is a kitchen-display row: order items sharing a menu item
// name are merged and their quantities summed.
type GroupedItem struct {
	ID       uint64          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Image    *string         `json:"image"`
}

// OrderItemsView is the grouped item list for one order.
type OrderItemsView struct {
	OrderID     uint64             `json:"orderId"`
	TableNumber string             `json:"tableNumber"`
	Status      domain.OrderStatus `json:"status"`
	Total       decimal.Decimal    `json:"total"`
	CreatedAt   time.Time          `json:"createdAt"`
	Items       []GroupedItem      `json:"items"`
}

type ServiceItemView struct {
	ID       uint64            `json:"id"`
	Name     string            `json:"name"`
	Quantity int               `json:"quantity"`
	Price    decimal.Decimal   `json:"price"`
	Image    *string           `json:"image"`
	Status   domain.ItemStatus `json:"status"`
}

// ServiceOrderView is one card on the service dashboard: an order with its
// pending items, grouped by name.
type ServiceOrderView struct {
	OrderID       uint64             `json:"orderId"`
	TableNumber   string             `json:"tableNumber"`
	PaymentStatus domain.OrderStatus `json:"paymentStatus"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     time.Time          `json:"createdAt"`
	Items         []ServiceItemView  `json:"items"`
}

// GroupedItems returns one order's items grouped by menu item name with
// quantities summed, the shape the per-table kitchen screen renders.
func (s *OrderService) GroupedItems(ctx context.Context, orderID uint64) (*OrderItemsView, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	grouped := make([]GroupedItem, 0, len(order.Items))
	index := make(map[string]int)
	for _, it := range order.Items {
		name := it.MenuItem.Name
		if i, ok := index[name]; ok {
			grouped[i].Quantity += it.Quantity
			continue
		}
		index[name] = len(grouped)
		grouped = append(grouped, GroupedItem{
			ID:       it.ID,
			Name:     name,
			Price:    it.MenuItem.Price,
			Quantity: it.Quantity,
			Image:    it.MenuItem.Image,
		})
	}

	return &OrderItemsView{
		OrderID:     order.ID,
		TableNumber: order.Table.Number,
		Status:      order.Status,
		Total:       order.Total,
		CreatedAt:   order.CreatedAt,
		Items:       grouped,
	}, nil
}

type serviceGroup struct {
	view   ServiceItemView
	tables map[string]struct{}
}

// PendingServiceView builds the kitchen/service dashboard: every PENDING
// order item, grouped by menu item name with quantities summed, then
// bucketed per order. Items are matched to orders by table number, so two
// orders sharing a table number see the same merged rows. Orders come
// newest first; within the groups, items keep the newest-first order of
// their underlying rows.
func (s *OrderService) PendingServiceView(ctx context.Context) ([]ServiceOrderView, error) {
	var (
		rows   []domain.OrderItem
		orders []domain.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.store.FindPendingOrderItems(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.store.FindOrders(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	groups := make([]*serviceGroup, 0, len(rows))
	index := make(map[string]int)
	for _, row := range rows {
		name := row.MenuItem.Name
		tableNumber := ""
		if row.Order != nil {
			tableNumber = row.Order.Table.Number
		}
		if i, ok := index[name]; ok {
			groups[i].view.Quantity += row.Quantity
			groups[i].tables[tableNumber] = struct{}{}
			continue
		}
		index[name] = len(groups)
		groups = append(groups, &serviceGroup{
			view: ServiceItemView{
				ID:       row.ID,
				Name:     name,
				Quantity: row.Quantity,
				Price:    row.MenuItem.Price,
				Image:    row.MenuItem.Image,
				Status:   row.Status,
			},
			tables: map[string]struct{}{tableNumber: {}},
		})
	}

	out := make([]ServiceOrderView, 0, len(orders))
	for _, order := range orders {
		var items []ServiceItemView
		for _, grp := range groups {
			if _, ok := grp.tables[order.Table.Number]; ok {
				items = append(items, grp.view)
			}
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, ServiceOrderView{
			OrderID:       order.ID,
			TableNumber:   order.Table.Number,
			PaymentStatus: order.Status,
			Total:         order.Total,
			CreatedAt:     order.CreatedAt,
			Items:         items,
		})
	}
	return out, nil
}

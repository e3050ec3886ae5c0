package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tableside/internal/domain"
	"tableside/internal/repository"
)

type OrderItemInput struct {
	MenuItemID uint64
	Quantity   int
	Price      decimal.Decimal
}

type CreateOrderInput struct {
	TableID     *uint64
	TableNumber *string
	Items       []OrderItemInput
}

type OrderService struct {
	store    repository.Store
	notifier Notifier
	logger   *zap.Logger
}

func NewOrderService(store repository.Store, notifier Notifier, logger *zap.Logger) *OrderService {
	return &OrderService{store: store, notifier: notifier, logger: logger}
}

// CreateOrder opens an order on a table. The table is resolved by id or by
// number (creating the table on first sight of a new number) and flipped to
// OCCUPIED together with the order insert. If the table already carries an
// active order that order is returned unchanged instead of opening a second
// one.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if err := validateItems(in.Items); err != nil {
		return nil, err
	}

	var (
		existing    *domain.Order
		orderID     uint64
		created     []domain.OrderItem
		tableNumber string
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		table, err := s.resolveTable(ctx, tx, in.TableID, in.TableNumber)
		if err != nil {
			return err
		}
		tableNumber = table.Number

		if table.Status == domain.TableOccupied {
			active, err := tx.FindActiveOrderByTable(ctx, table.ID)
			if err != nil {
				return err
			}
			if active != nil {
				existing = active
				return nil
			}
		}

		items := buildItems(in.Items)
		order := &domain.Order{
			TableID: table.ID,
			Status:  domain.StatusPending,
			Total:   domain.SumItems(items),
			Items:   items,
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}
		if err := tx.UpdateTableStatus(ctx, table.ID, domain.TableOccupied); err != nil {
			return err
		}
		orderID = order.ID
		created = order.Items
		return nil
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	s.notifyItemsCreated(ctx, created, tableNumber)
	return s.GetOrder(ctx, orderID)
}

// AppendItems adds lines to an existing order and recomputes the total from
// the full item set under a row lock, so concurrent appends cannot leave a
// stale total behind.
func (s *OrderService) AppendItems(ctx context.Context, orderID uint64, inputs []OrderItemInput) (*domain.Order, error) {
	if len(inputs) == 0 {
		return nil, ErrNoItems
	}
	if err := validateItems(inputs); err != nil {
		return nil, err
	}

	var created []domain.OrderItem
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		order, err := tx.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		rows := buildItems(inputs)
		for i := range rows {
			rows[i].OrderID = orderID
		}
		if err := tx.CreateOrderItems(ctx, rows); err != nil {
			return err
		}

		all, err := tx.FindOrderItems(ctx, orderID)
		if err != nil {
			return err
		}
		if err := tx.UpdateOrderTotal(ctx, orderID, domain.SumItems(all)); err != nil {
			return err
		}
		created = rows
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s.notifyItemsCreated(ctx, created, order.Table.Number)
	return order, nil
}

// AddItem is the single-line variant used by the diner UI: insert one item
// and bump the total by its extended price.
func (s *OrderService) AddItem(ctx context.Context, orderID uint64, in OrderItemInput) (*domain.OrderItem, error) {
	if err := validateItems([]OrderItemInput{in}); err != nil {
		return nil, err
	}

	var (
		item        *domain.OrderItem
		tableNumber string
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		order, err := tx.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		table, err := tx.FindTableByID(ctx, order.TableID)
		if err != nil {
			return err
		}
		if table != nil {
			tableNumber = table.Number
		}

		rows := buildItems([]OrderItemInput{in})
		rows[0].OrderID = orderID
		if err := tx.CreateOrderItems(ctx, rows); err != nil {
			return err
		}
		if err := tx.UpdateOrderTotal(ctx, orderID, order.Total.Add(rows[0].LineTotal())); err != nil {
			return err
		}
		item = &rows[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyItemsCreated(ctx, []domain.OrderItem{*item}, tableNumber)
	return item, nil
}

// RemoveItem deletes a line and decrements the order total by its extended
// price. A removal that would drive the total below zero is rejected.
func (s *OrderService) RemoveItem(ctx context.Context, itemID uint64) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		item, err := tx.FindOrderItemByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrOrderItemNotFound
		}

		order, err := tx.FindOrderByIDForUpdate(ctx, item.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}

		newTotal := order.Total.Sub(item.LineTotal())
		if newTotal.IsNegative() {
			return ErrNegativeTotal
		}

		if err := tx.DeleteOrderItem(ctx, itemID); err != nil {
			return err
		}
		return tx.UpdateOrderTotal(ctx, item.OrderID, newTotal)
	})
}

// UpdateStatus advances the order lifecycle. Moving to PAID stamps the
// payment method and time and releases the table once it has no other
// active order.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint64, next domain.OrderStatus, paymentMethod *string) (*domain.Order, error) {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		order, err := tx.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !order.Status.CanTransitionTo(next) {
			return ErrInvalidTransition
		}

		var paidAt *time.Time
		var pm *string
		if next == domain.StatusPaid {
			now := time.Now()
			paidAt = &now
			pm = paymentMethod
		}
		if err := tx.UpdateOrderStatus(ctx, orderID, next, pm, paidAt); err != nil {
			return err
		}

		if next == domain.StatusPaid {
			return s.releaseTableIfIdle(ctx, tx, order.TableID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, orderID)
}

// DeleteOrder removes an order and all of its items, releasing the table if
// nothing else holds it.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID uint64) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		order, err := tx.FindOrderByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if err := tx.DeleteOrder(ctx, orderID); err != nil {
			return err
		}
		return s.releaseTableIfIdle(ctx, tx, order.TableID)
	})
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	o, err := s.store.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.store.FindOrders(ctx)
}

// resolveTable maps a table reference to a row. A number that has never
// been seen creates the table; an id that does not resolve is an error.
// The row is read with a row lock so the occupancy check and the order
// insert that follows serialize; without it two concurrent creates on the
// same AVAILABLE table would both pass the active-order check.
func (s *OrderService) resolveTable(ctx context.Context, tx repository.Store, id *uint64, number *string) (*domain.Table, error) {
	switch {
	case id != nil && number == nil:
		table, err := tx.FindTableByIDForUpdate(ctx, *id)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, ErrTableNotFound
		}
		return table, nil
	case number != nil && id == nil:
		table, err := tx.FindTableByNumberForUpdate(ctx, *number)
		if err != nil {
			return nil, err
		}
		if table != nil {
			return table, nil
		}
		table = &domain.Table{Number: *number, Status: domain.TableAvailable}
		err = tx.CreateTable(ctx, table)
		if err == nil {
			return table, nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return nil, err
		}
		// Lost the insert race on the unique number; use the winner's row.
		table, err = tx.FindTableByNumberForUpdate(ctx, *number)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, ErrTableNotFound
		}
		return table, nil
	default:
		return nil, ErrTableRefRequired
	}
}

func (s *OrderService) releaseTableIfIdle(ctx context.Context, tx repository.Store, tableID uint64) error {
	n, err := tx.CountActiveOrdersByTable(ctx, tableID)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return tx.UpdateTableStatus(ctx, tableID, domain.TableAvailable)
}

// notifyItemsCreated broadcasts one event per created line. Failures are
// logged and swallowed; the triggering mutation has already committed.
func (s *OrderService) notifyItemsCreated(ctx context.Context, items []domain.OrderItem, tableNumber string) {
	for _, it := range items {
		evt := domain.OrderItemCreatedEvent{
			ItemID:      it.ID,
			OrderID:     it.OrderID,
			MenuItemID:  it.MenuItemID,
			Quantity:    it.Quantity,
			Price:       it.Price,
			TableNumber: tableNumber,
			CreatedAt:   it.CreatedAt,
		}
		if err := s.notifier.OrderItemCreated(ctx, evt); err != nil {
			s.logger.Warn("order item notification failed",
				zap.Uint64("orderId", it.OrderID),
				zap.Uint64("itemId", it.ID),
				zap.Error(err))
		}
	}
}

func buildItems(inputs []OrderItemInput) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, domain.OrderItem{
			MenuItemID: in.MenuItemID,
			Quantity:   in.Quantity,
			Price:      in.Price,
			Status:     domain.ItemPending,
		})
	}
	return items
}

func validateItems(inputs []OrderItemInput) error {
	for _, in := range inputs {
		if in.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if in.Price.IsNegative() {
			return ErrInvalidPrice
		}
	}
	return nil
}

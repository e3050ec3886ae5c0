package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tableside/internal/domain"
)

func (s *store) CreateOrder(ctx context.Context, order *domain.Order) error {
	// Items are inserted along with the order; the Table association is a
	// plain reference and must not be upserted here.
	return s.db.WithContext(ctx).Omit("Table").Create(order).Error
}

func (s *store) FindOrderByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	err := s.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("Table").
		First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// FindOrderByIDForUpdate takes a row lock on the order so concurrent total
// recomputations serialize. No preloads; the caller reloads after commit.
func (s *store) FindOrderByIDForUpdate(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (s *store) FindOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := s.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("Table").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *store) FindActiveOrderByTable(ctx context.Context, tableID uint64) (*domain.Order, error) {
	var o domain.Order
	err := s.db.WithContext(ctx).
		Where("table_id = ? AND status <> ?", tableID, domain.StatusPaid).
		Preload("Items.MenuItem").
		Preload("Table").
		Order("created_at DESC").
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (s *store) CountActiveOrdersByTable(ctx context.Context, tableID uint64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&domain.Order{}).
		Where("table_id = ? AND status <> ?", tableID, domain.StatusPaid).
		Count(&n).Error
	return n, err
}

func (s *store) UpdateOrderStatus(ctx context.Context, id uint64, status domain.OrderStatus, paymentMethod *string, paidAt *time.Time) error {
	updates := map[string]any{"status": status}
	if paymentMethod != nil {
		updates["payment_method"] = *paymentMethod
	}
	if paidAt != nil {
		updates["paid_at"] = *paidAt
	}
	return s.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).Updates(updates).Error
}

func (s *store) UpdateOrderTotal(ctx context.Context, id uint64, total decimal.Decimal) error {
	return s.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).Update("total", total).Error
}

func (s *store) DeleteOrder(ctx context.Context, id uint64) error {
	// Explicit cascade; the FK constraint is a backstop.
	if err := s.db.WithContext(ctx).Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&domain.Order{}, id).Error
}

func (s *store) CreateOrderItems(ctx context.Context, items []domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Omit("MenuItem", "Order").Create(&items).Error
}

func (s *store) FindOrderItems(ctx context.Context, orderID uint64) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *store) FindOrderItemByID(ctx context.Context, id uint64) (*domain.OrderItem, error) {
	var it domain.OrderItem
	if err := s.db.WithContext(ctx).First(&it, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &it, nil
}

func (s *store) DeleteOrderItem(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&domain.OrderItem{}, id).Error
}

func (s *store) FindPendingOrderItems(ctx context.Context) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.ItemPending).
		Preload("MenuItem").
		Preload("Order").
		Preload("Order.Table").
		Order("id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tableside/internal/domain"
)

func (s *store) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *store) FindMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *store) FindMenuItemByID(ctx context.Context, id uint64) (*domain.MenuItem, error) {
	var m domain.MenuItem
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *store) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return s.db.WithContext(ctx).Save(item).Error
}

func (s *store) DeleteMenuItem(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&domain.MenuItem{}, id).Error
}

func (s *store) CountItemsForMenuItem(ctx context.Context, menuItemID uint64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&domain.OrderItem{}).
		Where("menu_item_id = ?", menuItemID).Count(&n).Error
	return n, err
}

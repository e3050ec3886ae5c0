package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tableside/internal/domain"
	"tableside/internal/repository"
)

type MenuItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       *string
}

type MenuService struct {
	store  repository.Store
	logger *zap.Logger
}

func NewMenuService(store repository.Store, logger *zap.Logger) *MenuService {
	return &MenuService{store: store, logger: logger}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.store.FindMenuItems(ctx)
}

func (s *MenuService) Get(ctx context.Context, id uint64) (*domain.MenuItem, error) {
	m, err := s.store.FindMenuItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMenuItemNotFound
	}
	return m, nil
}

func (s *MenuService) Create(ctx context.Context, in MenuItemInput) (*domain.MenuItem, error) {
	if err := validateMenuItem(in); err != nil {
		return nil, err
	}

	item := &domain.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
	}
	if err := s.store.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id uint64, in MenuItemInput) (*domain.MenuItem, error) {
	if err := validateMenuItem(in); err != nil {
		return nil, err
	}

	item, err := s.store.FindMenuItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMenuItemNotFound
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.Image = in.Image
	if err := s.store.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a menu item. Items already ordered keep their price
// snapshots, but the referencing rows themselves must be preserved, so a
// referenced menu item cannot be deleted.
func (s *MenuService) Delete(ctx context.Context, id uint64) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		item, err := tx.FindMenuItemByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrMenuItemNotFound
		}

		refs, err := tx.CountItemsForMenuItem(ctx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return ErrMenuItemInUse
		}

		return tx.DeleteMenuItem(ctx, id)
	})
}

func validateMenuItem(in MenuItemInput) error {
	if in.Name == "" || in.Description == "" || in.Category == "" {
		return ErrMissingField
	}
	if in.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

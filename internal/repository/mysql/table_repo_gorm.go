package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tableside/internal/domain"
	"tableside/internal/repository"
)

func (s *store) CreateTable(ctx context.Context, table *domain.Table) error {
	err := s.db.WithContext(ctx).Create(table).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repository.ErrDuplicateKey
	}
	return err
}

func (s *store) FindTableByID(ctx context.Context, id uint64) (*domain.Table, error) {
	var t domain.Table
	if err := s.db.WithContext(ctx).First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// FindTableByIDForUpdate locks the table row so occupancy checks and the
// order insert that follows serialize across transactions.
func (s *store) FindTableByIDForUpdate(ctx context.Context, id uint64) (*domain.Table, error) {
	var t domain.Table
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *store) FindTableByNumberForUpdate(ctx context.Context, number string) (*domain.Table, error) {
	var t domain.Table
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("number = ?", number).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *store) UpdateTableStatus(ctx context.Context, id uint64, status domain.TableStatus) error {
	return s.db.WithContext(ctx).Model(&domain.Table{}).
		Where("id = ?", id).Update("status", status).Error
}

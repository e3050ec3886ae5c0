package mysql

import (
	"context"

	"gorm.io/gorm"

	"tableside/internal/repository"
)

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) repository.Store {
	return &store{db: db}
}

// Transaction binds a store to a single database transaction. fn returning
// an error rolls everything back.
func (s *store) Transaction(ctx context.Context, fn func(repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx})
	})
}

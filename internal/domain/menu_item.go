package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a purchasable dish. Price is the current menu price; order
// items snapshot it at order time, so editing a menu item never rewrites
// history.
type MenuItem struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"size:191;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string          `json:"category" gorm:"size:64;not null;index"`
	Image       *string         `json:"image" gorm:"size:255"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

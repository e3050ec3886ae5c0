package domain

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "AVAILABLE"
	TableOccupied  TableStatus = "OCCUPIED"
)

// Table is a physical table in the dining room. Number is the human-facing
// label printed on the table; it is unique and orders are matched to tables
// by it on the service screens.
type Table struct {
	ID        uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Number    string      `json:"number" gorm:"size:32;not null;uniqueIndex"`
	Status    TableStatus `json:"status" gorm:"type:enum('AVAILABLE','OCCUPIED');default:'AVAILABLE'"`
	CreatedAt time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}

package model

import (
	"time"
)

// SavingsEntry represents the database model for savings entries. The
// composite unique index on (user_id, entry_index) backs the per-user
// index guarantee.
type SavingsEntry struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_savings_user_entry"`
	EntryIndex int64     `gorm:"not null;uniqueIndex:idx_savings_user_entry"`
	Name       string    `gorm:"size:255"`
	Amount     float64   `gorm:"not null"`
	Medium     string    `gorm:"size:100"`
	Date       time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for SavingsEntry
func (SavingsEntry) TableName() string {
	return "savings_entries"
}

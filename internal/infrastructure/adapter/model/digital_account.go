package model

import (
	"time"
)

// DigitalAccount represents the database model for digital accounts.
// AccountID is the externally visible identifier, distinct from the row ID.
type DigitalAccount struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index"`
	AccountID string    `gorm:"uniqueIndex;not null;size:64"`
	Name      string    `gorm:"size:255"`
	Balance   float64   `gorm:"not null"`
	Type      string    `gorm:"size:100"`
	CreatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for DigitalAccount
func (DigitalAccount) TableName() string {
	return "digital_accounts"
}

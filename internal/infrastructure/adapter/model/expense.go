package model

import (
	"time"
)

// Expense represents the database model for the append-only expense ledger
type Expense struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	UserID         uint64    `gorm:"not null;index"`
	Amount         float64   `gorm:"not null"`
	Remark         string    `gorm:"size:255"`
	SpentFromState bool      `gorm:"not null;default:false"`
	AccountID      string    `gorm:"size:255"`
	Timestamp      string    `gorm:"size:100"`
	Date           time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}

package model

import (
	"time"
)

// Transaction represents the database model for the append-only
// transaction ledger
type Transaction struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	UserID         uint64    `gorm:"not null;index"`
	Amount         float64   `gorm:"not null"`
	Remark         string    `gorm:"size:255"`
	Medium         string    `gorm:"size:100"`
	AccountID      string    `gorm:"size:255"`
	SpentFromState bool      `gorm:"not null;default:false"`
	Timestamp      string    `gorm:"size:100"`
	Date           time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

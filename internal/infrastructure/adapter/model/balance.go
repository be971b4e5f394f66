package model

import (
	"time"
)

// Balance represents the single per-user balance record
type Balance struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	UserID         uint64    `gorm:"uniqueIndex;not null"`
	TotalBalance   float64   `gorm:"not null"`
	OfflineBalance float64   `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`

	OnlineBalances []OnlineBalance `gorm:"foreignKey:BalanceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "balances"
}

// OnlineBalance is one ordered entry of a balance's online list. EntryID is
// the client-facing handle inside the document; Position preserves list
// order across replaces.
type OnlineBalance struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	BalanceID uint64  `gorm:"not null;index"`
	Position  int     `gorm:"not null"`
	EntryID   string  `gorm:"size:255"`
	Name      string  `gorm:"size:255"`
	Amount    float64 `gorm:"not null"`
	Type      string  `gorm:"size:100"`
}

// TableName specifies the table name for OnlineBalance
func (OnlineBalance) TableName() string {
	return "online_balances"
}

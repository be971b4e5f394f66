package entity

import (
	"time"

	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
)

// OnlineBalance is one named slice of a user's balance held in an online
// account (wallet, bank account, ...). The ID is the client-facing handle
// inside the balance document.
type OnlineBalance struct {
	ID     string
	Name   string
	Amount float64
	Type   string
}

// Balance is the single per-user balance record. TotalBalance is always
// derived from OfflineBalance plus the online amounts; client-supplied
// totals are never stored verbatim.
type Balance struct {
	UserID         uint64
	TotalBalance   float64
	OfflineBalance float64
	OnlineBalances []OnlineBalance
	UpdatedAt      time.Time
}

// NewZeroBalance returns the default record created on first read:
// everything zeroed, no online entries.
func NewZeroBalance(userID uint64, timeProvider coreport.TimeProvider) *Balance {
	return &Balance{
		UserID:         userID,
		TotalBalance:   0,
		OfflineBalance: 0,
		OnlineBalances: []OnlineBalance{},
		UpdatedAt:      timeProvider.Now(),
	}
}

// RecomputeTotal derives TotalBalance from the offline balance and the sum
// of online amounts, overwriting whatever the caller put there.
func (b *Balance) RecomputeTotal() {
	total := b.OfflineBalance
	for _, ob := range b.OnlineBalances {
		total += ob.Amount
	}
	b.TotalBalance = total
}

package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewZeroBalance(t *testing.T) {
	fixedTime := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := stubClock{now: fixedTime}

	balance := NewZeroBalance(1001, clock)

	assert.Equal(t, uint64(1001), balance.UserID)
	assert.Equal(t, float64(0), balance.TotalBalance)
	assert.Equal(t, float64(0), balance.OfflineBalance)
	assert.NotNil(t, balance.OnlineBalances)
	assert.Empty(t, balance.OnlineBalances)
	assert.Equal(t, fixedTime, balance.UpdatedAt)
}

func TestBalanceRecomputeTotal(t *testing.T) {
	t.Run("Sums offline and online amounts", func(t *testing.T) {
		balance := &Balance{
			UserID:         1001,
			OfflineBalance: 150.25,
			OnlineBalances: []OnlineBalance{
				{ID: "wallet", Name: "Wallet", Amount: 49.75, Type: "wallet"},
				{ID: "bank", Name: "Bank", Amount: 300, Type: "bank"},
			},
		}

		balance.RecomputeTotal()

		assert.Equal(t, float64(500), balance.TotalBalance)
	})

	t.Run("Overwrites any prior total", func(t *testing.T) {
		balance := &Balance{
			UserID:         1001,
			TotalBalance:   999999,
			OfflineBalance: 10,
		}

		balance.RecomputeTotal()

		assert.Equal(t, float64(10), balance.TotalBalance)
	})

	t.Run("No online entries", func(t *testing.T) {
		balance := &Balance{
			UserID:         1001,
			OfflineBalance: 42.5,
			OnlineBalances: []OnlineBalance{},
		}

		balance.RecomputeTotal()

		assert.Equal(t, 42.5, balance.TotalBalance)
	})

	t.Run("Negative amounts are summed as-is", func(t *testing.T) {
		balance := &Balance{
			UserID:         1001,
			OfflineBalance: 100,
			OnlineBalances: []OnlineBalance{
				{ID: "credit", Name: "Credit card", Amount: -40, Type: "credit"},
			},
		}

		balance.RecomputeTotal()

		assert.Equal(t, float64(60), balance.TotalBalance)
	})
}

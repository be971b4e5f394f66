package ledger

import (
	"context"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
)

// GetBalance returns the user's balance record, creating a zeroed one on
// first read. A second read returns the persisted record, not a new one.
func (s *Service) GetBalance(ctx context.Context, identity entity.Identity) (*entity.Balance, error) {
	zero := entity.NewZeroBalance(identity.UserID, s.timeProvider)
	balance, err := s.balances.GetOrCreate(ctx, identity.UserID, zero)
	if err != nil {
		s.logger.Error("Failed to get balance", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return balance, nil
}

// PutBalance replaces the user's balance record. The total is recomputed
// from the offline balance and the online amounts; whatever total the
// client sent is discarded.
func (s *Service) PutBalance(ctx context.Context, identity entity.Identity, offline float64, online []entity.OnlineBalance) (*entity.Balance, error) {
	if online == nil {
		online = []entity.OnlineBalance{}
	}

	balance := &entity.Balance{
		UserID:         identity.UserID,
		OfflineBalance: offline,
		OnlineBalances: online,
		UpdatedAt:      s.timeProvider.Now(),
	}
	balance.RecomputeTotal()

	if err := s.balances.Replace(ctx, balance); err != nil {
		s.logger.Error("Failed to store balance", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Balance updated", map[string]any{
		"user_id":        identity.UserID,
		"total_balance":  balance.TotalBalance,
		"online_entries": len(balance.OnlineBalances),
	})

	return balance, nil
}

package ledger

import (
	"context"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/usecase"
)

// AppendTransaction records a new transaction for the user. Transactions
// are append-only; no operation updates or deletes them.
func (s *Service) AppendTransaction(ctx context.Context, identity entity.Identity, input usecase.TransactionInput) (*entity.Transaction, error) {
	tx := &entity.Transaction{
		UserID:         identity.UserID,
		Amount:         input.Amount,
		Remark:         input.Remark,
		Medium:         input.Medium,
		AccountID:      input.AccountID,
		SpentFromState: input.SpentFromState,
		Timestamp:      input.Timestamp,
		Date:           s.timeProvider.Now(),
	}

	if err := s.transactions.Create(ctx, tx); err != nil {
		s.logger.Error("Failed to append transaction", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transaction appended", map[string]any{
		"user_id": identity.UserID,
		"amount":  tx.Amount,
	})

	return tx, nil
}

// ListTransactions returns the user's transactions, newest first.
func (s *Service) ListTransactions(ctx context.Context, identity entity.Identity) ([]entity.Transaction, error) {
	return s.transactions.ListByUser(ctx, identity.UserID)
}

package ledger

import (
	"context"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/usecase"
)

// AppendExpense records a new expense for the user. Append-only, like
// transactions.
func (s *Service) AppendExpense(ctx context.Context, identity entity.Identity, input usecase.ExpenseInput) (*entity.Expense, error) {
	expense := &entity.Expense{
		UserID:         identity.UserID,
		Amount:         input.Amount,
		Remark:         input.Remark,
		SpentFromState: input.SpentFromState,
		AccountID:      input.AccountID,
		Timestamp:      input.Timestamp,
		Date:           s.timeProvider.Now(),
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		s.logger.Error("Failed to append expense", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Expense appended", map[string]any{
		"user_id": identity.UserID,
		"amount":  expense.Amount,
	})

	return expense, nil
}

// ListExpenses returns the user's expenses, newest first.
func (s *Service) ListExpenses(ctx context.Context, identity entity.Identity) ([]entity.Expense, error) {
	return s.expenses.ListByUser(ctx, identity.UserID)
}

package ledger

import (
	"context"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
)

// AppendSavings creates a new savings entry. The index comes from the
// user's atomic savings counter rather than a count of existing rows, so
// concurrent appends for the same user can never collide on an index.
func (s *Service) AppendSavings(ctx context.Context, identity entity.Identity, name string, amount float64, medium string) (*entity.SavingsEntry, error) {
	index, err := s.sequences.Next(ctx, SavingsIndexSequence(identity.UserID), 0)
	if err != nil {
		s.logger.Error("Failed to allocate savings index", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	entry := &entity.SavingsEntry{
		UserID: identity.UserID,
		Index:  index,
		Name:   name,
		Amount: amount,
		Medium: medium,
		Date:   s.timeProvider.Now(),
	}

	if err := s.savings.Create(ctx, entry); err != nil {
		s.logger.Error("Failed to create savings entry", map[string]any{
			"user_id": identity.UserID,
			"index":   index,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Savings entry created", map[string]any{
		"user_id": identity.UserID,
		"index":   index,
	})

	return entry, nil
}

// ListSavings returns all of the user's savings entries, newest first.
func (s *Service) ListSavings(ctx context.Context, identity entity.Identity) ([]entity.SavingsEntry, error) {
	return s.savings.ListByUser(ctx, identity.UserID)
}

// GetSavingsByIndex returns the single entry with the given index, or
// ErrNotFound.
func (s *Service) GetSavingsByIndex(ctx context.Context, identity entity.Identity, index int64) (*entity.SavingsEntry, error) {
	return s.savings.GetByIndex(ctx, identity.UserID, index)
}

// UpdateSavings rewrites name, amount and medium of the entry keyed by
// (user, index). ErrNotFound when no such entry exists.
func (s *Service) UpdateSavings(ctx context.Context, identity entity.Identity, index int64, name string, amount float64, medium string) (*entity.SavingsEntry, error) {
	entry := &entity.SavingsEntry{
		UserID: identity.UserID,
		Index:  index,
		Name:   name,
		Amount: amount,
		Medium: medium,
	}

	updated, err := s.savings.Update(ctx, entry)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Savings entry updated", map[string]any{
		"user_id": identity.UserID,
		"index":   index,
	})

	return updated, nil
}

// DeleteSavings removes the entry keyed by (user, index). Remaining indices
// keep their values; gaps are expected.
func (s *Service) DeleteSavings(ctx context.Context, identity entity.Identity, index int64) error {
	if err := s.savings.Delete(ctx, identity.UserID, index); err != nil {
		return err
	}

	s.logger.Info("Savings entry deleted", map[string]any{
		"user_id": identity.UserID,
		"index":   index,
	})

	return nil
}

package ledger

import (
	"context"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// CreateAccount creates a digital account with a server-minted external id.
func (s *Service) CreateAccount(ctx context.Context, identity entity.Identity, name string, balance float64, accountType string) (*entity.DigitalAccount, error) {
	account := &entity.DigitalAccount{
		UserID:    identity.UserID,
		AccountID: uuid.NewString(),
		Name:      name,
		Balance:   balance,
		Type:      accountType,
		CreatedAt: s.timeProvider.Now(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		s.logger.Error("Failed to create digital account", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Digital account created", map[string]any{
		"user_id":    identity.UserID,
		"account_id": account.AccountID,
	})

	return account, nil
}

// ListAccounts returns the user's digital accounts.
func (s *Service) ListAccounts(ctx context.Context, identity entity.Identity) ([]entity.DigitalAccount, error) {
	return s.accounts.ListByUser(ctx, identity.UserID)
}

// UpdateAccount applies a partial update to the account keyed by
// (user, accountID). ErrNotFound when no such account exists.
func (s *Service) UpdateAccount(ctx context.Context, identity entity.Identity, accountID string, fields persistence.AccountUpdate) (*entity.DigitalAccount, error) {
	updated, err := s.accounts.Update(ctx, identity.UserID, accountID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Digital account updated", map[string]any{
		"user_id":    identity.UserID,
		"account_id": accountID,
	})

	return updated, nil
}

// DeleteAccount removes the account keyed by (user, accountID).
func (s *Service) DeleteAccount(ctx context.Context, identity entity.Identity, accountID string) error {
	if err := s.accounts.Delete(ctx, identity.UserID, accountID); err != nil {
		return err
	}

	s.logger.Info("Digital account deleted", map[string]any{
		"user_id":    identity.UserID,
		"account_id": accountID,
	})

	return nil
}

package persistence

import (
	"context"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
)

// BalanceRepository owns the single per-user balance record
type BalanceRepository interface {
	// GetOrCreate returns the user's balance, persisting the given zeroed
	// record first when none exists. Losing the creation race to a
	// concurrent request resolves to the already-persisted record.
	GetOrCreate(ctx context.Context, userID uint64, zero *entity.Balance) (*entity.Balance, error)

	// Replace overwrites the user's balance record field-by-field, creating
	// it when absent. Online entries are fully replaced, not merged.
	Replace(ctx context.Context, balance *entity.Balance) error
}

// TransactionRepository owns the append-only transaction family
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	ListByUser(ctx context.Context, userID uint64) ([]entity.Transaction, error)
}

// ExpenseRepository owns the append-only expense family
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	ListByUser(ctx context.Context, userID uint64) ([]entity.Expense, error)
}

// SavingsRepository owns per-user savings entries keyed by (userID, index)
type SavingsRepository interface {
	Create(ctx context.Context, entry *entity.SavingsEntry) error
	ListByUser(ctx context.Context, userID uint64) ([]entity.SavingsEntry, error)
	GetByIndex(ctx context.Context, userID uint64, index int64) (*entity.SavingsEntry, error)
	// Update rewrites name, amount and medium for the entry; ErrNotFound
	// when no (userID, index) row matches
	Update(ctx context.Context, entry *entity.SavingsEntry) (*entity.SavingsEntry, error)
	// Delete removes the entry; ErrNotFound when no row matches. Remaining
	// indices are not renumbered.
	Delete(ctx context.Context, userID uint64, index int64) error
}

// AccountUpdate carries the optional fields of a partial digital account
// update; nil means "leave unchanged"
type AccountUpdate struct {
	Name    *string
	Balance *float64
	Type    *string
}

// AccountRepository owns digital accounts keyed by (userID, accountID)
type AccountRepository interface {
	Create(ctx context.Context, account *entity.DigitalAccount) error
	ListByUser(ctx context.Context, userID uint64) ([]entity.DigitalAccount, error)
	Update(ctx context.Context, userID uint64, accountID string, fields AccountUpdate) (*entity.DigitalAccount, error)
	Delete(ctx context.Context, userID uint64, accountID string) error
}

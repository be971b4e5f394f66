package usecase

import (
	"context"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/persistence"
)

// TransactionInput carries the caller-supplied fields of a new transaction
type TransactionInput struct {
	Amount         float64
	Remark         string
	Medium         string
	AccountID      string
	SpentFromState bool
	Timestamp      string
}

// ExpenseInput carries the caller-supplied fields of a new expense
type ExpenseInput struct {
	Amount         float64
	Remark         string
	SpentFromState bool
	AccountID      string
	Timestamp      string
}

// LedgerUseCase defines the per-user ledger operations. Every method is
// scoped by the identity the auth middleware verified.
type LedgerUseCase interface {
	GetBalance(ctx context.Context, identity entity.Identity) (*entity.Balance, error)
	PutBalance(ctx context.Context, identity entity.Identity, offline float64, online []entity.OnlineBalance) (*entity.Balance, error)

	AppendTransaction(ctx context.Context, identity entity.Identity, input TransactionInput) (*entity.Transaction, error)
	ListTransactions(ctx context.Context, identity entity.Identity) ([]entity.Transaction, error)

	AppendExpense(ctx context.Context, identity entity.Identity, input ExpenseInput) (*entity.Expense, error)
	ListExpenses(ctx context.Context, identity entity.Identity) ([]entity.Expense, error)

	AppendSavings(ctx context.Context, identity entity.Identity, name string, amount float64, medium string) (*entity.SavingsEntry, error)
	ListSavings(ctx context.Context, identity entity.Identity) ([]entity.SavingsEntry, error)
	GetSavingsByIndex(ctx context.Context, identity entity.Identity, index int64) (*entity.SavingsEntry, error)
	UpdateSavings(ctx context.Context, identity entity.Identity, index int64, name string, amount float64, medium string) (*entity.SavingsEntry, error)
	DeleteSavings(ctx context.Context, identity entity.Identity, index int64) error

	CreateAccount(ctx context.Context, identity entity.Identity, name string, balance float64, accountType string) (*entity.DigitalAccount, error)
	ListAccounts(ctx context.Context, identity entity.Identity) ([]entity.DigitalAccount, error)
	UpdateAccount(ctx context.Context, identity entity.Identity, accountID string, fields persistence.AccountUpdate) (*entity.DigitalAccount, error)
	DeleteAccount(ctx context.Context, identity entity.Identity, accountID string) error
}

package ledger

import (
	"fmt"

	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/persistence"
)

// SavingsIndexSequence returns the counter name for a user's savings
// indices. Each user has its own sequence starting at zero, so the first
// entry gets index 1 and deleted indices are never reissued.
func SavingsIndexSequence(userID uint64) string {
	return fmt.Sprintf("savings_index:%d", userID)
}

// Service implements the ledger operations over the five per-user record
// families. Every operation is scoped by the verified identity it receives;
// no method accepts a caller-supplied user id.
type Service struct {
	balances     persistence.BalanceRepository
	transactions persistence.TransactionRepository
	expenses     persistence.ExpenseRepository
	savings      persistence.SavingsRepository
	accounts     persistence.AccountRepository
	sequences    persistence.SequenceRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates the ledger service
func NewService(
	balances persistence.BalanceRepository,
	transactions persistence.TransactionRepository,
	expenses persistence.ExpenseRepository,
	savings persistence.SavingsRepository,
	accounts persistence.AccountRepository,
	sequences persistence.SequenceRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		balances:     balances,
		transactions: transactions,
		expenses:     expenses,
		savings:      savings,
		accounts:     accounts,
		sequences:    sequences,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

package repository

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	errs "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func transactionModelToEntity(m *model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:             m.ID,
		UserID:         m.UserID,
		Amount:         m.Amount,
		Remark:         m.Remark,
		Medium:         m.Medium,
		AccountID:      m.AccountID,
		SpentFromState: m.SpentFromState,
		Timestamp:      m.Timestamp,
		Date:           m.Date,
	}
}

// Create appends a transaction row and writes the assigned id back into
// the entity
func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txModel := model.Transaction{
		UserID:         tx.UserID,
		Amount:         tx.Amount,
		Remark:         tx.Remark,
		Medium:         tx.Medium,
		AccountID:      tx.AccountID,
		SpentFromState: tx.SpentFromState,
		Timestamp:      tx.Timestamp,
		Date:           tx.Date,
	}

	result := r.db.WithContext(ctx).Create(&txModel)
	if result.Error != nil {
		r.logger.Error("Failed to create transaction", map[string]any{
			"user_id": tx.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	tx.ID = txModel.ID
	return nil
}

// ListByUser returns all of the user's transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionModelToEntity(&models[i]))
	}
	return transactions, nil
}

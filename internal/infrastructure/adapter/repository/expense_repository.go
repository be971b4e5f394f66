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

// ExpenseRepository implements the ExpenseRepository port using GORM
type ExpenseRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewExpenseRepository creates a new ExpenseRepository instance
func NewExpenseRepository(db *gorm.DB, logger coreport.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

func expenseModelToEntity(m *model.Expense) entity.Expense {
	return entity.Expense{
		ID:             m.ID,
		UserID:         m.UserID,
		Amount:         m.Amount,
		Remark:         m.Remark,
		SpentFromState: m.SpentFromState,
		AccountID:      m.AccountID,
		Timestamp:      m.Timestamp,
		Date:           m.Date,
	}
}

// Create appends an expense row and writes the assigned id back into the
// entity
func (r *ExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.Expense{
		UserID:         expense.UserID,
		Amount:         expense.Amount,
		Remark:         expense.Remark,
		SpentFromState: expense.SpentFromState,
		AccountID:      expense.AccountID,
		Timestamp:      expense.Timestamp,
		Date:           expense.Date,
	}

	result := r.db.WithContext(ctx).Create(&expenseModel)
	if result.Error != nil {
		r.logger.Error("Failed to create expense", map[string]any{
			"user_id": expense.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	expense.ID = expenseModel.ID
	return nil
}

// ListByUser returns all of the user's expenses, newest first
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.Expense, error) {
	var models []model.Expense
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	expenses := make([]entity.Expense, 0, len(models))
	for i := range models {
		expenses = append(expenses, expenseModelToEntity(&models[i]))
	}
	return expenses, nil
}

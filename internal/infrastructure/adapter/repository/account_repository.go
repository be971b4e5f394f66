package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	errs "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/domain/port/persistence"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AccountRepository implements the AccountRepository port using GORM
type AccountRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: logger,
	}
}

func accountModelToEntity(m *model.DigitalAccount) entity.DigitalAccount {
	return entity.DigitalAccount{
		ID:        m.ID,
		UserID:    m.UserID,
		AccountID: m.AccountID,
		Name:      m.Name,
		Balance:   m.Balance,
		Type:      m.Type,
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts a digital account row
func (r *AccountRepository) Create(ctx context.Context, account *entity.DigitalAccount) error {
	accountModel := model.DigitalAccount{
		UserID:    account.UserID,
		AccountID: account.AccountID,
		Name:      account.Name,
		Balance:   account.Balance,
		Type:      account.Type,
		CreatedAt: account.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		r.logger.Error("Failed to create digital account", map[string]any{
			"user_id": account.UserID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	account.ID = accountModel.ID
	return nil
}

// ListByUser returns the user's digital accounts, newest first
func (r *AccountRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.DigitalAccount, error) {
	var models []model.DigitalAccount
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	accounts := make([]entity.DigitalAccount, 0, len(models))
	for i := range models {
		accounts = append(accounts, accountModelToEntity(&models[i]))
	}
	return accounts, nil
}

// Update applies the non-nil fields to the account keyed by
// (userID, accountID)
func (r *AccountRepository) Update(ctx context.Context, userID uint64, accountID string, fields persistence.AccountUpdate) (*entity.DigitalAccount, error) {
	updates := map[string]any{}
	if fields.Name != nil {
		updates["name"] = *fields.Name
	}
	if fields.Balance != nil {
		updates["balance"] = *fields.Balance
	}
	if fields.Type != nil {
		updates["type"] = *fields.Type
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&model.DigitalAccount{}).
			Where("user_id = ? AND account_id = ?", userID, accountID).
			Updates(updates)
		if result.Error != nil {
			r.logger.Error("Failed to update digital account", map[string]any{
				"user_id":    userID,
				"account_id": accountID,
				"error":      result.Error.Error(),
			})
			return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
		}
		if result.RowsAffected == 0 {
			return nil, errs.ErrNotFound
		}
	}

	var accountModel model.DigitalAccount
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND account_id = ?", userID, accountID).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	account := accountModelToEntity(&accountModel)
	return &account, nil
}

// Delete removes the account keyed by (userID, accountID)
func (r *AccountRepository) Delete(ctx context.Context, userID uint64, accountID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND account_id = ?", userID, accountID).
		Delete(&model.DigitalAccount{})
	if result.Error != nil {
		r.logger.Error("Failed to delete digital account", map[string]any{
			"user_id":    userID,
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}

	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack-server/internal/domain/entity"
	errs "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// BalanceRepository implements the BalanceRepository port using GORM. The
// balance record and its online entries form one logical document; replaces
// run inside a single database transaction so readers never observe a
// half-written list.
type BalanceRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBalanceRepository creates a new BalanceRepository instance
func NewBalanceRepository(db *gorm.DB, logger coreport.Logger) *BalanceRepository {
	return &BalanceRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func balanceModelToEntity(m *model.Balance) *entity.Balance {
	online := make([]entity.OnlineBalance, 0, len(m.OnlineBalances))
	for _, ob := range m.OnlineBalances {
		online = append(online, entity.OnlineBalance{
			ID:     ob.EntryID,
			Name:   ob.Name,
			Amount: ob.Amount,
			Type:   ob.Type,
		})
	}

	return &entity.Balance{
		UserID:         m.UserID,
		TotalBalance:   m.TotalBalance,
		OfflineBalance: m.OfflineBalance,
		OnlineBalances: online,
		UpdatedAt:      m.UpdatedAt,
	}
}

func onlineEntriesToModels(balanceID uint64, online []entity.OnlineBalance) []model.OnlineBalance {
	models := make([]model.OnlineBalance, 0, len(online))
	for i, ob := range online {
		models = append(models, model.OnlineBalance{
			BalanceID: balanceID,
			Position:  i,
			EntryID:   ob.ID,
			Name:      ob.Name,
			Amount:    ob.Amount,
			Type:      ob.Type,
		})
	}
	return models
}

func (r *BalanceRepository) preloadOrdered(db *gorm.DB) *gorm.DB {
	return db.Preload("OnlineBalances", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	})
}

// GetOrCreate returns the user's balance, creating a zeroed record on first
// read. A concurrent creator winning the race is handled by re-reading the
// row after the insert is rejected by the unique user_id index.
func (r *BalanceRepository) GetOrCreate(ctx context.Context, userID uint64, zero *entity.Balance) (*entity.Balance, error) {
	var balanceModel model.Balance
	result := r.preloadOrdered(r.db.WithContext(ctx)).Where("user_id = ?", userID).First(&balanceModel)
	if result.Error == nil {
		return balanceModelToEntity(&balanceModel), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	created := model.Balance{
		UserID:         userID,
		TotalBalance:   zero.TotalBalance,
		OfflineBalance: zero.OfflineBalance,
		UpdatedAt:      zero.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		if !r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Error("Failed to create default balance", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
			return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		// Lost the creation race; the winner's record is the one to return.
	} else {
		r.logger.Info("Default balance created", map[string]any{
			"user_id": userID,
		})
	}

	result = r.preloadOrdered(r.db.WithContext(ctx)).Where("user_id = ?", userID).First(&balanceModel)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return balanceModelToEntity(&balanceModel), nil
}

// Replace overwrites the user's balance field-by-field, creating the record
// when absent. The online list is fully replaced, not merged.
func (r *BalanceRepository) Replace(ctx context.Context, balance *entity.Balance) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var balanceModel model.Balance
		result := tx.Where("user_id = ?", balance.UserID).First(&balanceModel)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}
			balanceModel = model.Balance{
				UserID:         balance.UserID,
				TotalBalance:   balance.TotalBalance,
				OfflineBalance: balance.OfflineBalance,
				UpdatedAt:      balance.UpdatedAt,
			}
			if err := tx.Create(&balanceModel).Error; err != nil {
				return err
			}
		} else {
			updates := map[string]any{
				"total_balance":   balance.TotalBalance,
				"offline_balance": balance.OfflineBalance,
				"updated_at":      balance.UpdatedAt,
			}
			if err := tx.Model(&balanceModel).Updates(updates).Error; err != nil {
				return err
			}
			if err := tx.Where("balance_id = ?", balanceModel.ID).Delete(&model.OnlineBalance{}).Error; err != nil {
				return err
			}
		}

		if len(balance.OnlineBalances) == 0 {
			return nil
		}
		entries := onlineEntriesToModels(balanceModel.ID, balance.OnlineBalances)
		return tx.Create(&entries).Error
	})

	if err != nil {
		r.logger.Error("Failed to replace balance", map[string]any{
			"user_id": balance.UserID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return nil
}

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

// SavingsRepository implements the SavingsRepository port using GORM
type SavingsRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSavingsRepository creates a new SavingsRepository instance
func NewSavingsRepository(db *gorm.DB, logger coreport.Logger) *SavingsRepository {
	return &SavingsRepository{
		db:     db,
		logger: logger,
	}
}

func savingsModelToEntity(m *model.SavingsEntry) entity.SavingsEntry {
	return entity.SavingsEntry{
		ID:     m.ID,
		UserID: m.UserID,
		Index:  m.EntryIndex,
		Name:   m.Name,
		Amount: m.Amount,
		Medium: m.Medium,
		Date:   m.Date,
	}
}

// Create inserts a savings entry with a pre-allocated index
func (r *SavingsRepository) Create(ctx context.Context, entry *entity.SavingsEntry) error {
	entryModel := model.SavingsEntry{
		UserID:     entry.UserID,
		EntryIndex: entry.Index,
		Name:       entry.Name,
		Amount:     entry.Amount,
		Medium:     entry.Medium,
		Date:       entry.Date,
	}

	result := r.db.WithContext(ctx).Create(&entryModel)
	if result.Error != nil {
		r.logger.Error("Failed to create savings entry", map[string]any{
			"user_id": entry.UserID,
			"index":   entry.Index,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entry.ID = entryModel.ID
	return nil
}

// ListByUser returns all of the user's savings entries, newest first
func (r *SavingsRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.SavingsEntry, error) {
	var models []model.SavingsEntry
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entries := make([]entity.SavingsEntry, 0, len(models))
	for i := range models {
		entries = append(entries, savingsModelToEntity(&models[i]))
	}
	return entries, nil
}

// GetByIndex returns the single entry keyed by (userID, index)
func (r *SavingsRepository) GetByIndex(ctx context.Context, userID uint64, index int64) (*entity.SavingsEntry, error) {
	var entryModel model.SavingsEntry
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND entry_index = ?", userID, index).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	entry := savingsModelToEntity(&entryModel)
	return &entry, nil
}

// Update rewrites name, amount and medium of the entry keyed by
// (userID, index)
func (r *SavingsRepository) Update(ctx context.Context, entry *entity.SavingsEntry) (*entity.SavingsEntry, error) {
	result := r.db.WithContext(ctx).Model(&model.SavingsEntry{}).
		Where("user_id = ? AND entry_index = ?", entry.UserID, entry.Index).
		Updates(map[string]any{
			"name":   entry.Name,
			"amount": entry.Amount,
			"medium": entry.Medium,
		})
	if result.Error != nil {
		r.logger.Error("Failed to update savings entry", map[string]any{
			"user_id": entry.UserID,
			"index":   entry.Index,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrNotFound
	}

	return r.GetByIndex(ctx, entry.UserID, entry.Index)
}

// Delete removes the entry keyed by (userID, index). Other entries keep
// their indices.
func (r *SavingsRepository) Delete(ctx context.Context, userID uint64, index int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND entry_index = ?", userID, index).
		Delete(&model.SavingsEntry{})
	if result.Error != nil {
		r.logger.Error("Failed to delete savings entry", map[string]any{
			"user_id": userID,
			"index":   index,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}

	return nil
}

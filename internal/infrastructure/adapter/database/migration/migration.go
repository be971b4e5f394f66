package migration

import (
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-server/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationManager applies the schema at startup
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll auto-migrates every persisted collection. Users come first so
// the ledger tables can reference them; counters carry both the user id
// sequence and the per-user savings index sequences.
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	models := []any{
		&model.Counter{},
		&model.User{},
		&model.Balance{},
		&model.OnlineBalance{},
		&model.Transaction{},
		&model.Expense{},
		&model.SavingsEntry{},
		&model.DigitalAccount{},
	}

	for _, mdl := range models {
		if err := m.db.AutoMigrate(mdl); err != nil {
			m.logger.Error("Failed to migrate model", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}

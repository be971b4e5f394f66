package repository

import (
	"context"
	"fmt"

	errs "github.com/fintrackhq/fintrack-server/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-server/internal/domain/port/core"
	"gorm.io/gorm"
)

// SequenceRepository implements the atomic named-counter allocator on top
// of a single-statement upsert. A read-then-write across two calls would
// let concurrent registrations mint duplicate ids; the ON CONFLICT
// increment keeps allocation race-free inside the database.
type SequenceRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSequenceRepository creates a new SequenceRepository instance
func NewSequenceRepository(db *gorm.DB, logger coreport.Logger) *SequenceRepository {
	return &SequenceRepository{
		db:     db,
		logger: logger,
	}
}

// Next increments the counter row for name and returns the new value. The
// row is created lazily with the given start value, so the first call
// returns start+1. Never returns a value on failure.
func (r *SequenceRepository) Next(ctx context.Context, name string, start int64) (int64, error) {
	var seq int64
	result := r.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, seq) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		 RETURNING seq`,
		name, start+1,
	).Scan(&seq)

	if result.Error != nil {
		r.logger.Error("Failed to advance sequence", map[string]any{
			"sequence": name,
			"error":    result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	r.logger.Debug("Sequence advanced", map[string]any{
		"sequence": name,
		"value":    seq,
	})

	return seq, nil
}

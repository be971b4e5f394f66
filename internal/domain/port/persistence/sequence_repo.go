package persistence

import "context"

// SequenceRepository is the atomic named-counter allocator. Next increments
// the counter row for name and returns the new value in a single atomic
// store operation, creating the row with the given start value when absent
// (so the first call returns start+1). For any name, values returned across
// concurrent callers are strictly increasing with no duplicates.
type SequenceRepository interface {
	Next(ctx context.Context, name string, start int64) (int64, error)
}

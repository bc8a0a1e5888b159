package store

import (
	"context"

	"github.com/wellnessio/wellness-backend/internal/model"
)

// EntryStore exposes persistence for the full entry collection.
// Implementations live under internal/store/<driver>/ (e.g., jsonfile).
//
// Every operation reads or writes the whole collection; there is no
// indexing or pagination. This is acceptable at small scale only
// (single-digit thousands of entries) and is a documented ceiling of
// the design, not something drivers should paper over.
type EntryStore interface {
	// LoadAll returns every persisted entry, newest first. An
	// uninitialized medium yields an empty slice, not an error.
	LoadAll(ctx context.Context) ([]model.Entry, error)

	// SaveAll replaces the stored collection with entries, sorted by
	// createdAt descending. The write must be atomic from the caller's
	// perspective.
	SaveAll(ctx context.Context, entries []model.Entry) error
}

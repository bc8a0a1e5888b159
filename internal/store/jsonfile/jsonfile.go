// Package jsonfile implements store.EntryStore on top of a single JSON
// array kept at a fixed path.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/wellnessio/wellness-backend/internal/model"
)

// Store persists the entry collection as one JSON file. It is the sole
// owner of that file; nothing else reads or writes it directly.
type Store struct {
	path string
}

// New returns a Store backed by the file at path. The file and its
// parent directory are created empty on first access.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the store's file path.
func (s *Store) Path() string { return s.path }

// LoadAll deserializes the full collection. A missing file yields an
// empty slice. A file that no longer parses as a JSON array also yields
// an empty slice: the original system favored availability over strict
// error surfacing, and callers treat an empty list as a normal state.
// The parse failure is logged so corruption stays observable.
func (s *Store) LoadAll(ctx context.Context) ([]model.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Entry{}, nil
		}
		return nil, err
	}
	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("entry store unreadable, treating as empty")
		return []model.Entry{}, nil
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries, nil
}

// SaveAll serializes entries sorted by createdAt descending and
// replaces the file atomically: the payload goes to a temp file in the
// same directory, is fsynced, then renamed over the target so a crash
// never leaves a truncated store behind.
func (s *Store) SaveAll(ctx context.Context, entries []model.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sortByCreatedAtDesc(entries)

	if entries == nil {
		entries = []model.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".entries-*.json")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func sortByCreatedAtDesc(entries []model.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wellnessio/wellness-backend/internal/model"
	"github.com/wellnessio/wellness-backend/internal/store"
)

// EntryService orchestrates entry use cases over an EntryStore.
//
// Every mutation is a whole-store read-modify-write; the mutex
// serializes those cycles so concurrent requests cannot lose updates.
// The original system had no such guarantee (last writer won wholesale);
// the lock is a deliberate improvement, not a fidelity requirement.
type EntryService struct {
	mu    sync.Mutex
	store store.EntryStore
	now   func() time.Time
}

func NewEntryService(s store.EntryStore) *EntryService {
	return &EntryService{store: s, now: func() time.Time { return time.Now().UTC() }}
}

// Create assigns a fresh id and creation time, appends the entry and
// persists. Caller-supplied ids are never accepted.
func (s *EntryService) Create(ctx context.Context, req model.CreateEntryRequest) (*model.Entry, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	e := model.Entry{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Mood:      req.Mood,
		Note:      req.Note,
		Image:     req.Image,
		CreatedAt: s.now(),
	}
	entries = append(entries, e)
	if err := s.store.SaveAll(ctx, entries); err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns the given user's entries in store order (newest first).
func (s *EntryService) List(ctx context.Context, userID string) ([]model.Entry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Update merges the supplied fields over the stored record, refreshes
// updatedAt and persists. Nothing is written when the lookup or the
// ownership check fails.
func (s *EntryService) Update(ctx context.Context, entryID string, req model.UpdateEntryRequest) (*model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	i := indexByID(entries, entryID)
	if i < 0 {
		return nil, fmt.Errorf("%w: entry %s", model.ErrNotFound, entryID)
	}
	if err := authorize(&entries[i], req.UserID); err != nil {
		return nil, err
	}

	if req.Mood != nil {
		entries[i].Mood = *req.Mood
	}
	if req.Note != nil {
		entries[i].Note = req.Note
	}
	if req.Image != nil {
		entries[i].Image = req.Image
	}
	now := s.now()
	entries[i].UpdatedAt = &now

	updated := entries[i]
	if err := s.store.SaveAll(ctx, entries); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete hard-removes the entry after the ownership check. There is no
// soft-delete or tombstone.
func (s *EntryService) Delete(ctx context.Context, entryID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}
	i := indexByID(entries, entryID)
	if i < 0 {
		return fmt.Errorf("%w: entry %s", model.ErrNotFound, entryID)
	}
	if err := authorize(&entries[i], userID); err != nil {
		return err
	}

	entries = append(entries[:i], entries[i+1:]...)
	return s.store.SaveAll(ctx, entries)
}

// authorize is the single ownership predicate applied before any
// mutation: the requester's userId must match the stored owner. A
// missing userId never matches because persisted entries always carry
// a non-empty owner.
func authorize(e *model.Entry, userID string) error {
	if userID == "" || e.UserID != userID {
		return fmt.Errorf("%w: entry belongs to another user", model.ErrForbidden)
	}
	return nil
}

func indexByID(entries []model.Entry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

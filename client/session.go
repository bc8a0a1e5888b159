package client

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/wellnessio/wellness-backend/internal/auth"
	"github.com/wellnessio/wellness-backend/internal/model"
)

// fallbackQuotes are shown when the quote proxy is unreachable, so the
// home screen always has something to display.
var fallbackQuotes = []model.Quote{
	{Quote: "Believe in yourself and anything becomes possible.", Author: "Anonymous"},
	{Quote: "Today is a good day to start over.", Author: "Anonymous"},
}

// Session mirrors the signed-in user's entry list in memory. Every
// mutation calls the API first and applies the result locally only on
// success; on failure the mirror is left untouched and the error is
// returned for the caller to surface. No automatic retry.
type Session struct {
	api  *Client
	auth auth.Provider

	mu      sync.Mutex
	userID  string
	entries []model.Entry
}

// NewSession creates a Session over the given API client and identity
// provider.
func NewSession(api *Client, provider auth.Provider) *Session {
	return &Session{api: api, auth: provider}
}

// SignIn authenticates against the identity provider and loads the
// user's entries.
func (s *Session) SignIn(ctx context.Context, email, password string) (*auth.User, error) {
	u, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.SetUser(ctx, u.ID); err != nil {
		return u, err
	}
	return u, nil
}

// SignOut clears the identity and the local mirror.
func (s *Session) SignOut(ctx context.Context) error {
	if err := s.auth.SignOut(ctx); err != nil {
		return err
	}
	return s.SetUser(ctx, "")
}

// SetUser switches the mirror to a new identity: a non-empty userID
// triggers a full fetch, an empty one clears local state. A failed
// fetch leaves the mirror empty, matching the app's behavior.
func (s *Session) SetUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = userID
	s.entries = nil
	if userID == "" {
		return nil
	}
	list, err := s.api.Entries(ctx, userID)
	if err != nil {
		return err
	}
	sortNewestFirst(list)
	s.entries = list
	return nil
}

// UserID returns the current identity ("" when signed out).
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Entries returns a snapshot of the mirrored list, newest first.
func (s *Session) Entries() []model.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Add creates an entry for the current user and prepends it locally.
func (s *Session) Add(ctx context.Context, mood string, note, image *string) (*model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" {
		return nil, auth.ErrSignedOut
	}
	created, err := s.api.CreateEntry(ctx, model.CreateEntryRequest{
		UserID: s.userID, Mood: mood, Note: note, Image: image,
	})
	if err != nil {
		return nil, err
	}
	s.entries = append([]model.Entry{*created}, s.entries...)
	sortNewestFirst(s.entries)
	return created, nil
}

// Edit applies a partial update and replaces the local copy.
func (s *Session) Edit(ctx context.Context, entryID string, mood, note, image *string) (*model.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" {
		return nil, auth.ErrSignedOut
	}
	if idx := s.indexOf(entryID); idx < 0 {
		return nil, fmt.Errorf("%w: entry %s", model.ErrNotFound, entryID)
	}
	updated, err := s.api.UpdateEntry(ctx, entryID, model.UpdateEntryRequest{
		UserID: s.userID, Mood: mood, Note: note, Image: image,
	})
	if err != nil {
		return nil, err
	}
	for i := range s.entries {
		if s.entries[i].ID == entryID {
			s.entries[i] = *updated
		}
	}
	sortNewestFirst(s.entries)
	return updated, nil
}

// Remove deletes an entry and filters it out locally.
func (s *Session) Remove(ctx context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == "" {
		return auth.ErrSignedOut
	}
	if err := s.api.DeleteEntry(ctx, entryID, s.userID); err != nil {
		return err
	}
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return nil
}

// Quote fetches a quote through the proxy, falling back to a locally
// held default when the proxy fails. It never returns an error.
func (s *Session) Quote(ctx context.Context) model.Quote {
	q, err := s.api.Quote(ctx)
	if err != nil || q == nil {
		return fallbackQuotes[rand.Intn(len(fallbackQuotes))]
	}
	return *q
}

// indexOf requires s.mu to be held.
func (s *Session) indexOf(entryID string) int {
	for i := range s.entries {
		if s.entries[i].ID == entryID {
			return i
		}
	}
	return -1
}

func sortNewestFirst(entries []model.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

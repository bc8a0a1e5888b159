package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wellnessio/wellness-backend/internal/api"
	"github.com/wellnessio/wellness-backend/internal/model"
	"github.com/wellnessio/wellness-backend/internal/quotes"
	"github.com/wellnessio/wellness-backend/internal/services"
	"github.com/wellnessio/wellness-backend/internal/store/jsonfile"
)

// newBackend runs the real stack on a temp-dir store. An empty
// quoteUpstream points the proxy at an unreachable address so tests
// never touch the real provider.
func newBackend(t *testing.T, quoteUpstream string) *httptest.Server {
	t.Helper()
	if quoteUpstream == "" {
		quoteUpstream = "http://127.0.0.1:1"
	}
	st := jsonfile.New(filepath.Join(t.TempDir(), "entries.json"))
	svc := services.NewEntryService(st)
	srv := httptest.NewServer(api.NewRouter(svc, quotes.NewProvider(quoteUpstream, time.Second)))
	t.Cleanup(srv.Close)
	return srv
}

func strptr(s string) *string { return &s }

func TestClient_EntryCRUD(t *testing.T) {
	srv := newBackend(t, "")
	c := New(srv.URL)
	ctx := context.Background()

	created, err := c.CreateEntry(ctx, model.CreateEntryRequest{UserID: "u1", Mood: model.MoodHappy, Note: strptr("hi")})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	list, err := c.Entries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	updated, err := c.UpdateEntry(ctx, created.ID, model.UpdateEntryRequest{UserID: "u1", Note: strptr("edited")})
	require.NoError(t, err)
	require.Equal(t, "edited", *updated.Note)
	require.Equal(t, model.MoodHappy, updated.Mood)

	require.NoError(t, c.DeleteEntry(ctx, created.ID, "u1"))

	list, err = c.Entries(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestClient_MapsStatusesToSentinels(t *testing.T) {
	srv := newBackend(t, "")
	c := New(srv.URL)
	ctx := context.Background()

	_, err := c.CreateEntry(ctx, model.CreateEntryRequest{Mood: model.MoodSad})
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = c.UpdateEntry(ctx, "missing", model.UpdateEntryRequest{UserID: "u1"})
	require.ErrorIs(t, err, model.ErrNotFound)

	created, err := c.CreateEntry(ctx, model.CreateEntryRequest{UserID: "u1"})
	require.NoError(t, err)
	_, err = c.UpdateEntry(ctx, created.ID, model.UpdateEntryRequest{UserID: "u2"})
	require.ErrorIs(t, err, model.ErrForbidden)
	require.ErrorIs(t, c.DeleteEntry(ctx, created.ID, "u2"), model.ErrForbidden)
}

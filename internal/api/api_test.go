package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wellnessio/wellness-backend/internal/model"
	"github.com/wellnessio/wellness-backend/internal/quotes"
	"github.com/wellnessio/wellness-backend/internal/services"
	"github.com/wellnessio/wellness-backend/internal/store/jsonfile"
)

// newTestServer runs the full stack against a temp-dir jsonfile store.
// An empty quoteUpstream points the proxy at an unreachable address so
// tests never touch the real provider.
func newTestServer(t *testing.T, quoteUpstream string) *httptest.Server {
	t.Helper()
	if quoteUpstream == "" {
		quoteUpstream = "http://127.0.0.1:1"
	}
	st := jsonfile.New(filepath.Join(t.TempDir(), "entries.json"))
	svc := services.NewEntryService(st)
	provider := quotes.NewProvider(quoteUpstream, 2*time.Second)
	srv := httptest.NewServer(NewRouter(svc, provider))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeEntry(t *testing.T, resp *http.Response) model.Entry {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var e model.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e
}

func decodeEntries(t *testing.T, resp *http.Response) []model.Entry {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out []model.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestEntryLifecycle(t *testing.T) {
	srv := newTestServer(t, "")

	// create
	resp := doJSON(t, http.MethodPost, srv.URL+"/entries", map[string]string{
		"userId": "u1", "mood": "Feliz", "note": "good day",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeEntry(t, resp)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "u1", created.UserID)
	require.Equal(t, "Feliz", created.Mood)
	require.NotNil(t, created.Note)
	require.Equal(t, "good day", *created.Note)
	require.False(t, created.CreatedAt.IsZero())

	// list contains exactly that record
	resp, err := http.Get(srv.URL + "/entries?userId=u1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeEntries(t, resp)
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)

	// partial update: note changes, mood survives, updatedAt appears
	resp = doJSON(t, http.MethodPut, srv.URL+"/entries/"+created.ID, map[string]string{
		"userId": "u1", "note": "updated",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeEntry(t, resp)
	require.Equal(t, "updated", *updated.Note)
	require.Equal(t, "Feliz", updated.Mood)
	require.NotNil(t, updated.UpdatedAt)

	// delete
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/entries/"+created.ID+"?userId=u1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	// list is empty again
	resp, err = http.Get(srv.URL + "/entries?userId=u1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, decodeEntries(t, resp))
}

func TestListRequiresUserID(t *testing.T) {
	srv := newTestServer(t, "")
	resp, err := http.Get(srv.URL + "/entries")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateRequiresUserID(t *testing.T) {
	srv := newTestServer(t, "")
	resp := doJSON(t, http.MethodPost, srv.URL+"/entries", map[string]string{"mood": "happy"})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateRejectsInvalidJSON(t *testing.T) {
	srv := newTestServer(t, "")
	resp, err := http.Post(srv.URL+"/entries", "application/json", bytes.NewBufferString("{nope"))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListIsolatedPerUser(t *testing.T) {
	srv := newTestServer(t, "")
	for i, uid := range []string{"u1", "u2", "u1"} {
		resp := doJSON(t, http.MethodPost, srv.URL+"/entries", map[string]string{
			"userId": uid, "note": fmt.Sprintf("n%d", i),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/entries?userId=u1")
	require.NoError(t, err)
	list := decodeEntries(t, resp)
	require.Len(t, list, 2)
	for _, e := range list {
		require.Equal(t, "u1", e.UserID)
	}
}

func TestUpdateUnknownEntryIsNotFound(t *testing.T) {
	srv := newTestServer(t, "")
	resp := doJSON(t, http.MethodPut, srv.URL+"/entries/does-not-exist", map[string]string{"userId": "u1"})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateWrongOwnerIsForbidden(t *testing.T) {
	srv := newTestServer(t, "")
	resp := doJSON(t, http.MethodPost, srv.URL+"/entries", map[string]string{"userId": "u1", "note": "mine"})
	created := decodeEntry(t, resp)

	resp = doJSON(t, http.MethodPut, srv.URL+"/entries/"+created.ID, map[string]string{"userId": "u2", "note": "stolen"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	// stored record unchanged
	resp, err := http.Get(srv.URL + "/entries?userId=u1")
	require.NoError(t, err)
	list := decodeEntries(t, resp)
	require.Len(t, list, 1)
	require.Equal(t, "mine", *list[0].Note)
}

func TestDeleteWrongOwnerIsForbiddenAndKeepsEntry(t *testing.T) {
	srv := newTestServer(t, "")
	resp := doJSON(t, http.MethodPost, srv.URL+"/entries", map[string]string{"userId": "u1"})
	created := decodeEntry(t, resp)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/entries/"+created.ID+"?userId=u2", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	// missing userId is forbidden as well
	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/entries/"+created.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/entries?userId=u1")
	require.NoError(t, err)
	require.Len(t, decodeEntries(t, resp), 1)
}

func TestDeleteUnknownEntryIsNotFound(t *testing.T) {
	srv := newTestServer(t, "")
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/entries/missing?userId=u1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListOrderNewestFirst(t *testing.T) {
	srv := newTestServer(t, "")
	var ids []string
	for i := 0; i < 3; i++ {
		resp := doJSON(t, http.MethodPost, srv.URL+"/entries", map[string]string{"userId": "u1"})
		ids = append(ids, decodeEntry(t, resp).ID)
		time.Sleep(5 * time.Millisecond)
	}

	resp, err := http.Get(srv.URL + "/entries?userId=u1")
	require.NoError(t, err)
	list := decodeEntries(t, resp)
	require.Len(t, list, 3)
	require.Equal(t, ids[2], list[0].ID)
	require.Equal(t, ids[0], list[2].ID)
	for i := 0; i < len(list)-1; i++ {
		require.False(t, list[i].CreatedAt.Before(list[i+1].CreatedAt))
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, "")
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

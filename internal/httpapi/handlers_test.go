package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"scholarhunt-engine/internal/config"
	"scholarhunt-engine/internal/domain"
	"scholarhunt-engine/internal/events"
	"scholarhunt-engine/internal/httpapi"
	"scholarhunt-engine/internal/rank"
	"scholarhunt-engine/internal/store"
)

func newTestMux(t *testing.T) (*http.ServeMux, httpapi.Deps) {
	t.Helper()

	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db.Pool))

	var cfgVal atomic.Value
	cfgVal.Store(config.Default())

	deps := httpapi.Deps{
		DB:     db.Pool,
		Hub:    events.NewHub(),
		Log:    zap.NewNop(),
		Scores: rank.NewCache(),
		CfgVal: &cfgVal,
	}
	return httpapi.NewMux(deps), deps
}

func do(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func seedListings(t *testing.T, deps httpapi.Deps) {
	t.Helper()
	ctx := context.Background()
	for _, o := range []domain.Opportunity{
		{
			ID: "a", Title: "PhD in Quantum Computing", University: "ETH Zurich",
			Department: "Physics", Description: "Superconducting qubits.",
			Subjects: domain.StringList{"Quantum Computing"},
			PostedDate: "2025-01-01", FullyFunded: true, Supervisor: "Prof. Q",
		},
		{
			ID: "b", Title: "PhD in Marine Biology", University: "University of Bergen",
			Department: "Biosciences", Description: "Arctic ecosystems.",
			Subjects: domain.StringList{"Marine Biology"},
			PostedDate: "2025-02-01", International: true, Deadline: "2027-06-30",
		},
	} {
		_, err := store.UpsertOpportunity(ctx, deps.DB, o)
		require.NoError(t, err)
	}
}

func decodeItems(t *testing.T, rec *httptest.ResponseRecorder) []httpapi.ListItem {
	t.Helper()
	var items []httpapi.ListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	return items
}

func TestListOpportunities_DefaultSort(t *testing.T) {
	mux, deps := newTestMux(t)
	seedListings(t, deps)

	rec := do(t, mux, http.MethodGet, "/opportunities", "")
	require.Equal(t, http.StatusOK, rec.Code)

	items := decodeItems(t, rec)
	require.Len(t, items, 2)
	// default sort is by date, newest first
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)

	for _, item := range items {
		assert.GreaterOrEqual(t, item.Score, 0)
		assert.LessOrEqual(t, item.Score, 100)
		assert.LessOrEqual(t, len(item.Keywords), 3)
	}
}

func TestListOpportunities_FilterFlags(t *testing.T) {
	mux, deps := newTestMux(t)
	seedListings(t, deps)

	rec := do(t, mux, http.MethodGet, "/opportunities?fullyFunded=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeItems(t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)

	rec = do(t, mux, http.MethodGet, "/opportunities?q=bergen", "")
	items = decodeItems(t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)

	rec = do(t, mux, http.MethodGet, "/opportunities?q=nothing-matches", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeItems(t, rec))
}

func TestListOpportunities_CompatibilitySortIsStableAcrossRequests(t *testing.T) {
	mux, deps := newTestMux(t)
	seedListings(t, deps)

	rec := do(t, mux, http.MethodGet, "/opportunities?sort=compatibility", "")
	first := decodeItems(t, rec)

	rec = do(t, mux, http.MethodGet, "/opportunities?sort=compatibility", "")
	second := decodeItems(t, rec)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestGetOpportunity(t *testing.T) {
	mux, deps := newTestMux(t)
	seedListings(t, deps)

	rec := do(t, mux, http.MethodGet, "/opportunities/a", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var item httpapi.ListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "a", item.ID)
	assert.False(t, item.Saved)

	rec = do(t, mux, http.MethodGet, "/opportunities/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSavedFlow(t *testing.T) {
	mux, deps := newTestMux(t)
	seedListings(t, deps)

	rec := do(t, mux, http.MethodPost, "/saved", `{"id":"a"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, mux, http.MethodGet, "/saved", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var saved []store.SavedItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "a", saved[0].Opportunity.ID)

	// the listing now reports itself as saved
	rec = do(t, mux, http.MethodGet, "/opportunities/a", "")
	var item httpapi.ListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.True(t, item.Saved)

	rec = do(t, mux, http.MethodDelete, "/saved/a", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, mux, http.MethodGet, "/saved", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Empty(t, saved)
}

func TestSaved_UnknownID(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := do(t, mux, http.MethodPost, "/saved", `{"id":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfileFlow(t *testing.T) {
	mux, deps := newTestMux(t)
	seedListings(t, deps)

	rec := do(t, mux, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, mux, http.MethodPut, "/profile", `{"interests":["quantum computing"],"sop":"I like qubits."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var p domain.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.NotEmpty(t, p.ID)

	rec = do(t, mux, http.MethodGet, "/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// with a profile present, scoring switches to the compatibility path
	rec = do(t, mux, http.MethodGet, "/opportunities", "")
	items := decodeItems(t, rec)
	require.NotEmpty(t, items)
	for _, item := range items {
		opp := item.Opportunity
		assert.Equal(t, rank.Score(&opp, &p), item.Score)
	}
}

func TestImport(t *testing.T) {
	mux, _ := newTestMux(t)

	body := `[
		{"id":"x","title":"PhD in Compilers","subjects":"Compilers, Programming Languages","postedDate":"2025-03-01"},
		{"title":"PhD without id","subjects":["History"]},
		{"title":""}
	]`
	rec := do(t, mux, http.MethodPost, "/import", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Added    int `json:"added"`
		Skipped  int `json:"skipped"`
		Received int `json:"received"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 3, result.Received)

	rec = do(t, mux, http.MethodGet, "/opportunities", "")
	assert.Len(t, decodeItems(t, rec), 2)
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := do(t, mux, http.MethodDelete, "/opportunities", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	mux, _ := newTestMux(t)
	rec := do(t, mux, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}

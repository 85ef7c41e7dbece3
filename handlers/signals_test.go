package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-signals/config"
	"market-signals/database"
	"market-signals/models"
	"market-signals/services"
)

type apiFixture struct {
	store  *database.Store
	router *gin.Engine
}

func newFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := database.Open(config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "data", "market_intel.db"),
		BusyTimeout: 5 * time.Second,
		LogLevel:    "silent",
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Initialize(context.Background()))

	svc := services.NewQueryService(store, nil)
	h := NewSignalsHandler(svc, store, nil)
	cfg := config.Default().Server
	return &apiFixture{store: store, router: NewRouter(cfg, h, nil)}
}

func (f *apiFixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func catalogHighPriority() int {
	n := 0
	for _, s := range database.SeedCatalog() {
		if s.Priority == models.PriorityHigh {
			n++
		}
	}
	return n
}

func TestQueryStats(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/api?action=stats")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	body := decode(t, rec)
	assert.EqualValues(t, len(database.SeedCatalog()), body["total"])
	assert.EqualValues(t, catalogHighPriority(), body["high_priority"])

	byType := body["by_type"].(map[string]any)
	keys := make([]string, 0, len(byType))
	var sum float64
	for k, v := range byType {
		keys = append(keys, k)
		sum += v.(float64)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"mention", "opportunity", "pain_point", "trending"}, keys)
	assert.EqualValues(t, body["total"], sum)
}

func TestQueryDefaultsToAll(t *testing.T) {
	f := newFixture(t)
	for _, target := range []string{"/api", "/api?action="} {
		rec := f.get(t, target)
		require.Equal(t, http.StatusOK, rec.Code, target)

		body := decode(t, rec)
		signals := body["signals"].([]any)
		assert.Len(t, signals, len(database.SeedCatalog()), target)
		assert.EqualValues(t, len(signals), body["count"])
		_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
		assert.NoError(t, err)

		first := signals[0].(map[string]any)
		assert.EqualValues(t, 91, first["score"])
		assert.IsType(t, []any{}, first["keywords"])
	}
}

func TestQuerySector(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/api?action=sector&sector=Fintech")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Fintech", body["sector"])
	signals := body["signals"].([]any)
	require.Len(t, signals, 5)
	assert.EqualValues(t, 5, body["count"])

	prev := 1 << 30
	for _, raw := range signals {
		sig := raw.(map[string]any)
		assert.Equal(t, "Fintech", sig["sector"])
		score := int(sig["score"].(float64))
		assert.LessOrEqual(t, score, prev)
		prev = score
	}
}

func TestQuerySectorWithAmpersandAndNoMatch(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api?action=sector&sector="+url.QueryEscape("Food & Beverage"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sector":"Food & Beverage"`)
	assert.EqualValues(t, 4, decode(t, rec)["count"])

	rec = f.get(t, "/api?action=sector&sector=NoSuchSector")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, []any{}, body["signals"])
	assert.EqualValues(t, 0, body["count"])

	rec = f.get(t, "/api?action=sector")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", decode(t, rec)["sector"])
}

func TestQueryPlatform(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/api?action=platform&platform="+url.QueryEscape("X / Twitter"))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "X / Twitter", body["platform"])
	assert.EqualValues(t, 3, body["count"])
}

func TestQuerySearch(t *testing.T) {
	f := newFixture(t)

	rec := f.get(t, "/api?action=search")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "", body["query"])
	assert.EqualValues(t, len(database.SeedCatalog()), body["count"])

	rec = f.get(t, "/api?action=search&q="+url.QueryEscape("الصحة"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "الصحة", "non-ASCII must not be escaped")
	assert.EqualValues(t, 1, decode(t, rec)["count"])
}

func TestQueryPostForm(t *testing.T) {
	f := newFixture(t)
	form := url.Values{"action": {"search"}, "q": {"halal"}}
	req := httptest.NewRequest(http.MethodPost, "/api", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "halal", body["query"])
	assert.EqualValues(t, 2, body["count"])
}

func TestQueryUnknownAction(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/api?action=bogus")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Unknown action", body["error"])
	assert.Equal(t, []any{"all", "stats", "sector", "platform", "search"}, body["valid_actions"])
	assert.NotContains(t, body, "signals")
}

func TestQueryStoreFailure(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Close())

	rec := f.get(t, "/api?action=all")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	body := decode(t, rec)
	assert.Equal(t, "StoreError", body["type"])
	assert.Contains(t, body["error"], "database is closed")
	assert.NotContains(t, rec.Body.String(), "goroutine")
}

func TestQueryMalformedJSONBody(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodPost, "/api", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "RequestError", decode(t, rec)["type"])
}

func TestReference(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/api/reference")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Len(t, body["platforms"], 7)
	assert.Len(t, body["sectors"], 9)
	assert.NotEmpty(t, body["last_seeded"])
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.get(t, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])

	require.NoError(t, f.store.Close())
	rec = f.get(t, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "StoreError", decode(t, rec)["type"])
}

func TestRequestIDIsEchoedOrGenerated(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api?action=stats", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))

	rec = f.get(t, "/api?action=stats")
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)
}

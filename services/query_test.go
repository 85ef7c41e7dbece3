package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-signals/models"
)

type fakeStore struct {
	signals []models.Signal
	stats   *models.SignalStats
	err     error

	lastLimit    int
	lastSector   string
	lastPlatform string
	lastQuery    string
}

func (f *fakeStore) ListAll(_ context.Context, limit int) ([]models.Signal, error) {
	f.lastLimit = limit
	return f.signals, f.err
}

func (f *fakeStore) ListBySector(_ context.Context, sector string) ([]models.Signal, error) {
	f.lastSector = sector
	return f.signals, f.err
}

func (f *fakeStore) ListByPlatform(_ context.Context, platform string) ([]models.Signal, error) {
	f.lastPlatform = platform
	return f.signals, f.err
}

func (f *fakeStore) Search(_ context.Context, query string) ([]models.Signal, error) {
	f.lastQuery = query
	return f.signals, f.err
}

func (f *fakeStore) Stats(_ context.Context) (*models.SignalStats, error) {
	return f.stats, f.err
}

var fixedNow = time.Date(2026, 2, 24, 9, 30, 0, 0, time.UTC)

func sampleSignals() []models.Signal {
	return []models.Signal{
		{ID: 2, Title: "b", Type: models.TypePainPoint, Priority: models.PriorityHigh, Score: 88, Sector: "Fintech", Keywords: "SME banking, account opening"},
		{ID: 5, Title: "e", Type: models.TypePainPoint, Priority: models.PriorityMedium, Score: 77, Sector: "Fintech", Keywords: ""},
	}
}

func TestParseAction(t *testing.T) {
	for i, name := range ValidActions() {
		a, ok := ParseAction(name)
		require.True(t, ok, name)
		assert.Equal(t, Action(i), a)
		assert.Equal(t, name, a.String())
	}

	_, ok := ParseAction("bogus")
	assert.False(t, ok)
	_, ok = ParseAction("ALL")
	assert.False(t, ok)
	assert.Equal(t, "Action(42)", Action(42).String())
}

func TestValidActionsIsACopy(t *testing.T) {
	v := ValidActions()
	v[0] = "mutated"
	assert.Equal(t, []string{"all", "stats", "sector", "platform", "search"}, ValidActions())
}

func TestExecuteAll(t *testing.T) {
	store := &fakeStore{signals: sampleSignals()}
	svc := NewQueryService(store, nil, WithClock(func() time.Time { return fixedNow }))

	for _, action := range []string{"all", ""} {
		out, err := svc.Execute(context.Background(), Request{Action: action})
		require.NoError(t, err)

		res, ok := out.(AllResult)
		require.True(t, ok, "got %T", out)
		assert.Equal(t, 2, res.Count)
		assert.Equal(t, "2026-02-24T09:30:00Z", res.Timestamp)
		assert.Equal(t, []string{"SME banking", "account opening"}, res.Signals[0].Keywords)
		assert.Equal(t, []string{}, res.Signals[1].Keywords)
	}
	assert.Equal(t, models.DefaultLimit, store.lastLimit)
}

func TestExecuteAllHonoursLimitOption(t *testing.T) {
	store := &fakeStore{}
	svc := NewQueryService(store, nil, WithLimit(25))
	_, err := svc.Execute(context.Background(), Request{Action: "all"})
	require.NoError(t, err)
	assert.Equal(t, 25, store.lastLimit)

	svc = NewQueryService(store, nil, WithLimit(0))
	_, err = svc.Execute(context.Background(), Request{Action: "all"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultLimit, store.lastLimit)
}

func TestExecuteFilters(t *testing.T) {
	store := &fakeStore{signals: sampleSignals()}
	svc := NewQueryService(store, nil)
	ctx := context.Background()

	out, err := svc.Execute(ctx, Request{Action: "sector", Sector: "Fintech"})
	require.NoError(t, err)
	sector := out.(SectorResult)
	assert.Equal(t, "Fintech", sector.Sector)
	assert.Equal(t, 2, sector.Count)
	assert.Equal(t, "Fintech", store.lastSector)

	out, err = svc.Execute(ctx, Request{Action: "platform", Platform: "Reddit"})
	require.NoError(t, err)
	platform := out.(PlatformResult)
	assert.Equal(t, "Reddit", platform.Platform)
	assert.Equal(t, "Reddit", store.lastPlatform)

	out, err = svc.Execute(ctx, Request{Action: "search"})
	require.NoError(t, err)
	search := out.(SearchResult)
	assert.Equal(t, "", search.Query)
	assert.Equal(t, 2, search.Count)
	assert.Equal(t, "", store.lastQuery)
}

func TestExecuteEmptyResultsEncodeAsArrays(t *testing.T) {
	svc := NewQueryService(&fakeStore{signals: nil}, nil)
	out, err := svc.Execute(context.Background(), Request{Action: "sector", Sector: "NoSuchSector"})
	require.NoError(t, err)

	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"signals":[],"sector":"NoSuchSector","count":0}`, string(body))
}

func TestExecuteStats(t *testing.T) {
	store := &fakeStore{stats: &models.SignalStats{Total: 3, HighPriority: 1, Sectors: 2, Platforms: 2}}
	svc := NewQueryService(store, nil)

	out, err := svc.Execute(context.Background(), Request{Action: "stats"})
	require.NoError(t, err)

	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":3,"high_priority":1,"sectors":2,"platforms":2,"by_type":{}}`, string(body))
}

func TestExecuteUnknownAction(t *testing.T) {
	svc := NewQueryService(&fakeStore{}, nil)
	out, err := svc.Execute(context.Background(), Request{Action: "bogus"})
	require.NoError(t, err)

	body, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Unknown action","valid_actions":["all","stats","sector","platform","search"]}`, string(body))
	assert.NotContains(t, string(body), "signals")
}

func TestExecuteWrapsStoreErrors(t *testing.T) {
	cause := errors.New("disk I/O error")
	svc := NewQueryService(&fakeStore{err: cause}, nil)

	for _, action := range ValidActions() {
		out, err := svc.Execute(context.Background(), Request{Action: action})
		assert.Nil(t, out, action)
		assert.ErrorIs(t, err, cause, action)
	}
}

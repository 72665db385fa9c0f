package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astromitra/astro-ai-go/internal/astro"
	"github.com/astromitra/astro-ai-go/internal/cache"
	"github.com/astromitra/astro-ai-go/internal/models"
)

// stubProvider is a fixed-sky ephemeris used by the service tests.
type stubProvider struct {
	calls int
}

func (p *stubProvider) RawPosition(_ context.Context, _ time.Time, body string) (float64, float64, error) {
	p.calls++
	longitudes := map[string]float64{
		"Sun": 54.2, "Moon": 310.8, "Mars": 340.1, "Mercury": 41.0,
		"Jupiter": 95.5, "Venus": 21.7, "Saturn": 279.3, "Rahu": 306.4,
	}
	return longitudes[body], 0.5, nil
}

func (p *stubProvider) RawHouses(_ context.Context, _ time.Time, _, _ float64, _ string) (float64, [12]float64, error) {
	var cusps [12]float64
	for i := range cusps {
		cusps[i] = 131 + float64(i)*30
	}
	return 131, cusps, nil
}

func (p *stubProvider) Ayanamsa(_ context.Context, _ time.Time, _ string) (float64, error) {
	return 23.5, nil
}

func (p *stubProvider) RiseSet(_ context.Context, instant time.Time, _, _ float64, _ string) (time.Time, time.Time, error) {
	day := instant.UTC().Truncate(24 * time.Hour)
	return day.Add(6 * time.Hour), day.Add(18 * time.Hour), nil
}

func (p *stubProvider) Version() string { return "stub-1" }

// memoryCache is an in-process SnapshotCache.
type memoryCache struct {
	entries map[string]*models.CalcSnapshot
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*models.CalcSnapshot)}
}

func (c *memoryCache) key(hash string, day time.Time) string {
	return hash + ":" + day.UTC().Format("2006-01-02")
}

func (c *memoryCache) Get(_ context.Context, hash string, day time.Time) (*models.CalcSnapshot, error) {
	s, ok := c.entries[c.key(hash, day)]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return s, nil
}

func (c *memoryCache) Set(_ context.Context, s *models.CalcSnapshot) error {
	c.entries[c.key(s.Meta.InputHash, s.Meta.CalcTimestamp)] = s
	return nil
}

// memoryStore records saved snapshots.
type memoryStore struct {
	saved []*models.StoredSnapshot
}

func (s *memoryStore) Save(_ context.Context, stored *models.StoredSnapshot) error {
	s.saved = append(s.saved, stored)
	return nil
}

func (s *memoryStore) GetByHash(_ context.Context, profileID, inputHash string) (*models.StoredSnapshot, error) {
	for _, stored := range s.saved {
		if stored.ProfileID == profileID && stored.InputHash == inputHash {
			return stored, nil
		}
	}
	return nil, cache.ErrCacheMiss
}

func testInput() models.BirthInput {
	return models.BirthInput{
		Instant:   time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC),
		Latitude:  28.6139,
		Longitude: 77.2090,
	}
}

func TestSnapshotServiceComputesAndCaches(t *testing.T) {
	provider := &stubProvider{}
	engine := astro.NewEngine(provider, 12, nil)
	memCache := newMemoryCache()
	svc := NewSnapshotService(engine, memCache, nil, "stub-1", nil)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	first, err := svc.Compute(context.Background(), testInput(), now)
	require.NoError(t, err)
	callsAfterFirst := provider.calls

	second, err := svc.Compute(context.Background(), testInput(), now)
	require.NoError(t, err)
	assert.Equal(t, first.Meta.InputHash, second.Meta.InputHash)
	assert.Equal(t, callsAfterFirst, provider.calls, "second call must not touch the ephemeris")
}

func TestSnapshotServiceStaleRulesetRecomputed(t *testing.T) {
	provider := &stubProvider{}
	engine := astro.NewEngine(provider, 12, nil)
	memCache := newMemoryCache()
	svc := NewSnapshotService(engine, memCache, nil, "stub-1", nil)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	snapshot, err := svc.Compute(context.Background(), testInput(), now)
	require.NoError(t, err)

	// Poison the cached entry with an old ruleset tag.
	stale := *snapshot
	stale.Meta.RulesetVersion = "0.9.0"
	require.NoError(t, memCache.Set(context.Background(), &stale))
	callsBefore := provider.calls

	fresh, err := svc.Compute(context.Background(), testInput(), now)
	require.NoError(t, err)
	assert.Equal(t, astro.RulesetVersion, fresh.Meta.RulesetVersion)
	assert.Greater(t, provider.calls, callsBefore, "stale entry must force recomputation")
}

func TestSnapshotServiceInvalidInput(t *testing.T) {
	engine := astro.NewEngine(&stubProvider{}, 12, nil)
	svc := NewSnapshotService(engine, nil, nil, "", nil)

	bad := testInput()
	bad.Latitude = 200
	_, err := svc.Compute(context.Background(), bad, time.Now())
	require.Error(t, err)
}

func TestComputeForProfilePersists(t *testing.T) {
	engine := astro.NewEngine(&stubProvider{}, 12, nil)
	store := &memoryStore{}
	svc := NewSnapshotService(engine, nil, store, "stub-1", nil)

	profile := &models.Profile{
		ID:           "profile-1",
		UserID:       "user-1",
		BirthInstant: time.Date(1990, 5, 15, 10, 30, 0, 0, time.UTC),
		Latitude:     28.6139,
		Longitude:    77.2090,
	}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	snapshot, err := svc.ComputeForProfile(context.Background(), profile, now)
	require.NoError(t, err)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "profile-1", store.saved[0].ProfileID)
	assert.Equal(t, snapshot.Meta.InputHash, store.saved[0].InputHash)
	assert.NotEmpty(t, store.saved[0].Payload)

	restored, err := svc.LoadStored(context.Background(), "profile-1", snapshot.Meta.InputHash)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Meta, restored.Meta)
}

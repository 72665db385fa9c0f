package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/astromitra/astro-ai-go/internal/astro"
	"github.com/astromitra/astro-ai-go/internal/models"
)

// ErrCacheMiss is returned when no snapshot is cached for a key.
var ErrCacheMiss = errors.New("cache miss")

// SnapshotCache keeps serialized snapshots in Redis keyed by input hash
// and calculation day. Dashas and transits move with the query instant, so
// the day is part of the key.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats is a point-in-time hit/miss counter snapshot.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
}

// NewSnapshotCache creates a snapshot cache with the given TTL.
func NewSnapshotCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *SnapshotCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &SnapshotCache{client: client, ttl: ttl, logger: logger}
}

func cacheKey(inputHash string, calcDay time.Time) string {
	return fmt.Sprintf("snapshot:%s:%s", inputHash, calcDay.UTC().Format("2006-01-02"))
}

// Get fetches and decodes a cached snapshot.
func (c *SnapshotCache) Get(ctx context.Context, inputHash string, calcDay time.Time) (*models.CalcSnapshot, error) {
	data, err := c.client.Get(ctx, cacheKey(inputHash, calcDay)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.misses.Add(1)
		return nil, ErrCacheMiss
	}
	if err != nil {
		c.misses.Add(1)
		return nil, fmt.Errorf("failed to read snapshot cache: %w", err)
	}

	snapshot, err := astro.Deserialize(data)
	if err != nil {
		// A corrupt entry is dropped so the next compute refills it.
		c.misses.Add(1)
		c.client.Del(ctx, cacheKey(inputHash, calcDay))
		return nil, fmt.Errorf("failed to decode cached snapshot: %w", err)
	}

	c.hits.Add(1)
	return snapshot, nil
}

// Set stores a snapshot under its input hash and calculation day.
func (c *SnapshotCache) Set(ctx context.Context, snapshot *models.CalcSnapshot) error {
	data, err := astro.Serialize(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	key := cacheKey(snapshot.Meta.InputHash, snapshot.Meta.CalcTimestamp)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot cache: %w", err)
	}
	c.logger.WithFields(logrus.Fields{
		"key":   key,
		"bytes": len(data),
	}).Debug("Snapshot cached")
	return nil
}

// Invalidate removes the cached snapshot for a key.
func (c *SnapshotCache) Invalidate(ctx context.Context, inputHash string, calcDay time.Time) error {
	return c.client.Del(ctx, cacheKey(inputHash, calcDay)).Err()
}

// Stats reports hit and miss counts since process start.
func (c *SnapshotCache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

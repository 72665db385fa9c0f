package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/astromitra/astro-ai-go/internal/astro"
	"github.com/astromitra/astro-ai-go/internal/cache"
	"github.com/astromitra/astro-ai-go/internal/models"
)

// SnapshotCache is the cache surface the snapshot service uses.
type SnapshotCache interface {
	Get(ctx context.Context, inputHash string, calcDay time.Time) (*models.CalcSnapshot, error)
	Set(ctx context.Context, snapshot *models.CalcSnapshot) error
}

// SnapshotStore is the persistence surface for computed snapshots.
type SnapshotStore interface {
	Save(ctx context.Context, s *models.StoredSnapshot) error
	GetByHash(ctx context.Context, profileID, inputHash string) (*models.StoredSnapshot, error)
}

// SnapshotService runs the calculation engine behind a cache and a store.
// The cache is keyed by input hash and calculation day; entries computed
// under an older ruleset or ephemeris are recomputed, never served.
type SnapshotService struct {
	engine *astro.Engine
	cache  SnapshotCache
	store  SnapshotStore
	logger *logrus.Logger

	ephemerisVersion string
}

// NewSnapshotService wires the engine with optional cache and store.
func NewSnapshotService(engine *astro.Engine, snapshotCache SnapshotCache, store SnapshotStore, ephemerisVersion string, logger *logrus.Logger) *SnapshotService {
	if logger == nil {
		logger = logrus.New()
	}
	return &SnapshotService{
		engine:           engine,
		cache:            snapshotCache,
		store:            store,
		logger:           logger,
		ephemerisVersion: ephemerisVersion,
	}
}

// Compute returns the snapshot for a birth input at the query instant,
// serving from cache when a fresh entry exists.
func (s *SnapshotService) Compute(ctx context.Context, input models.BirthInput, now time.Time) (*models.CalcSnapshot, error) {
	input = input.Normalized()
	if err := astro.ValidateInput(input); err != nil {
		return nil, err
	}
	hash := astro.InputHash(input)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, hash, now)
		if err == nil && s.cacheEntryValid(cached) {
			s.logger.WithField("input_hash", hash).Debug("Snapshot served from cache")
			return cached, nil
		}
		if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.WithField("error", err.Error()).Warn("Snapshot cache read failed")
		}
	}

	snapshot, err := s.engine.Calculate(ctx, input, now)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot); err != nil {
			s.logger.WithField("error", err.Error()).Warn("Snapshot cache write failed")
		}
	}
	return snapshot, nil
}

// ComputeForProfile computes a snapshot for a stored profile and persists
// the serialized result.
func (s *SnapshotService) ComputeForProfile(ctx context.Context, profile *models.Profile, now time.Time) (*models.CalcSnapshot, error) {
	snapshot, err := s.Compute(ctx, profile.BirthInput(), now)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		payload, err := astro.Serialize(snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
		}
		stored := &models.StoredSnapshot{
			UserID:           profile.UserID,
			ProfileID:        profile.ID,
			InputHash:        snapshot.Meta.InputHash,
			Ayanamsa:         string(snapshot.Meta.Ayanamsa),
			HouseSystem:      string(snapshot.Meta.HouseSystem),
			RulesetVersion:   snapshot.Meta.RulesetVersion,
			EphemerisVersion: snapshot.Meta.EphemerisVersion,
			Payload:          payload,
		}
		if err := s.store.Save(ctx, stored); err != nil {
			// Persistence is best-effort: the caller still gets the
			// computed snapshot.
			s.logger.WithField("error", err.Error()).Warn("Snapshot persistence failed")
		}
	}
	return snapshot, nil
}

// LoadStored fetches and decodes a persisted snapshot for a profile.
func (s *SnapshotService) LoadStored(ctx context.Context, profileID, inputHash string) (*models.CalcSnapshot, error) {
	if s.store == nil {
		return nil, errors.New("snapshot store not configured")
	}
	stored, err := s.store.GetByHash(ctx, profileID, inputHash)
	if err != nil {
		return nil, err
	}
	return astro.Deserialize(stored.Payload)
}

func (s *SnapshotService) cacheEntryValid(snapshot *models.CalcSnapshot) bool {
	if snapshot.Meta.RulesetVersion != astro.RulesetVersion {
		return false
	}
	return s.ephemerisVersion == "" || snapshot.Meta.EphemerisVersion == s.ephemerisVersion
}

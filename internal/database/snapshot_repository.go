package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/astromitra/astro-ai-go/internal/models"
)

// SnapshotRepository persists serialized calculation snapshots.
type SnapshotRepository struct {
	db PgxPool
}

// NewSnapshotRepository creates a snapshot repository.
func NewSnapshotRepository(db PgxPool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Save stores a serialized snapshot. Re-saving the same input hash for a
// profile replaces the previous payload.
func (r *SnapshotRepository) Save(ctx context.Context, s *models.StoredSnapshot) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `INSERT INTO snapshots
		(id, user_id, profile_id, input_hash, ayanamsa, house_system,
		 ruleset_version, ephemeris_version, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (profile_id, input_hash) DO UPDATE SET
			payload = EXCLUDED.payload,
			ruleset_version = EXCLUDED.ruleset_version,
			ephemeris_version = EXCLUDED.ephemeris_version,
			created_at = NOW()
		RETURNING created_at`
	err := r.db.QueryRow(ctx, query,
		s.ID, s.UserID, s.ProfileID, s.InputHash, s.Ayanamsa, s.HouseSystem,
		s.RulesetVersion, s.EphemerisVersion, s.Payload).
		Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// GetByHash fetches the stored snapshot for a profile and input hash.
func (r *SnapshotRepository) GetByHash(ctx context.Context, profileID, inputHash string) (*models.StoredSnapshot, error) {
	var s models.StoredSnapshot
	query := `SELECT id, user_id, profile_id, input_hash, ayanamsa, house_system,
		ruleset_version, ephemeris_version, payload, created_at
		FROM snapshots WHERE profile_id = $1 AND input_hash = $2`
	err := r.db.QueryRow(ctx, query, profileID, inputHash).Scan(
		&s.ID, &s.UserID, &s.ProfileID, &s.InputHash, &s.Ayanamsa, &s.HouseSystem,
		&s.RulesetVersion, &s.EphemerisVersion, &s.Payload, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return &s, nil
}

// ListByProfile fetches snapshot metadata for a profile, newest first. The
// payload column is excluded to keep listings light.
func (r *SnapshotRepository) ListByProfile(ctx context.Context, profileID, userID string) ([]models.StoredSnapshot, error) {
	query := `SELECT id, user_id, profile_id, input_hash, ayanamsa, house_system,
		ruleset_version, ephemeris_version, created_at
		FROM snapshots WHERE profile_id = $1 AND user_id = $2 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, profileID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []models.StoredSnapshot
	for rows.Next() {
		var s models.StoredSnapshot
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.ProfileID, &s.InputHash, &s.Ayanamsa, &s.HouseSystem,
			&s.RulesetVersion, &s.EphemerisVersion, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

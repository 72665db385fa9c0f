package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/astromitra/astro-ai-go/internal/models"
)

// ProfileRepository persists birth profiles.
type ProfileRepository struct {
	db PgxPool
}

// NewProfileRepository creates a profile repository.
func NewProfileRepository(db PgxPool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a profile for a user.
func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	query := `INSERT INTO profiles
		(id, user_id, name, gender, birth_instant, latitude, longitude, altitude_m,
		 place, ayanamsa, house_system, uncertainty_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		profile.ID, profile.UserID, profile.Name, profile.Gender,
		profile.BirthInstant, profile.Latitude, profile.Longitude, profile.AltitudeM,
		profile.Place, profile.Ayanamsa, profile.HouseSystem, profile.UncertaintyMinutes).
		Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByID fetches a profile owned by a user.
func (r *ProfileRepository) GetByID(ctx context.Context, id, userID string) (*models.Profile, error) {
	var p models.Profile
	query := `SELECT id, user_id, name, gender, birth_instant, latitude, longitude,
		altitude_m, place, ayanamsa, house_system, uncertainty_minutes, created_at, updated_at
		FROM profiles WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Gender, &p.BirthInstant, &p.Latitude, &p.Longitude,
		&p.AltitudeM, &p.Place, &p.Ayanamsa, &p.HouseSystem, &p.UncertaintyMinutes,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// ListByUser fetches all profiles a user owns, newest first.
func (r *ProfileRepository) ListByUser(ctx context.Context, userID string) ([]models.Profile, error) {
	query := `SELECT id, user_id, name, gender, birth_instant, latitude, longitude,
		altitude_m, place, ayanamsa, house_system, uncertainty_minutes, created_at, updated_at
		FROM profiles WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Gender, &p.BirthInstant, &p.Latitude, &p.Longitude,
			&p.AltitudeM, &p.Place, &p.Ayanamsa, &p.HouseSystem, &p.UncertaintyMinutes,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Delete removes a profile owned by a user.
func (r *ProfileRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/astromitra/astro-ai-go/internal/models"
)

// PredictionRepository persists narrative-layer responses.
type PredictionRepository struct {
	db PgxPool
}

// NewPredictionRepository creates a prediction repository.
func NewPredictionRepository(db PgxPool) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Save stores a prediction.
func (r *PredictionRepository) Save(ctx context.Context, p *models.Prediction) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `INSERT INTO predictions
		(id, user_id, profile_id, input_hash, topic, question, response, model, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.UserID, p.ProfileID, p.InputHash, p.Topic, p.Question, p.Response, p.Model).
		Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save prediction: %w", err)
	}
	return nil
}

// ListByProfile fetches predictions for a profile, newest first.
func (r *PredictionRepository) ListByProfile(ctx context.Context, profileID, userID string, limit int) ([]models.Prediction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := `SELECT id, user_id, profile_id, input_hash, topic, question, response, model, created_at
		FROM predictions WHERE profile_id = $1 AND user_id = $2
		ORDER BY created_at DESC LIMIT $3`
	rows, err := r.db.Query(ctx, query, profileID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	var predictions []models.Prediction
	for rows.Next() {
		var p models.Prediction
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.ProfileID, &p.InputHash, &p.Topic, &p.Question,
			&p.Response, &p.Model, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

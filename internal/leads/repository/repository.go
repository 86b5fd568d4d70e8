package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadintel_backend/platform/apperr"
)

const leadScoreNotFoundMessage = "lead score not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// InsertLead stores one inbound submission.
func (r *Repo) InsertLead(ctx context.Context, lead LeadRecord) error {
	query := `
		INSERT INTO leads (id, email, phone, message, preapproved, timeframe, price_range,
			interactions, property_views, response_time_seconds, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		lead.ID, lead.Email, lead.Phone, lead.Message, lead.Preapproved, lead.Timeframe,
		lead.PriceRange, lead.Interactions, lead.PropertyViews, lead.ResponseTimeSeconds,
		lead.Source, lead.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// UpsertScore stores the latest scoring result for a lead, replacing any
// previous run.
func (r *Repo) UpsertScore(ctx context.Context, score ScoreRecord) error {
	query := `
		INSERT INTO lead_scores (lead_id, score, category, recommended_actions, estimated_timeframe, scored_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (lead_id) DO UPDATE SET
			score = EXCLUDED.score,
			category = EXCLUDED.category,
			recommended_actions = EXCLUDED.recommended_actions,
			estimated_timeframe = EXCLUDED.estimated_timeframe,
			scored_at = EXCLUDED.scored_at`

	_, err := r.pool.Exec(ctx, query,
		score.LeadID, score.Score, score.Category, score.RecommendedActions,
		score.EstimatedTimeframe, score.ScoredAt,
	)
	if err != nil {
		return fmt.Errorf("upsert lead score: %w", err)
	}
	return nil
}

// GetScore retrieves the persisted scoring result for a lead.
func (r *Repo) GetScore(ctx context.Context, leadID uuid.UUID) (ScoreRecord, error) {
	query := `
		SELECT lead_id, score, category, recommended_actions, estimated_timeframe, scored_at
		FROM lead_scores
		WHERE lead_id = $1`

	var record ScoreRecord
	err := r.pool.QueryRow(ctx, query, leadID).Scan(
		&record.LeadID, &record.Score, &record.Category, &record.RecommendedActions,
		&record.EstimatedTimeframe, &record.ScoredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ScoreRecord{}, apperr.NotFound(leadScoreNotFoundMessage)
		}
		return ScoreRecord{}, fmt.Errorf("get lead score: %w", err)
	}

	return record, nil
}

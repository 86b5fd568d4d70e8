package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LeadRecord is the persisted form of one inbound submission.
type LeadRecord struct {
	ID                  uuid.UUID
	Email               string
	Phone               string
	Message             string
	Preapproved         bool
	Timeframe           string
	PriceRange          string
	Interactions        int
	PropertyViews       int
	ResponseTimeSeconds int
	Source              string
	CreatedAt           time.Time
}

// ScoreRecord is the persisted scoring result for a lead.
type ScoreRecord struct {
	LeadID             uuid.UUID
	Score              int
	Category           string
	RecommendedActions []string
	EstimatedTimeframe string
	ScoredAt           time.Time
}

// Repository persists leads and their scoring results.
type Repository interface {
	InsertLead(ctx context.Context, lead LeadRecord) error
	UpsertScore(ctx context.Context, score ScoreRecord) error
	GetScore(ctx context.Context, leadID uuid.UUID) (ScoreRecord, error)
}

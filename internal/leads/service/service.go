// Package service orchestrates lead intake, scoring, and qualification.
package service

import (
	"context"
	"time"

	"leadintel_backend/internal/events"
	"leadintel_backend/internal/leads/domain"
	"leadintel_backend/internal/leads/qualification"
	"leadintel_backend/internal/leads/repository"
	"leadintel_backend/internal/leads/scoring"
	"leadintel_backend/internal/leads/transport"
	"leadintel_backend/platform/phone"

	"leadintel_backend/platform/logger"

	"github.com/google/uuid"
)

// Service wires the pure scoring core to persistence and domain events.
// CRM delivery happens out of band: the crmsync subscriber reacts to the
// LeadScored event this service publishes.
type Service struct {
	repo      repository.Repository
	qualifier *qualification.Evaluator
	bus       events.Bus
	log       *logger.Logger
}

// New creates a new leads service.
func New(repo repository.Repository, qualifier *qualification.Evaluator, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		qualifier: qualifier,
		bus:       bus,
		log:       log,
	}
}

// Score computes a scoring result without persisting anything. Pure and
// safe for concurrent use.
func (s *Service) Score(payload transport.LeadPayload) transport.LeadScoreResponse {
	lead := s.toDomain(payload)
	result := scoring.Evaluate(lead)
	return toScoreResponse(lead.ID, result, time.Now().UTC())
}

// Qualify evaluates the boolean qualification criteria without persisting
// anything.
func (s *Service) Qualify(payload transport.LeadPayload) transport.QualificationResponse {
	lead := s.toDomain(payload)
	result := s.qualifier.Evaluate(lead)
	return toQualificationResponse(lead.ID, result)
}

// Intake persists a public submission, scores it, and publishes domain
// events. The returned score is final before any CRM delivery is attempted;
// delivery failures can never alter it.
func (s *Service) Intake(ctx context.Context, req transport.SubmitLeadRequest) (transport.LeadScoreResponse, error) {
	leadID := uuid.New()
	now := time.Now().UTC()

	timeframe, recognized := domain.ParseTimeframe(req.Timeframe)
	if !recognized {
		s.log.Warn("unrecognized lead timeframe", "lead_id", leadID, "timeframe", req.Timeframe)
	}

	lead := domain.LeadInput{
		ID:                  leadID.String(),
		Email:               req.Email,
		Phone:               req.Phone,
		Message:             req.Message,
		Preapproved:         req.Preapproved,
		Timeframe:           timeframe,
		PriceRange:          req.PriceRange,
		Interactions:        req.Interactions,
		PropertyViews:       req.PropertyViews,
		ResponseTimeSeconds: req.ResponseTimeSeconds,
	}

	result := scoring.Evaluate(lead)

	record := repository.LeadRecord{
		ID:                  leadID,
		Email:               req.Email,
		Phone:               phone.NormalizeE164(req.Phone),
		Message:             req.Message,
		Preapproved:         req.Preapproved,
		Timeframe:           string(timeframe),
		PriceRange:          req.PriceRange,
		Interactions:        req.Interactions,
		PropertyViews:       req.PropertyViews,
		ResponseTimeSeconds: req.ResponseTimeSeconds,
		Source:              req.Source,
		CreatedAt:           now,
	}
	if err := s.repo.InsertLead(ctx, record); err != nil {
		return transport.LeadScoreResponse{}, err
	}

	if err := s.repo.UpsertScore(ctx, repository.ScoreRecord{
		LeadID:             leadID,
		Score:              result.Score,
		Category:           string(result.Category),
		RecommendedActions: result.RecommendedActions,
		EstimatedTimeframe: result.EstimatedTimeframe,
		ScoredAt:           now,
	}); err != nil {
		return transport.LeadScoreResponse{}, err
	}

	s.log.LeadScored(leadID.String(), result.Score, string(result.Category))

	s.bus.Publish(ctx, events.LeadReceived{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    leadID,
		Email:     req.Email,
		Phone:     record.Phone,
		Source:    req.Source,
	})
	s.bus.Publish(ctx, events.LeadScored{
		BaseEvent:          events.NewBaseEvent(),
		LeadID:             leadID,
		Score:              result.Score,
		Category:           string(result.Category),
		EstimatedTimeframe: result.EstimatedTimeframe,
	})

	if verdict := s.qualifier.Evaluate(lead); verdict.IsQualified {
		s.bus.Publish(ctx, events.LeadQualified{
			BaseEvent:          events.NewBaseEvent(),
			LeadID:             leadID,
			QualificationScore: verdict.QualificationScore,
		})
	}

	return toScoreResponse(leadID.String(), result, now), nil
}

// GetScore retrieves a previously persisted scoring result.
func (s *Service) GetScore(ctx context.Context, leadID uuid.UUID) (transport.LeadScoreResponse, error) {
	record, err := s.repo.GetScore(ctx, leadID)
	if err != nil {
		return transport.LeadScoreResponse{}, err
	}

	return transport.LeadScoreResponse{
		LeadID:             record.LeadID.String(),
		Score:              record.Score,
		Category:           record.Category,
		RecommendedActions: record.RecommendedActions,
		EstimatedTimeframe: record.EstimatedTimeframe,
		ScoredAt:           record.ScoredAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *Service) toDomain(payload transport.LeadPayload) domain.LeadInput {
	timeframe, recognized := domain.ParseTimeframe(payload.Timeframe)
	if !recognized {
		s.log.Debug("unrecognized lead timeframe", "timeframe", payload.Timeframe)
	}

	return domain.LeadInput{
		ID:                  payload.ID,
		Email:               payload.Email,
		Phone:               payload.Phone,
		Message:             payload.Message,
		Preapproved:         payload.Preapproved,
		Timeframe:           timeframe,
		PriceRange:          payload.PriceRange,
		Interactions:        payload.Interactions,
		PropertyViews:       payload.PropertyViews,
		ResponseTimeSeconds: payload.ResponseTimeSeconds,
	}
}

func toScoreResponse(leadID string, result domain.LeadScore, scoredAt time.Time) transport.LeadScoreResponse {
	return transport.LeadScoreResponse{
		LeadID:             leadID,
		Score:              result.Score,
		Category:           string(result.Category),
		RecommendedActions: result.RecommendedActions,
		EstimatedTimeframe: result.EstimatedTimeframe,
		ScoredAt:           scoredAt.Format(time.RFC3339),
	}
}

func toQualificationResponse(leadID string, result qualification.Result) transport.QualificationResponse {
	return transport.QualificationResponse{
		LeadID:              leadID,
		BuyingTimeframe:     result.BuyingTimeframe,
		BudgetSpecified:     result.BudgetSpecified,
		ContactInfoComplete: result.ContactInfoComplete,
		CommunityInterest:   result.CommunityInterest,
		LuxuryMarket:        result.LuxuryMarket,
		QualificationScore:  result.QualificationScore,
		IsQualified:         result.IsQualified,
	}
}

// Package service provides listing storage and preference ranking on top of
// the pure matcher.
package service

import (
	"context"
	"sort"
	"time"

	"leadintel_backend/internal/matching/domain"
	"leadintel_backend/internal/matching/matcher"
	"leadintel_backend/internal/matching/repository"
	"leadintel_backend/internal/matching/transport"
	"leadintel_backend/platform/logger"

	"github.com/google/uuid"
)

// defaultRankLimit bounds ranked result sets when the caller does not ask
// for a specific size.
const defaultRankLimit = 20

// Service wires the pure matcher to the property store.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new matching service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Match computes the compatibility score for an inline (property, preferences)
// pair. Pure and safe for concurrent use.
func (s *Service) Match(req transport.MatchRequest) transport.MatchResponse {
	property := toDomainProperty(req.Property)
	prefs := toDomainPreferences(req.Preferences)
	return transport.MatchResponse{Score: matcher.MatchScore(property, prefs)}
}

// Rank scores every stored listing against the profile and returns the best
// matches first. Ties preserve recency order from the store.
func (s *Service) Rank(ctx context.Context, req transport.RankRequest) (transport.RankResponse, error) {
	properties, err := s.repo.List(ctx)
	if err != nil {
		return transport.RankResponse{}, err
	}

	prefs := toDomainPreferences(req.Preferences)

	results := make([]transport.RankedProperty, 0, len(properties))
	for _, property := range properties {
		results = append(results, transport.RankedProperty{
			Property: toPropertyResponse(property),
			Score:    matcher.MatchScore(property, prefs),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	limit := req.Limit
	if limit <= 0 {
		limit = defaultRankLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	return transport.RankResponse{Results: results}, nil
}

// CreateProperty stores a listing snapshot.
func (s *Service) CreateProperty(ctx context.Context, req transport.CreatePropertyRequest) (transport.PropertyResponse, error) {
	now := time.Now().UTC()
	property := toDomainProperty(req)
	property.ID = uuid.New()
	property.CreatedAt = now
	property.UpdatedAt = now

	if err := s.repo.Insert(ctx, property); err != nil {
		return transport.PropertyResponse{}, err
	}

	return toPropertyResponse(property), nil
}

// GetProperty retrieves a stored listing snapshot.
func (s *Service) GetProperty(ctx context.Context, id uuid.UUID) (transport.PropertyResponse, error) {
	property, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.PropertyResponse{}, err
	}
	return toPropertyResponse(property), nil
}

// ListProperties retrieves all stored listing snapshots.
func (s *Service) ListProperties(ctx context.Context) ([]transport.PropertyResponse, error) {
	properties, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		responses = append(responses, toPropertyResponse(property))
	}
	return responses, nil
}

func toDomainProperty(payload transport.PropertyPayload) domain.Property {
	return domain.Property{
		Style:           payload.Style,
		Features:        payload.Features,
		Bedrooms:        payload.Bedrooms,
		Neighborhood:    payload.Neighborhood,
		Location:        payload.Location,
		NoiseLevel:      payload.NoiseLevel,
		NearbyAmenities: payload.NearbyAmenities,
		PetFriendly:     payload.PetFriendly,
	}
}

func toDomainPreferences(payload transport.PreferencesPayload) domain.PreferenceProfile {
	return domain.PreferenceProfile{
		PropertyType:  payload.PropertyType,
		Features:      payload.Features,
		Lifestyle:     payload.Lifestyle,
		Timeline:      payload.Timeline,
		Communication: payload.Communication,
	}
}

func toPropertyResponse(property domain.Property) transport.PropertyResponse {
	return transport.PropertyResponse{
		ID:              property.ID.String(),
		Style:           property.Style,
		Features:        property.Features,
		Bedrooms:        property.Bedrooms,
		Neighborhood:    property.Neighborhood,
		Location:        property.Location,
		NoiseLevel:      property.NoiseLevel,
		NearbyAmenities: property.NearbyAmenities,
		PetFriendly:     property.PetFriendly,
		CreatedAt:       property.CreatedAt.UTC().Format(time.RFC3339),
	}
}

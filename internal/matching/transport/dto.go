// Package transport defines the request/response DTOs for the matching module.
package transport

// PropertyPayload describes a listing snapshot, either inline for stateless
// matching or as the body when creating a stored listing.
type PropertyPayload struct {
	Style           string   `json:"style,omitempty" validate:"omitempty,max=100"`
	Features        []string `json:"features,omitempty" validate:"omitempty,dive,max=100"`
	Bedrooms        int      `json:"bedrooms" validate:"gte=0,lte=50"`
	Neighborhood    string   `json:"neighborhood,omitempty" validate:"omitempty,max=100"`
	Location        string   `json:"location,omitempty" validate:"omitempty,max=100"`
	NoiseLevel      string   `json:"noiseLevel,omitempty" validate:"omitempty,max=50"`
	NearbyAmenities []string `json:"nearbyAmenities,omitempty" validate:"omitempty,dive,max=100"`
	PetFriendly     bool     `json:"petFriendly"`
}

// PreferencesPayload is a user-declared preference profile.
type PreferencesPayload struct {
	PropertyType  string   `json:"propertyType,omitempty" validate:"omitempty,max=100"`
	Features      []string `json:"features,omitempty" validate:"omitempty,dive,max=100"`
	Lifestyle     []string `json:"lifestyle,omitempty" validate:"omitempty,dive,max=50"`
	Timeline      string   `json:"timeline,omitempty" validate:"omitempty,max=50"`
	Communication string   `json:"communication,omitempty" validate:"omitempty,max=50"`
}

// MatchRequest pairs a property with a preference profile for stateless scoring.
type MatchRequest struct {
	Property    PropertyPayload    `json:"property" validate:"required"`
	Preferences PreferencesPayload `json:"preferences" validate:"required"`
}

// MatchResponse is a single compatibility score.
type MatchResponse struct {
	Score int `json:"score"`
}

// RankRequest asks for stored listings ranked against a preference profile.
type RankRequest struct {
	Preferences PreferencesPayload `json:"preferences" validate:"required"`
	Limit       int                `json:"limit" validate:"gte=0,lte=100"`
}

// RankedProperty is one listing with its compatibility score.
type RankedProperty struct {
	Property PropertyResponse `json:"property"`
	Score    int              `json:"score"`
}

// RankResponse is the ranked result set, best match first.
type RankResponse struct {
	Results []RankedProperty `json:"results"`
}

// CreatePropertyRequest is the body for storing a listing snapshot.
type CreatePropertyRequest = PropertyPayload

// PropertyResponse is a stored listing snapshot.
type PropertyResponse struct {
	ID              string   `json:"id"`
	Style           string   `json:"style,omitempty"`
	Features        []string `json:"features,omitempty"`
	Bedrooms        int      `json:"bedrooms"`
	Neighborhood    string   `json:"neighborhood,omitempty"`
	Location        string   `json:"location,omitempty"`
	NoiseLevel      string   `json:"noiseLevel,omitempty"`
	NearbyAmenities []string `json:"nearbyAmenities,omitempty"`
	PetFriendly     bool     `json:"petFriendly"`
	CreatedAt       string   `json:"createdAt"`
}

// Package domain holds the preference matching domain types.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Property is a read-only listing snapshot used as matcher input.
type Property struct {
	ID              uuid.UUID
	Style           string
	Features        []string
	Bedrooms        int
	Neighborhood    string
	Location        string
	NoiseLevel      string
	NearbyAmenities []string
	PetFriendly     bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PreferenceProfile is a user-declared description of desired property
// attributes. It is read-only to the matcher; the caller owns persistence.
type PreferenceProfile struct {
	PropertyType  string
	Features      []string
	Lifestyle     []string
	Timeline      string
	Communication string
}

// Lifestyle vocabulary. Tags outside this set contribute nothing to a match.
const (
	LifestyleFamily       = "family"
	LifestyleEntertaining = "entertaining"
	LifestyleQuiet        = "quiet"
	LifestyleActive       = "active"
	LifestylePets         = "pets"
	LifestyleRemoteWork   = "remote-work"
)

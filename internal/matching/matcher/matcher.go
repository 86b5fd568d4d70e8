// Package matcher computes compatibility scores between property listings
// and preference profiles. All functions are pure and never fail; missing
// attributes count as "no match" rather than errors.
package matcher

import (
	"slices"

	"leadintel_backend/internal/matching/domain"
)

const (
	propertyTypePoints = 20
	featurePoints      = 15
	lifestylePoints    = 10

	// maxScore bounds the final result. The raw sum is unbounded; the clamp
	// is the only bound enforcement in the matcher.
	maxScore = 100
)

// lifestylePredicates maps each lifestyle tag to the property condition that
// satisfies it. Unknown tags simply have no entry.
var lifestylePredicates = map[string]func(domain.Property) bool{
	domain.LifestyleFamily: func(p domain.Property) bool {
		return p.Bedrooms >= 3 && p.Neighborhood == "family-friendly"
	},
	domain.LifestyleEntertaining: func(p domain.Property) bool {
		return hasFeature(p, "pool") || hasFeature(p, "outdoor-space")
	},
	domain.LifestyleQuiet: func(p domain.Property) bool {
		return p.Location == "cul-de-sac" || p.NoiseLevel == "low"
	},
	domain.LifestyleActive: func(p domain.Property) bool {
		return slices.Contains(p.NearbyAmenities, "trails") || slices.Contains(p.NearbyAmenities, "fitness")
	},
	domain.LifestylePets: func(p domain.Property) bool {
		return hasFeature(p, "large-yard") || p.PetFriendly
	},
	domain.LifestyleRemoteWork: func(p domain.Property) bool {
		return hasFeature(p, "home-office") || p.Bedrooms >= 4
	},
}

// MatchScore computes the 0-100 compatibility score between a listing and a
// preference profile. Scoring is purely additive before the final clamp:
// exact property-type match, per-feature overlap, and per-lifestyle
// predicate hits.
func MatchScore(property domain.Property, prefs domain.PreferenceProfile) int {
	score := 0

	if prefs.PropertyType != "" && prefs.PropertyType == property.Style {
		score += propertyTypePoints
	}

	for _, feature := range prefs.Features {
		if hasFeature(property, feature) {
			score += featurePoints
		}
	}

	for _, tag := range prefs.Lifestyle {
		predicate, ok := lifestylePredicates[tag]
		if ok && predicate(property) {
			score += lifestylePoints
		}
	}

	if score > maxScore {
		return maxScore
	}
	return score
}

func hasFeature(p domain.Property, feature string) bool {
	return slices.Contains(p.Features, feature)
}

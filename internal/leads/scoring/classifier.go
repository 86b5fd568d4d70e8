package scoring

import "leadintel_backend/internal/leads/domain"

const (
	hotThreshold  = 70
	warmThreshold = 40
)

// Per-category follow-up playbooks. These depend on category alone.
var (
	hotActions = []string{
		"Call within 5 minutes",
		"Send personalized property matches",
		"Schedule showing ASAP",
	}
	warmActions = []string{
		"Call within 1 hour",
		"Send market report",
		"Add to drip campaign",
	}
	coldActions = []string{
		"Add to nurture sequence",
		"Send monthly newsletter",
		"Check in quarterly",
	}
)

// Classify maps a score to its category using right-open thresholds.
// The partition is total: every score lands in exactly one category.
func Classify(score int) domain.Category {
	switch {
	case score >= hotThreshold:
		return domain.CategoryHot
	case score >= warmThreshold:
		return domain.CategoryWarm
	default:
		return domain.CategoryCold
	}
}

// RecommendedActions returns the fixed follow-up playbook for a category.
// The returned slice is a copy; callers may mutate it freely.
func RecommendedActions(category domain.Category) []string {
	var actions []string
	switch category {
	case domain.CategoryHot:
		actions = hotActions
	case domain.CategoryWarm:
		actions = warmActions
	default:
		actions = coldActions
	}
	return append([]string(nil), actions...)
}

// EstimatedTimeframe returns the expected conversion window for a category.
func EstimatedTimeframe(category domain.Category) string {
	switch category {
	case domain.CategoryHot:
		return "0-30 days"
	case domain.CategoryWarm:
		return "30-90 days"
	default:
		return "90+ days"
	}
}

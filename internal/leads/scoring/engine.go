// Package scoring computes lead scores from inbound submissions.
// All functions are pure: no state, no I/O, safe for concurrent use.
package scoring

import (
	"strings"

	"leadintel_backend/internal/leads/domain"
)

const (
	// Factor contributions. Each factor is capped independently; the total
	// is deliberately left uncapped to match the reference scoring model.
	preapprovalPoints = 20

	priceRangePoints = 15

	interactionPoints = 5
	interactionCap    = 20

	propertyViewPoints = 2
	propertyViewCap    = 10

	fastResponsePoints    = 10
	slowResponsePoints    = 5
	fastResponseThreshold = 300 // seconds
)

// timeframePoints maps the declared buying timeframe to its contribution.
// TimeframeUnknown and any unrecognized value contribute nothing.
func timeframePoints(tf domain.Timeframe) int {
	switch tf {
	case domain.TimeframeASAP:
		return 25
	case domain.TimeframeOneToThree:
		return 20
	case domain.TimeframeThreeToSix:
		return 10
	case domain.TimeframeSixPlus:
		return 5
	case domain.TimeframeJustBrowsing:
		return 0
	default:
		return 0
	}
}

// Score computes the weighted lead score as the sum of six independently
// capped factors. It never fails for any well-formed input.
func Score(lead domain.LeadInput) int {
	score := 0

	if lead.Preapproved {
		score += preapprovalPoints
	}

	score += timeframePoints(lead.Timeframe)

	if strings.TrimSpace(lead.PriceRange) != "" {
		score += priceRangePoints
	}

	score += capped(lead.Interactions*interactionPoints, interactionCap)
	score += capped(lead.PropertyViews*propertyViewPoints, propertyViewCap)

	if lead.ResponseTimeSeconds < fastResponseThreshold {
		score += fastResponsePoints
	} else {
		score += slowResponsePoints
	}

	return score
}

// Evaluate scores a lead and classifies the result in one pass.
func Evaluate(lead domain.LeadInput) domain.LeadScore {
	score := Score(lead)
	category := Classify(score)
	return domain.LeadScore{
		Score:              score,
		Category:           category,
		RecommendedActions: RecommendedActions(category),
		EstimatedTimeframe: EstimatedTimeframe(category),
	}
}

func capped(value, limit int) int {
	if value > limit {
		return limit
	}
	return value
}

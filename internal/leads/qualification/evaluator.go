// Package qualification evaluates boolean sales-readiness criteria over a lead.
// The evaluator is pure and safe for concurrent use.
package qualification

import (
	"strconv"
	"strings"

	"leadintel_backend/internal/leads/domain"
)

const (
	// luxuryThreshold is the minimum extracted budget for the luxury
	// market predicate, in whole currency units.
	luxuryThreshold = 500_000

	// qualifiedThreshold is the majority of the five predicates.
	qualifiedThreshold = 3
)

// Result holds the five predicate outcomes, their count, and the verdict.
// QualificationScore always equals the number of true predicates.
type Result struct {
	BuyingTimeframe     bool `json:"buyingTimeframe"`
	BudgetSpecified     bool `json:"budgetSpecified"`
	ContactInfoComplete bool `json:"contactInfoComplete"`
	CommunityInterest   bool `json:"communityInterest"`
	LuxuryMarket        bool `json:"luxuryMarket"`
	QualificationScore  int  `json:"qualificationScore"`
	IsQualified         bool `json:"isQualified"`
}

// Evaluator checks qualification criteria against a target community.
type Evaluator struct {
	community string
}

// New creates an evaluator for the given community name. The community
// interest predicate matches the name case-insensitively inside the lead
// message.
func New(community string) *Evaluator {
	return &Evaluator{community: strings.ToLower(strings.TrimSpace(community))}
}

// Evaluate runs all five predicates over the lead. Each predicate is
// independent of the computed lead score and of the other predicates.
func (e *Evaluator) Evaluate(lead domain.LeadInput) Result {
	r := Result{
		BuyingTimeframe:     lead.Timeframe != domain.TimeframeUnknown && lead.Timeframe != domain.TimeframeJustBrowsing,
		BudgetSpecified:     strings.TrimSpace(lead.PriceRange) != "",
		ContactInfoComplete: strings.TrimSpace(lead.Email) != "" && strings.TrimSpace(lead.Phone) != "",
		CommunityInterest:   e.mentionsCommunity(lead.Message),
		LuxuryMarket:        isLuxuryBudget(lead.PriceRange),
	}

	for _, hit := range []bool{r.BuyingTimeframe, r.BudgetSpecified, r.ContactInfoComplete, r.CommunityInterest, r.LuxuryMarket} {
		if hit {
			r.QualificationScore++
		}
	}
	r.IsQualified = r.QualificationScore >= qualifiedThreshold

	return r
}

func (e *Evaluator) mentionsCommunity(message string) bool {
	if e.community == "" || message == "" {
		return false
	}
	return strings.Contains(strings.ToLower(message), e.community)
}

// isLuxuryBudget extracts the digits embedded in a free-form price range and
// compares the parsed value against the luxury threshold. Empty or
// non-numeric extractions fail the predicate, never error.
func isLuxuryBudget(priceRange string) bool {
	digits := extractDigits(priceRange)
	if digits == "" {
		return false
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return false
	}
	return value >= luxuryThreshold
}

func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

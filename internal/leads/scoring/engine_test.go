package scoring

import (
	"testing"

	"leadintel_backend/internal/leads/domain"
)

func TestScore_AllFactorsAtMaximum(t *testing.T) {
	lead := domain.LeadInput{
		Preapproved:         true,
		Timeframe:           domain.TimeframeASAP,
		PriceRange:          "$400,000-$500,000",
		Interactions:        4,
		PropertyViews:       5,
		ResponseTimeSeconds: 120,
	}

	// 20 preapproval + 25 timeframe + 15 price range + 20 interactions
	// + 10 views + 10 fast response
	if got := Score(lead); got != 100 {
		t.Fatalf("expected score 100, got %d", got)
	}
}

func TestScore_EmptyLeadGetsOnlyResponsePoints(t *testing.T) {
	// A zero-value lead has ResponseTimeSeconds 0, which counts as fast.
	if got := Score(domain.LeadInput{}); got != 10 {
		t.Fatalf("expected score 10 for empty lead, got %d", got)
	}

	slow := domain.LeadInput{ResponseTimeSeconds: 300}
	if got := Score(slow); got != 5 {
		t.Fatalf("expected score 5 for slow empty lead, got %d", got)
	}
}

func TestScore_TimeframeContributions(t *testing.T) {
	cases := []struct {
		timeframe domain.Timeframe
		want      int
	}{
		{domain.TimeframeASAP, 25},
		{domain.TimeframeOneToThree, 20},
		{domain.TimeframeThreeToSix, 10},
		{domain.TimeframeSixPlus, 5},
		{domain.TimeframeJustBrowsing, 0},
		{domain.TimeframeUnknown, 0},
	}

	for _, tc := range cases {
		lead := domain.LeadInput{Timeframe: tc.timeframe, ResponseTimeSeconds: 600}
		// 5 slow-response points are always present; subtract them out.
		if got := Score(lead) - 5; got != tc.want {
			t.Errorf("timeframe %q: expected %d points, got %d", tc.timeframe, tc.want, got)
		}
	}
}

func TestScore_InteractionPointsAreCapped(t *testing.T) {
	lead := domain.LeadInput{Interactions: 50, ResponseTimeSeconds: 600}
	// 20 interaction cap + 5 slow response
	if got := Score(lead); got != 25 {
		t.Fatalf("expected score 25 with capped interactions, got %d", got)
	}
}

func TestScore_PropertyViewPointsAreCapped(t *testing.T) {
	lead := domain.LeadInput{PropertyViews: 30, ResponseTimeSeconds: 600}
	// 10 view cap + 5 slow response
	if got := Score(lead); got != 15 {
		t.Fatalf("expected score 15 with capped views, got %d", got)
	}
}

func TestScore_ResponseTimeThresholdBoundary(t *testing.T) {
	fast := domain.LeadInput{ResponseTimeSeconds: 299}
	slow := domain.LeadInput{ResponseTimeSeconds: 300}

	if got := Score(fast); got != 10 {
		t.Fatalf("expected 10 points at 299s, got %d", got)
	}
	if got := Score(slow); got != 5 {
		t.Fatalf("expected 5 points at 300s, got %d", got)
	}
}

func TestScore_BlankPriceRangeContributesNothing(t *testing.T) {
	lead := domain.LeadInput{PriceRange: "   ", ResponseTimeSeconds: 600}
	if got := Score(lead); got != 5 {
		t.Fatalf("expected blank price range to score 5, got %d", got)
	}
}

func TestEvaluate_HotLead(t *testing.T) {
	lead := domain.LeadInput{
		Preapproved:         true,
		Timeframe:           domain.TimeframeASAP,
		PriceRange:          "$500,000",
		Interactions:        4,
		PropertyViews:       5,
		ResponseTimeSeconds: 60,
	}

	result := Evaluate(lead)

	if result.Score != 100 {
		t.Fatalf("expected score 100, got %d", result.Score)
	}
	if result.Category != domain.CategoryHot {
		t.Fatalf("expected category hot, got %q", result.Category)
	}
	if result.EstimatedTimeframe != "0-30 days" {
		t.Fatalf("expected estimated timeframe 0-30 days, got %q", result.EstimatedTimeframe)
	}
	if len(result.RecommendedActions) != 3 {
		t.Fatalf("expected 3 recommended actions, got %d", len(result.RecommendedActions))
	}
	if result.RecommendedActions[0] != "Call within 5 minutes" {
		t.Fatalf("unexpected first action %q", result.RecommendedActions[0])
	}
}

func TestEvaluate_ColdLead(t *testing.T) {
	lead := domain.LeadInput{
		Timeframe:           domain.TimeframeJustBrowsing,
		ResponseTimeSeconds: 900,
	}

	result := Evaluate(lead)

	if result.Score != 5 {
		t.Fatalf("expected score 5, got %d", result.Score)
	}
	if result.Category != domain.CategoryCold {
		t.Fatalf("expected category cold, got %q", result.Category)
	}
	if result.EstimatedTimeframe != "90+ days" {
		t.Fatalf("expected estimated timeframe 90+ days, got %q", result.EstimatedTimeframe)
	}
}

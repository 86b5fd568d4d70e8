package scoring

import (
	"testing"

	"leadintel_backend/internal/leads/domain"
)

func TestClassify_Thresholds(t *testing.T) {
	cases := []struct {
		score int
		want  domain.Category
	}{
		{100, domain.CategoryHot},
		{71, domain.CategoryHot},
		{70, domain.CategoryHot},
		{69, domain.CategoryWarm},
		{41, domain.CategoryWarm},
		{40, domain.CategoryWarm},
		{39, domain.CategoryCold},
		{1, domain.CategoryCold},
		{0, domain.CategoryCold},
	}

	for _, tc := range cases {
		if got := Classify(tc.score); got != tc.want {
			t.Errorf("Classify(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestRecommendedActions_PerCategory(t *testing.T) {
	cases := []struct {
		category domain.Category
		first    string
	}{
		{domain.CategoryHot, "Call within 5 minutes"},
		{domain.CategoryWarm, "Call within 1 hour"},
		{domain.CategoryCold, "Add to nurture sequence"},
	}

	for _, tc := range cases {
		actions := RecommendedActions(tc.category)
		if len(actions) != 3 {
			t.Fatalf("category %q: expected 3 actions, got %d", tc.category, len(actions))
		}
		if actions[0] != tc.first {
			t.Errorf("category %q: expected first action %q, got %q", tc.category, tc.first, actions[0])
		}
	}
}

func TestRecommendedActions_ReturnsCopy(t *testing.T) {
	actions := RecommendedActions(domain.CategoryHot)
	actions[0] = "mutated"

	fresh := RecommendedActions(domain.CategoryHot)
	if fresh[0] != "Call within 5 minutes" {
		t.Fatalf("mutating a returned slice leaked into the playbook: %q", fresh[0])
	}
}

func TestEstimatedTimeframe_PerCategory(t *testing.T) {
	cases := []struct {
		category domain.Category
		want     string
	}{
		{domain.CategoryHot, "0-30 days"},
		{domain.CategoryWarm, "30-90 days"},
		{domain.CategoryCold, "90+ days"},
	}

	for _, tc := range cases {
		if got := EstimatedTimeframe(tc.category); got != tc.want {
			t.Errorf("category %q: expected %q, got %q", tc.category, tc.want, got)
		}
	}
}

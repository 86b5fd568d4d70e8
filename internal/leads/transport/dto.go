// Package transport defines the request/response DTOs for the leads module.
package transport

// LeadPayload is the raw inbound lead record shared by the intake, scoring,
// and qualification endpoints. Optional fields may be omitted; the scoring
// pipeline treats them as zero-contribution.
type LeadPayload struct {
	ID                  string `json:"id,omitempty" validate:"omitempty,max=64"`
	Email               string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Phone               string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Message             string `json:"message,omitempty" validate:"omitempty,max=5000"`
	Preapproved         bool   `json:"preapproved"`
	Timeframe           string `json:"timeframe,omitempty" validate:"omitempty,max=32"`
	PriceRange          string `json:"priceRange,omitempty" validate:"omitempty,max=100"`
	Interactions        int    `json:"interactions" validate:"gte=0"`
	PropertyViews       int    `json:"propertyViews" validate:"gte=0"`
	ResponseTimeSeconds int    `json:"responseTimeSeconds" validate:"gte=0"`
}

// SubmitLeadRequest is the public intake body. The server assigns the lead ID.
type SubmitLeadRequest struct {
	Email               string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Phone               string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Message             string `json:"message,omitempty" validate:"omitempty,max=5000"`
	Preapproved         bool   `json:"preapproved"`
	Timeframe           string `json:"timeframe,omitempty" validate:"omitempty,max=32"`
	PriceRange          string `json:"priceRange,omitempty" validate:"omitempty,max=100"`
	Interactions        int    `json:"interactions" validate:"gte=0"`
	PropertyViews       int    `json:"propertyViews" validate:"gte=0"`
	ResponseTimeSeconds int    `json:"responseTimeSeconds" validate:"gte=0"`
	Source              string `json:"source,omitempty" validate:"omitempty,max=100"`
}

// LeadScoreResponse is the scoring result returned to callers.
type LeadScoreResponse struct {
	LeadID             string   `json:"leadId"`
	Score              int      `json:"score"`
	Category           string   `json:"category"`
	RecommendedActions []string `json:"recommendedActions"`
	EstimatedTimeframe string   `json:"estimatedTimeframe"`
	ScoredAt           string   `json:"scoredAt"`
}

// QualificationResponse is the qualification verdict returned to callers.
type QualificationResponse struct {
	LeadID              string `json:"leadId,omitempty"`
	BuyingTimeframe     bool   `json:"buyingTimeframe"`
	BudgetSpecified     bool   `json:"budgetSpecified"`
	ContactInfoComplete bool   `json:"contactInfoComplete"`
	CommunityInterest   bool   `json:"communityInterest"`
	LuxuryMarket        bool   `json:"luxuryMarket"`
	QualificationScore  int    `json:"qualificationScore"`
	IsQualified         bool   `json:"isQualified"`
}

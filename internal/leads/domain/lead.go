// Package domain holds the lead intelligence domain types.
// Types here are plain values with no infrastructure dependencies.
package domain

import "strings"

// Timeframe is the closed set of buying timeframes a lead can declare.
// Raw form values outside this set map to TimeframeUnknown rather than
// failing (fail-soft).
type Timeframe string

const (
	TimeframeASAP         Timeframe = "ASAP"
	TimeframeOneToThree   Timeframe = "1-3 months"
	TimeframeThreeToSix   Timeframe = "3-6 months"
	TimeframeSixPlus      Timeframe = "6+ months"
	TimeframeJustBrowsing Timeframe = "Just browsing"
	TimeframeUnknown      Timeframe = ""
)

// ParseTimeframe maps a raw form value onto the closed enum.
// The boolean reports whether the value was recognized.
func ParseTimeframe(raw string) (Timeframe, bool) {
	switch Timeframe(strings.TrimSpace(raw)) {
	case TimeframeASAP:
		return TimeframeASAP, true
	case TimeframeOneToThree:
		return TimeframeOneToThree, true
	case TimeframeThreeToSix:
		return TimeframeThreeToSix, true
	case TimeframeSixPlus:
		return TimeframeSixPlus, true
	case TimeframeJustBrowsing:
		return TimeframeJustBrowsing, true
	default:
		return TimeframeUnknown, raw == ""
	}
}

// LeadInput is one inbound form or chat submission. It is immutable once
// constructed and owned by the caller for the duration of a scoring run.
// Optional fields use the empty string/zero value when absent; scoring and
// qualification treat absent fields as zero-contribution.
type LeadInput struct {
	ID                  string
	Email               string
	Phone               string
	Message             string
	Preapproved         bool
	Timeframe           Timeframe
	PriceRange          string
	Interactions        int
	PropertyViews       int
	ResponseTimeSeconds int
}

// Category is the tri-level lead temperature classification.
type Category string

const (
	CategoryHot  Category = "hot"
	CategoryWarm Category = "warm"
	CategoryCold Category = "cold"
)

// LeadScore is the computed scoring result. RecommendedActions and
// EstimatedTimeframe are functions of Category alone, never of the raw
// lead fields.
type LeadScore struct {
	Score              int
	Category           Category
	RecommendedActions []string
	EstimatedTimeframe string
}

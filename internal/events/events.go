// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leadintel_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadReceived is published when a new lead submission is persisted.
type LeadReceived struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	Email  string    `json:"email,omitempty"`
	Phone  string    `json:"phone,omitempty"`
	Source string    `json:"source,omitempty"`
}

func (e LeadReceived) EventName() string { return "leads.lead.received" }

// LeadScored is published after a lead has been scored and classified.
// The CRM sync subscriber reacts to this event.
type LeadScored struct {
	BaseEvent
	LeadID             uuid.UUID `json:"leadId"`
	Score              int       `json:"score"`
	Category           string    `json:"category"`
	EstimatedTimeframe string    `json:"estimatedTimeframe"`
}

func (e LeadScored) EventName() string { return "leads.lead.scored" }

// LeadQualified is published when qualification flips a lead to qualified.
type LeadQualified struct {
	BaseEvent
	LeadID             uuid.UUID `json:"leadId"`
	QualificationScore int       `json:"qualificationScore"`
}

func (e LeadQualified) EventName() string { return "leads.lead.qualified" }

package crmsync

import (
	"context"

	"leadintel_backend/internal/events"
	"leadintel_backend/platform/logger"
)

// Subscriber reacts to scoring events by dispatching CRM deliveries.
// It is the only bridge between the scoring path and the CRM side channel.
type Subscriber struct {
	dispatcher Dispatcher
	log        *logger.Logger
}

// NewSubscriber creates a CRM sync event subscriber.
func NewSubscriber(dispatcher Dispatcher, log *logger.Logger) *Subscriber {
	return &Subscriber{dispatcher: dispatcher, log: log}
}

// RegisterHandlers subscribes to the domain events this package consumes.
func (s *Subscriber) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.LeadScored{}.EventName(), s)
}

// Handle routes events to the appropriate dispatch. Unknown events are ignored.
func (s *Subscriber) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.LeadScored:
		s.dispatcher.Dispatch(ctx, NewUpdatePayload(
			e.LeadID.String(), e.Score, e.Category, e.EstimatedTimeframe, e.OccurredAt(),
		))
		return nil
	default:
		return nil
	}
}

var _ events.Handler = (*Subscriber)(nil)

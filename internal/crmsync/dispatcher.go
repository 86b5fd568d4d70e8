package crmsync

import (
	"context"

	"leadintel_backend/platform/logger"
)

// Dispatcher detaches CRM delivery from the scoring code path. Dispatch must
// return immediately and must never surface an error to the caller; the
// already-computed score is final regardless of delivery outcome.
type Dispatcher interface {
	Dispatch(ctx context.Context, payload UpdatePayload)
}

// DirectDispatcher fires the CRM call on a detached goroutine. Used when no
// Redis queue is configured; delivery is at-most-once with no retry.
type DirectDispatcher struct {
	client *Client
	log    *logger.Logger
}

// NewDirectDispatcher creates a fire-and-forget dispatcher around the client.
func NewDirectDispatcher(client *Client, log *logger.Logger) *DirectDispatcher {
	return &DirectDispatcher{client: client, log: log}
}

// Dispatch sends the update on its own goroutine. The goroutine inherits the
// request's context values but not its cancellation, so an already-answered
// HTTP request does not abort the sync. Failures are logged and dropped.
func (d *DirectDispatcher) Dispatch(ctx context.Context, payload UpdatePayload) {
	if d.client == nil {
		return
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		if err := d.client.UpdateLead(detached, payload); err != nil {
			d.log.CrmSyncFailure(payload.LeadID, err)
		}
	}()
}

// NoopDispatcher drops all updates. Used when CRM sync is disabled entirely.
type NoopDispatcher struct{}

// Dispatch discards the payload.
func (NoopDispatcher) Dispatch(context.Context, UpdatePayload) {}

var (
	_ Dispatcher = (*DirectDispatcher)(nil)
	_ Dispatcher = NoopDispatcher{}
)

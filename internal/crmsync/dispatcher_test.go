package crmsync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadintel_backend/internal/events"
	"leadintel_backend/platform/logger"

	"github.com/google/uuid"
)

func TestDirectDispatcher_DeliversWithoutBlocking(t *testing.T) {
	delivered := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered <- struct{}{}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	log := logger.New("test")
	client := NewClient(crmConfigStub{baseURL: srv.URL, cookie: "session=abc123"}, log)
	dispatcher := NewDirectDispatcher(client, log)

	dispatcher.Dispatch(context.Background(), NewUpdatePayload("lead-1", 80, "hot", "0-30 days", time.Now()))

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("expected delivery within 2s")
	}
}

func TestDirectDispatcher_SurvivesCanceledRequestContext(t *testing.T) {
	delivered := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		delivered <- struct{}{}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	log := logger.New("test")
	client := NewClient(crmConfigStub{baseURL: srv.URL, cookie: "session=abc123"}, log)
	dispatcher := NewDirectDispatcher(client, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dispatcher.Dispatch(ctx, NewUpdatePayload("lead-1", 80, "hot", "0-30 days", time.Now()))

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("expected delivery despite canceled request context")
	}
}

func TestDirectDispatcher_SwallowsDeliveryFailures(t *testing.T) {
	attempted := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempted <- struct{}{}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	log := logger.New("test")
	client := NewClient(crmConfigStub{baseURL: srv.URL, cookie: "session=abc123"}, log)
	dispatcher := NewDirectDispatcher(client, log)

	// Dispatch has no error return; a failing CRM must not panic or block.
	dispatcher.Dispatch(context.Background(), NewUpdatePayload("lead-1", 80, "hot", "0-30 days", time.Now()))

	select {
	case <-attempted:
	case <-time.After(2 * time.Second):
		t.Fatal("expected delivery attempt within 2s")
	}
}

type recordingDispatcher struct {
	payloads chan UpdatePayload
}

func (d *recordingDispatcher) Dispatch(_ context.Context, payload UpdatePayload) {
	d.payloads <- payload
}

func TestSubscriber_DispatchesOnLeadScored(t *testing.T) {
	log := logger.New("test")
	recorder := &recordingDispatcher{payloads: make(chan UpdatePayload, 1)}

	bus := events.NewInMemoryBus(log)
	NewSubscriber(recorder, log).RegisterHandlers(bus)

	leadID := uuid.New()
	event := events.LeadScored{
		BaseEvent:          events.NewBaseEvent(),
		LeadID:             leadID,
		Score:              85,
		Category:           "hot",
		EstimatedTimeframe: "0-30 days",
	}
	if err := bus.PublishSync(context.Background(), event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case payload := <-recorder.payloads:
		if payload.LeadID != leadID.String() {
			t.Fatalf("expected lead ID %s, got %s", leadID, payload.LeadID)
		}
		if payload.CustomFields.LeadScore != 85 || payload.CustomFields.LeadCategory != "hot" {
			t.Fatalf("unexpected custom fields: %+v", payload.CustomFields)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a dispatched payload")
	}
}

func TestSubscriber_IgnoresOtherEvents(t *testing.T) {
	log := logger.New("test")
	recorder := &recordingDispatcher{payloads: make(chan UpdatePayload, 1)}

	bus := events.NewInMemoryBus(log)
	NewSubscriber(recorder, log).RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), events.LeadReceived{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    uuid.New(),
	}); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	select {
	case payload := <-recorder.payloads:
		t.Fatalf("unexpected dispatch for unrelated event: %+v", payload)
	case <-time.After(100 * time.Millisecond):
	}
}

package crmsync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadintel_backend/platform/logger"
)

type crmConfigStub struct {
	baseURL string
	cookie  string
}

func (c crmConfigStub) GetCrmBaseURL() string        { return c.baseURL }
func (c crmConfigStub) GetCrmSessionCookie() string  { return c.cookie }
func (c crmConfigStub) GetCrmTimeout() time.Duration { return 2 * time.Second }
func (c crmConfigStub) IsCrmEnabled() bool           { return c.baseURL != "" }

func TestUpdateLead_PostsScoringSnapshot(t *testing.T) {
	var (
		gotPath   string
		gotCookie string
		gotBody   UpdatePayload
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCookie = r.Header.Get("Cookie")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	log := logger.New("test")
	client := NewClient(crmConfigStub{baseURL: srv.URL, cookie: "session=abc123"}, log)
	if client == nil {
		t.Fatal("expected client for enabled config")
	}

	scoredAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	payload := NewUpdatePayload("lead-1", 85, "hot", "0-30 days", scoredAt)

	if err := client.UpdateLead(context.Background(), payload); err != nil {
		t.Fatalf("UpdateLead returned error: %v", err)
	}

	if gotPath != "/crm/leads/update" {
		t.Fatalf("expected path /crm/leads/update, got %q", gotPath)
	}
	if gotCookie != "session=abc123" {
		t.Fatalf("expected session cookie header, got %q", gotCookie)
	}
	if gotBody.LeadID != "lead-1" {
		t.Fatalf("expected leadId lead-1, got %q", gotBody.LeadID)
	}
	if gotBody.CustomFields.LeadScore != 85 || gotBody.CustomFields.LeadCategory != "hot" {
		t.Fatalf("unexpected custom fields: %+v", gotBody.CustomFields)
	}
	if gotBody.CustomFields.EstimatedTimeframe != "0-30 days" {
		t.Fatalf("unexpected estimated timeframe %q", gotBody.CustomFields.EstimatedTimeframe)
	}
	if gotBody.CustomFields.LastScored != "2026-03-14T09:30:00Z" {
		t.Fatalf("expected RFC3339 UTC last_scored, got %q", gotBody.CustomFields.LastScored)
	}
}

func TestUpdateLead_NonSuccessStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(crmConfigStub{baseURL: srv.URL, cookie: "session=abc123"}, logger.New("test"))

	err := client.UpdateLead(context.Background(), NewUpdatePayload("lead-1", 40, "warm", "30-90 days", time.Now()))
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestNewClient_DisabledConfigReturnsNil(t *testing.T) {
	client := NewClient(crmConfigStub{}, logger.New("test"))
	if client != nil {
		t.Fatal("expected nil client when CRM is not configured")
	}

	// A nil client is a safe no-op.
	var nilClient *Client
	if err := nilClient.UpdateLead(context.Background(), UpdatePayload{}); err != nil {
		t.Fatalf("nil client should be a no-op, got %v", err)
	}
}

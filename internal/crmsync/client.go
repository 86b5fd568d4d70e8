// Package crmsync delivers scoring results to the external CRM.
// Delivery is best-effort: failures are logged and never propagate to the
// scoring code path.
package crmsync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leadintel_backend/platform/config"
	"leadintel_backend/platform/logger"
)

// CustomFields carries the scoring snapshot written to the CRM lead record.
type CustomFields struct {
	LeadScore          int    `json:"lead_score"`
	LeadCategory       string `json:"lead_category"`
	EstimatedTimeframe string `json:"estimated_timeframe"`
	LastScored         string `json:"last_scored"`
}

// UpdatePayload is the wire body for the CRM "update lead" endpoint.
type UpdatePayload struct {
	LeadID       string       `json:"leadId"`
	CustomFields CustomFields `json:"customFields"`
}

// NewUpdatePayload builds the wire payload for one scoring result.
// LastScored is formatted as ISO-8601 UTC.
func NewUpdatePayload(leadID string, score int, category, estimatedTimeframe string, scoredAt time.Time) UpdatePayload {
	return UpdatePayload{
		LeadID: leadID,
		CustomFields: CustomFields{
			LeadScore:          score,
			LeadCategory:       category,
			EstimatedTimeframe: estimatedTimeframe,
			LastScored:         scoredAt.UTC().Format(time.RFC3339),
		},
	}
}

// Client posts lead score updates to the CRM proxy route.
type Client struct {
	baseURL       string
	sessionCookie string
	http          *http.Client
	log           *logger.Logger
}

// NewClient creates a CRM client, or nil when no CRM endpoint is configured.
// Callers must treat a nil client as a no-op.
func NewClient(cfg config.CrmConfig, log *logger.Logger) *Client {
	if !cfg.IsCrmEnabled() {
		return nil
	}

	timeout := cfg.GetCrmTimeout()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.GetCrmBaseURL(), "/"),
		sessionCookie: cfg.GetCrmSessionCookie(),
		http:          &http.Client{Timeout: timeout},
		log:           log,
	}
}

// UpdateLead posts the scoring snapshot to the CRM. Any 2xx response is
// success; everything else is an error for the caller to log or retry.
func (c *Client) UpdateLead(ctx context.Context, payload UpdatePayload) error {
	if c == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal crm payload: %w", err)
	}

	url := fmt.Sprintf("%s/crm/leads/update", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.sessionCookie != "" {
		req.Header.Set("Cookie", c.sessionCookie)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("crm request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("crm returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	c.log.Debug("crm lead updated", "lead_id", payload.LeadID)
	return nil
}

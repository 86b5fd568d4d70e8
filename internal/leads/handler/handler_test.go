package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadintel_backend/internal/events"
	"leadintel_backend/internal/leads/qualification"
	"leadintel_backend/internal/leads/repository"
	"leadintel_backend/internal/leads/service"
	"leadintel_backend/internal/leads/transport"
	"leadintel_backend/platform/apperr"
	"leadintel_backend/platform/logger"
	"leadintel_backend/platform/validator"
)

type stubRepo struct {
	scores map[uuid.UUID]repository.ScoreRecord
}

func (r *stubRepo) InsertLead(context.Context, repository.LeadRecord) error { return nil }

func (r *stubRepo) UpsertScore(_ context.Context, score repository.ScoreRecord) error {
	r.scores[score.LeadID] = score
	return nil
}

func (r *stubRepo) GetScore(_ context.Context, leadID uuid.UUID) (repository.ScoreRecord, error) {
	score, ok := r.scores[leadID]
	if !ok {
		return repository.ScoreRecord{}, apperr.NotFound("lead score not found")
	}
	return score, nil
}

func newTestRouter() (*gin.Engine, *stubRepo) {
	gin.SetMode(gin.TestMode)

	repo := &stubRepo{scores: make(map[uuid.UUID]repository.ScoreRecord)}
	log := logger.New("test")
	bus := events.NewInMemoryBus(log)
	svc := service.New(repo, qualification.New("Skye Canyon"), bus, log)
	h := New(svc, validator.New())

	engine := gin.New()
	engine.POST("/api/v1/public/leads", h.Submit)
	engine.POST("/api/v1/leads/score", h.Score)
	engine.POST("/api/v1/leads/qualify", h.Qualify)
	engine.GET("/api/v1/leads/:id/score", h.GetScore)
	return engine, repo
}

func TestScoreEndpoint(t *testing.T) {
	engine, _ := newTestRouter()

	body := `{"preapproved":true,"timeframe":"ASAP","priceRange":"$500,000","interactions":4,"propertyViews":5,"responseTimeSeconds":60}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/score", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp transport.LeadScoreResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Score != 100 {
		t.Fatalf("expected score 100, got %d", resp.Score)
	}
	if resp.Category != "hot" {
		t.Fatalf("expected category hot, got %q", resp.Category)
	}
	if len(resp.RecommendedActions) != 3 {
		t.Fatalf("expected 3 recommended actions, got %d", len(resp.RecommendedActions))
	}
}

func TestScoreEndpoint_MalformedBody(t *testing.T) {
	engine, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/score", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestScoreEndpoint_ValidationFailure(t *testing.T) {
	engine, _ := newTestRouter()

	body := `{"email":"not-an-email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/score", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQualifyEndpoint(t *testing.T) {
	engine, _ := newTestRouter()

	body := `{"email":"buyer@example.com","phone":"702-555-0142","message":"Skye Canyon please","timeframe":"1-3 months","priceRange":"$600,000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads/qualify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp transport.QualificationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.IsQualified {
		t.Fatalf("expected qualified lead, got %+v", resp)
	}
	if resp.QualificationScore != 5 {
		t.Fatalf("expected qualification score 5, got %d", resp.QualificationScore)
	}
}

func TestSubmitEndpoint_PersistsAndReturns201(t *testing.T) {
	engine, repo := newTestRouter()

	body := `{"email":"buyer@example.com","preapproved":true,"timeframe":"ASAP","priceRange":"$500,000","source":"website"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/leads", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp transport.LeadScoreResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, err := uuid.Parse(resp.LeadID); err != nil {
		t.Fatalf("expected a UUID lead ID, got %q", resp.LeadID)
	}
	if len(repo.scores) != 1 {
		t.Fatalf("expected 1 persisted score, got %d", len(repo.scores))
	}
}

func TestGetScoreEndpoint_InvalidID(t *testing.T) {
	engine, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads/not-a-uuid/score", nil)
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetScoreEndpoint_NotFound(t *testing.T) {
	engine, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leads/"+uuid.NewString()+"/score", nil)
	rec := httptest.NewRecorder()

	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

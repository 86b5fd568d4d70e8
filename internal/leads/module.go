// Package leads provides the lead intelligence bounded context module.
// It owns intake, scoring, classification, and qualification. Scoring
// results reach the CRM through the crmsync subscriber on the event bus.
package leads

import (
	"leadintel_backend/internal/events"
	apphttp "leadintel_backend/internal/http"
	"leadintel_backend/internal/leads/handler"
	"leadintel_backend/internal/leads/qualification"
	"leadintel_backend/internal/leads/repository"
	"leadintel_backend/internal/leads/service"
	"leadintel_backend/platform/config"
	"leadintel_backend/platform/logger"
	"leadintel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, cfg config.QualificationConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	qualifier := qualification.New(cfg.GetCommunityName())
	svc := service.New(repo, qualifier, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Rate-limited public intake
	ctx.Public.POST("/leads", m.handler.Submit)

	leadGroup := ctx.V1.Group("/leads")
	leadGroup.POST("/score", m.handler.Score)
	leadGroup.POST("/qualify", m.handler.Qualify)
	leadGroup.GET("/:id/score", m.handler.GetScore)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

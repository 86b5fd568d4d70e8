// Package matching provides the preference matching bounded context module.
// It owns listing snapshots and property-to-preference compatibility scoring.
package matching

import (
	apphttp "leadintel_backend/internal/http"
	"leadintel_backend/internal/matching/handler"
	"leadintel_backend/internal/matching/repository"
	"leadintel_backend/internal/matching/service"
	"leadintel_backend/platform/logger"
	"leadintel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the matching bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the matching module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "matching"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts matching routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	matchGroup := ctx.V1.Group("/match")
	matchGroup.POST("", m.handler.Match)
	matchGroup.POST("/rank", m.handler.Rank)

	propertyGroup := ctx.V1.Group("/properties")
	propertyGroup.POST("", m.handler.CreateProperty)
	propertyGroup.GET("", m.handler.ListProperties)
	propertyGroup.GET("/:id", m.handler.GetProperty)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

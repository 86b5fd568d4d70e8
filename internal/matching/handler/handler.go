// Package handler exposes the matching module over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadintel_backend/internal/matching/service"
	"leadintel_backend/internal/matching/transport"
	"leadintel_backend/platform/httpkit"
	"leadintel_backend/platform/validator"
)

const (
	msgInvalidRequest    = "invalid request"
	msgValidationFailed  = "validation failed"
	msgInvalidPropertyID = "invalid property ID"
)

// Handler handles HTTP requests for preference matching and listings.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new matching handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Match scores an inline (property, preferences) pair.
// POST /api/v1/match
func (h *Handler) Match(c *gin.Context) {
	var req transport.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.Match(req))
}

// Rank scores stored listings against a preference profile.
// POST /api/v1/match/rank
func (h *Handler) Rank(c *gin.Context) {
	var req transport.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Rank(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CreateProperty stores a listing snapshot.
// POST /api/v1/properties
func (h *Handler) CreateProperty(c *gin.Context) {
	var req transport.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.CreateProperty(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// ListProperties retrieves all stored listing snapshots.
// GET /api/v1/properties
func (h *Handler) ListProperties(c *gin.Context) {
	result, err := h.svc.ListProperties(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetProperty retrieves a stored listing snapshot by ID.
// GET /api/v1/properties/:id
func (h *Handler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidPropertyID, nil)
		return
	}

	result, err := h.svc.GetProperty(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

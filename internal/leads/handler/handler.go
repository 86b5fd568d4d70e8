// Package handler exposes the leads module over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadintel_backend/internal/leads/service"
	"leadintel_backend/internal/leads/transport"
	"leadintel_backend/platform/httpkit"
	"leadintel_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidLeadID    = "invalid lead ID"
)

// Handler handles HTTP requests for lead scoring and qualification.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Submit ingests a public lead submission and returns its scoring result.
// POST /api/v1/public/leads
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Intake(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// Score computes a scoring result without persisting the lead.
// POST /api/v1/leads/score
func (h *Handler) Score(c *gin.Context) {
	var req transport.LeadPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.Score(req))
}

// Qualify evaluates the qualification criteria without persisting the lead.
// POST /api/v1/leads/qualify
func (h *Handler) Qualify(c *gin.Context) {
	var req transport.LeadPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.Qualify(req))
}

// GetScore retrieves the persisted scoring result for a lead.
// GET /api/v1/leads/:id/score
func (h *Handler) GetScore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidLeadID, nil)
		return
	}

	result, err := h.svc.GetScore(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

package handler

import (
	"strconv"
	"time"

	"equity-registry/internal/adapter/http/dto"
	"equity-registry/internal/core/domain"
	"equity-registry/internal/core/ports"
	"equity-registry/pkg/apperror"
	"equity-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistryHandler handles registry lifecycle and emitter administration.
type RegistryHandler struct {
	registrySvc ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registrySvc ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{registrySvc: registrySvc}
}

// Init handles POST /api/v1/registry. The caller becomes the emitter and
// receives the full initial supply.
func (h *RegistryHandler) Init(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	registry, err := h.registrySvc.Init(c.Request.Context(), sender, ports.InitRequest{
		Supply:   req.Supply,
		Name:     req.Name,
		Symbol:   req.Symbol,
		Decimals: req.Decimals,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toRegistryResponse(registry, 1))
}

// Info handles GET /api/v1/registry.
func (h *RegistryHandler) Info(c *gin.Context) {
	info, err := h.registrySvc.Info(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toRegistryResponse(&info.Registry, info.TotalShareholders))
}

// Split handles POST /api/v1/registry/split (emitter only).
func (h *RegistryHandler) Split(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.registrySvc.SplitStock(c.Request.Context(), sender, req.Factor)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SplitResponse{
		Factor:    result.Factor,
		OldSupply: result.OldSupply,
		NewSupply: result.NewSupply,
		Drift:     result.Drift,
	})
}

// SetVoteMode handles PUT /api/v1/registry/vote-mode (emitter only).
func (h *RegistryHandler) SetVoteMode(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.VoteModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	previous, err := h.registrySvc.SetVoteMode(c.Request.Context(), sender, domain.VotePolicy(req.Mode))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.VoteModeResponse{
		Mode:     req.Mode,
		Previous: string(previous),
	})
}

// SetDividend handles PUT /api/v1/registry/dividend (emitter only).
func (h *RegistryHandler) SetDividend(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DividendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	previous, err := h.registrySvc.SetDividend(c.Request.Context(), sender, req.Rate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DividendResponse{
		Rate:     req.Rate,
		Previous: previous,
	})
}

// Events handles GET /api/v1/registry/events?limit=N.
func (h *RegistryHandler) Events(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	events, err := h.registrySvc.Events(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, toEventResponse(e))
	}

	response.OK(c, dto.EventListResponse{Items: items})
}

func toRegistryResponse(r *domain.Registry, shareholders int64) dto.RegistryResponse {
	return dto.RegistryResponse{
		Name:              r.Name,
		Symbol:            r.Symbol,
		Decimals:          r.Decimals,
		TotalSupply:       r.TotalSupply,
		VoteMode:          string(r.VoteMode),
		Dividend:          r.Dividend,
		Emitter:           r.Emitter,
		TotalShareholders: shareholders,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

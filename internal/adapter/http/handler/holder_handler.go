package handler

import (
	"equity-registry/internal/adapter/http/dto"
	"equity-registry/internal/core/domain"
	"equity-registry/internal/core/ports"
	"equity-registry/pkg/apperror"
	"equity-registry/pkg/response"

	"github.com/gin-gonic/gin"
)

// HolderHandler handles delegation, voting-weight and rights endpoints.
type HolderHandler struct {
	votingSvc ports.VotingService
	rightsSvc ports.RightsService
}

// NewHolderHandler creates a new HolderHandler.
func NewHolderHandler(votingSvc ports.VotingService, rightsSvc ports.RightsService) *HolderHandler {
	return &HolderHandler{
		votingSvc: votingSvc,
		rightsSvc: rightsSvc,
	}
}

// SetDelegate handles PUT /api/v1/me/delegate. It returns the previous
// delegate, empty when none existed.
func (h *HolderHandler) SetDelegate(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DelegateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	previous, err := h.votingSvc.SetDelegate(c.Request.Context(), sender, req.Delegate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DelegateResponse{
		Delegate: req.Delegate,
		Previous: previous,
	})
}

// RemoveDelegate handles DELETE /api/v1/me/delegate. Removing an absent
// delegation is a no-op.
func (h *HolderHandler) RemoveDelegate(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	previous, err := h.votingSvc.RemoveDelegate(c.Request.Context(), sender)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DelegateResponse{Previous: previous})
}

// GetDelegate handles GET /api/v1/me/delegate.
func (h *HolderHandler) GetDelegate(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	delegate, err := h.votingSvc.Delegate(c.Request.Context(), sender)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DelegateResponse{Delegate: delegate})
}

// Delegators handles GET /api/v1/holders/:address/delegators.
func (h *HolderHandler) Delegators(c *gin.Context) {
	address := c.Param("address")

	delegators, err := h.votingSvc.Delegators(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	if delegators == nil {
		delegators = []string{}
	}

	response.OK(c, gin.H{"address": address, "delegators": delegators})
}

// MyVotingProfile handles GET /api/v1/me/voting.
func (h *HolderHandler) MyVotingProfile(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	h.votingProfile(c, sender)
}

// VotingProfile handles GET /api/v1/holders/:address/voting.
func (h *HolderHandler) VotingProfile(c *gin.Context) {
	h.votingProfile(c, c.Param("address"))
}

func (h *HolderHandler) votingProfile(c *gin.Context, address string) {
	profile, err := h.votingSvc.Profile(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	delegators := profile.Delegators
	if delegators == nil {
		delegators = []string{}
	}

	response.OK(c, dto.VotingProfileResponse{
		Address:         profile.Address,
		Delegating:      profile.Delegating,
		Delegate:        profile.Delegate,
		Delegators:      delegators,
		OrganicShares:   profile.OrganicShares,
		DelegatedShares: profile.DelegatedShares,
		EffectiveShares: profile.EffectiveShares,
		OrganicVotes:    profile.OrganicVotes,
		DelegatedVotes:  profile.DelegatedVotes,
		EffectiveVotes:  profile.EffectiveVotes,
		TotalVotes:      profile.TotalVotes,
		OrganicWeight:   toWeightResponse(profile.OrganicWeight),
		DelegatedWeight: toWeightResponse(profile.DelegatedWeight),
		EffectiveWeight: toWeightResponse(profile.EffectiveWeight),
		Majority:        profile.Majority,
		OrganicMajority: profile.OrganicMajority,
	})
}

// MyRights handles GET /api/v1/me/rights.
func (h *HolderHandler) MyRights(c *gin.Context) {
	sender, ok := senderAddress(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	h.rights(c, sender)
}

// HolderRights handles GET /api/v1/holders/:address/rights.
func (h *HolderHandler) HolderRights(c *gin.Context) {
	h.rights(c, c.Param("address"))
}

func (h *HolderHandler) rights(c *gin.Context, address string) {
	organic, err := h.rightsSvc.OrganicRights(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}
	effective, err := h.rightsSvc.EffectiveRights(c.Request.Context(), address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RightsResponse{
		Address:         address,
		OrganicRights:   organic,
		EffectiveRights: effective,
	})
}

// Brackets handles GET /api/v1/rights/brackets.
func (h *HolderHandler) Brackets(c *gin.Context) {
	brackets := h.rightsSvc.Brackets()

	items := make([]dto.BracketResponse, 0, len(brackets))
	for _, b := range brackets {
		items = append(items, dto.BracketResponse{
			Threshold: b.Threshold.String(),
			Percent:   b.Threshold.Float64() * 100,
			Rights:    b.Rights,
		})
	}

	response.OK(c, gin.H{"brackets": items})
}

func toWeightResponse(w domain.Weight) dto.WeightResponse {
	return dto.WeightResponse{
		Votes:      w.Votes(),
		TotalVotes: w.TotalVotes(),
		Value:      w.Float64(),
		Display:    w.String(),
	}
}

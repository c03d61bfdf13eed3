package service

import (
	"context"

	"equity-registry/internal/core/domain"
	"equity-registry/internal/core/ports"
)

// RightsServiceImpl implements ports.RightsService by mapping voting weights
// onto the statutory rights brackets.
type RightsServiceImpl struct {
	votingSvc ports.VotingService
}

// NewRightsService creates a new RightsServiceImpl.
func NewRightsService(votingSvc ports.VotingService) *RightsServiceImpl {
	return &RightsServiceImpl{votingSvc: votingSvc}
}

// OrganicRights returns the rights unlocked by the holder's own weight.
func (s *RightsServiceImpl) OrganicRights(ctx context.Context, address string) ([]string, error) {
	weight, err := s.votingSvc.OrganicWeight(ctx, address)
	if err != nil {
		return nil, err
	}
	return domain.RightsFor(weight), nil
}

// EffectiveRights returns the rights unlocked by the holder's effective
// weight, delegation included.
func (s *RightsServiceImpl) EffectiveRights(ctx context.Context, address string) ([]string, error) {
	weight, err := s.votingSvc.EffectiveWeight(ctx, address)
	if err != nil {
		return nil, err
	}
	return domain.RightsFor(weight), nil
}

// Brackets returns the rights bracket table.
func (s *RightsServiceImpl) Brackets() []domain.RightsBracket {
	return domain.RightsBrackets()
}

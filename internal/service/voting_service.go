package service

import (
	"context"
	"fmt"

	"equity-registry/internal/core/domain"
	"equity-registry/internal/core/ports"
	"equity-registry/pkg/apperror"

	"github.com/rs/zerolog"
)

// VotingServiceImpl implements ports.VotingService.
//
// Delegation is aggregated at depth one: a holder's effective power is its own
// stake plus the organic stake of its direct delegators. A delegator's own
// delegators do not flow through, and a holder that delegates has an effective
// power of zero regardless of what it receives.
type VotingServiceImpl struct {
	registryRepo   ports.RegistryRepository
	holderRepo     ports.HolderRepository
	delegationRepo ports.DelegationRepository
	transactor     ports.DBTransactor
	log            zerolog.Logger
}

// NewVotingService creates a new VotingServiceImpl.
func NewVotingService(
	registryRepo ports.RegistryRepository,
	holderRepo ports.HolderRepository,
	delegationRepo ports.DelegationRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *VotingServiceImpl {
	return &VotingServiceImpl{
		registryRepo:   registryRepo,
		holderRepo:     holderRepo,
		delegationRepo: delegationRepo,
		transactor:     transactor,
		log:            log,
	}
}

// ==================== Delegation graph ====================

// SetDelegate grants or replaces the delegator's outgoing delegation edge.
// Returns the previous delegate, or "" if there was none.
func (s *VotingServiceImpl) SetDelegate(ctx context.Context, delegator, delegate string) (string, error) {
	if delegate == "" {
		return "", apperror.ErrEmptyDelegate()
	}
	if delegator == delegate {
		return "", apperror.ErrSelfDelegation()
	}

	isHolder, err := s.IsShareholder(ctx, delegator)
	if err != nil {
		return "", err
	}
	if !isHolder {
		return "", apperror.ErrNotAShareholder(delegator)
	}

	previous, err := s.delegationRepo.Get(ctx, delegator)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("get delegation: %w", err))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.delegationRepo.Set(ctx, dbTx, delegator, delegate); err != nil {
		return "", apperror.InternalError(fmt.Errorf("set delegation: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return "", apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("delegator", delegator).
		Str("delegate", delegate).
		Str("previous", previous).
		Msg("delegation granted")

	return previous, nil
}

// RemoveDelegate revokes the delegator's outgoing delegation edge.
// Returns the previous delegate, or "" if there was none.
func (s *VotingServiceImpl) RemoveDelegate(ctx context.Context, delegator string) (string, error) {
	previous, err := s.delegationRepo.Get(ctx, delegator)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("get delegation: %w", err))
	}
	if previous == "" {
		return "", nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.delegationRepo.Delete(ctx, dbTx, delegator); err != nil {
		return "", apperror.InternalError(fmt.Errorf("delete delegation: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return "", apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("delegator", delegator).
		Str("previous", previous).
		Msg("delegation revoked")

	return previous, nil
}

// Delegate returns the address the holder delegates to, or "" if none.
func (s *VotingServiceImpl) Delegate(ctx context.Context, address string) (string, error) {
	delegate, err := s.delegationRepo.Get(ctx, address)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("get delegation: %w", err))
	}
	return delegate, nil
}

// IsDelegating reports whether the address has an outgoing delegation edge.
func (s *VotingServiceImpl) IsDelegating(ctx context.Context, address string) (bool, error) {
	delegate, err := s.Delegate(ctx, address)
	if err != nil {
		return false, err
	}
	return delegate != "", nil
}

// Delegators returns the addresses directly delegating to the given address.
// The target must be a shareholder.
func (s *VotingServiceImpl) Delegators(ctx context.Context, address string) ([]string, error) {
	if err := s.requireShareholder(ctx, address); err != nil {
		return nil, err
	}

	delegators, err := s.delegationRepo.ListDelegators(ctx, address)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list delegators: %w", err))
	}
	return delegators, nil
}

// ==================== Registry figures ====================

// IsShareholder reports whether the address currently holds shares.
func (s *VotingServiceImpl) IsShareholder(ctx context.Context, address string) (bool, error) {
	holder, err := s.holderRepo.Get(ctx, address)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get holder: %w", err))
	}
	return holder != nil, nil
}

// TotalShareholders returns the number of addresses holding shares.
func (s *VotingServiceImpl) TotalShareholders(ctx context.Context) (int64, error) {
	count, err := s.holderRepo.Count(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("count holders: %w", err))
	}
	return count, nil
}

// TotalVotes returns the vote pool size under the active policy: the total
// supply when votes are weight-proportional, the shareholder count when every
// holder gets one vote.
func (s *VotingServiceImpl) TotalVotes(ctx context.Context) (int64, error) {
	registry, err := s.registry(ctx)
	if err != nil {
		return 0, err
	}

	switch registry.VoteMode {
	case domain.VotePolicyOneHolderOneVote:
		return s.TotalShareholders(ctx)
	default:
		return registry.TotalSupply, nil
	}
}

// ==================== Shares ====================

// OrganicShares returns the holder's own balance.
func (s *VotingServiceImpl) OrganicShares(ctx context.Context, address string) (int64, error) {
	holder, err := s.holderRepo.Get(ctx, address)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get holder: %w", err))
	}
	if holder == nil {
		return 0, apperror.ErrNotAShareholder(address)
	}
	return holder.Balance, nil
}

// DelegatedShares returns the summed balances of the holder's direct
// delegators. Delegators that are no longer shareholders contribute nothing.
func (s *VotingServiceImpl) DelegatedShares(ctx context.Context, address string) (int64, error) {
	if err := s.requireShareholder(ctx, address); err != nil {
		return 0, err
	}

	delegators, err := s.delegationRepo.ListDelegators(ctx, address)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list delegators: %w", err))
	}

	var total int64
	for _, delegator := range delegators {
		holder, err := s.holderRepo.Get(ctx, delegator)
		if err != nil {
			return 0, apperror.InternalError(fmt.Errorf("get delegator: %w", err))
		}
		if holder != nil {
			total += holder.Balance
		}
	}
	return total, nil
}

// EffectiveShares returns organic plus delegated shares, or zero while the
// holder itself delegates.
func (s *VotingServiceImpl) EffectiveShares(ctx context.Context, address string) (int64, error) {
	organic, err := s.OrganicShares(ctx, address)
	if err != nil {
		return 0, err
	}

	delegating, err := s.IsDelegating(ctx, address)
	if err != nil {
		return 0, err
	}
	if delegating {
		return 0, nil
	}

	delegated, err := s.DelegatedShares(ctx, address)
	if err != nil {
		return 0, err
	}
	return organic + delegated, nil
}

// ==================== Votes ====================

// OrganicVotes returns the holder's own vote count under the active policy.
func (s *VotingServiceImpl) OrganicVotes(ctx context.Context, address string) (int64, error) {
	registry, err := s.registry(ctx)
	if err != nil {
		return 0, err
	}

	organic, err := s.OrganicShares(ctx, address)
	if err != nil {
		return 0, err
	}

	if registry.VoteMode == domain.VotePolicyOneHolderOneVote {
		return 1, nil
	}
	return organic, nil
}

// DelegatedVotes returns the vote count the holder receives from direct
// delegators under the active policy.
func (s *VotingServiceImpl) DelegatedVotes(ctx context.Context, address string) (int64, error) {
	registry, err := s.registry(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.requireShareholder(ctx, address); err != nil {
		return 0, err
	}

	delegators, err := s.delegationRepo.ListDelegators(ctx, address)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list delegators: %w", err))
	}

	var total int64
	for _, delegator := range delegators {
		holder, err := s.holderRepo.Get(ctx, delegator)
		if err != nil {
			return 0, apperror.InternalError(fmt.Errorf("get delegator: %w", err))
		}
		if holder == nil {
			continue
		}
		if registry.VoteMode == domain.VotePolicyOneHolderOneVote {
			total++
		} else {
			total += holder.Balance
		}
	}
	return total, nil
}

// EffectiveVotes returns organic plus delegated votes, or zero while the
// holder itself delegates.
func (s *VotingServiceImpl) EffectiveVotes(ctx context.Context, address string) (int64, error) {
	organic, err := s.OrganicVotes(ctx, address)
	if err != nil {
		return 0, err
	}

	delegating, err := s.IsDelegating(ctx, address)
	if err != nil {
		return 0, err
	}
	if delegating {
		return 0, nil
	}

	delegated, err := s.DelegatedVotes(ctx, address)
	if err != nil {
		return 0, err
	}
	return organic + delegated, nil
}

// ==================== Weights ====================

// OrganicWeight returns the holder's own votes over the total vote pool.
func (s *VotingServiceImpl) OrganicWeight(ctx context.Context, address string) (domain.Weight, error) {
	votes, err := s.OrganicVotes(ctx, address)
	if err != nil {
		return domain.Weight{}, err
	}
	return s.weigh(ctx, votes)
}

// DelegatedWeight returns the holder's received votes over the total vote pool.
func (s *VotingServiceImpl) DelegatedWeight(ctx context.Context, address string) (domain.Weight, error) {
	votes, err := s.DelegatedVotes(ctx, address)
	if err != nil {
		return domain.Weight{}, err
	}
	return s.weigh(ctx, votes)
}

// EffectiveWeight returns the holder's effective votes over the total vote pool.
func (s *VotingServiceImpl) EffectiveWeight(ctx context.Context, address string) (domain.Weight, error) {
	votes, err := s.EffectiveVotes(ctx, address)
	if err != nil {
		return domain.Weight{}, err
	}
	return s.weigh(ctx, votes)
}

// IsMajority reports whether the holder's effective weight strictly exceeds
// one half. Exactly one half is not a majority.
func (s *VotingServiceImpl) IsMajority(ctx context.Context, address string) (bool, error) {
	weight, err := s.EffectiveWeight(ctx, address)
	if err != nil {
		return false, err
	}
	return weight.IsMajority(), nil
}

// IsOrganicMajority reports whether the holder's own weight strictly exceeds
// one half, ignoring delegation.
func (s *VotingServiceImpl) IsOrganicMajority(ctx context.Context, address string) (bool, error) {
	weight, err := s.OrganicWeight(ctx, address)
	if err != nil {
		return false, err
	}
	return weight.IsMajority(), nil
}

// Profile assembles every voting quantity for one holder in a single call.
func (s *VotingServiceImpl) Profile(ctx context.Context, address string) (*ports.VotingProfile, error) {
	if err := s.requireShareholder(ctx, address); err != nil {
		return nil, err
	}

	delegate, err := s.Delegate(ctx, address)
	if err != nil {
		return nil, err
	}
	delegators, err := s.Delegators(ctx, address)
	if err != nil {
		return nil, err
	}

	organicShares, err := s.OrganicShares(ctx, address)
	if err != nil {
		return nil, err
	}
	delegatedShares, err := s.DelegatedShares(ctx, address)
	if err != nil {
		return nil, err
	}
	effectiveShares, err := s.EffectiveShares(ctx, address)
	if err != nil {
		return nil, err
	}

	organicVotes, err := s.OrganicVotes(ctx, address)
	if err != nil {
		return nil, err
	}
	delegatedVotes, err := s.DelegatedVotes(ctx, address)
	if err != nil {
		return nil, err
	}
	effectiveVotes, err := s.EffectiveVotes(ctx, address)
	if err != nil {
		return nil, err
	}

	totalVotes, err := s.TotalVotes(ctx)
	if err != nil {
		return nil, err
	}

	organicWeight, err := s.weigh(ctx, organicVotes)
	if err != nil {
		return nil, err
	}
	delegatedWeight, err := s.weigh(ctx, delegatedVotes)
	if err != nil {
		return nil, err
	}
	effectiveWeight, err := s.weigh(ctx, effectiveVotes)
	if err != nil {
		return nil, err
	}

	return &ports.VotingProfile{
		Address:         address,
		Delegating:      delegate != "",
		Delegate:        delegate,
		Delegators:      delegators,
		OrganicShares:   organicShares,
		DelegatedShares: delegatedShares,
		EffectiveShares: effectiveShares,
		OrganicVotes:    organicVotes,
		DelegatedVotes:  delegatedVotes,
		EffectiveVotes:  effectiveVotes,
		TotalVotes:      totalVotes,
		OrganicWeight:   organicWeight,
		DelegatedWeight: delegatedWeight,
		EffectiveWeight: effectiveWeight,
		Majority:        effectiveWeight.IsMajority(),
		OrganicMajority: organicWeight.IsMajority(),
	}, nil
}

// ==================== Internals ====================

func (s *VotingServiceImpl) registry(ctx context.Context) (*domain.Registry, error) {
	registry, err := s.registryRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get registry: %w", err))
	}
	if registry == nil {
		return nil, apperror.ErrNotInitialized()
	}
	return registry, nil
}

func (s *VotingServiceImpl) requireShareholder(ctx context.Context, address string) error {
	isHolder, err := s.IsShareholder(ctx, address)
	if err != nil {
		return err
	}
	if !isHolder {
		return apperror.ErrNotAShareholder(address)
	}
	return nil
}

// weigh divides a vote count by the total vote pool. A pool of zero has no
// defined weights.
func (s *VotingServiceImpl) weigh(ctx context.Context, votes int64) (domain.Weight, error) {
	totalVotes, err := s.TotalVotes(ctx)
	if err != nil {
		return domain.Weight{}, err
	}
	if totalVotes == 0 {
		return domain.Weight{}, apperror.ErrEmptyRegistry()
	}
	return domain.NewWeight(votes, totalVotes), nil
}

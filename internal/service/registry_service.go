package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"equity-registry/internal/core/domain"
	"equity-registry/internal/core/ports"
	"equity-registry/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultEventLimit = 50

// RegistryServiceImpl implements ports.RegistryService: registry lifecycle and
// emitter-only administration.
type RegistryServiceImpl struct {
	registryRepo ports.RegistryRepository
	holderRepo   ports.HolderRepository
	eventRepo    ports.EventRepository
	transactor   ports.DBTransactor
	notifier     ports.EventNotifier
	log          zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(
	registryRepo ports.RegistryRepository,
	holderRepo ports.HolderRepository,
	eventRepo ports.EventRepository,
	transactor ports.DBTransactor,
	notifier ports.EventNotifier,
	log zerolog.Logger,
) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		registryRepo: registryRepo,
		holderRepo:   holderRepo,
		eventRepo:    eventRepo,
		transactor:   transactor,
		notifier:     notifier,
		log:          log,
	}
}

// Init creates the registry and assigns the whole initial supply to the
// caller, who becomes the emitter. It can only ever succeed once.
func (s *RegistryServiceImpl) Init(ctx context.Context, sender string, req ports.InitRequest) (*domain.Registry, error) {
	if req.Supply <= 0 {
		return nil, apperror.Validation("initial supply must be positive")
	}
	if req.Name == "" || req.Symbol == "" {
		return nil, apperror.Validation("name and symbol cannot be empty")
	}
	if req.Decimals < 0 || req.Decimals > 18 {
		return nil, apperror.Validation("decimals must be between 0 and 18")
	}

	existing, err := s.registryRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get registry: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyInitialized()
	}

	supply := domain.BaseUnits(req.Supply, req.Decimals)
	now := time.Now().UTC()
	registry := &domain.Registry{
		Name:        req.Name,
		Symbol:      req.Symbol,
		Decimals:    req.Decimals,
		TotalSupply: supply,
		VoteMode:    domain.VotePolicyWeightProportional,
		Dividend:    0,
		Emitter:     sender,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.registryRepo.Create(ctx, dbTx, registry); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create registry: %w", err))
	}

	if err := s.holderRepo.SetBalance(ctx, dbTx, sender, supply); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("seed emitter balance: %w", err))
	}

	event := &domain.RegistryEvent{
		ID:        uuid.New(),
		Kind:      domain.EventMinted,
		Address:   sender,
		Amount:    supply,
		NewSupply: &supply,
		CreatedAt: now,
	}
	if err := s.eventRepo.Create(ctx, dbTx, event); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("journal initial mint: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.notifier.Notify(ctx, event); err != nil {
		s.log.Warn().Err(err).Msg("initial mint notification failed")
	}

	s.log.Info().
		Str("emitter", sender).
		Str("symbol", req.Symbol).
		Int64("supply", supply).
		Msg("registry initialized")

	return registry, nil
}

// Info returns the registry state plus derived figures.
func (s *RegistryServiceImpl) Info(ctx context.Context) (*ports.RegistryInfo, error) {
	registry, err := s.registryRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get registry: %w", err))
	}
	if registry == nil {
		return nil, apperror.ErrNotInitialized()
	}

	count, err := s.holderRepo.Count(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count holders: %w", err))
	}

	return &ports.RegistryInfo{
		Registry:          *registry,
		TotalShareholders: count,
	}, nil
}

// SplitStock rescales every balance by the split factor, truncating each
// holder's new balance toward zero. The new total supply is the exact sum of
// the rescaled balances; the drift against the previous supply is journaled
// as a reconciling MINTED or BURNT event.
func (s *RegistryServiceImpl) SplitStock(ctx context.Context, sender string, factor float64) (*ports.SplitResult, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, apperror.ErrInvalidSplitFactor(factor)
	}

	registry, err := s.registryRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get registry: %w", err))
	}
	if registry == nil {
		return nil, apperror.ErrNotInitialized()
	}
	if !registry.IsEmitter(sender) {
		return nil, apperror.ErrUnauthorized(sender)
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	holders, err := s.holderRepo.ListForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock holders: %w", err))
	}

	var newSupply int64
	for _, holder := range holders {
		rescaled := int64(math.Trunc(float64(holder.Balance) * factor))
		newSupply += rescaled

		if rescaled == 0 {
			// A reverse split can round a small position out of existence.
			if err := s.holderRepo.Delete(ctx, dbTx, holder.Address); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("prune holder: %w", err))
			}
			continue
		}
		if err := s.holderRepo.SetBalance(ctx, dbTx, holder.Address, rescaled); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("rescale holder: %w", err))
		}
	}

	if err := s.registryRepo.SetTotalSupply(ctx, dbTx, newSupply); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update total supply: %w", err))
	}

	// Per-holder truncation makes the exact sum diverge from a plain supply
	// rescale, so the delta against the old supply is journalled as minted or
	// burnt shares.
	drift := newSupply - registry.TotalSupply

	var event *domain.RegistryEvent
	if drift != 0 {
		kind := domain.EventMinted
		amount := drift
		if drift < 0 {
			kind = domain.EventBurnt
			amount = -drift
		}
		splitFactor := factor
		event = &domain.RegistryEvent{
			ID:        uuid.New(),
			Kind:      kind,
			Address:   sender,
			Amount:    amount,
			NewSupply: &newSupply,
			Factor:    &splitFactor,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.eventRepo.Create(ctx, dbTx, event); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("journal split drift: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if event != nil {
		if err := s.notifier.Notify(ctx, event); err != nil {
			s.log.Warn().Err(err).Msg("split drift notification failed")
		}
	}

	s.log.Info().
		Float64("factor", factor).
		Int64("old_supply", registry.TotalSupply).
		Int64("new_supply", newSupply).
		Int64("drift", drift).
		Msg("stock split applied")

	return &ports.SplitResult{
		Factor:    factor,
		OldSupply: registry.TotalSupply,
		NewSupply: newSupply,
		Drift:     drift,
	}, nil
}

// SetVoteMode swaps the active vote policy and returns the previous one.
func (s *RegistryServiceImpl) SetVoteMode(ctx context.Context, sender string, mode domain.VotePolicy) (domain.VotePolicy, error) {
	if !mode.Valid() {
		return "", apperror.ErrInvalidVoteMode(string(mode))
	}

	registry, err := s.registryRepo.Get(ctx)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("get registry: %w", err))
	}
	if registry == nil {
		return "", apperror.ErrNotInitialized()
	}
	if !registry.IsEmitter(sender) {
		return "", apperror.ErrUnauthorized(sender)
	}

	previous := registry.VoteMode
	if previous == mode {
		return previous, nil
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.registryRepo.SetVoteMode(ctx, dbTx, mode); err != nil {
		return "", apperror.InternalError(fmt.Errorf("set vote mode: %w", err))
	}

	modeStr := string(mode)
	event := &domain.RegistryEvent{
		ID:        uuid.New(),
		Kind:      domain.EventPolicyChanged,
		Address:   sender,
		Reference: &modeStr,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.eventRepo.Create(ctx, dbTx, event); err != nil {
		return "", apperror.InternalError(fmt.Errorf("journal policy change: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return "", apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("previous", string(previous)).
		Str("mode", modeStr).
		Msg("vote policy changed")

	return previous, nil
}

// SetDividend swaps the declared dividend rate and returns the previous one.
func (s *RegistryServiceImpl) SetDividend(ctx context.Context, sender string, rate float64) (float64, error) {
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, apperror.Validation("dividend rate must be a finite non-negative number")
	}

	registry, err := s.registryRepo.Get(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get registry: %w", err))
	}
	if registry == nil {
		return 0, apperror.ErrNotInitialized()
	}
	if !registry.IsEmitter(sender) {
		return 0, apperror.ErrUnauthorized(sender)
	}

	previous := registry.Dividend

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.registryRepo.SetDividend(ctx, dbTx, rate); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("set dividend: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return previous, nil
}

// Events returns the most recent journal entries, newest first.
func (s *RegistryServiceImpl) Events(ctx context.Context, limit int) ([]domain.RegistryEvent, error) {
	if limit <= 0 {
		limit = defaultEventLimit
	}

	events, err := s.eventRepo.List(ctx, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list events: %w", err))
	}
	return events, nil
}

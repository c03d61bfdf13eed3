package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"equity-registry/internal/core/domain"
	"equity-registry/internal/core/ports"
	"equity-registry/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const transferIdempotencyTTL = 24 * time.Hour

// LedgerServiceImpl implements ports.LedgerService: share transfers, supply
// changes and spending allowances on top of the holder table.
//
// The ledger never stores zero balances. Every mutation that drains an address
// to zero prunes the row, so the holder table is exactly the shareholder set.
type LedgerServiceImpl struct {
	registryRepo  ports.RegistryRepository
	holderRepo    ports.HolderRepository
	allowanceRepo ports.AllowanceRepository
	eventRepo     ports.EventRepository
	idempCache    ports.IdempotencyCache
	transactor    ports.DBTransactor
	notifier      ports.EventNotifier
	log           zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	registryRepo ports.RegistryRepository,
	holderRepo ports.HolderRepository,
	allowanceRepo ports.AllowanceRepository,
	eventRepo ports.EventRepository,
	idempCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	notifier ports.EventNotifier,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		registryRepo:  registryRepo,
		holderRepo:    holderRepo,
		allowanceRepo: allowanceRepo,
		eventRepo:     eventRepo,
		idempCache:    idempCache,
		transactor:    transactor,
		notifier:      notifier,
		log:           log,
	}
}

// Transfer moves shares from the sender to another address.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*domain.RegistryEvent, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.To == "" {
		return nil, apperror.Validation("recipient address cannot be empty")
	}

	var idempKey string
	if req.ReferenceID != "" {
		idempKey = fmt.Sprintf("transfer:%s:%s", req.From, req.ReferenceID)

		cached, err := s.idempCache.Get(ctx, idempKey)
		if err != nil {
			s.log.Warn().Err(err).Str("key", idempKey).Msg("redis idempotency check failed, proceeding without")
		}
		if cached != nil {
			return s.unmarshalCachedEvent(cached)
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	event, err := s.move(ctx, dbTx, req.From, req.To, req.Amount, req.ReferenceID)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if idempKey != "" {
		respJSON, err := json.Marshal(event)
		if err == nil {
			if err := s.idempCache.Set(ctx, idempKey, respJSON, transferIdempotencyTTL); err != nil {
				s.log.Warn().Err(err).Str("key", idempKey).Msg("failed to cache transfer in redis")
			}
		}
	}

	s.log.Info().
		Str("from", req.From).
		Str("to", req.To).
		Int64("amount", req.Amount).
		Msg("shares transferred")

	return event, nil
}

// TransferFrom moves shares out of another owner's balance against a
// previously granted allowance.
func (s *LedgerServiceImpl) TransferFrom(ctx context.Context, spender, from, to string, amount int64) (*domain.RegistryEvent, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if to == "" {
		return nil, apperror.Validation("recipient address cannot be empty")
	}

	allowed, err := s.allowanceRepo.Get(ctx, from, spender)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get allowance: %w", err))
	}
	if allowed < amount {
		return nil, apperror.ErrInsufficientAllowance()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	event, err := s.move(ctx, dbTx, from, to, amount, "")
	if err != nil {
		return nil, err
	}

	if err := s.allowanceRepo.Set(ctx, dbTx, from, spender, allowed-amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update allowance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("spender", spender).
		Str("from", from).
		Str("to", to).
		Int64("amount", amount).
		Msg("shares transferred via allowance")

	return event, nil
}

// move performs the balance mutation shared by Transfer and TransferFrom.
// It runs inside the caller's transaction and does not commit.
func (s *LedgerServiceImpl) move(ctx context.Context, dbTx pgx.Tx, from, to string, amount int64, reference string) (*domain.RegistryEvent, error) {
	sender, err := s.holderRepo.GetForUpdate(ctx, dbTx, from)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock sender: %w", err))
	}
	if sender == nil {
		return nil, apperror.ErrNotAShareholder(from)
	}
	if sender.Balance < amount {
		return nil, apperror.ErrInsufficientShares()
	}

	if from == to {
		// Self-transfer is a no-op on balances but still journaled.
		return s.journalTransfer(ctx, dbTx, from, to, amount, reference)
	}

	recipient, err := s.holderRepo.GetForUpdate(ctx, dbTx, to)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock recipient: %w", err))
	}
	var recipientBalance int64
	if recipient != nil {
		recipientBalance = recipient.Balance
	}

	remaining := sender.Balance - amount
	if remaining == 0 {
		if err := s.holderRepo.Delete(ctx, dbTx, from); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("prune sender: %w", err))
		}
	} else {
		if err := s.holderRepo.SetBalance(ctx, dbTx, from, remaining); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("debit sender: %w", err))
		}
	}

	if err := s.holderRepo.SetBalance(ctx, dbTx, to, recipientBalance+amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit recipient: %w", err))
	}

	return s.journalTransfer(ctx, dbTx, from, to, amount, reference)
}

func (s *LedgerServiceImpl) journalTransfer(ctx context.Context, dbTx pgx.Tx, from, to string, amount int64, reference string) (*domain.RegistryEvent, error) {
	event := &domain.RegistryEvent{
		ID:           uuid.New(),
		Kind:         domain.EventTransferred,
		Address:      from,
		Counterparty: &to,
		Amount:       amount,
		CreatedAt:    time.Now().UTC(),
	}
	if reference != "" {
		event.Reference = &reference
	}

	if err := s.eventRepo.Create(ctx, dbTx, event); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("journal transfer: %w", err))
	}
	return event, nil
}

// Mint creates new shares, crediting the emitter and raising total supply.
func (s *LedgerServiceImpl) Mint(ctx context.Context, sender string, amount int64) (int64, error) {
	return s.adjustSupply(ctx, sender, amount, domain.EventMinted)
}

// Burn destroys shares held by the emitter, lowering total supply.
func (s *LedgerServiceImpl) Burn(ctx context.Context, sender string, amount int64) (int64, error) {
	return s.adjustSupply(ctx, sender, amount, domain.EventBurnt)
}

func (s *LedgerServiceImpl) adjustSupply(ctx context.Context, sender string, amount int64, kind domain.EventKind) (int64, error) {
	if amount <= 0 {
		return 0, apperror.ErrInvalidAmount()
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

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	holder, err := s.holderRepo.GetForUpdate(ctx, dbTx, sender)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("lock emitter: %w", err))
	}
	var balance int64
	if holder != nil {
		balance = holder.Balance
	}

	var newBalance, newSupply int64
	switch kind {
	case domain.EventMinted:
		newBalance = balance + amount
		newSupply = registry.TotalSupply + amount
	case domain.EventBurnt:
		if balance < amount {
			return 0, apperror.ErrInsufficientShares()
		}
		newBalance = balance - amount
		newSupply = registry.TotalSupply - amount
	default:
		return 0, apperror.InternalError(fmt.Errorf("unexpected supply event kind %q", kind))
	}

	if newBalance == 0 {
		if err := s.holderRepo.Delete(ctx, dbTx, sender); err != nil {
			return 0, apperror.InternalError(fmt.Errorf("prune emitter: %w", err))
		}
	} else {
		if err := s.holderRepo.SetBalance(ctx, dbTx, sender, newBalance); err != nil {
			return 0, apperror.InternalError(fmt.Errorf("update emitter balance: %w", err))
		}
	}

	if err := s.registryRepo.SetTotalSupply(ctx, dbTx, newSupply); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("update total supply: %w", err))
	}

	event := &domain.RegistryEvent{
		ID:        uuid.New(),
		Kind:      kind,
		Address:   sender,
		Amount:    amount,
		NewSupply: &newSupply,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.eventRepo.Create(ctx, dbTx, event); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("journal supply change: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if err := s.notifier.Notify(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("kind", string(kind)).Msg("supply-change notification failed")
	}

	s.log.Info().
		Str("kind", string(kind)).
		Int64("amount", amount).
		Int64("new_supply", newSupply).
		Msg("supply adjusted")

	return newSupply, nil
}

// Approve sets the spender's allowance on the owner's balance to an absolute
// amount. An amount of zero revokes the allowance.
func (s *LedgerServiceImpl) Approve(ctx context.Context, owner, spender string, amount int64) error {
	if amount < 0 {
		return apperror.ErrInvalidAmount()
	}
	if spender == "" {
		return apperror.Validation("spender address cannot be empty")
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.allowanceRepo.Set(ctx, dbTx, owner, spender, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("set allowance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// UpdateApprove adjusts the spender's allowance by a signed delta, clamping
// the result at zero. Returns the new allowance.
func (s *LedgerServiceImpl) UpdateApprove(ctx context.Context, owner, spender string, delta int64) (int64, error) {
	if spender == "" {
		return 0, apperror.Validation("spender address cannot be empty")
	}

	current, err := s.allowanceRepo.Get(ctx, owner, spender)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get allowance: %w", err))
	}

	updated := current + delta
	if updated < 0 {
		updated = 0
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.allowanceRepo.Set(ctx, dbTx, owner, spender, updated); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("set allowance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return updated, nil
}

// Balance returns the address's share balance; non-shareholders hold zero.
func (s *LedgerServiceImpl) Balance(ctx context.Context, address string) (int64, error) {
	holder, err := s.holderRepo.Get(ctx, address)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get holder: %w", err))
	}
	if holder == nil {
		return 0, nil
	}
	return holder.Balance, nil
}

// Allowance returns the spender's remaining allowance on the owner's balance.
func (s *LedgerServiceImpl) Allowance(ctx context.Context, owner, spender string) (int64, error) {
	amount, err := s.allowanceRepo.Get(ctx, owner, spender)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get allowance: %w", err))
	}
	return amount, nil
}

// unmarshalCachedEvent deserializes a cached transfer event.
func (s *LedgerServiceImpl) unmarshalCachedEvent(data []byte) (*domain.RegistryEvent, error) {
	event := &domain.RegistryEvent{}
	if err := json.Unmarshal(data, event); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached event: %w", err))
	}
	return event, nil
}

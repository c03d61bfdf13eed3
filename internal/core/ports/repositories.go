package ports

import (
	"context"

	"equity-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for holder accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByAddress(ctx context.Context, address string) (*domain.Account, error)
}

// RegistryRepository defines persistence for the singleton registry state.
// Get returns nil, nil while the registry is uninitialized.
// Methods accepting pgx.Tx run inside a mutation transaction.
type RegistryRepository interface {
	Get(ctx context.Context) (*domain.Registry, error)
	Create(ctx context.Context, tx pgx.Tx, registry *domain.Registry) error
	SetVoteMode(ctx context.Context, tx pgx.Tx, mode domain.VotePolicy) error
	SetDividend(ctx context.Context, tx pgx.Tx, rate float64) error
	SetTotalSupply(ctx context.Context, tx pgx.Tx, supply int64) error
}

// HolderRepository defines persistence for shareholder balances.
// Absent rows mean "not a shareholder"; SetBalance upserts and Delete prunes,
// keeping the zero-balance invariant out of the table entirely.
type HolderRepository interface {
	Get(ctx context.Context, address string) (*domain.Holder, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, address string) (*domain.Holder, error)
	SetBalance(ctx context.Context, tx pgx.Tx, address string, balance int64) error
	Delete(ctx context.Context, tx pgx.Tx, address string) error
	List(ctx context.Context) ([]domain.Holder, error)
	ListForUpdate(ctx context.Context, tx pgx.Tx) ([]domain.Holder, error)
	Count(ctx context.Context) (int64, error)
}

// AllowanceRepository defines persistence for spending allowances.
// Get returns 0 for absent pairs; Set with amount 0 removes the row.
type AllowanceRepository interface {
	Get(ctx context.Context, owner, spender string) (int64, error)
	Set(ctx context.Context, tx pgx.Tx, owner, spender string, amount int64) error
}

// DelegationRepository defines persistence for the delegation graph.
// Get returns "" when the delegator has no outgoing edge. ListDelegators is
// the reverse lookup (who delegates to the given address), served by an index
// on the delegate column.
type DelegationRepository interface {
	Get(ctx context.Context, delegator string) (string, error)
	Set(ctx context.Context, tx pgx.Tx, delegator, delegate string) error
	Delete(ctx context.Context, tx pgx.Tx, delegator string) error
	ListDelegators(ctx context.Context, delegate string) ([]string, error)
}

// EventRepository defines persistence for the registry event journal.
type EventRepository interface {
	Create(ctx context.Context, tx pgx.Tx, event *domain.RegistryEvent) error
	List(ctx context.Context, limit int) ([]domain.RegistryEvent, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

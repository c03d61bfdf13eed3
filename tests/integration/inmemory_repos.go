package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"equity-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.Address]; ok {
		return fmt.Errorf("address already exists")
	}
	cp := *account
	r.accounts[account.Address] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByAddress(ctx context.Context, address string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[address]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

// --- In-Memory Registry Repo ---

type inMemoryRegistryRepo struct {
	mu       sync.RWMutex
	registry *domain.Registry
}

func newInMemoryRegistryRepo() *inMemoryRegistryRepo {
	return &inMemoryRegistryRepo{}
}

func (r *inMemoryRegistryRepo) Get(ctx context.Context) (*domain.Registry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.registry == nil {
		return nil, nil
	}
	cp := *r.registry
	return &cp, nil
}

func (r *inMemoryRegistryRepo) Create(ctx context.Context, tx pgx.Tx, registry *domain.Registry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.registry != nil {
		return fmt.Errorf("registry already exists")
	}
	cp := *registry
	r.registry = &cp
	return nil
}

func (r *inMemoryRegistryRepo) SetVoteMode(ctx context.Context, tx pgx.Tx, mode domain.VotePolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.registry == nil {
		return fmt.Errorf("registry row missing")
	}
	r.registry.VoteMode = mode
	r.registry.UpdatedAt = time.Now()
	return nil
}

func (r *inMemoryRegistryRepo) SetDividend(ctx context.Context, tx pgx.Tx, rate float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.registry == nil {
		return fmt.Errorf("registry row missing")
	}
	r.registry.Dividend = rate
	r.registry.UpdatedAt = time.Now()
	return nil
}

func (r *inMemoryRegistryRepo) SetTotalSupply(ctx context.Context, tx pgx.Tx, supply int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.registry == nil {
		return fmt.Errorf("registry row missing")
	}
	r.registry.TotalSupply = supply
	r.registry.UpdatedAt = time.Now()
	return nil
}

// --- In-Memory Holder Repo ---

type inMemoryHolderRepo struct {
	mu       sync.RWMutex
	balances map[string]int64
}

func newInMemoryHolderRepo() *inMemoryHolderRepo {
	return &inMemoryHolderRepo{balances: make(map[string]int64)}
}

func (r *inMemoryHolderRepo) Get(ctx context.Context, address string) (*domain.Holder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	balance, ok := r.balances[address]
	if !ok {
		return nil, nil
	}
	return &domain.Holder{Address: address, Balance: balance}, nil
}

func (r *inMemoryHolderRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, address string) (*domain.Holder, error) {
	return r.Get(ctx, address)
}

func (r *inMemoryHolderRepo) SetBalance(ctx context.Context, tx pgx.Tx, address string, balance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[address] = balance
	return nil
}

func (r *inMemoryHolderRepo) Delete(ctx context.Context, tx pgx.Tx, address string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.balances, address)
	return nil
}

func (r *inMemoryHolderRepo) List(ctx context.Context) ([]domain.Holder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	holders := make([]domain.Holder, 0, len(r.balances))
	for address, balance := range r.balances {
		holders = append(holders, domain.Holder{Address: address, Balance: balance})
	}
	sort.Slice(holders, func(i, j int) bool { return holders[i].Address < holders[j].Address })
	return holders, nil
}

func (r *inMemoryHolderRepo) ListForUpdate(ctx context.Context, tx pgx.Tx) ([]domain.Holder, error) {
	return r.List(ctx)
}

func (r *inMemoryHolderRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.balances)), nil
}

// --- In-Memory Allowance Repo ---

type inMemoryAllowanceRepo struct {
	mu         sync.RWMutex
	allowances map[string]int64 // owner:spender -> amount
}

func newInMemoryAllowanceRepo() *inMemoryAllowanceRepo {
	return &inMemoryAllowanceRepo{allowances: make(map[string]int64)}
}

func allowanceKey(owner, spender string) string {
	return owner + ":" + spender
}

func (r *inMemoryAllowanceRepo) Get(ctx context.Context, owner, spender string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.allowances[allowanceKey(owner, spender)], nil
}

func (r *inMemoryAllowanceRepo) Set(ctx context.Context, tx pgx.Tx, owner, spender string, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if amount == 0 {
		delete(r.allowances, allowanceKey(owner, spender))
		return nil
	}
	r.allowances[allowanceKey(owner, spender)] = amount
	return nil
}

// --- In-Memory Delegation Repo ---

type inMemoryDelegationRepo struct {
	mu    sync.RWMutex
	edges map[string]string // delegator -> delegate
}

func newInMemoryDelegationRepo() *inMemoryDelegationRepo {
	return &inMemoryDelegationRepo{edges: make(map[string]string)}
}

func (r *inMemoryDelegationRepo) Get(ctx context.Context, delegator string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.edges[delegator], nil
}

func (r *inMemoryDelegationRepo) Set(ctx context.Context, tx pgx.Tx, delegator, delegate string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.edges[delegator] = delegate
	return nil
}

func (r *inMemoryDelegationRepo) Delete(ctx context.Context, tx pgx.Tx, delegator string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.edges, delegator)
	return nil
}

func (r *inMemoryDelegationRepo) ListDelegators(ctx context.Context, delegate string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var delegators []string
	for delegator, d := range r.edges {
		if d == delegate {
			delegators = append(delegators, delegator)
		}
	}
	sort.Strings(delegators)
	return delegators, nil
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events []domain.RegistryEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{}
}

func (r *inMemoryEventRepo) Create(ctx context.Context, tx pgx.Tx, event *domain.RegistryEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *inMemoryEventRepo) List(ctx context.Context, limit int) ([]domain.RegistryEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// newest first
	out := make([]domain.RegistryEvent, 0, limit)
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

package ports

import (
	"context"
	"time"

	"equity-registry/internal/core/domain"
)

// TokenService handles JWT token operations. The token subject is the holder
// address: the authenticated caller is the "sender" of every operation.
type TokenService interface {
	Generate(address string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Address string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// SignatureService handles HMAC-SHA256 signing of outbound event payloads.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// IdempotencyCache is the Redis-backed transfer deduplication check.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// EventNotifier delivers supply-change events to an external listener.
// Delivery is best-effort and must never fail the originating operation.
type EventNotifier interface {
	Notify(ctx context.Context, event *domain.RegistryEvent) error
}

// --- Service Ports (Business Logic) ---

// AuthService defines account registration and login.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Account, error)
	Login(ctx context.Context, address, password string) (string, time.Time, error)
}

// RegisterRequest holds validated input for account registration.
type RegisterRequest struct {
	Address  string
	Password string
}

// LedgerService defines the base balance-and-allowance operations.
type LedgerService interface {
	Transfer(ctx context.Context, req TransferRequest) (*domain.RegistryEvent, error)
	Mint(ctx context.Context, sender string, amount int64) (int64, error)
	Burn(ctx context.Context, sender string, amount int64) (int64, error)
	Approve(ctx context.Context, owner, spender string, amount int64) error
	UpdateApprove(ctx context.Context, owner, spender string, delta int64) (int64, error)
	TransferFrom(ctx context.Context, spender, from, to string, amount int64) (*domain.RegistryEvent, error)
	Balance(ctx context.Context, address string) (int64, error)
	Allowance(ctx context.Context, owner, spender string) (int64, error)
}

// TransferRequest holds validated input for a share transfer.
type TransferRequest struct {
	From        string
	To          string
	Amount      int64
	ReferenceID string // optional client dedup key
}

// VotingService is the voting-weight and delegation engine.
//
// "Organic" quantities are the holder's own stake; "delegated" quantities
// aggregate the organic power of direct delegators; "effective" quantities are
// organic plus delegated, or zero while the holder itself delegates.
type VotingService interface {
	SetDelegate(ctx context.Context, delegator, delegate string) (string, error)
	RemoveDelegate(ctx context.Context, delegator string) (string, error)
	Delegate(ctx context.Context, address string) (string, error)
	IsDelegating(ctx context.Context, address string) (bool, error)
	Delegators(ctx context.Context, address string) ([]string, error)

	IsShareholder(ctx context.Context, address string) (bool, error)
	TotalShareholders(ctx context.Context) (int64, error)
	TotalVotes(ctx context.Context) (int64, error)

	OrganicShares(ctx context.Context, address string) (int64, error)
	DelegatedShares(ctx context.Context, address string) (int64, error)
	EffectiveShares(ctx context.Context, address string) (int64, error)

	OrganicVotes(ctx context.Context, address string) (int64, error)
	DelegatedVotes(ctx context.Context, address string) (int64, error)
	EffectiveVotes(ctx context.Context, address string) (int64, error)

	OrganicWeight(ctx context.Context, address string) (domain.Weight, error)
	DelegatedWeight(ctx context.Context, address string) (domain.Weight, error)
	EffectiveWeight(ctx context.Context, address string) (domain.Weight, error)

	IsMajority(ctx context.Context, address string) (bool, error)
	IsOrganicMajority(ctx context.Context, address string) (bool, error)

	Profile(ctx context.Context, address string) (*VotingProfile, error)
}

// VotingProfile aggregates every voting quantity for one holder.
type VotingProfile struct {
	Address         string
	Delegating      bool
	Delegate        string
	Delegators      []string
	OrganicShares   int64
	DelegatedShares int64
	EffectiveShares int64
	OrganicVotes    int64
	DelegatedVotes  int64
	EffectiveVotes  int64
	TotalVotes      int64
	OrganicWeight   domain.Weight
	DelegatedWeight domain.Weight
	EffectiveWeight domain.Weight
	Majority        bool
	OrganicMajority bool
}

// RightsService maps holder weights onto statutory shareholder rights.
type RightsService interface {
	OrganicRights(ctx context.Context, address string) ([]string, error)
	EffectiveRights(ctx context.Context, address string) ([]string, error)
	Brackets() []domain.RightsBracket
}

// RegistryService defines registry lifecycle and emitter-only administration.
type RegistryService interface {
	Init(ctx context.Context, sender string, req InitRequest) (*domain.Registry, error)
	Info(ctx context.Context) (*RegistryInfo, error)
	SplitStock(ctx context.Context, sender string, factor float64) (*SplitResult, error)
	SetVoteMode(ctx context.Context, sender string, mode domain.VotePolicy) (domain.VotePolicy, error)
	SetDividend(ctx context.Context, sender string, rate float64) (float64, error)
	Events(ctx context.Context, limit int) ([]domain.RegistryEvent, error)
}

// InitRequest holds validated input for registry initialization.
type InitRequest struct {
	Supply   int64
	Name     string
	Symbol   string
	Decimals int
}

// RegistryInfo is the registry state plus derived figures.
type RegistryInfo struct {
	domain.Registry
	TotalShareholders int64 `json:"total_shareholders"`
}

// SplitResult reports a stock split and its rounding-drift reconciliation.
type SplitResult struct {
	Factor    float64 `json:"factor"`
	OldSupply int64   `json:"old_supply"`
	NewSupply int64   `json:"new_supply"`
	Drift     int64   `json:"drift"`
}

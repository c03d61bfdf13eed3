package domain

import (
	"math"
	"time"
)

// VotePolicy controls how organic votes are derived from shares.
type VotePolicy string

const (
	// VotePolicyWeightProportional weighs each shareholder by its share of the
	// total assets ("one dollar one vote").
	VotePolicyWeightProportional VotePolicy = "WEIGHT_PROPORTIONAL"
	// VotePolicyOneHolderOneVote weighs every shareholder the same
	// ("one person one vote").
	VotePolicyOneHolderOneVote VotePolicy = "ONE_HOLDER_ONE_VOTE"
)

// Valid reports whether p is a known vote policy.
func (p VotePolicy) Valid() bool {
	return p == VotePolicyWeightProportional || p == VotePolicyOneHolderOneVote
}

// Registry is the singleton ledger state of the share registry: token
// metadata, total supply, vote policy and the administrative emitter.
type Registry struct {
	Name        string     `json:"name"`
	Symbol      string     `json:"symbol"`
	Decimals    int        `json:"decimals"`
	TotalSupply int64      `json:"total_supply"`
	VoteMode    VotePolicy `json:"vote_mode"`
	Dividend    float64    `json:"dividend"`
	Emitter     string     `json:"emitter"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsEmitter reports whether address is the administrative emitter.
func (r *Registry) IsEmitter(address string) bool {
	return r.Emitter == address
}

// BaseUnits converts a whole-token supply into the token's smallest unit.
func BaseUnits(supply int64, decimals int) int64 {
	return supply * int64(math.Pow10(decimals))
}

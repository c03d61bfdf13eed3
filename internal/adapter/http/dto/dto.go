package dto

// RegisterRequest is the request body for holder account registration.
type RegisterRequest struct {
	Address  string `json:"address" binding:"required,min=3,max=64,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

// LoginRequest is the request body for holder login.
type LoginRequest struct {
	Address  string `json:"address" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// InitRequest is the request body for registry initialization.
// Decimals has no "required" tag: zero is a legal value.
type InitRequest struct {
	Supply   int64  `json:"supply" binding:"required,gt=0"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Symbol   string `json:"symbol" binding:"required,min=1,max=12"`
	Decimals int    `json:"decimals" binding:"min=0,max=18"`
}

// TransferRequest is the request body for a share transfer.
type TransferRequest struct {
	To          string `json:"to" binding:"required,safe_id"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	ReferenceID string `json:"reference_id" binding:"omitempty,max=100,safe_id"`
}

// TransferFromRequest is the request body for an allowance-backed transfer.
type TransferFromRequest struct {
	From   string `json:"from" binding:"required,safe_id"`
	To     string `json:"to" binding:"required,safe_id"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// SupplyChangeRequest is the request body for mint and burn.
type SupplyChangeRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// SupplyChangeResponse reports the supply after a mint or burn.
type SupplyChangeResponse struct {
	TotalSupply int64 `json:"total_supply"`
}

// ApproveRequest is the request body for setting an allowance.
// Amount may be zero to revoke.
type ApproveRequest struct {
	Spender string `json:"spender" binding:"required,safe_id"`
	Amount  int64  `json:"amount" binding:"gte=0"`
}

// UpdateApproveRequest is the request body for adjusting an allowance by delta.
type UpdateApproveRequest struct {
	Spender string `json:"spender" binding:"required,safe_id"`
	Delta   int64  `json:"delta" binding:"required"`
}

// AllowanceResponse is the response for an allowance query or update.
type AllowanceResponse struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  int64  `json:"amount"`
}

// BalanceResponse is the response for a balance query. Zero-balance rows are
// pruned from the ledger, so a positive balance is exactly shareholder status.
type BalanceResponse struct {
	Address     string `json:"address"`
	Balance     int64  `json:"balance"`
	Shareholder bool   `json:"shareholder"`
}

// DelegateRequest is the request body for granting a delegation. The empty
// and self-delegate cases carry dedicated error codes, so validation is left
// to the voting service.
type DelegateRequest struct {
	Delegate string `json:"delegate" binding:"omitempty,max=64,safe_id"`
}

// DelegateResponse reports the current and previous delegate of a holder.
type DelegateResponse struct {
	Delegate string `json:"delegate"`
	Previous string `json:"previous,omitempty"`
}

// SplitRequest is the request body for a stock split. The factor is validated
// by the registry service so that zero and negative values map to the split
// error code rather than a generic binding failure.
type SplitRequest struct {
	Factor float64 `json:"factor"`
}

// SplitResponse reports a stock split outcome.
type SplitResponse struct {
	Factor    float64 `json:"factor"`
	OldSupply int64   `json:"old_supply"`
	NewSupply int64   `json:"new_supply"`
	Drift     int64   `json:"drift"`
}

// VoteModeRequest is the request body for switching the vote policy.
type VoteModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// VoteModeResponse reports the current and previous vote policy.
type VoteModeResponse struct {
	Mode     string `json:"mode"`
	Previous string `json:"previous"`
}

// DividendRequest is the request body for setting the dividend rate.
type DividendRequest struct {
	Rate float64 `json:"rate"`
}

// DividendResponse reports the current and previous dividend rate.
type DividendResponse struct {
	Rate     float64 `json:"rate"`
	Previous float64 `json:"previous"`
}

// RegistryResponse is the registry state plus derived figures.
type RegistryResponse struct {
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	Decimals          int     `json:"decimals"`
	TotalSupply       int64   `json:"total_supply"`
	VoteMode          string  `json:"vote_mode"`
	Dividend          float64 `json:"dividend"`
	Emitter           string  `json:"emitter"`
	TotalShareholders int64   `json:"total_shareholders"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// WeightResponse renders a vote-weight fraction.
type WeightResponse struct {
	Votes      int64   `json:"votes"`
	TotalVotes int64   `json:"total_votes"`
	Value      float64 `json:"value"` // display approximation
	Display    string  `json:"display"`
}

// VotingProfileResponse aggregates every voting quantity for one holder.
type VotingProfileResponse struct {
	Address         string         `json:"address"`
	Delegating      bool           `json:"delegating"`
	Delegate        string         `json:"delegate,omitempty"`
	Delegators      []string       `json:"delegators"`
	OrganicShares   int64          `json:"organic_shares"`
	DelegatedShares int64          `json:"delegated_shares"`
	EffectiveShares int64          `json:"effective_shares"`
	OrganicVotes    int64          `json:"organic_votes"`
	DelegatedVotes  int64          `json:"delegated_votes"`
	EffectiveVotes  int64          `json:"effective_votes"`
	TotalVotes      int64          `json:"total_votes"`
	OrganicWeight   WeightResponse `json:"organic_weight"`
	DelegatedWeight WeightResponse `json:"delegated_weight"`
	EffectiveWeight WeightResponse `json:"effective_weight"`
	Majority        bool           `json:"majority"`
	OrganicMajority bool           `json:"organic_majority"`
}

// RightsResponse lists the statutory rights a holder commands.
type RightsResponse struct {
	Address         string   `json:"address"`
	OrganicRights   []string `json:"organic_rights"`
	EffectiveRights []string `json:"effective_rights"`
}

// BracketResponse is one row of the rights table.
type BracketResponse struct {
	Threshold string   `json:"threshold"` // e.g. "1/20"
	Percent   float64  `json:"percent"`
	Rights    []string `json:"rights"`
}

// EventResponse is the response body for a journal event.
type EventResponse struct {
	ID           string   `json:"id"`
	Kind         string   `json:"kind"`
	Address      string   `json:"address"`
	Counterparty *string  `json:"counterparty,omitempty"`
	Amount       int64    `json:"amount"`
	NewSupply    *int64   `json:"new_supply,omitempty"`
	Factor       *float64 `json:"factor,omitempty"`
	Reference    *string  `json:"reference,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

// EventListResponse wraps the event journal.
type EventListResponse struct {
	Items []EventResponse `json:"items"`
}

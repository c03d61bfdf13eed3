package domain

import "time"

// Holder is a shareholder record. The ledger never stores zero balances: an
// address whose balance reaches zero is pruned and ceases to be a shareholder.
type Holder struct {
	Address   string    `json:"address"`
	Balance   int64     `json:"balance"` // in the token's smallest unit
	UpdatedAt time.Time `json:"updated_at"`
}

// Account is an authentication record for a holder address.
type Account struct {
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Allowance is the amount a spender may move out of an owner's balance.
type Allowance struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  int64  `json:"amount"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind classifies registry events.
type EventKind string

const (
	EventMinted        EventKind = "MINTED"
	EventBurnt         EventKind = "BURNT"
	EventTransferred   EventKind = "TRANSFERRED"
	EventPolicyChanged EventKind = "POLICY_CHANGED"
)

// RegistryEvent is an immutable journal entry for a registry mutation.
// MINTED and BURNT events produced by a stock split carry the split factor.
type RegistryEvent struct {
	ID           uuid.UUID `json:"id"`
	Kind         EventKind `json:"kind"`
	Address      string    `json:"address"` // acting address (emitter for admin events)
	Counterparty *string   `json:"counterparty,omitempty"` // recipient for transfers
	Amount       int64     `json:"amount"`
	NewSupply    *int64    `json:"new_supply,omitempty"`
	Factor       *float64  `json:"factor,omitempty"`
	Reference    *string   `json:"reference,omitempty"` // client reference for transfers
	CreatedAt    time.Time `json:"created_at"`
}

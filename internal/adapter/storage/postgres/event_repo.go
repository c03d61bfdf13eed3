package postgres

import (
	"context"
	"fmt"

	"equity-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository over the append-only journal.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Create appends a journal entry within a transaction.
func (r *EventRepo) Create(ctx context.Context, tx pgx.Tx, event *domain.RegistryEvent) error {
	query := `INSERT INTO registry_events (id, kind, address, counterparty, amount, new_supply, factor, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		event.ID, event.Kind, event.Address, event.Counterparty,
		event.Amount, event.NewSupply, event.Factor, event.Reference, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// List fetches the most recent journal entries, newest first.
func (r *EventRepo) List(ctx context.Context, limit int) ([]domain.RegistryEvent, error) {
	query := `SELECT id, kind, address, counterparty, amount, new_supply, factor, reference, created_at
		FROM registry_events ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []domain.RegistryEvent
	for rows.Next() {
		var e domain.RegistryEvent
		if err := rows.Scan(
			&e.ID, &e.Kind, &e.Address, &e.Counterparty,
			&e.Amount, &e.NewSupply, &e.Factor, &e.Reference, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DelegationRepo implements ports.DelegationRepository. Each delegator has at
// most one outgoing edge; the delegate column is indexed for reverse lookups.
type DelegationRepo struct {
	pool Pool
}

// NewDelegationRepo creates a new DelegationRepo.
func NewDelegationRepo(pool Pool) *DelegationRepo {
	return &DelegationRepo{pool: pool}
}

// Get returns the delegator's delegate, or "" when there is no edge.
func (r *DelegationRepo) Get(ctx context.Context, delegator string) (string, error) {
	query := `SELECT delegate FROM delegations WHERE delegator = $1`

	var delegate string
	err := r.pool.QueryRow(ctx, query, delegator).Scan(&delegate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get delegation: %w", err)
	}
	return delegate, nil
}

// Set upserts the delegator's outgoing edge within a transaction.
func (r *DelegationRepo) Set(ctx context.Context, tx pgx.Tx, delegator, delegate string) error {
	query := `INSERT INTO delegations (delegator, delegate, created_at) VALUES ($1, $2, NOW())
		ON CONFLICT (delegator) DO UPDATE SET delegate = EXCLUDED.delegate, created_at = NOW()`

	_, err := tx.Exec(ctx, query, delegator, delegate)
	if err != nil {
		return fmt.Errorf("set delegation: %w", err)
	}
	return nil
}

// Delete removes the delegator's outgoing edge within a transaction.
func (r *DelegationRepo) Delete(ctx context.Context, tx pgx.Tx, delegator string) error {
	_, err := tx.Exec(ctx, `DELETE FROM delegations WHERE delegator = $1`, delegator)
	if err != nil {
		return fmt.Errorf("delete delegation: %w", err)
	}
	return nil
}

// ListDelegators returns the addresses directly delegating to the given
// address, ordered for stable output.
func (r *DelegationRepo) ListDelegators(ctx context.Context, delegate string) ([]string, error) {
	query := `SELECT delegator FROM delegations WHERE delegate = $1 ORDER BY delegator`

	rows, err := r.pool.Query(ctx, query, delegate)
	if err != nil {
		return nil, fmt.Errorf("list delegators: %w", err)
	}
	defer rows.Close()

	var delegators []string
	for rows.Next() {
		var delegator string
		if err := rows.Scan(&delegator); err != nil {
			return nil, fmt.Errorf("scan delegator: %w", err)
		}
		delegators = append(delegators, delegator)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate delegators: %w", err)
	}
	return delegators, nil
}

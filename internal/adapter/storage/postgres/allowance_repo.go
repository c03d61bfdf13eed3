package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// AllowanceRepo implements ports.AllowanceRepository. Absent rows mean a zero
// allowance, and setting zero removes the row.
type AllowanceRepo struct {
	pool Pool
}

// NewAllowanceRepo creates a new AllowanceRepo.
func NewAllowanceRepo(pool Pool) *AllowanceRepo {
	return &AllowanceRepo{pool: pool}
}

// Get fetches the spender's allowance on the owner's balance.
func (r *AllowanceRepo) Get(ctx context.Context, owner, spender string) (int64, error) {
	query := `SELECT amount FROM allowances WHERE owner = $1 AND spender = $2`

	var amount int64
	err := r.pool.QueryRow(ctx, query, owner, spender).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get allowance: %w", err)
	}
	return amount, nil
}

// Set upserts an allowance within a transaction. An amount of zero deletes
// the row instead.
func (r *AllowanceRepo) Set(ctx context.Context, tx pgx.Tx, owner, spender string, amount int64) error {
	if amount == 0 {
		_, err := tx.Exec(ctx, `DELETE FROM allowances WHERE owner = $1 AND spender = $2`, owner, spender)
		if err != nil {
			return fmt.Errorf("delete allowance: %w", err)
		}
		return nil
	}

	query := `INSERT INTO allowances (owner, spender, amount) VALUES ($1, $2, $3)
		ON CONFLICT (owner, spender) DO UPDATE SET amount = EXCLUDED.amount`

	_, err := tx.Exec(ctx, query, owner, spender, amount)
	if err != nil {
		return fmt.Errorf("set allowance: %w", err)
	}
	return nil
}

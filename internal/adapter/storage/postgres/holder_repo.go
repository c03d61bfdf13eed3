package postgres

import (
	"context"
	"errors"
	"fmt"

	"equity-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// HolderRepo implements ports.HolderRepository. Rows exist only for positive
// balances; SetBalance upserts and Delete prunes.
type HolderRepo struct {
	pool Pool
}

// NewHolderRepo creates a new HolderRepo.
func NewHolderRepo(pool Pool) *HolderRepo {
	return &HolderRepo{pool: pool}
}

// Get fetches a holder by address (without locking).
func (r *HolderRepo) Get(ctx context.Context, address string) (*domain.Holder, error) {
	query := `SELECT address, balance, updated_at FROM holders WHERE address = $1`

	h := &domain.Holder{}
	err := r.pool.QueryRow(ctx, query, address).Scan(&h.Address, &h.Balance, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get holder: %w", err)
	}
	return h, nil
}

// GetForUpdate fetches a holder with pessimistic locking.
// This MUST be called within a transaction.
func (r *HolderRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, address string) (*domain.Holder, error) {
	query := `SELECT address, balance, updated_at FROM holders WHERE address = $1 FOR UPDATE`

	h := &domain.Holder{}
	err := tx.QueryRow(ctx, query, address).Scan(&h.Address, &h.Balance, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get holder for update: %w", err)
	}
	return h, nil
}

// SetBalance upserts a holder's balance within a transaction.
func (r *HolderRepo) SetBalance(ctx context.Context, tx pgx.Tx, address string, balance int64) error {
	query := `INSERT INTO holders (address, balance, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (address) DO UPDATE SET balance = EXCLUDED.balance, updated_at = NOW()`

	_, err := tx.Exec(ctx, query, address, balance)
	if err != nil {
		return fmt.Errorf("set holder balance: %w", err)
	}
	return nil
}

// Delete removes a drained holder within a transaction.
func (r *HolderRepo) Delete(ctx context.Context, tx pgx.Tx, address string) error {
	query := `DELETE FROM holders WHERE address = $1`

	_, err := tx.Exec(ctx, query, address)
	if err != nil {
		return fmt.Errorf("delete holder: %w", err)
	}
	return nil
}

// List fetches all holders ordered by address (without locking).
func (r *HolderRepo) List(ctx context.Context) ([]domain.Holder, error) {
	query := `SELECT address, balance, updated_at FROM holders ORDER BY address`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list holders: %w", err)
	}
	defer rows.Close()

	return scanHolders(rows)
}

// ListForUpdate fetches all holders with pessimistic locking, for whole-table
// rewrites such as a stock split. This MUST be called within a transaction.
func (r *HolderRepo) ListForUpdate(ctx context.Context, tx pgx.Tx) ([]domain.Holder, error) {
	query := `SELECT address, balance, updated_at FROM holders ORDER BY address FOR UPDATE`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list holders for update: %w", err)
	}
	defer rows.Close()

	return scanHolders(rows)
}

// Count returns the number of holders.
func (r *HolderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM holders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count holders: %w", err)
	}
	return count, nil
}

func scanHolders(rows pgx.Rows) ([]domain.Holder, error) {
	var holders []domain.Holder
	for rows.Next() {
		var h domain.Holder
		if err := rows.Scan(&h.Address, &h.Balance, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan holder: %w", err)
		}
		holders = append(holders, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holders: %w", err)
	}
	return holders, nil
}

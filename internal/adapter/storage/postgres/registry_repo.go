package postgres

import (
	"context"
	"errors"
	"fmt"

	"equity-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// RegistryRepo implements ports.RegistryRepository. The registry is a single
// row keyed by a constant id.
type RegistryRepo struct {
	pool Pool
}

// NewRegistryRepo creates a new RegistryRepo.
func NewRegistryRepo(pool Pool) *RegistryRepo {
	return &RegistryRepo{pool: pool}
}

// Get fetches the registry row. Returns nil, nil while uninitialized.
func (r *RegistryRepo) Get(ctx context.Context) (*domain.Registry, error) {
	query := `SELECT name, symbol, decimals, total_supply, vote_mode, dividend, emitter, created_at, updated_at
		FROM registry WHERE id = 1`

	reg := &domain.Registry{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&reg.Name, &reg.Symbol, &reg.Decimals, &reg.TotalSupply,
		&reg.VoteMode, &reg.Dividend, &reg.Emitter, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get registry: %w", err)
	}
	return reg, nil
}

// Create inserts the registry row within a transaction.
func (r *RegistryRepo) Create(ctx context.Context, tx pgx.Tx, reg *domain.Registry) error {
	query := `INSERT INTO registry (id, name, symbol, decimals, total_supply, vote_mode, dividend, emitter, created_at, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		reg.Name, reg.Symbol, reg.Decimals, reg.TotalSupply,
		reg.VoteMode, reg.Dividend, reg.Emitter, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert registry: %w", err)
	}
	return nil
}

// SetVoteMode updates the active vote policy within a transaction.
func (r *RegistryRepo) SetVoteMode(ctx context.Context, tx pgx.Tx, mode domain.VotePolicy) error {
	query := `UPDATE registry SET vote_mode = $1, updated_at = NOW() WHERE id = 1`

	tag, err := tx.Exec(ctx, query, mode)
	if err != nil {
		return fmt.Errorf("update vote mode: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registry row missing")
	}
	return nil
}

// SetDividend updates the declared dividend rate within a transaction.
func (r *RegistryRepo) SetDividend(ctx context.Context, tx pgx.Tx, rate float64) error {
	query := `UPDATE registry SET dividend = $1, updated_at = NOW() WHERE id = 1`

	tag, err := tx.Exec(ctx, query, rate)
	if err != nil {
		return fmt.Errorf("update dividend: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registry row missing")
	}
	return nil
}

// SetTotalSupply updates the total supply within a transaction.
func (r *RegistryRepo) SetTotalSupply(ctx context.Context, tx pgx.Tx, supply int64) error {
	query := `UPDATE registry SET total_supply = $1, updated_at = NOW() WHERE id = 1`

	tag, err := tx.Exec(ctx, query, supply)
	if err != nil {
		return fmt.Errorf("update total supply: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("registry row missing")
	}
	return nil
}

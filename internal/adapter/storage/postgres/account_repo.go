package postgres

import (
	"context"
	"errors"
	"fmt"

	"equity-registry/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account into the database.
func (r *AccountRepo) Create(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (address, password_hash, created_at) VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query, account.Address, account.PasswordHash, account.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByAddress fetches an account by its address.
func (r *AccountRepo) GetByAddress(ctx context.Context, address string) (*domain.Account, error) {
	query := `SELECT address, password_hash, created_at FROM accounts WHERE address = $1`

	a := &domain.Account{}
	err := r.pool.QueryRow(ctx, query, address).Scan(&a.Address, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

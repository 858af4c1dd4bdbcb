package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/paxosraft/quorumbot/internal/domain"
	"github.com/paxosraft/quorumbot/pkg/uow"
)

type AccountRepository struct {
	db uow.DBTX
}

func NewAccountRepository(db uow.DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create opens the user's cash account with the schema's default starting
// balance.
func (r *AccountRepository) Create(ctx context.Context, username string) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO accounts (username)
		VALUES ($1)
		RETURNING id, username, balance, created_at, updated_at
	`, username)

	var a domain.Account
	if err := row.Scan(&a.ID, &a.Username, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, convertErr(err, "creating account for %s", username)
	}
	return &a, nil
}

func (r *AccountRepository) Balance(ctx context.Context, username string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT balance FROM accounts WHERE username = $1`, username).Scan(&balance)
	if err != nil {
		return decimal.Zero, convertErr(err, "fetching balance of %s", username)
	}
	return balance, nil
}

// BalanceForUpdate reads the balance with a row lock, so a concurrent trade
// for the same user blocks until this transaction finishes. Only meaningful
// inside a uow transaction.
func (r *AccountRepository) BalanceForUpdate(ctx context.Context, username string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT balance FROM accounts WHERE username = $1 FOR UPDATE`, username).Scan(&balance)
	if err != nil {
		return decimal.Zero, convertErr(err, "locking balance of %s", username)
	}
	return balance, nil
}

// Adjust moves the balance by delta, negative for a debit.
func (r *AccountRepository) Adjust(ctx context.Context, username string, delta decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts SET balance = balance + $1, updated_at = now() WHERE username = $2
	`, delta, username)
	if err != nil {
		return convertErr(err, "adjusting balance of %s", username)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "adjusting balance of %s", username)
	}
	return nil
}

package pgrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/paxosraft/quorumbot/internal/domain"
	"github.com/paxosraft/quorumbot/internal/repository/repoargs"
	"github.com/paxosraft/quorumbot/pkg/uow"
)

type HoldingRepository struct {
	db uow.DBTX
}

func NewHoldingRepository(db uow.DBTX) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// SharesOf returns the user's position in ticker. Absence of a holding is not
// an error: it is a position of zero.
func (r *HoldingRepository) SharesOf(ctx context.Context, username, ticker string) (decimal.Decimal, error) {
	var shares decimal.Decimal
	err := r.db.QueryRow(ctx, `
		SELECT shares FROM holdings WHERE username = $1 AND ticker = $2
	`, username, ticker).Scan(&shares)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, convertErr(err, "fetching shares of %s/%s", username, ticker)
	}
	return shares, nil
}

// GetForUpdate reads the holding with a row lock, so a concurrent sell of the
// same position blocks until this transaction finishes. Absence is
// domain.ErrRecordNotFound here: there is no row to lock.
func (r *HoldingRepository) GetForUpdate(ctx context.Context, username, ticker string) (*domain.Holding, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, username, ticker, shares, asset_class, created_at, updated_at
		FROM holdings
		WHERE username = $1 AND ticker = $2
		FOR UPDATE
	`, username, ticker)

	var h domain.Holding
	if err := row.Scan(&h.ID, &h.Username, &h.Ticker, &h.Shares, &h.Class, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, convertErr(err, "locking holding %s/%s", username, ticker)
	}
	return &h, nil
}

// Add upserts the holding: first buy of a ticker inserts the row, repeat buys
// increment it.
func (r *HoldingRepository) Add(ctx context.Context, args repoargs.HoldingAdd) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO holdings (username, ticker, shares, asset_class)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username, ticker)
		DO UPDATE SET shares = holdings.shares + $3, updated_at = now()
	`, args.Username, args.Ticker, args.Shares, args.Class)
	if err != nil {
		return convertErr(err, "adding %s shares of %s/%s", args.Shares, args.Username, args.Ticker)
	}
	return nil
}

// Deduct subtracts shares from the holding and returns the remaining amount.
func (r *HoldingRepository) Deduct(ctx context.Context, args repoargs.HoldingDeduct) (decimal.Decimal, error) {
	var remaining decimal.Decimal
	err := r.db.QueryRow(ctx, `
		UPDATE holdings SET shares = shares - $1, updated_at = now()
		WHERE username = $2 AND ticker = $3
		RETURNING shares
	`, args.Shares, args.Username, args.Ticker).Scan(&remaining)
	if err != nil {
		return decimal.Zero, convertErr(err, "deducting %s shares of %s/%s", args.Shares, args.Username, args.Ticker)
	}
	return remaining, nil
}

// Delete removes the holding row. Used to prune positions that reached zero.
func (r *HoldingRepository) Delete(ctx context.Context, username, ticker string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM holdings WHERE username = $1 AND ticker = $2`, username, ticker)
	if err != nil {
		return convertErr(err, "deleting holding %s/%s", username, ticker)
	}
	return nil
}

func (r *HoldingRepository) ListByUser(ctx context.Context, username string) ([]domain.Holding, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, ticker, shares, asset_class, created_at, updated_at
		FROM holdings
		WHERE username = $1
		ORDER BY ticker
	`, username)
	if err != nil {
		return nil, convertErr(err, "listing holdings of %s", username)
	}
	defer rows.Close()

	var holdings []domain.Holding
	for rows.Next() {
		var h domain.Holding
		if scanErr := rows.Scan(&h.ID, &h.Username, &h.Ticker, &h.Shares, &h.Class, &h.CreatedAt, &h.UpdatedAt); scanErr != nil {
			return nil, convertErr(scanErr, "scanning holding of %s", username)
		}
		holdings = append(holdings, h)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing holdings of %s", username)
	}
	return holdings, nil
}

package pgrepo

import (
	"context"

	"github.com/paxosraft/quorumbot/internal/domain"
	"github.com/paxosraft/quorumbot/internal/repository/repoargs"
	"github.com/paxosraft/quorumbot/pkg/uow"
)

type TradeRepository struct {
	db uow.DBTX
}

func NewTradeRepository(db uow.DBTX) *TradeRepository {
	return &TradeRepository{db: db}
}

// Create appends one trade record. Trades are never updated or deleted.
func (r *TradeRepository) Create(ctx context.Context, args repoargs.TradeCreate) (*domain.Trade, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO trades (username, ticker, shares, price, type, asset_class)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, username, ticker, shares, price, type, asset_class, created_at
	`, args.Username, args.Ticker, args.Shares, args.Price, args.Type, args.Class)

	var t domain.Trade
	if err := row.Scan(&t.ID, &t.Username, &t.Ticker, &t.Shares, &t.Price, &t.Type, &t.Class, &t.CreatedAt); err != nil {
		return nil, convertErr(err, "recording %s trade of %s/%s", args.Type, args.Username, args.Ticker)
	}
	return &t, nil
}

func (r *TradeRepository) ListByUser(ctx context.Context, username string) ([]domain.Trade, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, ticker, shares, price, type, asset_class, created_at
		FROM trades
		WHERE username = $1
		ORDER BY id
	`, username)
	if err != nil {
		return nil, convertErr(err, "listing trades of %s", username)
	}
	defer rows.Close()

	var trades []domain.Trade
	for rows.Next() {
		var t domain.Trade
		if scanErr := rows.Scan(&t.ID, &t.Username, &t.Ticker, &t.Shares, &t.Price, &t.Type, &t.Class, &t.CreatedAt); scanErr != nil {
			return nil, convertErr(scanErr, "scanning trade of %s", username)
		}
		trades = append(trades, t)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing trades of %s", username)
	}
	return trades, nil
}

func (r *TradeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM trades`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting trades")
	}
	return count, nil
}

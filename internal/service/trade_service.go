package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paxosraft/quorumbot/internal/domain"
)

// TradeService composes the ledger with the price oracle: it validates a
// trade against current prices and balances, then delegates the mutation to
// the ledger's atomic operations. All quoting happens before the ledger
// transaction begins, so a slow oracle can never hold a transaction open.
type TradeService struct {
	ledger Ledger
	quoter Quoter
}

func NewTradeService(ledger Ledger, quoter Quoter) *TradeService {
	return &TradeService{
		ledger: ledger,
		quoter: quoter,
	}
}

// Receipt describes one executed trade for the confirmation reply.
type Receipt struct {
	Ticker string
	Shares decimal.Decimal
	Price  decimal.Decimal
	Total  decimal.Decimal
	Class  domain.AssetClass
}

// Buy purchases shares of symbol at the oracle's current price. Returns
// domain.ErrSymbolNotFound for an unknown symbol and
// domain.ErrNotEnoughBalance when the account cannot cover the cost; neither
// mutates anything.
func (t *TradeService) Buy(ctx context.Context, username, symbol string, shares decimal.Decimal) (*Receipt, error) {
	price, class, quoteErr := t.quoter.FetchAssetPrice(ctx, symbol)
	if quoteErr != nil {
		return nil, fmt.Errorf("buying %s: %w", symbol, quoteErr)
	}

	cost := price.Mul(shares)
	balance, balanceErr := t.ledger.AccountBalance(ctx, username)
	if balanceErr != nil {
		return nil, fmt.Errorf("buying %s: %w", symbol, balanceErr)
	}
	if balance.LessThan(cost) {
		return nil, domain.ErrNotEnoughBalance
	}

	if err := t.ledger.ExecuteBuy(ctx, username, symbol, price, shares, class); err != nil {
		return nil, fmt.Errorf("buying %s: %w", symbol, err)
	}
	return &Receipt{
		Ticker: symbol,
		Shares: shares,
		Price:  price,
		Total:  cost,
		Class:  class,
	}, nil
}

// Sell disposes shares of symbol at the oracle's current price. The ownership
// check runs before any price lookup: a user who is short gets an answer
// without a network round-trip. Returns domain.ErrNotEnoughShares or
// domain.ErrSymbolNotFound without mutating anything.
func (t *TradeService) Sell(ctx context.Context, username, symbol string, shares decimal.Decimal) (*Receipt, error) {
	owned, ownedErr := t.ledger.OwnedShares(ctx, username, symbol)
	if ownedErr != nil {
		return nil, fmt.Errorf("selling %s: %w", symbol, ownedErr)
	}
	if owned.IsZero() || owned.LessThan(shares) {
		return nil, domain.ErrNotEnoughShares
	}

	price, class, quoteErr := t.quoter.FetchAssetPrice(ctx, symbol)
	if quoteErr != nil {
		return nil, fmt.Errorf("selling %s: %w", symbol, quoteErr)
	}

	if err := t.ledger.ExecuteSell(ctx, username, symbol, price, shares); err != nil {
		return nil, fmt.Errorf("selling %s: %w", symbol, err)
	}
	return &Receipt{
		Ticker: symbol,
		Shares: shares,
		Price:  price,
		Total:  price.Mul(shares),
		Class:  class,
	}, nil
}

// NetWorth is cash plus the market value of every holding, quoting each
// ticker once.
func (t *TradeService) NetWorth(ctx context.Context, username string) (decimal.Decimal, error) {
	balance, balanceErr := t.ledger.AccountBalance(ctx, username)
	if balanceErr != nil {
		return decimal.Zero, fmt.Errorf("calculating net worth: %w", balanceErr)
	}

	holdings, holdingsErr := t.ledger.Assets(ctx, username)
	if holdingsErr != nil {
		return decimal.Zero, fmt.Errorf("calculating net worth: %w", holdingsErr)
	}

	total := balance
	for _, h := range holdings {
		price, _, quoteErr := t.quoter.FetchAssetPrice(ctx, h.Ticker)
		if quoteErr != nil {
			return decimal.Zero, fmt.Errorf("calculating net worth of %s: %w", h.Ticker, quoteErr)
		}
		total = total.Add(price.Mul(h.Shares))
	}
	return total, nil
}

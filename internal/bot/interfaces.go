package bot

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/paxosraft/quorumbot/internal/domain"
	"github.com/paxosraft/quorumbot/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// Ledger is the slice of the ledger service the command handlers use.
type Ledger interface {
	RegisterUser(ctx context.Context, name string) (*domain.User, error)
	RemoveUser(ctx context.Context, name string) error
	Bailout(ctx context.Context, name string) error
	AccountBalance(ctx context.Context, username string) (decimal.Decimal, error)
	Assets(ctx context.Context, username string) ([]domain.Holding, error)
	TradeHistory(ctx context.Context, username string) ([]domain.Trade, error)
	IsAdmin(ctx context.Context, username string) (bool, error)
	Exists(ctx context.Context, username string) (bool, error)
}

// Trader executes buys and sells against current prices.
type Trader interface {
	Buy(ctx context.Context, username, symbol string, shares decimal.Decimal) (*service.Receipt, error)
	Sell(ctx context.Context, username, symbol string, shares decimal.Decimal) (*service.Receipt, error)
	NetWorth(ctx context.Context, username string) (decimal.Decimal, error)
}

// Quoter answers !price lookups.
type Quoter interface {
	FetchAssetPrice(ctx context.Context, symbol string) (decimal.Decimal, domain.AssetClass, error)
}

// Speaker carries outbound replies back to the chat.
type Speaker interface {
	Say(channel, text string) error
}

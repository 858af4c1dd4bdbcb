package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/paxosraft/quorumbot/internal/domain"
	"github.com/paxosraft/quorumbot/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, name string) (*domain.User, error)
	Delete(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
	IsAdmin(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type AccountRepository interface {
	Create(ctx context.Context, username string) (*domain.Account, error)
	Balance(ctx context.Context, username string) (decimal.Decimal, error)
	BalanceForUpdate(ctx context.Context, username string) (decimal.Decimal, error)
	Adjust(ctx context.Context, username string, delta decimal.Decimal) error
}

type HoldingRepository interface {
	SharesOf(ctx context.Context, username, ticker string) (decimal.Decimal, error)
	GetForUpdate(ctx context.Context, username, ticker string) (*domain.Holding, error)
	Add(ctx context.Context, args repoargs.HoldingAdd) error
	Deduct(ctx context.Context, args repoargs.HoldingDeduct) (decimal.Decimal, error)
	Delete(ctx context.Context, username, ticker string) error
	ListByUser(ctx context.Context, username string) ([]domain.Holding, error)
}

type TradeRepository interface {
	Create(ctx context.Context, args repoargs.TradeCreate) (*domain.Trade, error)
	ListByUser(ctx context.Context, username string) ([]domain.Trade, error)
	Count(ctx context.Context) (int64, error)
}

// Quoter is the external price oracle. Implemented by internal/quote.
type Quoter interface {
	FetchAssetPrice(ctx context.Context, symbol string) (decimal.Decimal, domain.AssetClass, error)
}

// Ledger is the slice of LedgerService the trade executor composes with the
// quoter.
type Ledger interface {
	AccountBalance(ctx context.Context, username string) (decimal.Decimal, error)
	OwnedShares(ctx context.Context, username, ticker string) (decimal.Decimal, error)
	Assets(ctx context.Context, username string) ([]domain.Holding, error)
	ExecuteBuy(ctx context.Context, username, ticker string, price, shares decimal.Decimal, class domain.AssetClass) error
	ExecuteSell(ctx context.Context, username, ticker string, price, shares decimal.Decimal) error
}

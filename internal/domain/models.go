package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

// User is a chat identity registered with the brokerage. Name is the primary
// key; every other record hangs off it.
type User struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	ID        int64
	IsAdmin   bool
}

// Account holds a user's cash. One account per user, created together with it.
type Account struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Balance   decimal.Decimal
	ID        int64
}

// Holding is a user's current position in one ticker. A holding with zero
// shares must not exist: the sell that empties it deletes the row.
type Holding struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Ticker    string
	Shares    decimal.Decimal
	Class     AssetClass
	ID        int64
}

// Trade is an append-only record of one executed buy or sell.
type Trade struct {
	CreatedAt time.Time
	Username  string
	Ticker    string
	Shares    decimal.Decimal
	Price     decimal.Decimal
	Type      TradeType
	Class     AssetClass
	ID        int64
}

// Stats are aggregate ledger counters exposed on the ops endpoint.
type Stats struct {
	Users  int64
	Trades int64
}

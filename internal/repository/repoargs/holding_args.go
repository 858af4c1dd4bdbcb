package repoargs

import (
	"github.com/shopspring/decimal"

	"github.com/paxosraft/quorumbot/internal/domain"
)

// HoldingAdd upserts a position: inserts the row on first buy, otherwise adds
// Shares to the existing amount.
type HoldingAdd struct {
	Username string
	Ticker   string
	Shares   decimal.Decimal
	Class    domain.AssetClass
}

type HoldingDeduct struct {
	Username string
	Ticker   string
	Shares   decimal.Decimal
}

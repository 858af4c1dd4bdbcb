package repoargs

import (
	"github.com/shopspring/decimal"

	"github.com/paxosraft/quorumbot/internal/domain"
)

type TradeCreate struct {
	Username string
	Ticker   string
	Shares   decimal.Decimal
	Price    decimal.Decimal
	Type     domain.TradeType
	Class    domain.AssetClass
}

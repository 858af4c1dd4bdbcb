package domain

type AssetClass string

const (
	AssetStock  AssetClass = "stock"
	AssetCrypto AssetClass = "crypto"
)

type TradeType string

const (
	TradeBuy  TradeType = "buy"
	TradeSell TradeType = "sell"
)

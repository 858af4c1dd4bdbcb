package bot

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseCommand splits an inbound chat line into a lowercased keyword and its
// positional arguments. ok is false for anything that is not a `!` line.
func parseCommand(text string) (kw string, args []string, ok bool) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "!") {
		return "", nil, false
	}
	fields := strings.Fields(trimmed)
	return strings.ToLower(fields[0]), fields[1:], true
}

// parseShares reads the optional share-count argument. Anything missing,
// non-numeric, zero or negative falls back to 1 share; fractional amounts
// (crypto) are preserved exactly.
func parseShares(args []string) decimal.Decimal {
	if len(args) < 2 {
		return decimal.NewFromInt(1)
	}
	shares, err := decimal.NewFromString(args[1])
	if err != nil || shares.LessThanOrEqual(decimal.Zero) {
		return decimal.NewFromInt(1)
	}
	return shares
}

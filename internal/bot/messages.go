package bot

import (
	"fmt"
	"strings"

	"github.com/paxosraft/quorumbot/internal/service"
)

const (
	msgMustJoin        = "You must join the brokerage first. Use !join to join."
	msgAdminDenied     = "You cannot use this command."
	msgMissingTicker   = "You must pass in a ticker symbol."
	msgMissingUsername = "You must pass in a username."
	msgAlreadyJoined   = "You've already joined!"
	msgNotEnoughMoney  = "You don't have enough money to buy that asset."
	msgNotEnoughShares = "You don't own enough shares of that asset."
	msgBailout         = "Here's your government stimulus check. Do better next time!"
	msgRemoved         = "You have been removed from the brokerage."
	msgNoAssets        = "You don't own any assets yet."
	msgNoTrades        = "You haven't made any trades yet."
	msgGenericError    = "an error occurred"
)

func joinMsg() string {
	return fmt.Sprintf(
		"You have joined the Quorum brokerage. Your account is currently at $%s",
		service.StartingBalance.StringFixed(2),
	)
}

func notFoundMsg(symbol string) string {
	return strings.ToUpper(symbol) + " does not exist."
}

func helpMsg() string {
	return strings.Join([]string{
		"!join: Join the Quorum brokerage",
		"!price <symbol>: Check the price of a stock or crypto asset",
		"!buy <symbol> [shares]: Buy shares of an asset (shares default to 1)",
		"!sell <symbol> [shares]: Sell shares of an asset (shares default to 1)",
		"!balance: Check your current brokerage account balance",
		"!assets: Display which stocks and crypto coins you own",
		"!networth: Cash plus the market value of everything you own",
		"!history: Your trade history",
		"!bailout: Get bailed out and reset your account",
		"!remove: Leave the brokerage",
	}, " ----- ")
}

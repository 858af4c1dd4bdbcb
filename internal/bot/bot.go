// Package bot routes inbound chat lines through the command registry and its
// authorization gate, and turns handler results into single-line replies.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/paxosraft/quorumbot/internal/domain"
)

type Bot struct {
	speaker  Speaker
	ledger   Ledger
	trader   Trader
	quoter   Quoter
	l        *logrus.Entry
	commands map[keyword]command
}

func New(speaker Speaker, ledger Ledger, trader Trader, quoter Quoter, l *logrus.Logger) *Bot {
	b := &Bot{
		speaker: speaker,
		ledger:  ledger,
		trader:  trader,
		quoter:  quoter,
		l:       l.WithField("component", "bot"),
	}
	b.commands = b.registry()
	return b
}

// HandleMessage processes one inbound chat line. Self messages and lines that
// are not commands are ignored; a recognized command produces at most one
// reply addressed to the caller.
func (b *Bot) HandleMessage(ctx context.Context, channel, username, text string, self bool) {
	if self {
		return
	}
	kw, args, ok := parseCommand(text)
	if !ok {
		return
	}

	cmd, known := b.commands[keyword(kw)]
	if !known {
		// a chat room hosts plenty of !lines that are not for us
		b.l.WithField("command", kw).Debug("unknown command")
		return
	}

	if denial, gateErr := b.gate(ctx, cmd, username); gateErr != nil {
		b.l.WithError(gateErr).WithField("command", kw).Error("gate check failed")
		b.say(channel, username, msgGenericError)
		return
	} else if denial != "" {
		b.say(channel, username, denial)
		return
	}

	reply, err := cmd.handle(ctx, username, args)
	if err != nil {
		b.l.WithError(err).WithFields(logrus.Fields{
			"command": kw,
			"user":    username,
		}).Error("command failed")
		reply = msgGenericError
	}
	if reply == "" {
		return
	}
	b.say(channel, username, reply)
}

// gate enforces the command's preconditions and returns the denial reply, if
// any. Account first, then admin.
func (b *Bot) gate(ctx context.Context, cmd command, username string) (string, error) {
	if cmd.needsAccount {
		exists, err := b.ledger.Exists(ctx, username)
		if err != nil {
			return "", err //nolint:wrapcheck
		}
		if !exists {
			return msgMustJoin, nil
		}
	}
	if cmd.needsAdmin {
		admin, err := b.ledger.IsAdmin(ctx, username)
		if err != nil {
			return "", err //nolint:wrapcheck
		}
		if !admin {
			return msgAdminDenied, nil
		}
	}
	return "", nil
}

func (b *Bot) say(channel, username, reply string) {
	if err := b.speaker.Say(channel, "@"+username+" "+reply); err != nil {
		b.l.WithError(err).WithField("channel", channel).Error("sending reply")
	}
}

func (b *Bot) stockCommands(_ context.Context, _ string, _ []string) (string, error) {
	return helpMsg(), nil
}

func (b *Bot) addNewUser(ctx context.Context, caller string, _ []string) (string, error) {
	if _, err := b.ledger.RegisterUser(ctx, caller); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return msgAlreadyJoined, nil
		}
		return "", err //nolint:wrapcheck
	}
	return joinMsg(), nil
}

func (b *Bot) fetchAssetPrice(ctx context.Context, _ string, args []string) (string, error) {
	symbol, argErr := symbolArg(args)
	if argErr != "" {
		return argErr, nil
	}
	price, _, err := b.quoter.FetchAssetPrice(ctx, symbol)
	if err != nil {
		if errors.Is(err, domain.ErrSymbolNotFound) {
			return notFoundMsg(symbol), nil
		}
		return "", err //nolint:wrapcheck
	}
	return fmt.Sprintf("%s: $%s", strings.ToUpper(symbol), price.StringFixed(2)), nil
}

func (b *Bot) buyAsset(ctx context.Context, caller string, args []string) (string, error) {
	symbol, argErr := symbolArg(args)
	if argErr != "" {
		return argErr, nil
	}
	shares := parseShares(args)

	receipt, err := b.trader.Buy(ctx, caller, symbol, shares)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSymbolNotFound):
			return notFoundMsg(symbol), nil
		case errors.Is(err, domain.ErrNotEnoughBalance):
			return msgNotEnoughMoney, nil
		}
		return "", err //nolint:wrapcheck
	}
	return fmt.Sprintf(
		"Bought %s share(s) of %s for $%s each. Total purchase: $%s.",
		receipt.Shares.String(),
		strings.ToUpper(receipt.Ticker),
		receipt.Price.StringFixed(2),
		receipt.Total.StringFixed(2),
	), nil
}

func (b *Bot) sellAsset(ctx context.Context, caller string, args []string) (string, error) {
	symbol, argErr := symbolArg(args)
	if argErr != "" {
		return argErr, nil
	}
	shares := parseShares(args)

	receipt, err := b.trader.Sell(ctx, caller, symbol, shares)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnoughShares):
			return msgNotEnoughShares, nil
		case errors.Is(err, domain.ErrSymbolNotFound):
			return notFoundMsg(symbol), nil
		}
		return "", err //nolint:wrapcheck
	}
	return fmt.Sprintf(
		"Sold %s share(s) of %s for $%s each. Total amount sold: $%s.",
		receipt.Shares.String(),
		strings.ToUpper(receipt.Ticker),
		receipt.Price.StringFixed(2),
		receipt.Total.StringFixed(2),
	), nil
}

func (b *Bot) checkCashBalance(ctx context.Context, caller string, _ []string) (string, error) {
	balance, err := b.ledger.AccountBalance(ctx, caller)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	return "Account Balance: $" + balance.StringFixed(2), nil
}

func (b *Bot) bailoutUser(ctx context.Context, caller string, _ []string) (string, error) {
	if err := b.ledger.Bailout(ctx, caller); err != nil {
		return "", err //nolint:wrapcheck
	}
	return msgBailout, nil
}

func (b *Bot) aggregateAssets(ctx context.Context, caller string, _ []string) (string, error) {
	holdings, err := b.ledger.Assets(ctx, caller)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	if len(holdings) == 0 {
		return msgNoAssets, nil
	}
	rows := make([]string, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, fmt.Sprintf("%s: %s share(s)", strings.ToUpper(h.Ticker), h.Shares.String()))
	}
	return strings.Join(rows, " ----- "), nil
}

func (b *Bot) fetchNetWorth(ctx context.Context, caller string, _ []string) (string, error) {
	total, err := b.trader.NetWorth(ctx, caller)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	return fmt.Sprintf("Your networth is $%s!", total.StringFixed(2)), nil
}

func (b *Bot) userHistory(ctx context.Context, caller string, _ []string) (string, error) {
	trades, err := b.ledger.TradeHistory(ctx, caller)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	if len(trades) == 0 {
		return msgNoTrades, nil
	}
	rows := make([]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, fmt.Sprintf(
			"%s: %s share(s) of %s for $%s.",
			t.Type,
			t.Shares.StringFixed(4),
			strings.ToUpper(t.Ticker),
			t.Price.StringFixed(2),
		))
	}
	return strings.Join(rows, " ----- "), nil
}

func (b *Bot) removeUser(ctx context.Context, caller string, _ []string) (string, error) {
	if err := b.ledger.RemoveUser(ctx, caller); err != nil {
		return "", err //nolint:wrapcheck
	}
	return msgRemoved, nil
}

func (b *Bot) adminAddUser(ctx context.Context, _ string, args []string) (string, error) {
	target, argErr := usernameArg(args)
	if argErr != "" {
		return argErr, nil
	}
	if _, err := b.ledger.RegisterUser(ctx, target); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return fmt.Sprintf("User %s has already joined!", target), nil
		}
		return "", err //nolint:wrapcheck
	}
	return fmt.Sprintf("You added user %s.", target), nil
}

func (b *Bot) adminRemoveUser(ctx context.Context, _ string, args []string) (string, error) {
	target, argErr := usernameArg(args)
	if argErr != "" {
		return argErr, nil
	}
	if err := b.ledger.RemoveUser(ctx, target); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Sprintf("User %s doesn't exist.", target), nil
		}
		return "", err //nolint:wrapcheck
	}
	return fmt.Sprintf("You removed user %s.", target), nil
}

// symbolArg validates the ticker argument and normalizes it to the lowercase
// form holdings are keyed by.
func symbolArg(args []string) (string, string) {
	if len(args) == 0 || args[0] == "" {
		return "", msgMissingTicker
	}
	return strings.ToLower(args[0]), ""
}

func usernameArg(args []string) (string, string) {
	if len(args) == 0 || args[0] == "" {
		return "", msgMissingUsername
	}
	return strings.ToLower(args[0]), ""
}

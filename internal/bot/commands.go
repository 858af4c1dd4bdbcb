package bot

import "context"

// keyword is the sealed set of recognized chat commands. Anything outside it
// is ordinary chat noise and stays unanswered.
type keyword string

const (
	cmdHelp        keyword = "!stockcommands"
	cmdJoin        keyword = "!join"
	cmdPrice       keyword = "!price"
	cmdBuy         keyword = "!buy"
	cmdSell        keyword = "!sell"
	cmdBalance     keyword = "!balance"
	cmdBailout     keyword = "!bailout"
	cmdAssets      keyword = "!assets"
	cmdNetWorth    keyword = "!networth"
	cmdHistory     keyword = "!history"
	cmdRemove      keyword = "!remove"
	cmdAdminJoin   keyword = "!admin_join"
	cmdAdminRemove keyword = "!admin_remove"
)

// handlerFunc returns the reply body (sent as "@caller <reply>") or an empty
// string for silence. A returned error is logged and answered generically;
// business rejections are replies, never errors.
type handlerFunc func(ctx context.Context, caller string, args []string) (string, error)

// command pairs a handler with its gate requirements. Checks run in
// account-then-admin order, short-circuiting on the first denial.
type command struct {
	handle       handlerFunc
	needsAccount bool
	needsAdmin   bool
}

func (b *Bot) registry() map[keyword]command {
	return map[keyword]command{
		cmdHelp:        {handle: b.stockCommands},
		cmdJoin:        {handle: b.addNewUser},
		cmdPrice:       {handle: b.fetchAssetPrice},
		cmdBuy:         {handle: b.buyAsset, needsAccount: true},
		cmdSell:        {handle: b.sellAsset, needsAccount: true},
		cmdBalance:     {handle: b.checkCashBalance, needsAccount: true},
		cmdBailout:     {handle: b.bailoutUser, needsAccount: true},
		cmdAssets:      {handle: b.aggregateAssets, needsAccount: true},
		cmdNetWorth:    {handle: b.fetchNetWorth, needsAccount: true},
		cmdHistory:     {handle: b.userHistory, needsAccount: true},
		cmdRemove:      {handle: b.removeUser, needsAccount: true},
		cmdAdminJoin:   {handle: b.adminAddUser, needsAdmin: true},
		cmdAdminRemove: {handle: b.adminRemoveUser, needsAdmin: true},
	}
}

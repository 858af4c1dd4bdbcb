package bot

import (
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/paxosraft/quorumbot/internal/bot/mocks"
	"github.com/paxosraft/quorumbot/internal/domain"
	"github.com/paxosraft/quorumbot/internal/service"
)

const (
	testChannel = "quorum"
	testUser    = "kappa_trader"
)

type BotTestSuite struct {
	suite.Suite
	mockSpeaker *mocks.MockSpeaker
	mockLedger  *mocks.MockLedger
	mockTrader  *mocks.MockTrader
	mockQuoter  *mocks.MockQuoter
	bot         *Bot
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockSpeaker = mocks.NewMockSpeaker(mockCtrl)
	s.mockLedger = mocks.NewMockLedger(mockCtrl)
	s.mockTrader = mocks.NewMockTrader(mockCtrl)
	s.mockQuoter = mocks.NewMockQuoter(mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)

	s.bot = New(s.mockSpeaker, s.mockLedger, s.mockTrader, s.mockQuoter, l)
}

// expectReply pins the exact outbound line, including the @mention prefix.
func (s *BotTestSuite) expectReply(text string) {
	s.mockSpeaker.EXPECT().Say(testChannel, "@"+testUser+" "+text).Return(nil)
}

func (s *BotTestSuite) handle(text string) {
	s.bot.HandleMessage(s.T().Context(), testChannel, testUser, text, false)
}

func (s *BotTestSuite) allowAccount() {
	s.mockLedger.EXPECT().Exists(gomock.Any(), testUser).Return(true, nil)
}

func (s *BotTestSuite) TestIgnoresNoise() {
	// No expectations registered: any call on a mock fails the test.
	s.bot.HandleMessage(s.T().Context(), testChannel, testUser, "!balance", true)
	s.handle("hello chat")
	s.handle("")
	s.handle("!suchacommanddoesnotexist")
}

func (s *BotTestSuite) TestGateRequiresAccount() {
	gated := []string{"!buy tsla", "!sell tsla", "!balance", "!bailout", "!assets", "!networth", "!history", "!remove"}

	for _, cmd := range gated {
		s.Run(cmd, func() {
			s.mockLedger.EXPECT().Exists(gomock.Any(), testUser).Return(false, nil)
			s.expectReply("You must join the brokerage first. Use !join to join.")
			s.handle(cmd)
		})
	}
}

func (s *BotTestSuite) TestGateRequiresAdmin() {
	for _, cmd := range []string{"!admin_join newbie", "!admin_remove newbie"} {
		s.Run(cmd, func() {
			s.mockLedger.EXPECT().IsAdmin(gomock.Any(), testUser).Return(false, nil)
			s.expectReply("You cannot use this command.")
			s.handle(cmd)
		})
	}
}

func (s *BotTestSuite) TestGateFailureAnswersGenerically() {
	s.mockLedger.EXPECT().Exists(gomock.Any(), testUser).Return(false, errors.New("db down"))
	s.expectReply("an error occurred")
	s.handle("!balance")
}

func (s *BotTestSuite) TestJoin() {
	s.Run("ok", func() {
		s.mockLedger.EXPECT().RegisterUser(gomock.Any(), testUser).Return(&domain.User{Name: testUser}, nil)
		s.expectReply("You have joined the Quorum brokerage. Your account is currently at $10000.00")
		s.handle("!join")
	})

	s.Run("already joined", func() {
		s.mockLedger.EXPECT().RegisterUser(gomock.Any(), testUser).Return(nil, domain.ErrDuplicateKey)
		s.expectReply("You've already joined!")
		s.handle("!join")
	})
}

func (s *BotTestSuite) TestPrice() {
	s.Run("ok", func() {
		s.mockQuoter.EXPECT().FetchAssetPrice(gomock.Any(), "tsla").
			Return(decimal.RequireFromString("412.5"), domain.AssetStock, nil)
		s.expectReply("TSLA: $412.50")
		s.handle("!price TSLA")
	})

	s.Run("unknown symbol", func() {
		s.mockQuoter.EXPECT().FetchAssetPrice(gomock.Any(), "zzzz").
			Return(decimal.Zero, domain.AssetClass(""), domain.ErrSymbolNotFound)
		s.expectReply("ZZZZ does not exist.")
		s.handle("!price zzzz")
	})

	s.Run("missing ticker", func() {
		s.expectReply("You must pass in a ticker symbol.")
		s.handle("!price")
	})
}

func (s *BotTestSuite) TestBuy() {
	s.Run("ok", func() {
		s.allowAccount()
		s.mockTrader.EXPECT().Buy(gomock.Any(), testUser, "tsla", decimal.NewFromInt(2)).
			Return(&service.Receipt{
				Ticker: "tsla",
				Shares: decimal.NewFromInt(2),
				Price:  decimal.RequireFromString("10"),
				Total:  decimal.RequireFromString("20"),
				Class:  domain.AssetStock,
			}, nil)
		s.expectReply("Bought 2 share(s) of TSLA for $10.00 each. Total purchase: $20.00.")
		s.handle("!buy tsla 2")
	})

	s.Run("shares default to one", func() {
		s.allowAccount()
		s.mockTrader.EXPECT().Buy(gomock.Any(), testUser, "tsla", decimal.NewFromInt(1)).
			Return(&service.Receipt{
				Ticker: "tsla",
				Shares: decimal.NewFromInt(1),
				Price:  decimal.RequireFromString("10"),
				Total:  decimal.RequireFromString("10"),
				Class:  domain.AssetStock,
			}, nil)
		s.expectReply("Bought 1 share(s) of TSLA for $10.00 each. Total purchase: $10.00.")
		s.handle("!buy tsla garbage")
	})

	s.Run("not enough money", func() {
		s.allowAccount()
		s.mockTrader.EXPECT().Buy(gomock.Any(), testUser, "tsla", decimal.NewFromInt(9000)).
			Return(nil, domain.ErrNotEnoughBalance)
		s.expectReply("You don't have enough money to buy that asset.")
		s.handle("!buy tsla 9000")
	})

	s.Run("unknown symbol", func() {
		s.allowAccount()
		s.mockTrader.EXPECT().Buy(gomock.Any(), testUser, "zzzz", decimal.NewFromInt(1)).
			Return(nil, domain.ErrSymbolNotFound)
		s.expectReply("ZZZZ does not exist.")
		s.handle("!buy zzzz")
	})

	s.Run("missing ticker", func() {
		s.allowAccount()
		s.expectReply("You must pass in a ticker symbol.")
		s.handle("!buy")
	})
}

func (s *BotTestSuite) TestSell() {
	s.Run("ok fractional", func() {
		s.allowAccount()
		s.mockTrader.EXPECT().Sell(gomock.Any(), testUser, "eth", decimal.RequireFromString("0.5")).
			Return(&service.Receipt{
				Ticker: "eth",
				Shares: decimal.RequireFromString("0.5"),
				Price:  decimal.RequireFromString("2000"),
				Total:  decimal.RequireFromString("1000"),
				Class:  domain.AssetCrypto,
			}, nil)
		s.expectReply("Sold 0.5 share(s) of ETH for $2000.00 each. Total amount sold: $1000.00.")
		s.handle("!sell eth 0.5")
	})

	s.Run("not enough shares", func() {
		s.allowAccount()
		s.mockTrader.EXPECT().Sell(gomock.Any(), testUser, "tsla", decimal.NewFromInt(5)).
			Return(nil, domain.ErrNotEnoughShares)
		s.expectReply("You don't own enough shares of that asset.")
		s.handle("!sell tsla 5")
	})
}

func (s *BotTestSuite) TestBalance() {
	s.allowAccount()
	s.mockLedger.EXPECT().AccountBalance(gomock.Any(), testUser).
		Return(decimal.RequireFromString("9980"), nil)
	s.expectReply("Account Balance: $9980.00")
	s.handle("!balance")
}

func (s *BotTestSuite) TestBailout() {
	s.allowAccount()
	s.mockLedger.EXPECT().Bailout(gomock.Any(), testUser).Return(nil)
	s.expectReply("Here's your government stimulus check. Do better next time!")
	s.handle("!bailout")
}

func (s *BotTestSuite) TestAssets() {
	s.Run("empty", func() {
		s.allowAccount()
		s.mockLedger.EXPECT().Assets(gomock.Any(), testUser).Return(nil, nil)
		s.expectReply("You don't own any assets yet.")
		s.handle("!assets")
	})

	s.Run("list", func() {
		s.allowAccount()
		s.mockLedger.EXPECT().Assets(gomock.Any(), testUser).Return([]domain.Holding{
			{Ticker: "btc", Shares: decimal.RequireFromString("0.25"), Class: domain.AssetCrypto},
			{Ticker: "tsla", Shares: decimal.NewFromInt(2), Class: domain.AssetStock},
		}, nil)
		s.expectReply("BTC: 0.25 share(s) ----- TSLA: 2 share(s)")
		s.handle("!assets")
	})
}

func (s *BotTestSuite) TestNetWorth() {
	s.allowAccount()
	s.mockTrader.EXPECT().NetWorth(gomock.Any(), testUser).
		Return(decimal.RequireFromString("10010"), nil)
	s.expectReply("Your networth is $10010.00!")
	s.handle("!networth")
}

func (s *BotTestSuite) TestHistory() {
	s.Run("empty", func() {
		s.allowAccount()
		s.mockLedger.EXPECT().TradeHistory(gomock.Any(), testUser).Return(nil, nil)
		s.expectReply("You haven't made any trades yet.")
		s.handle("!history")
	})

	s.Run("list", func() {
		s.allowAccount()
		s.mockLedger.EXPECT().TradeHistory(gomock.Any(), testUser).Return([]domain.Trade{
			{Ticker: "tsla", Shares: decimal.NewFromInt(2), Price: decimal.NewFromInt(10), Type: domain.TradeBuy},
			{Ticker: "tsla", Shares: decimal.NewFromInt(2), Price: decimal.NewFromInt(15), Type: domain.TradeSell},
		}, nil)
		s.expectReply("buy: 2.0000 share(s) of TSLA for $10.00. ----- sell: 2.0000 share(s) of TSLA for $15.00.")
		s.handle("!history")
	})

	s.Run("tiny crypto positions stay visible", func() {
		s.allowAccount()
		s.mockLedger.EXPECT().TradeHistory(gomock.Any(), testUser).Return([]domain.Trade{
			{Ticker: "btc", Shares: decimal.RequireFromString("0.005"), Price: decimal.NewFromInt(60000), Type: domain.TradeBuy},
		}, nil)
		s.expectReply("buy: 0.0050 share(s) of BTC for $60000.00.")
		s.handle("!history")
	})
}

func (s *BotTestSuite) TestRemove() {
	s.allowAccount()
	s.mockLedger.EXPECT().RemoveUser(gomock.Any(), testUser).Return(nil)
	s.expectReply("You have been removed from the brokerage.")
	s.handle("!remove")
}

func (s *BotTestSuite) TestAdminJoin() {
	allowAdmin := func() {
		s.mockLedger.EXPECT().IsAdmin(gomock.Any(), testUser).Return(true, nil)
	}

	s.Run("ok", func() {
		allowAdmin()
		s.mockLedger.EXPECT().RegisterUser(gomock.Any(), "newbie").Return(&domain.User{Name: "newbie"}, nil)
		s.expectReply("You added user newbie.")
		s.handle("!admin_join Newbie")
	})

	s.Run("already joined", func() {
		allowAdmin()
		s.mockLedger.EXPECT().RegisterUser(gomock.Any(), "newbie").Return(nil, domain.ErrDuplicateKey)
		s.expectReply("User newbie has already joined!")
		s.handle("!admin_join newbie")
	})

	s.Run("missing username", func() {
		allowAdmin()
		s.expectReply("You must pass in a username.")
		s.handle("!admin_join")
	})
}

func (s *BotTestSuite) TestAdminRemove() {
	allowAdmin := func() {
		s.mockLedger.EXPECT().IsAdmin(gomock.Any(), testUser).Return(true, nil)
	}

	s.Run("ok", func() {
		allowAdmin()
		s.mockLedger.EXPECT().RemoveUser(gomock.Any(), "newbie").Return(nil)
		s.expectReply("You removed user newbie.")
		s.handle("!admin_remove newbie")
	})

	s.Run("unknown user", func() {
		allowAdmin()
		s.mockLedger.EXPECT().RemoveUser(gomock.Any(), "ghost").Return(domain.ErrRecordNotFound)
		s.expectReply("User ghost doesn't exist.")
		s.handle("!admin_remove ghost")
	})
}

func (s *BotTestSuite) TestHandlerFailureAnswersGenerically() {
	s.allowAccount()
	s.mockLedger.EXPECT().AccountBalance(gomock.Any(), testUser).
		Return(decimal.Zero, errors.New("db down"))
	s.expectReply("an error occurred")
	s.handle("!balance")
}

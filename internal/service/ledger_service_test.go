package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/paxosraft/quorumbot/internal/domain"
	"github.com/paxosraft/quorumbot/internal/repository/repoargs"
	"github.com/paxosraft/quorumbot/internal/service/mocks"
	"github.com/paxosraft/quorumbot/pkg/uow"
	uowmocks "github.com/paxosraft/quorumbot/pkg/uow/mocks"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockUserRepo    *mocks.MockUserRepository
	mockAccountRepo *mocks.MockAccountRepository
	mockHoldingRepo *mocks.MockHoldingRepository
	mockTradeRepo   *mocks.MockTradeRepository
	ledger          *LedgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(mockCtrl)
	s.mockHoldingRepo = mocks.NewMockHoldingRepository(mockCtrl)
	s.mockTradeRepo = mocks.NewMockTradeRepository(mockCtrl)

	// Repository lookups resolved during service construction.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.HoldingRepoName)).
		Return(s.mockHoldingRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TradeRepoName)).
		Return(s.mockTradeRepo, nil).AnyTimes()

	// Transaction-bound lookups share the same mocks.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.HoldingRepoName)).
		Return(s.mockHoldingRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TradeRepoName)).
		Return(s.mockTradeRepo, nil).AnyTimes()

	// Do executes its callback against the mocked transaction; a callback
	// error surfaces unchanged, mirroring a rollback.
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	ledger, err := NewLedgerService(s.mockUOW)
	s.Require().NoError(err)
	s.ledger = ledger
}

func (s *LedgerServiceTestSuite) TestRegisterUser() {
	s.Run("ok", func() {
		created := &domain.User{ID: 1, Name: "alice"}
		s.mockUserRepo.EXPECT().Create(gomock.Any(), "alice").Return(created, nil)
		s.mockAccountRepo.EXPECT().Create(gomock.Any(), "alice").
			Return(&domain.Account{ID: 1, Username: "alice", Balance: StartingBalance}, nil)

		user, err := s.ledger.RegisterUser(s.T().Context(), "alice")
		s.Require().NoError(err)
		s.Equal(created, user)
	})

	s.Run("duplicate name", func() {
		s.mockUserRepo.EXPECT().Create(gomock.Any(), "bob").Return(nil, domain.ErrDuplicateKey)

		user, err := s.ledger.RegisterUser(s.T().Context(), "bob")
		s.Require().ErrorIs(err, domain.ErrDuplicateKey)
		s.Nil(user)
	})
}

func (s *LedgerServiceTestSuite) TestBailout() {
	s.Run("delete then recreate", func() {
		gomock.InOrder(
			s.mockUserRepo.EXPECT().Delete(gomock.Any(), "alice").Return(nil),
			s.mockUserRepo.EXPECT().Create(gomock.Any(), "alice").
				Return(&domain.User{ID: 1, Name: "alice"}, nil),
			s.mockAccountRepo.EXPECT().Create(gomock.Any(), "alice").
				Return(&domain.Account{ID: 2, Username: "alice", Balance: StartingBalance}, nil),
		)

		s.Require().NoError(s.ledger.Bailout(s.T().Context(), "alice"))
	})

	s.Run("delete failure aborts", func() {
		s.mockUserRepo.EXPECT().Delete(gomock.Any(), "ghost").Return(domain.ErrRecordNotFound)

		err := s.ledger.Bailout(s.T().Context(), "ghost")
		s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	})
}

func (s *LedgerServiceTestSuite) TestRemoveUser() {
	s.mockUserRepo.EXPECT().Delete(gomock.Any(), "alice").Return(nil)
	s.Require().NoError(s.ledger.RemoveUser(s.T().Context(), "alice"))

	s.mockUserRepo.EXPECT().Delete(gomock.Any(), "ghost").Return(domain.ErrRecordNotFound)
	s.Require().ErrorIs(s.ledger.RemoveUser(s.T().Context(), "ghost"), domain.ErrRecordNotFound)
}

func (s *LedgerServiceTestSuite) TestExecuteBuy() {
	price := decimal.RequireFromString("10.00")
	shares := decimal.NewFromInt(2)
	cost := price.Mul(shares)

	s.Run("ok", func() {
		gomock.InOrder(
			s.mockAccountRepo.EXPECT().BalanceForUpdate(gomock.Any(), "alice").
				Return(decimal.RequireFromString("10000.00"), nil),
			s.mockHoldingRepo.EXPECT().Add(gomock.Any(), repoargs.HoldingAdd{
				Username: "alice",
				Ticker:   "tsla",
				Shares:   shares,
				Class:    domain.AssetStock,
			}).Return(nil),
			s.mockTradeRepo.EXPECT().Create(gomock.Any(), repoargs.TradeCreate{
				Username: "alice",
				Ticker:   "tsla",
				Shares:   shares,
				Price:    price,
				Type:     domain.TradeBuy,
				Class:    domain.AssetStock,
			}).Return(&domain.Trade{ID: 1}, nil),
			s.mockAccountRepo.EXPECT().Adjust(gomock.Any(), "alice", cost.Neg()).Return(nil),
		)

		err := s.ledger.ExecuteBuy(s.T().Context(), "alice", "tsla", price, shares, domain.AssetStock)
		s.Require().NoError(err)
	})

	s.Run("balance shrank under the lock", func() {
		s.mockAccountRepo.EXPECT().BalanceForUpdate(gomock.Any(), "bob").
			Return(decimal.RequireFromString("5.00"), nil)

		err := s.ledger.ExecuteBuy(s.T().Context(), "bob", "tsla", price, shares, domain.AssetStock)
		s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
	})

	s.Run("trade insert failure surfaces", func() {
		dbErr := errors.New("insert failed")
		s.mockAccountRepo.EXPECT().BalanceForUpdate(gomock.Any(), "carol").
			Return(decimal.RequireFromString("10000.00"), nil)
		s.mockHoldingRepo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
		s.mockTradeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		err := s.ledger.ExecuteBuy(s.T().Context(), "carol", "tsla", price, shares, domain.AssetStock)
		s.Require().ErrorIs(err, dbErr)
	})
}

func (s *LedgerServiceTestSuite) TestExecuteSell() {
	price := decimal.RequireFromString("15.00")
	shares := decimal.NewFromInt(2)
	proceeds := price.Mul(shares)

	s.Run("partial position survives", func() {
		gomock.InOrder(
			s.mockHoldingRepo.EXPECT().GetForUpdate(gomock.Any(), "alice", "tsla").
				Return(&domain.Holding{
					Username: "alice",
					Ticker:   "tsla",
					Shares:   decimal.NewFromInt(5),
					Class:    domain.AssetStock,
				}, nil),
			s.mockHoldingRepo.EXPECT().Deduct(gomock.Any(), repoargs.HoldingDeduct{
				Username: "alice",
				Ticker:   "tsla",
				Shares:   shares,
			}).Return(decimal.NewFromInt(3), nil),
			s.mockTradeRepo.EXPECT().Create(gomock.Any(), repoargs.TradeCreate{
				Username: "alice",
				Ticker:   "tsla",
				Shares:   shares,
				Price:    price,
				Type:     domain.TradeSell,
				Class:    domain.AssetStock,
			}).Return(&domain.Trade{ID: 2}, nil),
			s.mockAccountRepo.EXPECT().Adjust(gomock.Any(), "alice", proceeds).Return(nil),
		)

		err := s.ledger.ExecuteSell(s.T().Context(), "alice", "tsla", price, shares)
		s.Require().NoError(err)
	})

	s.Run("zero balance prunes the holding", func() {
		s.mockHoldingRepo.EXPECT().GetForUpdate(gomock.Any(), "bob", "eth").
			Return(&domain.Holding{
				Username: "bob",
				Ticker:   "eth",
				Shares:   shares,
				Class:    domain.AssetCrypto,
			}, nil)
		s.mockHoldingRepo.EXPECT().Deduct(gomock.Any(), gomock.Any()).Return(decimal.Zero, nil)
		s.mockTradeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Trade{ID: 3}, nil)
		s.mockAccountRepo.EXPECT().Adjust(gomock.Any(), "bob", proceeds).Return(nil)
		s.mockHoldingRepo.EXPECT().Delete(gomock.Any(), "bob", "eth").Return(nil)

		err := s.ledger.ExecuteSell(s.T().Context(), "bob", "eth", price, shares)
		s.Require().NoError(err)
	})

	s.Run("credit failure surfaces", func() {
		dbErr := errors.New("update failed")
		s.mockHoldingRepo.EXPECT().GetForUpdate(gomock.Any(), "erin", "tsla").
			Return(&domain.Holding{
				Username: "erin",
				Ticker:   "tsla",
				Shares:   decimal.NewFromInt(5),
				Class:    domain.AssetStock,
			}, nil)
		s.mockHoldingRepo.EXPECT().Deduct(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(3), nil)
		s.mockTradeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Trade{ID: 4}, nil)
		s.mockAccountRepo.EXPECT().Adjust(gomock.Any(), "erin", proceeds).Return(dbErr)

		err := s.ledger.ExecuteSell(s.T().Context(), "erin", "tsla", price, shares)
		s.Require().ErrorIs(err, dbErr)
	})

	s.Run("no position", func() {
		s.mockHoldingRepo.EXPECT().GetForUpdate(gomock.Any(), "carol", "tsla").
			Return(nil, domain.ErrRecordNotFound)

		err := s.ledger.ExecuteSell(s.T().Context(), "carol", "tsla", price, shares)
		s.Require().ErrorIs(err, domain.ErrNotEnoughShares)
	})

	s.Run("position shrank under the lock", func() {
		s.mockHoldingRepo.EXPECT().GetForUpdate(gomock.Any(), "dave", "tsla").
			Return(&domain.Holding{
				Username: "dave",
				Ticker:   "tsla",
				Shares:   decimal.NewFromInt(1),
				Class:    domain.AssetStock,
			}, nil)

		err := s.ledger.ExecuteSell(s.T().Context(), "dave", "tsla", price, shares)
		s.Require().ErrorIs(err, domain.ErrNotEnoughShares)
	})
}

func (s *LedgerServiceTestSuite) TestStats() {
	s.mockUserRepo.EXPECT().Count(gomock.Any()).Return(int64(7), nil)
	s.mockTradeRepo.EXPECT().Count(gomock.Any()).Return(int64(42), nil)

	stats, err := s.ledger.Stats(s.T().Context())
	s.Require().NoError(err)
	s.Equal(&domain.Stats{Users: 7, Trades: 42}, stats)
}

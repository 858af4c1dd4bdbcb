package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paxosraft/quorumbot/internal/domain"
	"github.com/paxosraft/quorumbot/internal/repository/repoargs"
	"github.com/paxosraft/quorumbot/pkg/uow"
)

// StartingBalance is the cash every account opens with. Must match the
// accounts schema default.
var StartingBalance = decimal.RequireFromString("10000.00")

// LedgerService owns every mutation of users, accounts, holdings and trades.
// Each multi-row operation runs inside one uow transaction: either all of its
// writes commit, or none do.
type LedgerService struct {
	uow         uow.UOW
	userRepo    UserRepository
	accountRepo AccountRepository
	holdingRepo HoldingRepository
	tradeRepo   TradeRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	userRepo, userErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userErr != nil {
		return nil, userErr
	}
	accountRepo, accErr := uow.GetRepositoryAs[AccountRepository](u, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, accErr
	}
	holdingRepo, holdErr := uow.GetRepositoryAs[HoldingRepository](u, uow.RepositoryName(repoargs.HoldingRepoName))
	if holdErr != nil {
		return nil, holdErr
	}
	tradeRepo, tradeErr := uow.GetRepositoryAs[TradeRepository](u, uow.RepositoryName(repoargs.TradeRepoName))
	if tradeErr != nil {
		return nil, tradeErr
	}
	return &LedgerService{
		uow:         u,
		userRepo:    userRepo,
		accountRepo: accountRepo,
		holdingRepo: holdingRepo,
		tradeRepo:   tradeRepo,
	}, nil
}

// RegisterUser atomically creates the user and its cash account. Returns
// domain.ErrDuplicateKey when the name is already registered; the store is
// the source of truth for uniqueness even if callers pre-check.
func (s *LedgerService) RegisterUser(ctx context.Context, name string) (*domain.User, error) {
	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		if err := s.createUserAndAccount(c, tx, name, &user); err != nil {
			return err //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("registering user: %w", txErr)
	}
	return user, nil
}

// RemoveUser deletes the user row; account and holdings go with it via the
// schema's cascade. Trade history is deliberately retained.
func (s *LedgerService) RemoveUser(ctx context.Context, name string) error {
	if err := s.userRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("removing user: %w", err)
	}
	return nil
}

// Bailout resets the account by deleting and recreating the user in a single
// transaction, so a crash between the two steps cannot leave the caller
// without an account.
func (s *LedgerService) Bailout(ctx context.Context, name string) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		users, usersErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if usersErr != nil {
			return usersErr //nolint:wrapcheck
		}
		if err := users.Delete(c, name); err != nil {
			return err //nolint:wrapcheck
		}
		var user *domain.User
		return s.createUserAndAccount(c, tx, name, &user)
	})
	if txErr != nil {
		return fmt.Errorf("bailing out user: %w", txErr)
	}
	return nil
}

func (s *LedgerService) createUserAndAccount(ctx context.Context, tx uow.TX, name string, out **domain.User) error {
	users, usersErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if usersErr != nil {
		return usersErr //nolint:wrapcheck
	}
	accounts, accountsErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accountsErr != nil {
		return accountsErr //nolint:wrapcheck
	}

	user, userErr := users.Create(ctx, name)
	if userErr != nil {
		return userErr //nolint:wrapcheck
	}
	if _, accErr := accounts.Create(ctx, name); accErr != nil {
		return accErr //nolint:wrapcheck
	}
	*out = user
	return nil
}

func (s *LedgerService) AccountBalance(ctx context.Context, username string) (decimal.Decimal, error) {
	return s.accountRepo.Balance(ctx, username) //nolint:wrapcheck
}

func (s *LedgerService) OwnedShares(ctx context.Context, username, ticker string) (decimal.Decimal, error) {
	return s.holdingRepo.SharesOf(ctx, username, ticker) //nolint:wrapcheck
}

func (s *LedgerService) Assets(ctx context.Context, username string) ([]domain.Holding, error) {
	return s.holdingRepo.ListByUser(ctx, username) //nolint:wrapcheck
}

func (s *LedgerService) TradeHistory(ctx context.Context, username string) ([]domain.Trade, error) {
	return s.tradeRepo.ListByUser(ctx, username) //nolint:wrapcheck
}

func (s *LedgerService) IsAdmin(ctx context.Context, username string) (bool, error) {
	return s.userRepo.IsAdmin(ctx, username) //nolint:wrapcheck
}

func (s *LedgerService) Exists(ctx context.Context, username string) (bool, error) {
	return s.userRepo.Exists(ctx, username) //nolint:wrapcheck
}

// ExecuteBuy runs the three writes of a purchase in one transaction: upsert
// the holding, append the trade, debit the account. The balance is re-checked
// under a row lock inside the transaction, so two concurrent buys cannot both
// spend the same cash (the handler's earlier affordability check is only a
// fast path for a friendly reply).
func (s *LedgerService) ExecuteBuy(
	ctx context.Context,
	username, ticker string,
	price, shares decimal.Decimal,
	class domain.AssetClass,
) error {
	cost := price.Mul(shares)
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accounts, holdings, trades, reposErr := tradeRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		balance, balanceErr := accounts.BalanceForUpdate(c, username)
		if balanceErr != nil {
			return balanceErr //nolint:wrapcheck
		}
		if balance.LessThan(cost) {
			return domain.ErrNotEnoughBalance
		}

		if err := holdings.Add(c, repoargs.HoldingAdd{
			Username: username,
			Ticker:   ticker,
			Shares:   shares,
			Class:    class,
		}); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := trades.Create(c, repoargs.TradeCreate{
			Username: username,
			Ticker:   ticker,
			Shares:   shares,
			Price:    price,
			Type:     domain.TradeBuy,
			Class:    class,
		}); err != nil {
			return err //nolint:wrapcheck
		}
		return accounts.Adjust(c, username, cost.Neg()) //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("executing buy: %w", txErr)
	}
	return nil
}

// ExecuteSell runs the writes of a sale in one transaction: decrement the
// holding, append the trade, credit the account, and prune the holding row
// when it reaches exactly zero. Ownership is re-checked under a row lock.
func (s *LedgerService) ExecuteSell(
	ctx context.Context,
	username, ticker string,
	price, shares decimal.Decimal,
) error {
	proceeds := price.Mul(shares)
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accounts, holdings, trades, reposErr := tradeRepos(tx)
		if reposErr != nil {
			return reposErr
		}

		holding, holdingErr := holdings.GetForUpdate(c, username, ticker)
		if holdingErr != nil {
			if errors.Is(holdingErr, domain.ErrRecordNotFound) {
				return domain.ErrNotEnoughShares
			}
			return holdingErr //nolint:wrapcheck
		}
		if holding.Shares.LessThan(shares) {
			return domain.ErrNotEnoughShares
		}

		remaining, deductErr := holdings.Deduct(c, repoargs.HoldingDeduct{
			Username: username,
			Ticker:   ticker,
			Shares:   shares,
		})
		if deductErr != nil {
			return deductErr //nolint:wrapcheck
		}
		if _, err := trades.Create(c, repoargs.TradeCreate{
			Username: username,
			Ticker:   ticker,
			Shares:   shares,
			Price:    price,
			Type:     domain.TradeSell,
			Class:    holding.Class,
		}); err != nil {
			return err //nolint:wrapcheck
		}
		if err := accounts.Adjust(c, username, proceeds); err != nil {
			return err //nolint:wrapcheck
		}
		if remaining.IsZero() {
			return holdings.Delete(c, username, ticker) //nolint:wrapcheck
		}
		return nil
	})
	if txErr != nil {
		return fmt.Errorf("executing sell: %w", txErr)
	}
	return nil
}

// Stats returns aggregate counters for the ops endpoint.
func (s *LedgerService) Stats(ctx context.Context) (*domain.Stats, error) {
	users, usersErr := s.userRepo.Count(ctx)
	if usersErr != nil {
		return nil, fmt.Errorf("collecting stats: %w", usersErr)
	}
	trades, tradesErr := s.tradeRepo.Count(ctx)
	if tradesErr != nil {
		return nil, fmt.Errorf("collecting stats: %w", tradesErr)
	}
	return &domain.Stats{Users: users, Trades: trades}, nil
}

func tradeRepos(tx uow.TX) (AccountRepository, HoldingRepository, TradeRepository, error) {
	accounts, accErr := uow.GetAs[AccountRepository](tx, uow.RepositoryName(repoargs.AccountRepoName))
	if accErr != nil {
		return nil, nil, nil, accErr //nolint:wrapcheck
	}
	holdings, holdErr := uow.GetAs[HoldingRepository](tx, uow.RepositoryName(repoargs.HoldingRepoName))
	if holdErr != nil {
		return nil, nil, nil, holdErr //nolint:wrapcheck
	}
	trades, tradeErr := uow.GetAs[TradeRepository](tx, uow.RepositoryName(repoargs.TradeRepoName))
	if tradeErr != nil {
		return nil, nil, nil, tradeErr //nolint:wrapcheck
	}
	return accounts, holdings, trades, nil
}

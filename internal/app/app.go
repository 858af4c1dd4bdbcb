// Package app wires the process together: database, unit of work, services,
// quote client, chat transport, bot, and the ops endpoint. Everything is
// constructed here and passed down explicitly; there are no package-level
// singletons.
package app

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive

	"github.com/paxosraft/quorumbot/internal/bot"
	"github.com/paxosraft/quorumbot/internal/config"
	"github.com/paxosraft/quorumbot/internal/ops"
	"github.com/paxosraft/quorumbot/internal/quote"
	"github.com/paxosraft/quorumbot/internal/repository/pgrepo"
	"github.com/paxosraft/quorumbot/internal/repository/repoargs"
	"github.com/paxosraft/quorumbot/internal/service"
	"github.com/paxosraft/quorumbot/internal/twitch"
	"github.com/paxosraft/quorumbot/pkg/uow"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting quorumbot for channel %s", a.Config.Channel)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	quoter := quote.New(a.Config.QuoteAPIURL, a.Config.QuoteAPIToken)

	services, sErr := service.Factory(unitOfWork, quoter)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	chat := twitch.New(twitch.Config{
		ServerURL: a.Config.ChatServerURL,
		Username:  a.Config.BotUsername,
		Token:     a.Config.BotToken,
		Channel:   a.Config.Channel,
	}, a.Logger)

	stockBot := bot.New(chat, services.Ledger, services.Trader, quoter, a.Logger)

	router := ops.New(ops.RouterArgs{
		Logger: a.Logger,
		DB:     conn,
		Stats:  services.Ledger,
	})

	errChan := make(chan error, 2)

	go func() {
		if runErr := router.Run(a.Config.OpsAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	go func() {
		if runErr := chat.Run(notifyCtx); runErr != nil && notifyCtx.Err() == nil {
			errChan <- runErr
		}
	}()

	go dispatchMessages(notifyCtx, chat, stockBot)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// dispatchMessages fans inbound chat lines out to the bot. Each message is
// handled on its own goroutine: one slow oracle lookup must not hold up the
// rest of the room.
func dispatchMessages(ctx context.Context, chat *twitch.Client, stockBot *bot.Bot) {
	var wg sync.WaitGroup
	for msg := range chat.Messages() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stockBot.HandleMessage(ctx, msg.Channel, msg.Username, msg.Text, msg.Self)
		}()
	}
	wg.Wait()
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) },
		repoargs.AccountRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewAccountRepository(dbtx) },
		repoargs.HoldingRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewHoldingRepository(dbtx) },
		repoargs.TradeRepoName:   func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewTradeRepository(dbtx) },
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}

// Package pgrepo implements the ledger's repositories over pgx/v5. All rows
// the brokerage owns (users, accounts, holdings, trades) are read and written
// exclusively through this package.
package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

const (
	connectMaxAttempts  = 30
	connectRetryBackoff = 3 * time.Second
)

// Connect establishes the pgx pool, retrying while the database comes up, and
// applies pending schema migrations before handing the pool back.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var attempts uint

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err() //nolint:wrapcheck
		default:
		}

		conn, connErr := newPostgresConnection(ctx, dsn)
		if connErr == nil {
			pool = conn
			break
		}
		attempts++
		if attempts >= connectMaxAttempts {
			return nil, fmt.Errorf("init postgres connection after %d attempts: %w", connectMaxAttempts, connErr)
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", fmt.Sprintf("#%d / %d", attempts, connectMaxAttempts)).
			Warnf("init postgres connection error, retrying in %.f seconds", connectRetryBackoff.Seconds())
		time.Sleep(connectRetryBackoff)
	}

	if err := postgresMigrate(migrationsDir, dsn); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, fmt.Errorf("parse postgres config: %s", confErr.Error())
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, fmt.Errorf("failed to create pool: %s", poolErr.Error())
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %s", pingErr.Error())
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return fmt.Errorf("failed to create migrate instance: %w", mErr)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

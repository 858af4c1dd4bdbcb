// Package uow is a small unit-of-work over pgxpool: repositories register a
// factory once, and Do runs a function whose repositories all share a single
// transaction that commits or rolls back as one.
package uow

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

type UnitOfWork struct {
	conn         TxBeginner
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(conn TxBeginner) *UnitOfWork {
	return &UnitOfWork{
		conn:         conn,
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
}

// Register records a repository factory under name. Registering the same name
// twice returns ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	u.repositories[name] = factory
	return nil
}

// Do runs fn inside a database transaction. Every repository obtained from
// the TX passed to fn shares that transaction; an error from fn rolls the
// whole thing back.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, pgx.TxOptions{})
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			if err == nil {
				err = rollbackErr
			} else {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	if fnErr := fn(ctx, NewTransaction(tx, u.repositories)); fnErr != nil {
		return fnErr
	}
	err = tx.Commit(ctx)
	return
}

// GetRepository returns a pool-backed repository or ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if factory, ok := u.repositories[name]; ok {
		return factory(u.conn), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetRepositoryAs returns the repository registered under name cast to T.
// Returns ErrRepositoryNotRegistered or ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)
	if !ok {
		return res, ErrInvalidRepositoryType
	}
	return r, nil
}

package uow

import (
	"github.com/jackc/pgx/v5"
)

type Transaction struct {
	repositories map[RepositoryName]RepositoryFactory
	tx           pgx.Tx
}

func NewTransaction(tx pgx.Tx, repositories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		repositories: repositories,
		tx:           tx,
	}
}

// Get returns a repository bound to this transaction, or ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if factory, ok := t.repositories[name]; ok {
		return factory(t.tx), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetAs returns the repository registered under name, bound to the given
// transaction and cast to T.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var res T
	repo, err := t.Get(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, ErrInvalidRepositoryType
	}
	return res, nil
}

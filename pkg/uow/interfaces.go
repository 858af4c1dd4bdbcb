package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TX hands out repositories bound to one database transaction.
type TX interface {
	Get(name RepositoryName) (Repository, error)
}

// DBTX is the query surface shared by pgxpool.Pool and pgx.Tx, so the same
// repository factory can serve pooled and transactional callers.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// TxBeginner is the slice of pgxpool.Pool the unit of work needs: pooled
// queries plus the ability to open a transaction.
type TxBeginner interface {
	DBTX
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	GetRepository(name RepositoryName) (Repository, error)
}

package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/paxosraft/quorumbot/internal/domain"
)

const (
	uniqueViolationCode = "23505"
)

// convertErr normalizes a driver error into the repository layer's shape:
// a `[repository/<op>]` prefix, a domain sentinel the caller can errors.Is
// against, and the original message.
//   - pgx.ErrNoRows becomes domain.ErrRecordNotFound.
//   - unique-constraint violations become domain.ErrDuplicateKey.
//   - anything else becomes domain.ErrUnknown.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		if isUniqueViolationErr(pgErr) {
			errType = domain.ErrDuplicateKey
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}

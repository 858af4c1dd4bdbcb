package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/paxosraft/quorumbot/internal/domain"
	"github.com/paxosraft/quorumbot/pkg/uow"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user row. Returns domain.ErrDuplicateKey when the name
// is already registered.
func (r *UserRepository) Create(ctx context.Context, name string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (name)
		VALUES ($1)
		RETURNING name, id, is_admin, created_at, updated_at
	`, name)

	var u domain.User
	if err := row.Scan(&u.Name, &u.ID, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, convertErr(err, "creating user %s", name)
	}
	return &u, nil
}

// Delete removes the user row; accounts and holdings cascade at the schema
// level. Returns domain.ErrRecordNotFound when no row matched.
func (r *UserRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE name = $1`, name)
	if err != nil {
		return convertErr(err, "deleting user %s", name)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting user %s", name)
	}
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking user %s exists", name)
	}
	return exists, nil
}

// IsAdmin reports whether the user's row carries the admin flag. An unknown
// name is simply not an admin.
func (r *UserRepository) IsAdmin(ctx context.Context, name string) (bool, error) {
	var isAdmin bool
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE((SELECT is_admin FROM users WHERE name = $1), false)
	`, name).Scan(&isAdmin)
	if err != nil {
		return false, convertErr(err, "checking user %s is admin", name)
	}
	return isAdmin, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting users")
	}
	return count, nil
}

package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// PostgresAccountRepository stores accounts in the accounts table.
type PostgresAccountRepository struct {
	db *sql.DB
}

// ensure PostgresAccountRepository satisfies Repository.
var _ Repository = (*PostgresAccountRepository)(nil)

func NewPostgresAccountRepository(db *sql.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// EnsureSchema creates the accounts table when missing.
func (r *PostgresAccountRepository) EnsureSchema(ctx context.Context) error {
	const query = `CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`
	_, err := r.db.ExecContext(ctx, query)
	return err
}

// Add inserts the account and returns it with its generated id.
func (r *PostgresAccountRepository) Add(ctx context.Context, cmd EncodedAccountCommand) (*Account, error) {
	const query = `INSERT INTO accounts (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	acc := newAccount(cmd)
	_, err := r.db.ExecContext(ctx, query, string(acc.ID), acc.Name, acc.Email, acc.Password, acc.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrExistingEmail
		}
		return nil, err
	}
	return acc, nil
}

// FindByEmail fetches an account by email.
func (r *PostgresAccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM accounts WHERE email = $1`

	var acc Account
	var id string
	row := r.db.QueryRowContext(ctx, query, email)
	if err := row.Scan(&id, &acc.Name, &acc.Email, &acc.Password, &acc.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	acc.ID = ID(id)
	return &acc, nil
}

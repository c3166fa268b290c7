package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrEmailTaken = errors.New("email taken")

const userColumns = `id, first_name, last_name, email, password, balance, role, created_at`

func (s *Store) CreateUser(ctx context.Context, firstName, lastName, email, password, role string) (string, error) {
	id := NewID()
	_, err := s.Pool.Exec(ctx, `INSERT INTO users (id, first_name, last_name, email, password, role) VALUES ($1,$2,$3,$4,$5,$6)`,
		id, firstName, lastName, email, password, role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// EnsureUser inserts a user unless the email is already registered. Used for
// seeding the admin and bookmaker accounts at startup.
func (s *Store) EnsureUser(ctx context.Context, firstName, lastName, email, password, role string) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO users (id, first_name, last_name, email, password, role) VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (email) DO NOTHING`,
		NewID(), firstName, lastName, email, password, role)
	return err
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*User, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *Store) GetUserBalance(ctx context.Context, id string) (int64, error) {
	var bal int64
	if err := s.Pool.QueryRow(ctx, `SELECT balance FROM users WHERE id = $1`, id).Scan(&bal); err != nil {
		return 0, mapNotFound(err)
	}
	return bal, nil
}

// IncreaseBalance credits amount to the user's balance as a relative update
// evaluated by the store, so concurrent credits compose.
func (s *Store) IncreaseBalance(ctx context.Context, id string, amount int64) error {
	tag, err := s.Pool.Exec(ctx, `UPDATE users SET balance = balance + $1 WHERE id = $2`, amount, id)
	if err != nil {
		return fmt.Errorf("increase balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.Balance, &u.Role, &u.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &u, nil
}

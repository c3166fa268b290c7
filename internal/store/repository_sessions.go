package store

import (
	"context"
	"fmt"
	"time"
)

func (s *Store) CreateSession(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token := NewID()
	_, err := s.Pool.Exec(ctx, `INSERT INTO sessions (token, user_id, expires_at) VALUES ($1,$2,$3)`,
		token, userID, time.Now().Add(ttl))
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// GetSessionUser resolves a live session token to its user. Expired tokens
// report ErrNotFound.
func (s *Store) GetSessionUser(ctx context.Context, token string) (*User, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT u.id, u.first_name, u.last_name, u.email, u.password, u.balance, u.role, u.created_at
		FROM sessions s JOIN users u ON s.user_id = u.id
		WHERE s.token = $1 AND s.expires_at > now()`, token)
	return scanUser(row)
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	_, err := s.Pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

// DeleteExpiredSessions is housekeeping; safe to call from a ticker.
func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

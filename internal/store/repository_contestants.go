package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

func (s *Store) AddContestant(ctx context.Context, raceID, horseName string, coefficient float64) (string, error) {
	id := NewID()
	_, err := s.Pool.Exec(ctx, `INSERT INTO contestants (id, race_id, horse_name, coefficient) VALUES ($1,$2,$3,$4)`,
		id, raceID, horseName, coefficient)
	if err != nil {
		return "", fmt.Errorf("add contestant: %w", err)
	}
	return id, nil
}

func (s *Store) ListContestantsByRace(ctx context.Context, raceID string) ([]Contestant, error) {
	return s.listContestants(ctx, `SELECT id, race_id, horse_name, coefficient, position, created_at FROM contestants WHERE race_id = $1 ORDER BY horse_name`, raceID)
}

// ListUnresultedContestants returns the race's contestants whose finishing
// position is still unknown.
func (s *Store) ListUnresultedContestants(ctx context.Context, raceID string) ([]Contestant, error) {
	return s.listContestants(ctx, `SELECT id, race_id, horse_name, coefficient, position, created_at FROM contestants WHERE race_id = $1 AND position IS NULL ORDER BY horse_name`, raceID)
}

func (s *Store) listContestants(ctx context.Context, query string, raceID string) ([]Contestant, error) {
	rows, err := s.Pool.Query(ctx, query, raceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Contestant{}
	for rows.Next() {
		var c Contestant
		if err := rows.Scan(&c.ID, &c.RaceID, &c.HorseName, &c.Coefficient, &c.Position, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SetPositions writes finishing positions 1..N to the given contestants, in
// slice order, in one transaction. Either every position is persisted or
// none is.
func (s *Store) SetPositions(ctx context.Context, contestantIDs []string) error {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for i, id := range contestantIDs {
		batch.Queue(`UPDATE contestants SET position = $1 WHERE id = $2`, i+1, id)
	}
	br := tx.SendBatch(ctx, batch)
	for range contestantIDs {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return fmt.Errorf("set position: %w", err)
		}
		if tag.RowsAffected() == 0 {
			_ = br.Close()
			return ErrNotFound
		}
	}
	if err := br.Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

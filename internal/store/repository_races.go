package store

import (
	"context"
	"fmt"
	"time"
)

func (s *Store) CreateRace(ctx context.Context, startTime time.Time, place string, distance int) (string, error) {
	id := NewID()
	_, err := s.Pool.Exec(ctx, `INSERT INTO races (id, start_time, place, distance) VALUES ($1,$2,$3,$4)`,
		id, startTime, place, distance)
	if err != nil {
		return "", fmt.Errorf("create race: %w", err)
	}
	return id, nil
}

func (s *Store) ListRaces(ctx context.Context) ([]Race, error) {
	rows, err := s.Pool.Query(ctx, `SELECT id, start_time, place, distance, created_at FROM races ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Race{}
	for rows.Next() {
		var r Race
		if err := rows.Scan(&r.ID, &r.StartTime, &r.Place, &r.Distance, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListUnresultedRaces returns races that still have at least one contestant
// without a finishing position.
func (s *Store) ListUnresultedRaces(ctx context.Context) ([]Race, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT DISTINCT r.id, r.start_time, r.place, r.distance, r.created_at
		FROM races r JOIN contestants c ON c.race_id = r.id
		WHERE c.position IS NULL
		ORDER BY r.start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Race{}
	for rows.Next() {
		var r Race
		if err := rows.Scan(&r.ID, &r.StartTime, &r.Place, &r.Distance, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) GetRace(ctx context.Context, id string) (*Race, error) {
	var r Race
	err := s.Pool.QueryRow(ctx, `SELECT id, start_time, place, distance, created_at FROM races WHERE id = $1`, id).
		Scan(&r.ID, &r.StartTime, &r.Place, &r.Distance, &r.CreatedAt)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &r, nil
}

func (s *Store) GetRaceIDByContestant(ctx context.Context, contestantID string) (string, error) {
	var raceID string
	if err := s.Pool.QueryRow(ctx, `SELECT race_id FROM contestants WHERE id = $1`, contestantID).Scan(&raceID); err != nil {
		return "", mapNotFound(err)
	}
	return raceID, nil
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var ErrInsufficientBalance = errors.New("insufficient_balance")

const betViewColumns = `b.id, b.owner_id, b.state, b.amount, c.coefficient, c.horse_name,
	r.place, r.start_time, b.placed_at, c.position`

// PlaceBet debits the owner and inserts the bet in WAITING_FOR_ACCEPT in the
// same transaction. The debit is a conditional relative update, so a
// concurrent debit on the same account can never drive the balance negative.
func (s *Store) PlaceBet(ctx context.Context, ownerID, contestantID string, amount int64) (string, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $1`, amount, ownerID)
	if err != nil {
		return "", fmt.Errorf("debit owner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return "", ErrInsufficientBalance
	}

	id := NewID()
	_, err = tx.Exec(ctx, `INSERT INTO bets (id, owner_id, contestant_id, amount, state) VALUES ($1,$2,$3,$4,$5)`,
		id, ownerID, contestantID, amount, StateWaitingForAccept)
	if err != nil {
		return "", fmt.Errorf("insert bet: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return id, nil
}

// AcceptBet moves the bet from WAITING_FOR_ACCEPT to ACCEPTED. The state
// check and the write are one conditional UPDATE, so concurrent accept and
// decline attempts on the same bet cannot both succeed.
func (s *Store) AcceptBet(ctx context.Context, betID string) (bool, error) {
	tag, err := s.Pool.Exec(ctx, `UPDATE bets SET state = $1 WHERE id = $2 AND state = $3`,
		StateAccepted, betID, StateWaitingForAccept)
	if err != nil {
		return false, fmt.Errorf("accept bet: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeclineBet moves the bet from WAITING_FOR_ACCEPT to DECLINED and credits
// the stake back to the owner. Both writes commit together or not at all.
func (s *Store) DeclineBet(ctx context.Context, betID string) (bool, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var ownerID string
	var amount int64
	err = tx.QueryRow(ctx, `UPDATE bets SET state = $1 WHERE id = $2 AND state = $3 RETURNING owner_id, amount`,
		StateDeclined, betID, StateWaitingForAccept).Scan(&ownerID, &amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("decline bet: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE users SET balance = balance + $1 WHERE id = $2`, amount, ownerID); err != nil {
		return false, fmt.Errorf("refund owner: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// SettleBet moves an ACCEPTED bet to WON_WAITING_FOR_PAY (won) or LOSE. The
// UPDATE additionally requires the target horse's position to be known, per
// the settlement precondition. No balance change here.
func (s *Store) SettleBet(ctx context.Context, betID string, won bool) (bool, error) {
	next := StateLose
	if won {
		next = StateWonWaitingForPay
	}
	tag, err := s.Pool.Exec(ctx, `
		UPDATE bets SET state = $1
		WHERE id = $2 AND state = $3
		  AND (SELECT c.position FROM contestants c WHERE c.id = bets.contestant_id) IS NOT NULL`,
		next, betID, StateAccepted)
	if err != nil {
		return false, fmt.Errorf("settle bet: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// PayBet moves the bet from WON_WAITING_FOR_PAY to WON_PAYED and credits
// floor(amount * coefficient) to the owner, atomically.
func (s *Store) PayBet(ctx context.Context, betID string) (bool, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var ownerID string
	var payout int64
	err = tx.QueryRow(ctx, `
		UPDATE bets SET state = $1
		FROM contestants c
		WHERE bets.id = $2 AND bets.state = $3 AND c.id = bets.contestant_id
		RETURNING bets.owner_id, floor(bets.amount * c.coefficient)::bigint`,
		StateWonPayed, betID, StateWonWaitingForPay).Scan(&ownerID, &payout)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("pay bet: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE users SET balance = balance + $1 WHERE id = $2`, payout, ownerID); err != nil {
		return false, fmt.Errorf("credit payout: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) GetBet(ctx context.Context, betID string) (*Bet, error) {
	var b Bet
	err := s.Pool.QueryRow(ctx, `SELECT id, owner_id, contestant_id, amount, state, placed_at FROM bets WHERE id = $1`, betID).
		Scan(&b.ID, &b.OwnerID, &b.ContestantID, &b.Amount, &b.State, &b.PlacedAt)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &b, nil
}

func (s *Store) GetBetAmount(ctx context.Context, betID string) (int64, error) {
	var amount int64
	if err := s.Pool.QueryRow(ctx, `SELECT amount FROM bets WHERE id = $1`, betID).Scan(&amount); err != nil {
		return 0, mapNotFound(err)
	}
	return amount, nil
}

func (s *Store) GetBetOwnerID(ctx context.Context, betID string) (string, error) {
	var ownerID string
	if err := s.Pool.QueryRow(ctx, `SELECT owner_id FROM bets WHERE id = $1`, betID).Scan(&ownerID); err != nil {
		return "", mapNotFound(err)
	}
	return ownerID, nil
}

// GetPayoutAmount returns floor(amount * coefficient) for the bet's target
// horse, computed by the store the same way PayBet credits it.
func (s *Store) GetPayoutAmount(ctx context.Context, betID string) (int64, error) {
	var payout int64
	err := s.Pool.QueryRow(ctx, `
		SELECT floor(b.amount * c.coefficient)::bigint
		FROM bets b JOIN contestants c ON b.contestant_id = c.id
		WHERE b.id = $1`, betID).Scan(&payout)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return payout, nil
}

// ListUserBets returns the user's bets joined with horse and race details,
// ordered by race start time.
func (s *Store) ListUserBets(ctx context.Context, ownerID string) ([]BetView, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT `+betViewColumns+`
		FROM bets b
		JOIN contestants c ON b.contestant_id = c.id
		JOIN races r ON c.race_id = r.id
		WHERE b.owner_id = $1
		ORDER BY r.start_time`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBetViews(rows)
}

// ListUnviewedBets returns every bet still needing a bookmaker action:
// waiting for accept, waiting for payout, or accepted with the horse's
// finishing position already known.
func (s *Store) ListUnviewedBets(ctx context.Context) ([]BetView, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT `+betViewColumns+`
		FROM bets b
		JOIN contestants c ON b.contestant_id = c.id
		JOIN races r ON c.race_id = r.id
		WHERE b.state IN ($1, $2) OR (b.state = $3 AND c.position IS NOT NULL)
		ORDER BY b.placed_at`, StateWaitingForAccept, StateWonWaitingForPay, StateAccepted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBetViews(rows)
}

func scanBetViews(rows pgx.Rows) ([]BetView, error) {
	out := []BetView{}
	for rows.Next() {
		var v BetView
		if err := rows.Scan(&v.ID, &v.OwnerID, &v.State, &v.Amount, &v.Coefficient, &v.HorseName,
			&v.RacePlace, &v.RaceStartTime, &v.PlacedAt, &v.HorsePosition); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

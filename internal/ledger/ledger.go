// Package ledger owns bet records and user balances: the bet state machine,
// the balance transfers tied to each transition, and race result assignment.
package ledger

import (
	"context"
	"errors"
	"math/rand"

	"turfbook/internal/metrics"
	"turfbook/internal/store"
)

const winnerPosition = 1

var (
	ErrInvalidAmount       = errors.New("invalid_amount")
	ErrInsufficientBalance = store.ErrInsufficientBalance
	ErrNoUnresultedHorses  = errors.New("no_unresulted_horses")
)

type Ledger struct {
	Store *store.Store
}

func New(s *store.Store) *Ledger {
	return &Ledger{Store: s}
}

// Place debits the user by amount and creates the bet in WAITING_FOR_ACCEPT,
// both in one transaction. Fails without any mutation when the amount is not
// positive or exceeds the user's balance.
func (l *Ledger) Place(ctx context.Context, userID, contestantID string, amount int64) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	betID, err := l.Store.PlaceBet(ctx, userID, contestantID, amount)
	if err != nil {
		return "", err
	}
	metrics.BetsPlaced.Inc()
	return betID, nil
}

// Accept transitions WAITING_FOR_ACCEPT -> ACCEPTED. Balance-neutral.
// Returns false when the bet is unknown or not in the expected state.
func (l *Ledger) Accept(ctx context.Context, betID string) (bool, error) {
	ok, err := l.Store.AcceptBet(ctx, betID)
	countTransition(ok, err, store.StateAccepted)
	return ok, err
}

// Decline transitions WAITING_FOR_ACCEPT -> DECLINED and credits the stake
// back to the owner atomically.
func (l *Ledger) Decline(ctx context.Context, betID string) (bool, error) {
	ok, err := l.Store.DeclineBet(ctx, betID)
	countTransition(ok, err, store.StateDeclined)
	return ok, err
}

// DetermineResult transitions an ACCEPTED bet whose horse has a known
// finishing position to WON_WAITING_FOR_PAY when the observed position is 1,
// otherwise to LOSE. Balance-neutral.
func (l *Ledger) DetermineResult(ctx context.Context, betID string, observedPosition int) (bool, error) {
	won := observedPosition == winnerPosition
	ok, err := l.Store.SettleBet(ctx, betID, won)
	target := store.StateLose
	if won {
		target = store.StateWonWaitingForPay
	}
	countTransition(ok, err, target)
	return ok, err
}

// Pay transitions WON_WAITING_FOR_PAY -> WON_PAYED and credits
// floor(amount * coefficient) to the owner atomically.
func (l *Ledger) Pay(ctx context.Context, betID string) (bool, error) {
	ok, err := l.Store.PayBet(ctx, betID)
	countTransition(ok, err, store.StateWonPayed)
	return ok, err
}

// AssignResults orders the race's unresulted horses by an unweighted random
// permutation and writes positions 1..N in one atomic batch. Reports
// ErrNoUnresultedHorses when the race is unknown or already fully resulted.
func (l *Ledger) AssignResults(ctx context.Context, raceID string) error {
	horses, err := l.Store.ListUnresultedContestants(ctx, raceID)
	if err != nil {
		return err
	}
	if len(horses) == 0 {
		return ErrNoUnresultedHorses
	}
	ids := make([]string, len(horses))
	for i, h := range horses {
		ids[i] = h.ID
	}
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	if err := l.Store.SetPositions(ctx, ids); err != nil {
		return err
	}
	metrics.RacesResulted.Inc()
	return nil
}

func countTransition(ok bool, err error, state string) {
	if err != nil {
		return
	}
	if ok {
		metrics.BetTransitions.WithLabelValues(state).Inc()
	} else {
		metrics.BetTransitionRejects.Inc()
	}
}

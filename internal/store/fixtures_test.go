package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"turfbook/internal/store"
	"turfbook/internal/testutil"
)

func openStore(t *testing.T) (*store.Store, context.Context, func()) {
	t.Helper()
	st, cleanup := testutil.OpenTestStore(t)
	return st, context.Background(), cleanup
}

func mustCreateUser(t *testing.T, st *store.Store, ctx context.Context, email string, balance int64) string {
	t.Helper()
	id, err := st.CreateUser(ctx, "Test", "User", email, "pass", store.RoleUser)
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	if balance > 0 {
		if err := st.IncreaseBalance(ctx, id, balance); err != nil {
			t.Fatalf("fund user %s: %v", email, err)
		}
	}
	return id
}

func mustCreateRace(t *testing.T, st *store.Store, ctx context.Context, startTime time.Time) string {
	t.Helper()
	id, err := st.CreateRace(ctx, startTime, "Ascot", 2400)
	if err != nil {
		t.Fatalf("create race: %v", err)
	}
	return id
}

func mustAddHorse(t *testing.T, st *store.Store, ctx context.Context, raceID, name string, coefficient float64) string {
	t.Helper()
	id, err := st.AddContestant(ctx, raceID, name, coefficient)
	if err != nil {
		t.Fatalf("add contestant %s: %v", name, err)
	}
	return id
}

// mustPlaceAcceptedBet places a bet and drives it to ACCEPTED.
func mustPlaceAcceptedBet(t *testing.T, st *store.Store, ctx context.Context, ownerID, contestantID string, amount int64) string {
	t.Helper()
	betID, err := st.PlaceBet(ctx, ownerID, contestantID, amount)
	if err != nil {
		t.Fatalf("place bet: %v", err)
	}
	ok, err := st.AcceptBet(ctx, betID)
	if err != nil || !ok {
		t.Fatalf("accept bet: ok=%v err=%v", ok, err)
	}
	return betID
}

func mustBalance(t *testing.T, st *store.Store, ctx context.Context, userID string) int64 {
	t.Helper()
	bal, err := st.GetUserBalance(ctx, userID)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	return bal
}

func mustBetState(t *testing.T, st *store.Store, ctx context.Context, betID string) string {
	t.Helper()
	bet, err := st.GetBet(ctx, betID)
	if err != nil {
		t.Fatalf("get bet: %v", err)
	}
	return bet.State
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

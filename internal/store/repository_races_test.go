package store_test

import (
	"errors"
	"testing"
	"time"

	"turfbook/internal/store"
)

func TestRacesAndContestants(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	start := time.Now().Add(time.Hour).Truncate(time.Second)
	raceID := mustCreateRace(t, st, ctx, start)
	h1 := mustAddHorse(t, st, ctx, raceID, "Seabiscuit", 2.5)
	h2 := mustAddHorse(t, st, ctx, raceID, "Secretariat", 1.8)

	races, err := st.ListRaces(ctx)
	if err != nil {
		t.Fatalf("list races: %v", err)
	}
	if len(races) != 1 || races[0].ID != raceID || races[0].Place != "Ascot" {
		t.Fatalf("unexpected races: %+v", races)
	}

	horses, err := st.ListContestantsByRace(ctx, raceID)
	if err != nil {
		t.Fatalf("list contestants: %v", err)
	}
	if len(horses) != 2 {
		t.Fatalf("expected 2 contestants, got %d", len(horses))
	}
	for _, h := range horses {
		if h.Position != nil {
			t.Fatalf("fresh contestant has position: %+v", h)
		}
	}

	gotRaceID, err := st.GetRaceIDByContestant(ctx, h1)
	if err != nil || gotRaceID != raceID {
		t.Fatalf("race by contestant = %q err=%v, want %q", gotRaceID, err, raceID)
	}
	if _, err := st.GetRaceIDByContestant(ctx, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	unresulted, err := st.ListUnresultedRaces(ctx)
	if err != nil {
		t.Fatalf("list unresulted races: %v", err)
	}
	if len(unresulted) != 1 || unresulted[0].ID != raceID {
		t.Fatalf("unexpected unresulted races: %+v", unresulted)
	}
	_ = h2
}

func TestSetPositions(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	raceID := mustCreateRace(t, st, ctx, time.Now())
	h1 := mustAddHorse(t, st, ctx, raceID, "One", 2.0)
	h2 := mustAddHorse(t, st, ctx, raceID, "Two", 3.0)
	h3 := mustAddHorse(t, st, ctx, raceID, "Three", 4.0)

	if err := st.SetPositions(ctx, []string{h2, h3, h1}); err != nil {
		t.Fatalf("set positions: %v", err)
	}

	horses, err := st.ListContestantsByRace(ctx, raceID)
	if err != nil {
		t.Fatalf("list contestants: %v", err)
	}
	got := map[string]int{}
	for _, h := range horses {
		if h.Position == nil {
			t.Fatalf("contestant %s still unresulted", h.ID)
		}
		got[h.ID] = *h.Position
	}
	if got[h2] != 1 || got[h3] != 2 || got[h1] != 3 {
		t.Fatalf("unexpected positions: %v", got)
	}

	left, err := st.ListUnresultedContestants(ctx, raceID)
	if err != nil {
		t.Fatalf("list unresulted: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected no unresulted contestants, got %d", len(left))
	}
	unresulted, err := st.ListUnresultedRaces(ctx)
	if err != nil {
		t.Fatalf("list unresulted races: %v", err)
	}
	if len(unresulted) != 0 {
		t.Fatalf("resulted race still listed: %+v", unresulted)
	}
}

func TestSetPositionsUnknownContestantRollsBack(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	raceID := mustCreateRace(t, st, ctx, time.Now())
	h1 := mustAddHorse(t, st, ctx, raceID, "One", 2.0)

	if err := st.SetPositions(ctx, []string{h1, "missing"}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	horses, err := st.ListContestantsByRace(ctx, raceID)
	if err != nil {
		t.Fatalf("list contestants: %v", err)
	}
	if len(horses) != 1 || horses[0].Position != nil {
		t.Fatalf("partial position write leaked: %+v", horses)
	}
}

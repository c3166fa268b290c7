package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"turfbook/internal/config"
	"turfbook/internal/ledger"
	"turfbook/internal/store"
	"turfbook/internal/testutil"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store, func()) {
	t.Helper()
	st, cleanup := testutil.OpenTestStore(t)
	cfg := config.ServerConfig{RechargeAmount: 100, SessionTTLMinutes: 120}
	srv := httptest.NewServer(NewRouter(st, ledger.New(st), cfg))
	return srv, st, func() {
		srv.Close()
		cleanup()
	}
}

func doJSON(t *testing.T, method, url, token string, body any, wantStatus int) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		out = nil
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s status = %d, want %d (body %v)", method, url, resp.StatusCode, wantStatus, out)
	}
	return out
}

func loginToken(t *testing.T, baseURL, email, password string) string {
	t.Helper()
	out := doJSON(t, http.MethodPost, baseURL+"/api/login", "", map[string]any{
		"email": email, "password": password,
	}, http.StatusOK)
	token, _ := out["token"].(string)
	if token == "" {
		t.Fatalf("login returned no token: %v", out)
	}
	return token
}

func TestEndToEndBetFlow(t *testing.T) {
	srv, st, cleanup := newTestServer(t)
	defer cleanup()
	base := srv.URL

	ctx := context.Background()
	if err := st.EnsureUser(ctx, "Book", "Maker", "bookie@example.com", "bookpw", store.RoleBookmaker); err != nil {
		t.Fatalf("seed bookmaker: %v", err)
	}
	if err := st.EnsureUser(ctx, "Race", "Admin", "admin@example.com", "adminpw", store.RoleAdmin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	out := doJSON(t, http.MethodPost, base+"/api/register", "", map[string]any{
		"email":           "flow@example.com",
		"first_name":      "Flo",
		"last_name":       "Wagers",
		"password":        "hunter2",
		"password_repeat": "hunter2",
	}, http.StatusOK)
	userToken, _ := out["token"].(string)
	if userToken == "" {
		t.Fatalf("register returned no token: %v", out)
	}

	bookieToken := loginToken(t, base, "bookie@example.com", "bookpw")
	adminToken := loginToken(t, base, "admin@example.com", "adminpw")

	// Role gates hold in both directions.
	doJSON(t, http.MethodGet, base+"/api/bookie/bets", userToken, nil, http.StatusForbidden)
	doJSON(t, http.MethodPost, base+"/api/admin/races", bookieToken, nil, http.StatusForbidden)
	doJSON(t, http.MethodGet, base+"/api/me", "", nil, http.StatusUnauthorized)

	raceOut := doJSON(t, http.MethodPost, base+"/api/admin/races", adminToken, map[string]any{
		"start_time": time.Now().Add(time.Hour).Format(time.RFC3339),
		"place":      "Ascot",
		"distance":   2400,
		"horses": []map[string]any{
			{"horse_name": "Solo", "coefficient": 2.5},
		},
	}, http.StatusOK)
	raceID, _ := raceOut["race_id"].(string)
	ids, _ := raceOut["contestant_ids"].([]any)
	if raceID == "" || len(ids) != 1 {
		t.Fatalf("unexpected race response: %v", raceOut)
	}
	horseID := ids[0].(string)

	doJSON(t, http.MethodPost, base+"/api/recharge", userToken, nil, http.StatusOK)

	betOut := doJSON(t, http.MethodPost, base+"/api/bets", userToken, map[string]any{
		"contestant_id": horseID,
		"amount":        40,
	}, http.StatusOK)
	betID, _ := betOut["bet_id"].(string)
	if betID == "" || betOut["balance"].(float64) != 60 {
		t.Fatalf("unexpected bet response: %v", betOut)
	}

	unviewed := doJSON(t, http.MethodGet, base+"/api/bookie/bets", bookieToken, nil, http.StatusOK)
	items, _ := unviewed["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("unviewed items = %v", unviewed)
	}

	doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/bookie/bets/%s/accept", base, betID), bookieToken, nil, http.StatusOK)
	// Settling before the race is resulted is refused.
	doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/bookie/bets/%s/determine", base, betID), bookieToken, map[string]any{"position": 1}, http.StatusConflict)

	doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/admin/races/%s/results", base, raceID), adminToken, nil, http.StatusOK)
	// A single horse always finishes first.
	doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/bookie/bets/%s/determine", base, betID), bookieToken, map[string]any{"position": 1}, http.StatusOK)
	doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/bookie/bets/%s/pay", base, betID), bookieToken, nil, http.StatusOK)
	// Pay is one-shot.
	doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/bookie/bets/%s/pay", base, betID), bookieToken, nil, http.StatusConflict)

	me := doJSON(t, http.MethodGet, base+"/api/me", userToken, nil, http.StatusOK)
	if me["balance"].(float64) != 160 {
		t.Fatalf("final balance = %v, want 160", me["balance"])
	}

	bets := doJSON(t, http.MethodGet, base+"/api/bets", userToken, nil, http.StatusOK)
	betItems, _ := bets["items"].([]any)
	if len(betItems) != 1 {
		t.Fatalf("user bets = %v", bets)
	}
	got := betItems[0].(map[string]any)
	if got["state"] != store.StateWonPayed {
		t.Fatalf("bet state = %v, want %s", got["state"], store.StateWonPayed)
	}

	doJSON(t, http.MethodPost, base+"/api/logout", userToken, nil, http.StatusNoContent)
	doJSON(t, http.MethodGet, base+"/api/me", userToken, nil, http.StatusUnauthorized)
}

func TestRegisterValidationOverHTTP(t *testing.T) {
	srv, _, cleanup := newTestServer(t)
	defer cleanup()

	doJSON(t, http.MethodPost, srv.URL+"/api/register", "", map[string]any{
		"email":           "not-an-email",
		"first_name":      "A",
		"last_name":       "B",
		"password":        "hunter2",
		"password_repeat": "hunter2",
	}, http.StatusBadRequest)
}

package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

const motogpBody = `[
	{"name":"Italian Grand Prix","date":"2026-05-31","location":"Mugello","country":"Italy"},
	{"name":"Dutch TT","date":"2026-06-28","location":"Assen","country":"Netherlands"}
]`

const f1Body = `[
	{"name":"Monaco Grand Prix","date":"2026-05-24","location":"Monte Carlo","country":"Monaco"}
]`

func raceServer(t *testing.T, wantKey, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != wantKey {
			t.Errorf("x-api-key = %q, want %q", got, wantKey)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestUpcoming_BothProviders(t *testing.T) {
	motogp := raceServer(t, "mg-key", motogpBody)
	defer motogp.Close()
	f1 := raceServer(t, "f1-key", f1Body)
	defer f1.Close()

	races := NewRaces(Config{
		MotoGPURL: motogp.URL, MotoGPAPIKey: "mg-key",
		F1URL: f1.URL, F1APIKey: "f1-key",
	}, zap.NewNop())

	board := races.Upcoming(context.Background())

	if len(board.MotoGP) != 2 {
		t.Errorf("MotoGP races = %d, want 2", len(board.MotoGP))
	} else if board.MotoGP[0].Name != "Italian Grand Prix" {
		t.Errorf("MotoGP[0].Name = %q", board.MotoGP[0].Name)
	}
	if len(board.F1) != 1 {
		t.Errorf("F1 races = %d, want 1", len(board.F1))
	} else if board.F1[0].Location != "Monte Carlo" {
		t.Errorf("F1[0].Location = %q", board.F1[0].Location)
	}
}

func TestUpcoming_OneProviderDown(t *testing.T) {
	f1 := raceServer(t, "f1-key", f1Body)
	defer f1.Close()
	motogp := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer motogp.Close()

	races := NewRaces(Config{
		MotoGPURL: motogp.URL, MotoGPAPIKey: "mg-key",
		F1URL: f1.URL, F1APIKey: "f1-key",
	}, zap.NewNop())

	board := races.Upcoming(context.Background())

	if board.MotoGP == nil {
		t.Error("failed provider yielded nil slice, want empty")
	}
	if len(board.MotoGP) != 0 {
		t.Errorf("failed provider yielded %d races, want 0", len(board.MotoGP))
	}
	if len(board.F1) != 1 {
		t.Errorf("healthy provider yielded %d races, want 1", len(board.F1))
	}
}

func TestUpcoming_NothingConfigured(t *testing.T) {
	races := NewRaces(Config{}, zap.NewNop())

	board := races.Upcoming(context.Background())

	if board.MotoGP == nil || board.F1 == nil {
		t.Fatal("unconfigured providers must yield empty slices, got nil")
	}
	if len(board.MotoGP) != 0 || len(board.F1) != 0 {
		t.Errorf("unconfigured board not empty: %+v", board)
	}
}

func TestUpcoming_NullBody(t *testing.T) {
	motogp := raceServer(t, "mg-key", `null`)
	defer motogp.Close()

	races := NewRaces(Config{MotoGPURL: motogp.URL, MotoGPAPIKey: "mg-key"}, zap.NewNop())

	board := races.Upcoming(context.Background())
	if board.MotoGP == nil {
		t.Error("null provider body yielded nil slice, want empty")
	}
}

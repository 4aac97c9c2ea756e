package apifootball

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fixturehub/football-data/internal/platform/logging"
	"github.com/fixturehub/football-data/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, maxRetries int) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(ClientConfig{
		BaseURL:    server.URL,
		APIKey:     "test-key",
		Timeout:    5 * time.Second,
		MaxRetries: maxRetries,
		Logger:     logging.NewNop(),
	})
}

func TestClientFetchLeagueMapsEnvelope(t *testing.T) {
	var gotKey, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-apisports-key")
		gotQuery = r.URL.Query().Get("id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"get": "leagues",
			"errors": [],
			"results": 1,
			"paging": {"current": 1, "total": 1},
			"response": [{
				"league": {"id": 39, "name": "Premier League", "type": "League", "logo": "https://l.png"},
				"country": {"name": "England", "code": "GB", "flag": "https://f.svg"},
				"seasons": [
					{"year": 2024, "start": "2024-08-10", "end": "2025-05-25", "current": false},
					{"year": 2025, "start": "2025-08-09", "end": "2026-05-24", "current": true}
				]
			}]
		}`))
	}, 0)

	league, found, err := client.FetchLeague(t.Context(), 39)
	if err != nil {
		t.Fatalf("fetch league: %v", err)
	}
	if !found {
		t.Fatal("league not found")
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header = %q", gotKey)
	}
	if gotQuery != "39" {
		t.Fatalf("id query = %q", gotQuery)
	}
	if league.Name != "Premier League" || league.CountryCode != "GB" {
		t.Fatalf("league = %+v", league)
	}
	if len(league.Seasons) != 2 || !league.Seasons[1].Current {
		t.Fatalf("seasons = %+v", league.Seasons)
	}
	if league.Seasons[0].StartDate.Format("2006-01-02") != "2024-08-10" {
		t.Fatalf("start date = %v", league.Seasons[0].StartDate)
	}
}

func TestClientFetchLeagueEmptyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"get": "leagues", "errors": [], "results": 0, "response": []}`))
	}, 0)

	_, found, err := client.FetchLeague(t.Context(), 39)
	if err != nil {
		t.Fatalf("fetch league: %v", err)
	}
	if found {
		t.Fatal("found = true for an empty response")
	}
}

func TestClientMissingAPIKey(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	}, 0)
	client.apiKey = ""

	_, _, err := client.FetchLeague(t.Context(), 39)
	if !errors.Is(err, usecase.ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
	if requests != 0 {
		t.Fatalf("requests = %d, want the call refused before hitting the network", requests)
	}
}

func TestClientRejectedKeyStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, 2)

	_, err := client.FetchTeams(t.Context(), 39, 2025)
	if !errors.Is(err, usecase.ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
}

func TestClientEnvelopeTokenError(t *testing.T) {
	// api-football reports auth problems inside a 200 payload.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"get": "teams", "errors": {"token": "Error/Missing application key."}, "results": 0, "response": []}`))
	}, 0)

	_, err := client.FetchTeams(t.Context(), 39, 2025)
	if !errors.Is(err, usecase.ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
}

func TestClientRetriesTransientStatus(t *testing.T) {
	var attempts atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"get": "teams", "errors": [], "results": 1, "response": [{"team": {"id": 42, "name": "Arsenal", "code": "ARS", "country": "England", "founded": 1886}}]}`))
	}, 1)

	teams, err := client.FetchTeams(t.Context(), 39, 2025)
	if err != nil {
		t.Fatalf("fetch teams: %v", err)
	}
	if attempts.Load() != 2 {
		t.Fatalf("attempts = %d, want a retry after the 503", attempts.Load())
	}
	if len(teams) != 1 || teams[0].Name != "Arsenal" {
		t.Fatalf("teams = %+v", teams)
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var attempts atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`bad request`))
	}, 3)

	_, err := client.FetchTeams(t.Context(), 39, 2025)
	if err == nil {
		t.Fatal("err = nil, want the 400 surfaced")
	}
	if attempts.Load() != 1 {
		t.Fatalf("attempts = %d, want no retry on a client error", attempts.Load())
	}
}

func TestClientFetchPlayersPagePaging(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page query = %q, want 2", got)
		}
		_, _ = w.Write([]byte(`{
			"get": "players",
			"errors": [],
			"results": 1,
			"paging": {"current": 2, "total": 5},
			"response": [{
				"player": {"id": 101, "name": "Bukayo Saka", "age": 23, "birth": {"date": "2001-09-05", "place": "London", "country": "England"}, "nationality": "England", "injured": false},
				"statistics": []
			}]
		}`))
	}, 0)

	players, paging, err := client.FetchPlayersPage(t.Context(), 42, 2025, 2)
	if err != nil {
		t.Fatalf("fetch players: %v", err)
	}
	if paging.Current != 2 || paging.Total != 5 {
		t.Fatalf("paging = %+v", paging)
	}
	if len(players) != 1 || players[0].PlayerID != 101 {
		t.Fatalf("players = %+v", players)
	}
	if players[0].BirthDate == nil || players[0].BirthDate.Format("2006-01-02") != "2001-09-05" {
		t.Fatalf("birth date = %v", players[0].BirthDate)
	}
}

func TestClientValidatesArguments(t *testing.T) {
	client := NewClient(ClientConfig{APIKey: "test-key", Logger: logging.NewNop()})

	if _, _, err := client.FetchLeague(t.Context(), 0); err == nil {
		t.Fatal("zero league id accepted")
	}
	if _, err := client.FetchTeams(t.Context(), 39, 0); err == nil {
		t.Fatal("zero season accepted")
	}
	if _, _, err := client.FetchPrediction(t.Context(), 0); err == nil {
		t.Fatal("zero fixture id accepted")
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

func premierLeaguePayload() ExternalLeague {
	return ExternalLeague{
		LeagueID:    39,
		Name:        "Premier League",
		Type:        "League",
		CountryName: "England",
		CountryCode: "GB",
		Seasons: []ExternalSeason{
			{Year: 2024, StartDate: time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)},
			{Year: 2025, StartDate: time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2026, 5, 24, 0, 0, 0, 0, time.UTC), Current: true},
		},
	}
}

func TestLeagueSyncServiceInsertThenUnchanged(t *testing.T) {
	repo := newMemLeagueRepo()
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			return premierLeaguePayload(), true, nil
		},
	}
	svc := NewLeagueSyncService(provider, repo, LeagueSyncConfig{LeagueIDs: []int64{39}}, logging.NewNop())

	summary, err := svc.SyncLeagues(t.Context())
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if summary.Inserted != 3 || summary.Updated != 0 || summary.Unchanged != 0 {
		t.Fatalf("first sync summary = %+v, want 3 inserted", summary)
	}

	summary, err = svc.SyncLeagues(t.Context())
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if summary.Unchanged != 3 || summary.Inserted != 0 || summary.Updated != 0 {
		t.Fatalf("second sync summary = %+v, want 3 unchanged", summary)
	}
	if repo.leagueUpdates != 0 || repo.seasonUpdates != 0 {
		t.Fatalf("identical rerun wrote updates: leagues=%d seasons=%d", repo.leagueUpdates, repo.seasonUpdates)
	}
}

func TestLeagueSyncServiceUpdatesChangedLeague(t *testing.T) {
	repo := newMemLeagueRepo()
	payload := premierLeaguePayload()
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			return payload, true, nil
		},
	}
	svc := NewLeagueSyncService(provider, repo, LeagueSyncConfig{LeagueIDs: []int64{39}}, logging.NewNop())

	if _, err := svc.SyncLeagues(t.Context()); err != nil {
		t.Fatalf("seed sync: %v", err)
	}

	payload.Logo = "https://media.example.com/leagues/39.png"
	summary, err := svc.SyncLeagues(t.Context())
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if summary.Updated != 1 || summary.Unchanged != 2 {
		t.Fatalf("summary = %+v, want 1 updated and 2 unchanged", summary)
	}
	stored, _, _ := repo.GetLeagueByID(t.Context(), 39)
	if stored.Logo != payload.Logo {
		t.Fatalf("stored logo = %q, want %q", stored.Logo, payload.Logo)
	}
}

func TestLeagueSyncServiceCurrentSeasonRollsForward(t *testing.T) {
	repo := newMemLeagueRepo()
	payload := premierLeaguePayload()
	payload.Seasons[0].Current = true
	payload.Seasons[1].Current = false
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			return payload, true, nil
		},
	}
	svc := NewLeagueSyncService(provider, repo, LeagueSyncConfig{LeagueIDs: []int64{39}}, logging.NewNop())

	if _, err := svc.SyncLeagues(t.Context()); err != nil {
		t.Fatalf("seed sync: %v", err)
	}

	payload.Seasons[0].Current = false
	payload.Seasons[1].Current = true
	if _, err := svc.SyncLeagues(t.Context()); err != nil {
		t.Fatalf("rollover sync: %v", err)
	}

	if count := repo.currentSeasonCount(39); count != 1 {
		t.Fatalf("current season count = %d, want 1", count)
	}
	current, found, _ := repo.GetCurrentSeason(t.Context(), 39)
	if !found || current.Year != 2025 {
		t.Fatalf("current season = %+v found=%v, want year 2025", current, found)
	}
}

func TestLeagueSyncServiceInsertRaceFallsBackToUpdate(t *testing.T) {
	repo := newMemLeagueRepo()
	// Simulate a concurrent writer claiming the key between the lookup and
	// the insert.
	repo.beforeInsertLeague = func(l league.League) error {
		stale := l
		stale.Name = "Stale Name"
		repo.leagues[l.ID] = stale
		return errDuplicateKey
	}
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			payload := premierLeaguePayload()
			payload.Seasons = nil
			return payload, true, nil
		},
	}
	svc := NewLeagueSyncService(provider, repo, LeagueSyncConfig{LeagueIDs: []int64{39}}, logging.NewNop())

	summary, err := svc.SyncLeagues(t.Context())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if summary.Updated != 1 || summary.Failed != 0 {
		t.Fatalf("summary = %+v, want the raced insert counted as updated", summary)
	}
	stored, _, _ := repo.GetLeagueByID(t.Context(), 39)
	if stored.Name != "Premier League" {
		t.Fatalf("stored name = %q, lost the reconciled payload", stored.Name)
	}
}

func TestLeagueSyncServiceMissingCredentialAborts(t *testing.T) {
	repo := newMemLeagueRepo()
	calls := 0
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			calls++
			if leagueID == 39 {
				return premierLeaguePayload(), true, nil
			}
			return ExternalLeague{}, false, fmt.Errorf("provider says: %w", ErrMissingCredential)
		},
	}
	svc := NewLeagueSyncService(provider, repo, LeagueSyncConfig{LeagueIDs: []int64{39, 140}}, logging.NewNop())

	summary, err := svc.SyncLeagues(t.Context())
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
	if summary.Inserted != 3 {
		t.Fatalf("summary = %+v, want the first league's work kept", summary)
	}
	if calls != 2 {
		t.Fatalf("fetch calls = %d, want the run to stop at the credential failure", calls)
	}
}

func TestLeagueSyncServiceFetchErrorCountsFailed(t *testing.T) {
	repo := newMemLeagueRepo()
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			if leagueID == 140 {
				return ExternalLeague{}, false, errors.New("upstream 502")
			}
			return premierLeaguePayload(), true, nil
		},
	}
	svc := NewLeagueSyncService(provider, repo, LeagueSyncConfig{LeagueIDs: []int64{140, 39}}, logging.NewNop())

	summary, err := svc.SyncLeagues(t.Context())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if summary.Failed != 1 || summary.Inserted != 3 {
		t.Fatalf("summary = %+v, want 1 failed and the healthy league ingested", summary)
	}
}

func TestLeagueSyncServiceSkipsMissingAndInvalid(t *testing.T) {
	repo := newMemLeagueRepo()
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			switch leagueID {
			case 61:
				return ExternalLeague{}, false, nil
			default:
				// Blank name fails validation.
				return ExternalLeague{LeagueID: leagueID, Name: "   "}, true, nil
			}
		},
	}
	svc := NewLeagueSyncService(provider, repo, LeagueSyncConfig{LeagueIDs: []int64{61, 78}}, logging.NewNop())

	summary, err := svc.SyncLeagues(t.Context())
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if summary.Skipped != 2 || summary.Total() != 2 {
		t.Fatalf("summary = %+v, want both leagues skipped", summary)
	}
	if len(repo.leagues) != 0 {
		t.Fatalf("stored %d leagues, want none", len(repo.leagues))
	}
}

func TestLeagueSyncServiceRequiresConfiguredLeagues(t *testing.T) {
	svc := NewLeagueSyncService(&stubProvider{}, newMemLeagueRepo(), LeagueSyncConfig{}, logging.NewNop())

	if _, err := svc.SyncLeagues(t.Context()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

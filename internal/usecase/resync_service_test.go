package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fixturehub/football-data/internal/platform/logging"
)

func newResyncFixture(provider *stubProvider, cfg LeagueSyncConfig) (*ResyncService, *memLeagueRepo) {
	leagueRepo := newMemLeagueRepo()
	teamRepo := newMemTeamRepo()
	playerRepo := newMemPlayerRepo()
	statsRepo := newMemStatsRepo()
	fixtureRepo := newMemFixtureRepo()
	oddsRepo := newMemOddsRepo()
	predictionRepo := newMemPredictionRepo()
	matchDataRepo := newMemMatchDataRepo()
	logger := logging.NewNop()

	leagues := NewLeagueSyncService(provider, leagueRepo, cfg, logger)
	teams := NewTeamSyncService(provider, leagueRepo, teamRepo, logger)
	players := NewPlayerSyncService(provider, leagueRepo, teamRepo, playerRepo, statsRepo, PlayerSyncConfig{}, logger)
	fixtures := NewFixtureSyncService(provider, leagueRepo, teamRepo, fixtureRepo, logger)
	fixtureData := NewFixtureDataSyncService(provider, leagueRepo, fixtureRepo, oddsRepo, predictionRepo, matchDataRepo, FixtureDataSyncConfig{}, logger)

	return NewResyncService(leagues, teams, players, fixtures, fixtureData, cfg, logger), leagueRepo
}

func TestResyncServiceFansOutTasks(t *testing.T) {
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			return ExternalLeague{LeagueID: leagueID, Name: fmt.Sprintf("League %d", leagueID)}, true, nil
		},
		fetchTeams: func(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalTeam, error) {
			return nil, nil
		},
	}
	svc, leagueRepo := newResyncFixture(provider, LeagueSyncConfig{LeagueIDs: []int64{39, 140}})
	leagueRepo.seedCurrentSeason(39, 2025)
	leagueRepo.seedCurrentSeason(140, 2025)

	result, err := svc.Resync(t.Context(), ResyncInput{
		SyncData:   []string{"leagues", "teams"},
		MaxWorkers: 2,
	})
	if err != nil {
		t.Fatalf("resync: %v", err)
	}

	if result.LeagueCount != 2 || result.TaskCount != 4 {
		t.Fatalf("result = %+v, want 2 leagues and 4 tasks", result)
	}
	if result.WorkerCount != 2 {
		t.Fatalf("worker count = %d, want 2", result.WorkerCount)
	}
	// League tasks touch a record; the empty team fetches touch nothing.
	if result.SuccessCount != 2 || result.SkippedCount != 2 || result.FailedCount != 0 {
		t.Fatalf("counts = %d/%d/%d, want 2 success and 2 skipped", result.SuccessCount, result.SkippedCount, result.FailedCount)
	}
	if len(result.Tasks) != 4 {
		t.Fatalf("tasks = %d, want 4", len(result.Tasks))
	}
	// Rows come back ordered by league then kind regardless of worker timing.
	if result.Tasks[0].LeagueID != 39 || result.Tasks[0].SyncData != "leagues" {
		t.Fatalf("first task = %+v", result.Tasks[0])
	}
	if result.Tasks[3].LeagueID != 140 || result.Tasks[3].SyncData != "teams" {
		t.Fatalf("last task = %+v", result.Tasks[3])
	}
	if result.Summary.Unchanged != 2 {
		t.Fatalf("merged summary = %+v, want the league tasks' records", result.Summary)
	}
}

func TestResyncServiceCountsFailedTasks(t *testing.T) {
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			return ExternalLeague{}, false, fmt.Errorf("provider says: %w", ErrMissingCredential)
		},
	}
	svc, _ := newResyncFixture(provider, LeagueSyncConfig{LeagueIDs: []int64{39}})

	result, err := svc.Resync(t.Context(), ResyncInput{SyncData: []string{"leagues"}})
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if result.FailedCount != 1 || result.Tasks[0].Status != "failed" {
		t.Fatalf("result = %+v, want the task marked failed", result)
	}
	if result.Tasks[0].Message == "" {
		t.Fatal("failed task carries no message")
	}
}

func TestResyncServiceNormalizesKinds(t *testing.T) {
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			return ExternalLeague{LeagueID: leagueID, Name: "League"}, true, nil
		},
	}
	svc, _ := newResyncFixture(provider, LeagueSyncConfig{LeagueIDs: []int64{39}})

	// Aliases and repeats collapse to a single kind.
	result, err := svc.Resync(t.Context(), ResyncInput{SyncData: []string{"Leagues", "league", "seasons"}})
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if result.TaskCount != 1 {
		t.Fatalf("task count = %d, want the aliases deduplicated", result.TaskCount)
	}

	if _, err := svc.Resync(t.Context(), ResyncInput{SyncData: []string{"lineups"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unsupported kind err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Resync(t.Context(), ResyncInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing sync_data err = %v, want ErrInvalidInput", err)
	}
}

func TestResyncServiceLeagueFallbackAndWorkerCap(t *testing.T) {
	provider := &stubProvider{
		fetchLeague: func(ctx context.Context, leagueID int64) (ExternalLeague, bool, error) {
			return ExternalLeague{LeagueID: leagueID, Name: "League"}, true, nil
		},
	}
	svc, _ := newResyncFixture(provider, LeagueSyncConfig{LeagueIDs: []int64{39, 140, 61}})

	result, err := svc.Resync(t.Context(), ResyncInput{SyncData: []string{"leagues"}, MaxWorkers: 16})
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if result.LeagueCount != 3 {
		t.Fatalf("league count = %d, want the configured fallback", result.LeagueCount)
	}
	// The provider rate limit keeps the pool small no matter what the
	// request asks for.
	if result.WorkerCount != 2 {
		t.Fatalf("worker count = %d, want the cap applied", result.WorkerCount)
	}

	svcNoLeagues, _ := newResyncFixture(provider, LeagueSyncConfig{})
	if _, err := svcNoLeagues.Resync(t.Context(), ResyncInput{SyncData: []string{"leagues"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("no leagues err = %v, want ErrInvalidInput", err)
	}
}

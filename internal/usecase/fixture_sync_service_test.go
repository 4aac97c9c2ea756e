package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

func fixturePayload(id int64, home, away int64) ExternalFixture {
	return ExternalFixture{
		FixtureID:   id,
		Date:        time.Date(2025, 9, 13, 15, 0, 0, 0, time.UTC),
		StatusLong:  "Not Started",
		StatusShort: "NS",
		LeagueID:    39,
		SeasonYear:  2025,
		Round:       "Regular Season - 4",
		HomeTeamID:  home,
		AwayTeamID:  away,
		Venue:       ExternalVenue{VenueID: 556, Name: "Emirates Stadium", City: "London"},
	}
}

func seedFixtureSyncWorld() (*memLeagueRepo, *memTeamRepo, *memFixtureRepo) {
	leagueRepo := newMemLeagueRepo()
	leagueRepo.seedCurrentSeason(39, 2025)
	teamRepo := newMemTeamRepo()
	teamRepo.seedTeam(team.Team{ID: 42, Name: "Arsenal"}, 39, 2025)
	teamRepo.seedTeam(team.Team{ID: 50, Name: "Manchester City"}, 39, 2025)
	return leagueRepo, teamRepo, newMemFixtureRepo()
}

func TestFixtureSyncServiceInsertsAndCreatesVenue(t *testing.T) {
	leagueRepo, teamRepo, fixtureRepo := seedFixtureSyncWorld()
	provider := &stubProvider{
		fetchFixtures: func(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalFixture, error) {
			return []ExternalFixture{fixturePayload(1001, 42, 50)}, nil
		},
	}
	svc := NewFixtureSyncService(provider, leagueRepo, teamRepo, fixtureRepo, logging.NewNop())

	summary, err := svc.SyncFixtures(t.Context(), []int64{39})
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if summary.Inserted != 1 {
		t.Fatalf("first sync summary = %+v, want 1 inserted", summary)
	}
	if fixtureRepo.venueInserts != 1 {
		t.Fatalf("venue inserts = %d, want the venue created on first sighting", fixtureRepo.venueInserts)
	}
	stored, _, _ := fixtureRepo.GetByID(t.Context(), 1001)
	if stored.VenueID == nil || *stored.VenueID != 556 {
		t.Fatalf("stored venue id = %v, want 556", stored.VenueID)
	}

	summary, err = svc.SyncFixtures(t.Context(), []int64{39})
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if summary.Unchanged != 1 || fixtureRepo.venueInserts != 1 {
		t.Fatalf("rerun summary = %+v venueInserts=%d, want unchanged with no second venue", summary, fixtureRepo.venueInserts)
	}
}

func TestFixtureSyncServiceStatusRollsToFinal(t *testing.T) {
	leagueRepo, teamRepo, fixtureRepo := seedFixtureSyncWorld()
	payload := fixturePayload(1001, 42, 50)
	provider := &stubProvider{
		fetchFixtures: func(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalFixture, error) {
			return []ExternalFixture{payload}, nil
		},
	}
	svc := NewFixtureSyncService(provider, leagueRepo, teamRepo, fixtureRepo, logging.NewNop())

	if _, err := svc.SyncFixtures(t.Context(), []int64{39}); err != nil {
		t.Fatalf("seed sync: %v", err)
	}

	payload.StatusShort = "ft"
	payload.StatusLong = "Match Finished"
	payload.GoalsHome = intPtr(2)
	payload.GoalsAway = intPtr(1)

	summary, err := svc.SyncFixtures(t.Context(), []int64{39})
	if err != nil {
		t.Fatalf("result sync: %v", err)
	}
	if summary.Updated != 1 {
		t.Fatalf("summary = %+v, want 1 updated", summary)
	}
	stored, _, _ := fixtureRepo.GetByID(t.Context(), 1001)
	if stored.StatusShort != "FT" || !stored.IsFinal {
		t.Fatalf("stored status = %q final=%v, want normalized terminal status", stored.StatusShort, stored.IsFinal)
	}
	if stored.GoalsHome == nil || *stored.GoalsHome != 2 {
		t.Fatalf("stored home goals = %v, want 2", stored.GoalsHome)
	}
}

func TestFixtureSyncServiceSkipsUnknownTeam(t *testing.T) {
	leagueRepo, teamRepo, fixtureRepo := seedFixtureSyncWorld()
	provider := &stubProvider{
		fetchFixtures: func(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalFixture, error) {
			return []ExternalFixture{
				fixturePayload(1001, 42, 50),
				fixturePayload(1002, 42, 9999),
			}, nil
		},
	}
	svc := NewFixtureSyncService(provider, leagueRepo, teamRepo, fixtureRepo, logging.NewNop())

	summary, err := svc.SyncFixtures(t.Context(), []int64{39})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if summary.Inserted != 1 || summary.Skipped != 1 {
		t.Fatalf("summary = %+v, want the unknown-team fixture skipped", summary)
	}
	if _, found, _ := fixtureRepo.GetByID(t.Context(), 1002); found {
		t.Fatal("fixture referencing an unknown team was persisted")
	}
}

func TestFixtureSyncServiceVenueFailureStillPersistsFixture(t *testing.T) {
	leagueRepo, teamRepo, fixtureRepo := seedFixtureSyncWorld()
	fixtureRepo.beforeInsertVenue = func(v fixture.Venue) error {
		return errors.New("venues table unavailable")
	}
	provider := &stubProvider{
		fetchFixtures: func(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalFixture, error) {
			return []ExternalFixture{fixturePayload(1001, 42, 50)}, nil
		},
	}
	svc := NewFixtureSyncService(provider, leagueRepo, teamRepo, fixtureRepo, logging.NewNop())

	summary, err := svc.SyncFixtures(t.Context(), []int64{39})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if summary.Inserted != 1 {
		t.Fatalf("summary = %+v, want the fixture persisted despite the venue failure", summary)
	}
	stored, _, _ := fixtureRepo.GetByID(t.Context(), 1001)
	if stored.VenueID != nil {
		t.Fatalf("stored venue id = %v, want nil after the venue write failed", stored.VenueID)
	}
}

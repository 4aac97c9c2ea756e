package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/odds"
	"github.com/fixturehub/football-data/internal/domain/prediction"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

func newFixtureServiceFixture() (*FixtureService, *memFixtureRepo, *memTeamRepo, *memOddsRepo, *memPredictionRepo) {
	fixtureRepo := newMemFixtureRepo()
	teamRepo := newMemTeamRepo()
	oddsRepo := newMemOddsRepo()
	predictionRepo := newMemPredictionRepo()
	matchDataRepo := newMemMatchDataRepo()
	svc := NewFixtureService(fixtureRepo, teamRepo, oddsRepo, predictionRepo, matchDataRepo, logging.NewNop())
	return svc, fixtureRepo, teamRepo, oddsRepo, predictionRepo
}

func TestFixtureServiceGetFixtureAggregatesSatellites(t *testing.T) {
	svc, fixtureRepo, _, oddsRepo, predictionRepo := newFixtureServiceFixture()
	fixtureRepo.fixtures[1001] = settledFixtureRow(1001, 1, 2, 2, 1, 13)
	oddsRepo.trees[1001] = odds.FixtureOdds{FixtureID: 1001, UpdateTime: time.Date(2025, 9, 12, 8, 0, 0, 0, time.UTC)}
	predictionRepo.byFixture[1001] = prediction.Prediction{FixtureID: 1001, WinnerTeamID: int64Ptr(1)}

	details, err := svc.GetFixture(t.Context(), 1001)
	if err != nil {
		t.Fatalf("get fixture: %v", err)
	}
	if details.Fixture.ID != 1001 {
		t.Fatalf("fixture id = %d", details.Fixture.ID)
	}
	if details.Odds == nil || details.Odds.FixtureID != 1001 {
		t.Fatalf("odds = %+v, want the stored tree attached", details.Odds)
	}
	if details.Prediction == nil || *details.Prediction.WinnerTeamID != 1 {
		t.Fatalf("prediction = %+v, want the stored forecast attached", details.Prediction)
	}
}

func TestFixtureServiceGetFixtureNotFound(t *testing.T) {
	svc, _, _, _, _ := newFixtureServiceFixture()

	if _, err := svc.GetFixture(t.Context(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFixtureServiceHeadToHead(t *testing.T) {
	svc, fixtureRepo, _, _, _ := newFixtureServiceFixture()
	fixtureRepo.fixtures[1] = settledFixtureRow(1, 1, 2, 2, 0, 1)
	fixtureRepo.fixtures[2] = settledFixtureRow(2, 2, 1, 3, 1, 8)
	fixtureRepo.fixtures[3] = settledFixtureRow(3, 1, 2, 1, 1, 15)
	// A meeting against someone else stays out of the tally.
	fixtureRepo.fixtures[4] = settledFixtureRow(4, 1, 3, 5, 0, 20)

	result, err := svc.HeadToHead(t.Context(), 1, 2, 0)
	if err != nil {
		t.Fatalf("head to head: %v", err)
	}
	if result.Team1Wins != 1 || result.Team2Wins != 1 || result.Draws != 1 {
		t.Fatalf("tally = %d/%d/%d, want 1/1/1", result.Team1Wins, result.Team2Wins, result.Draws)
	}
	if len(result.Matches) != 3 {
		t.Fatalf("matches = %d, want 3", len(result.Matches))
	}
	if result.Matches[0].ID != 3 {
		t.Fatalf("first match id = %d, want newest first", result.Matches[0].ID)
	}
}

func TestFixtureServiceHeadToHeadValidation(t *testing.T) {
	svc, _, _, _, _ := newFixtureServiceFixture()

	if _, err := svc.HeadToHead(t.Context(), 1, 1, 5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("same team err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.HeadToHead(t.Context(), 0, 2, 5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero team err = %v, want ErrInvalidInput", err)
	}
}

func TestFixtureServiceRecentForm(t *testing.T) {
	svc, fixtureRepo, teamRepo, _, _ := newFixtureServiceFixture()
	teamRepo.teams[2] = team.Team{ID: 2, Name: "Brentford"}
	teamRepo.teams[3] = team.Team{ID: 3, Name: "Chelsea"}

	fixtureRepo.fixtures[1] = settledFixtureRow(1, 1, 2, 2, 0, 1)  // home win
	fixtureRepo.fixtures[2] = settledFixtureRow(2, 3, 1, 2, 2, 8)  // away draw
	fixtureRepo.fixtures[3] = settledFixtureRow(3, 2, 1, 1, 0, 15) // away loss

	form, err := svc.RecentForm(t.Context(), 1, 0)
	if err != nil {
		t.Fatalf("recent form: %v", err)
	}
	if len(form) != 3 {
		t.Fatalf("entries = %d, want 3", len(form))
	}

	newest := form[0]
	if newest.FixtureID != 3 || newest.Outcome != "L" || newest.Home {
		t.Fatalf("newest entry = %+v, want the away loss first", newest)
	}
	if newest.OpponentID != 2 || newest.OpponentName != "Brentford" {
		t.Fatalf("newest opponent = %d %q", newest.OpponentID, newest.OpponentName)
	}
	if form[1].Outcome != "D" || form[1].GoalsFor != 2 || form[1].OpponentName != "Chelsea" {
		t.Fatalf("middle entry = %+v, want the away draw", form[1])
	}
	if form[2].Outcome != "W" || !form[2].Home || form[2].GoalsAgainst != 0 {
		t.Fatalf("oldest entry = %+v, want the home win", form[2])
	}
}

func TestFixtureServiceListBookmakers(t *testing.T) {
	svc, _, _, oddsRepo, _ := newFixtureServiceFixture()
	oddsRepo.bookmakers[8] = odds.Bookmaker{ID: 8, Name: "Bet365"}
	oddsRepo.bookmakers[2] = odds.Bookmaker{ID: 2, Name: "Marathonbet"}

	bookmakers, err := svc.ListBookmakers(t.Context())
	if err != nil {
		t.Fatalf("list bookmakers: %v", err)
	}
	if len(bookmakers) != 2 || bookmakers[0].ID != 2 {
		t.Fatalf("bookmakers = %+v, want both ordered by id", bookmakers)
	}
}

func TestFixtureServiceFixtureOddsNotFound(t *testing.T) {
	svc, fixtureRepo, _, _, _ := newFixtureServiceFixture()
	fixtureRepo.fixtures[1001] = settledFixtureRow(1001, 1, 2, 2, 1, 13)

	if _, err := svc.FixtureOdds(t.Context(), 1001); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFixtureServiceListFixturesAppliesFilter(t *testing.T) {
	svc, fixtureRepo, _, _, _ := newFixtureServiceFixture()
	fixtureRepo.fixtures[1] = settledFixtureRow(1, 1, 2, 2, 0, 1)
	fixtureRepo.fixtures[2] = settledFixtureRow(2, 3, 4, 1, 1, 8)

	items, err := svc.ListFixtures(t.Context(), fixture.ListFilter{TeamID: 1})
	if err != nil {
		t.Fatalf("list fixtures: %v", err)
	}
	if len(items) != 1 || items[0].ID != 1 {
		t.Fatalf("items = %+v, want only team 1's fixture", items)
	}
}

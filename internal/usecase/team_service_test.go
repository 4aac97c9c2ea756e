package usecase

import (
	"errors"
	"math"
	"testing"

	"github.com/fixturehub/football-data/internal/domain/playerstats"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTeamServiceStatistics(t *testing.T) {
	teamRepo := newMemTeamRepo()
	teamRepo.teams[1] = team.Team{ID: 1, Name: "Arsenal"}

	fixtureRepo := newMemFixtureRepo()
	fixtureRepo.fixtures[1] = settledFixtureRow(1, 1, 2, 2, 0, 1)  // home win, clean sheet
	fixtureRepo.fixtures[2] = settledFixtureRow(2, 3, 1, 3, 1, 8)  // away loss
	fixtureRepo.fixtures[3] = settledFixtureRow(3, 1, 4, 1, 1, 29) // home draw
	// In-play fixtures stay out of the aggregate.
	fixtureRepo.fixtures[4] = settledFixtureRow(4, 1, 5, 9, 0, 30)
	f := fixtureRepo.fixtures[4]
	f.StatusShort = "2H"
	f.IsFinal = false
	fixtureRepo.fixtures[4] = f

	statsRepo := newMemStatsRepo()
	statsRepo.rows[statsKey(101, 1, 39, 2025)] = playerstats.Statistics{
		PlayerID: 101, TeamID: 1, LeagueID: 39, SeasonYear: 2025,
		ShotsOnTarget: 7, TacklesTotal: 10, PassesAccuracy: intPtr(84),
	}
	statsRepo.rows[statsKey(102, 1, 39, 2025)] = playerstats.Statistics{
		PlayerID: 102, TeamID: 1, LeagueID: 39, SeasonYear: 2025,
		ShotsOnTarget: 2, TacklesTotal: 14, PassesAccuracy: intPtr(90),
	}
	// A keeper without a pass-accuracy figure stays out of that average.
	statsRepo.rows[statsKey(103, 1, 39, 2025)] = playerstats.Statistics{
		PlayerID: 103, TeamID: 1, LeagueID: 39, SeasonYear: 2025,
		TacklesTotal: 0,
	}

	svc := NewTeamService(teamRepo, fixtureRepo, statsRepo, logging.NewNop())

	out, err := svc.Statistics(t.Context(), 1, 2025)
	if err != nil {
		t.Fatalf("statistics: %v", err)
	}
	if out.Played != 3 || out.Won != 1 || out.Draw != 1 || out.Lost != 1 {
		t.Fatalf("record = %+v, want 1W 1D 1L over 3 played", out)
	}
	if out.GoalsFor != 4 || out.GoalsAgainst != 4 || out.GoalDifference != 0 {
		t.Fatalf("goals = %d:%d diff=%d, want 4:4", out.GoalsFor, out.GoalsAgainst, out.GoalDifference)
	}
	if out.CleanSheets != 1 {
		t.Fatalf("clean sheets = %d, want 1", out.CleanSheets)
	}
	if !almostEqual(out.ShotsOnTarget, 3) {
		t.Fatalf("shots on target per match = %v, want 3", out.ShotsOnTarget)
	}
	if !almostEqual(out.Tackles, 8) {
		t.Fatalf("tackles per match = %v, want 8", out.Tackles)
	}
	if !almostEqual(out.PassAccuracy, 87) {
		t.Fatalf("pass accuracy = %v, want 87", out.PassAccuracy)
	}
}

func TestTeamServiceStatisticsValidation(t *testing.T) {
	svc := NewTeamService(newMemTeamRepo(), newMemFixtureRepo(), newMemStatsRepo(), logging.NewNop())

	if _, err := svc.Statistics(t.Context(), 0, 2025); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing team err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Statistics(t.Context(), 1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing season err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Statistics(t.Context(), 1, 2025); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown team err = %v, want ErrNotFound", err)
	}
}

func TestTeamServiceGetTeam(t *testing.T) {
	teamRepo := newMemTeamRepo()
	teamRepo.teams[1] = team.Team{ID: 1, Name: "Arsenal", Country: "England"}
	svc := NewTeamService(teamRepo, newMemFixtureRepo(), newMemStatsRepo(), logging.NewNop())

	got, err := svc.GetTeam(t.Context(), 1)
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got.Name != "Arsenal" {
		t.Fatalf("team = %+v", got)
	}

	if _, err := svc.GetTeam(t.Context(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

package usecase

import (
	"errors"
	"testing"

	"github.com/fixturehub/football-data/internal/domain/prediction"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

func TestPredictionServiceAccuracy(t *testing.T) {
	leagueRepo := newMemLeagueRepo()
	leagueRepo.seedCurrentSeason(39, 2025)

	fixtureRepo := newMemFixtureRepo()
	fixtureRepo.fixtures[1] = settledFixtureRow(1, 1, 2, 2, 0, 1) // home win, predicted home
	fixtureRepo.fixtures[2] = settledFixtureRow(2, 3, 4, 0, 1, 8) // away win, predicted home
	fixtureRepo.fixtures[3] = settledFixtureRow(3, 1, 3, 1, 1, 15) // draw, winner picked: miss
	fixtureRepo.fixtures[4] = settledFixtureRow(4, 2, 4, 2, 2, 22) // draw, no winner pick: not evaluated
	fixtureRepo.fixtures[5] = settledFixtureRow(5, 2, 3, 1, 0, 29) // no stored prediction
	// Unsettled fixtures stay out of the denominator entirely.
	f := settledFixtureRow(6, 1, 4, 0, 0, 30)
	f.StatusShort = "NS"
	f.IsFinal = false
	f.GoalsHome = nil
	f.GoalsAway = nil
	fixtureRepo.fixtures[6] = f

	predictionRepo := newMemPredictionRepo()
	predictionRepo.byFixture[1] = prediction.Prediction{FixtureID: 1, WinnerTeamID: int64Ptr(1)}
	predictionRepo.byFixture[2] = prediction.Prediction{FixtureID: 2, WinnerTeamID: int64Ptr(3)}
	predictionRepo.byFixture[3] = prediction.Prediction{FixtureID: 3, WinnerTeamID: int64Ptr(1)}
	predictionRepo.byFixture[4] = prediction.Prediction{FixtureID: 4, Advice: "Double chance"}

	svc := NewPredictionService(leagueRepo, fixtureRepo, predictionRepo, logging.NewNop())

	out, err := svc.Accuracy(t.Context(), 39, 2025)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if out.SettledFixtures != 5 {
		t.Fatalf("settled = %d, want 5", out.SettledFixtures)
	}
	if out.Evaluated != 3 {
		t.Fatalf("evaluated = %d, want only the fixtures with a winner pick", out.Evaluated)
	}
	if out.Correct != 1 {
		t.Fatalf("correct = %d, want 1", out.Correct)
	}
	if out.Accuracy < 0.333 || out.Accuracy > 0.334 {
		t.Fatalf("accuracy = %v, want 1/3", out.Accuracy)
	}
}

func TestPredictionServiceAccuracyNoSettledFixtures(t *testing.T) {
	leagueRepo := newMemLeagueRepo()
	leagueRepo.seedCurrentSeason(39, 2025)
	svc := NewPredictionService(leagueRepo, newMemFixtureRepo(), newMemPredictionRepo(), logging.NewNop())

	out, err := svc.Accuracy(t.Context(), 39, 0)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if out.SeasonYear != 2025 {
		t.Fatalf("season = %d, want the current season resolved", out.SeasonYear)
	}
	if out.SettledFixtures != 0 || out.Accuracy != 0 {
		t.Fatalf("out = %+v, want an empty report", out)
	}
}

func TestPredictionServiceAccuracyValidation(t *testing.T) {
	svc := NewPredictionService(newMemLeagueRepo(), newMemFixtureRepo(), newMemPredictionRepo(), logging.NewNop())

	if _, err := svc.Accuracy(t.Context(), 0, 2025); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Accuracy(t.Context(), 39, 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("no current season err = %v, want ErrNotFound", err)
	}
}

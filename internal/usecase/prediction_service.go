package usecase

import (
	"context"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/prediction"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

type PredictionAccuracy struct {
	LeagueID        int64   `json:"league_id"`
	SeasonYear      int     `json:"season_year"`
	SettledFixtures int     `json:"settled_fixtures"`
	Evaluated       int     `json:"evaluated"`
	Correct         int     `json:"correct"`
	Accuracy        float64 `json:"accuracy"`
}

// PredictionService scores stored pre-match forecasts against settled results.
type PredictionService struct {
	leagueRepo     league.Repository
	fixtureRepo    fixture.Repository
	predictionRepo prediction.Repository
	logger         *logging.Logger
}

func NewPredictionService(
	leagueRepo league.Repository,
	fixtureRepo fixture.Repository,
	predictionRepo prediction.Repository,
	logger *logging.Logger,
) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PredictionService{
		leagueRepo:     leagueRepo,
		fixtureRepo:    fixtureRepo,
		predictionRepo: predictionRepo,
		logger:         logger,
	}
}

// Accuracy reports the share of settled fixtures whose predicted winner
// matched the result. Fixtures without a stored winner pick are not
// evaluated; a predicted winner on a drawn match counts as a miss.
func (s *PredictionService) Accuracy(ctx context.Context, leagueID int64, seasonYear int) (PredictionAccuracy, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Accuracy")
	defer span.End()

	if leagueID <= 0 {
		return PredictionAccuracy{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	if seasonYear <= 0 {
		season, found, err := s.leagueRepo.GetCurrentSeason(ctx, leagueID)
		if err != nil {
			return PredictionAccuracy{}, fmt.Errorf("get current season league=%d: %w", leagueID, err)
		}
		if !found {
			return PredictionAccuracy{}, fmt.Errorf("%w: league %d has no current season", ErrNotFound, leagueID)
		}
		seasonYear = season.Year
	}

	fixtures, err := s.fixtureRepo.List(ctx, fixture.ListFilter{LeagueID: leagueID, SeasonYear: seasonYear})
	if err != nil {
		return PredictionAccuracy{}, fmt.Errorf("list fixtures league=%d season=%d: %w", leagueID, seasonYear, err)
	}

	out := PredictionAccuracy{LeagueID: leagueID, SeasonYear: seasonYear}

	settled := make([]fixture.Fixture, 0, len(fixtures))
	ids := make([]int64, 0, len(fixtures))
	for _, f := range fixtures {
		if !f.IsFinal || f.GoalsHome == nil || f.GoalsAway == nil {
			continue
		}
		settled = append(settled, f)
		ids = append(ids, f.ID)
	}
	out.SettledFixtures = len(settled)
	if len(settled) == 0 {
		return out, nil
	}

	predictions, err := s.predictionRepo.ListByFixtureIDs(ctx, ids)
	if err != nil {
		return PredictionAccuracy{}, fmt.Errorf("list predictions league=%d season=%d: %w", leagueID, seasonYear, err)
	}
	byFixture := make(map[int64]prediction.Prediction, len(predictions))
	for _, p := range predictions {
		byFixture[p.FixtureID] = p
	}

	for _, f := range settled {
		p, ok := byFixture[f.ID]
		if !ok || p.WinnerTeamID == nil {
			continue
		}
		out.Evaluated++

		var winnerID int64
		switch {
		case *f.GoalsHome > *f.GoalsAway:
			winnerID = f.HomeTeamID
		case *f.GoalsAway > *f.GoalsHome:
			winnerID = f.AwayTeamID
		}
		if winnerID != 0 && winnerID == *p.WinnerTeamID {
			out.Correct++
		}
	}

	if out.Evaluated > 0 {
		out.Accuracy = float64(out.Correct) / float64(out.Evaluated)
	}

	return out, nil
}

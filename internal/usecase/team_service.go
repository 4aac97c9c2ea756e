package usecase

import (
	"context"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/playerstats"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

type TeamStatistics struct {
	TeamID         int64   `json:"team_id"`
	SeasonYear     int     `json:"season_year"`
	Played         int     `json:"played"`
	Won            int     `json:"won"`
	Draw           int     `json:"draw"`
	Lost           int     `json:"lost"`
	GoalsFor       int     `json:"goals_for"`
	GoalsAgainst   int     `json:"goals_against"`
	GoalDifference int     `json:"goal_difference"`
	CleanSheets    int     `json:"clean_sheets"`
	ShotsOnTarget  float64 `json:"shots_on_target_per_match"`
	Tackles        float64 `json:"tackles_per_match"`
	PassAccuracy   float64 `json:"pass_accuracy_pct"`
}

// TeamService serves team reads and the season aggregate built from settled
// fixtures plus the squad's accumulated statistics.
type TeamService struct {
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	statsRepo   playerstats.Repository
	logger      *logging.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	statsRepo playerstats.Repository,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		statsRepo:   statsRepo,
		logger:      logger,
	}
}

func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	t, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team %d: %w", teamID, err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
	}
	return t, nil
}

// Statistics aggregates one team's season. Match results come from settled
// fixtures only; per-match averages divide the squad's summed numbers by
// matches played.
func (s *TeamService) Statistics(ctx context.Context, teamID int64, seasonYear int) (TeamStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Statistics")
	defer span.End()

	if teamID <= 0 {
		return TeamStatistics{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if seasonYear <= 0 {
		return TeamStatistics{}, fmt.Errorf("%w: season year is required", ErrInvalidInput)
	}

	if _, found, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		return TeamStatistics{}, fmt.Errorf("get team %d: %w", teamID, err)
	} else if !found {
		return TeamStatistics{}, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
	}

	fixtures, err := s.fixtureRepo.List(ctx, fixture.ListFilter{TeamID: teamID, SeasonYear: seasonYear})
	if err != nil {
		return TeamStatistics{}, fmt.Errorf("list fixtures team=%d season=%d: %w", teamID, seasonYear, err)
	}

	out := TeamStatistics{TeamID: teamID, SeasonYear: seasonYear}
	for _, f := range fixtures {
		if !f.IsFinal || f.GoalsHome == nil || f.GoalsAway == nil {
			continue
		}
		scored, conceded := *f.GoalsHome, *f.GoalsAway
		if f.AwayTeamID == teamID {
			scored, conceded = conceded, scored
		}

		out.Played++
		out.GoalsFor += scored
		out.GoalsAgainst += conceded
		if conceded == 0 {
			out.CleanSheets++
		}
		switch {
		case scored > conceded:
			out.Won++
		case scored == conceded:
			out.Draw++
		default:
			out.Lost++
		}
	}
	out.GoalDifference = out.GoalsFor - out.GoalsAgainst

	squad, err := s.statsRepo.ListByTeamSeason(ctx, teamID, seasonYear)
	if err != nil {
		return TeamStatistics{}, fmt.Errorf("list player statistics team=%d season=%d: %w", teamID, seasonYear, err)
	}

	var shotsOnTarget, tackles int
	var accuracySum, accuracyCount int
	for _, row := range squad {
		shotsOnTarget += row.ShotsOnTarget
		tackles += row.TacklesTotal
		if row.PassesAccuracy != nil {
			accuracySum += *row.PassesAccuracy
			accuracyCount++
		}
	}
	if out.Played > 0 {
		out.ShotsOnTarget = float64(shotsOnTarget) / float64(out.Played)
		out.Tackles = float64(tackles) / float64(out.Played)
	}
	// Pass accuracy is a percentage per player, so it averages over the
	// players who have one rather than over matches.
	if accuracyCount > 0 {
		out.PassAccuracy = float64(accuracySum) / float64(accuracyCount)
	}

	return out, nil
}

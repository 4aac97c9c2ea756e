package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/platform/cache"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

type StandingRow struct {
	Rank           int    `json:"rank"`
	TeamID         int64  `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Draw           int    `json:"draw"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// StandingService derives a league table from stored fixtures instead of
// trusting any provider table. Only settled fixtures count; teams linked to
// the season but yet to play appear with zeroed rows.
type StandingService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	store       *cache.Store
	logger      *logging.Logger
}

func NewStandingService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *StandingService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StandingService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		store:       store,
		logger:      logger,
	}
}

// Standings returns the table for a league season. seasonYear <= 0 selects
// the league's current season.
func (s *StandingService) Standings(ctx context.Context, leagueID int64, seasonYear int) ([]StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.Standings")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	if seasonYear <= 0 {
		season, found, err := s.leagueRepo.GetCurrentSeason(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("get current season league=%d: %w", leagueID, err)
		}
		if !found {
			return nil, fmt.Errorf("%w: league %d has no current season", ErrNotFound, leagueID)
		}
		seasonYear = season.Year
	}

	if s.store == nil {
		return s.computeStandings(ctx, leagueID, seasonYear)
	}

	key := fmt.Sprintf("standings:%d:%d", leagueID, seasonYear)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.computeStandings(ctx, leagueID, seasonYear)
	})
	if err != nil {
		return nil, err
	}
	rows, ok := value.([]StandingRow)
	if !ok {
		return nil, fmt.Errorf("unexpected cached standings type %T", value)
	}
	return rows, nil
}

func (s *StandingService) computeStandings(ctx context.Context, leagueID int64, seasonYear int) ([]StandingRow, error) {
	teams, err := s.teamRepo.ListByLeagueSeason(ctx, leagueID, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("list teams league=%d season=%d: %w", leagueID, seasonYear, err)
	}

	fixtures, err := s.fixtureRepo.List(ctx, fixture.ListFilter{LeagueID: leagueID, SeasonYear: seasonYear})
	if err != nil {
		return nil, fmt.Errorf("list fixtures league=%d season=%d: %w", leagueID, seasonYear, err)
	}

	rowsByTeam := make(map[int64]*StandingRow, len(teams))
	for _, t := range teams {
		rowsByTeam[t.ID] = &StandingRow{TeamID: t.ID, TeamName: t.Name}
	}

	for _, f := range fixtures {
		if !f.IsFinal || f.GoalsHome == nil || f.GoalsAway == nil {
			continue
		}
		home := rowsByTeam[f.HomeTeamID]
		away := rowsByTeam[f.AwayTeamID]
		if home == nil || away == nil {
			continue
		}
		applyResult(home, *f.GoalsHome, *f.GoalsAway)
		applyResult(away, *f.GoalsAway, *f.GoalsHome)
	}

	out := make([]StandingRow, 0, len(rowsByTeam))
	for _, row := range rowsByTeam {
		out = append(out, *row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].GoalDifference != out[j].GoalDifference {
			return out[i].GoalDifference > out[j].GoalDifference
		}
		if out[i].GoalsFor != out[j].GoalsFor {
			return out[i].GoalsFor > out[j].GoalsFor
		}
		return out[i].TeamName < out[j].TeamName
	})

	for idx := range out {
		out[idx].Rank = idx + 1
	}

	return out, nil
}

func applyResult(row *StandingRow, scored, conceded int) {
	row.Played++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	row.GoalDifference = row.GoalsFor - row.GoalsAgainst
	switch {
	case scored > conceded:
		row.Won++
		row.Points += 3
	case scored == conceded:
		row.Draw++
		row.Points++
	default:
		row.Lost++
	}
}

package usecase

import (
	"context"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

type LeagueDetails struct {
	League  league.League   `json:"league"`
	Seasons []league.Season `json:"seasons"`
}

type LeagueService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	logger     *logging.Logger
}

func NewLeagueService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	logger *logging.Logger,
) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeagueService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		logger:     logger,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.ListLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID int64) (LeagueDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	if leagueID <= 0 {
		return LeagueDetails{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, found, err := s.leagueRepo.GetLeagueByID(ctx, leagueID)
	if err != nil {
		return LeagueDetails{}, fmt.Errorf("get league %d: %w", leagueID, err)
	}
	if !found {
		return LeagueDetails{}, fmt.Errorf("%w: league %d", ErrNotFound, leagueID)
	}

	seasons, err := s.leagueRepo.ListSeasonsByLeague(ctx, leagueID)
	if err != nil {
		return LeagueDetails{}, fmt.Errorf("list seasons league=%d: %w", leagueID, err)
	}

	return LeagueDetails{League: l, Seasons: seasons}, nil
}

// ListTeams lists the teams linked to a league season. seasonYear <= 0 selects
// the league's current season.
func (s *LeagueService) ListTeams(ctx context.Context, leagueID int64, seasonYear int) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListTeams")
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

	teams, err := s.teamRepo.ListByLeagueSeason(ctx, leagueID, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("list teams league=%d season=%d: %w", leagueID, seasonYear, err)
	}
	return teams, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

// TeamSyncService reconciles the teams of every configured league's current
// season, plus the team-season membership links standings are built from.
type TeamSyncService struct {
	provider   FootballDataProvider
	leagueRepo league.Repository
	teamRepo   team.Repository
	logger     *logging.Logger
}

func NewTeamSyncService(
	provider FootballDataProvider,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	logger *logging.Logger,
) *TeamSyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamSyncService{
		provider:   provider,
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		logger:     logger,
	}
}

func (s *TeamSyncService) SyncTeams(ctx context.Context, leagueIDs []int64) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamSyncService.SyncTeams")
	defer span.End()

	var summary SyncSummary
	if s.provider == nil || s.leagueRepo == nil || s.teamRepo == nil {
		return summary, fmt.Errorf("%w: team sync is not fully configured", ErrDependencyUnavailable)
	}

	for _, leagueID := range leagueIDs {
		season, found, err := s.leagueRepo.GetCurrentSeason(ctx, leagueID)
		if err != nil {
			s.logger.ErrorContext(ctx, "load current season failed", "league_id", leagueID, "error", err)
			summary.Failed++
			continue
		}
		if !found {
			s.logger.WarnContext(ctx, "skip team sync: league has no current season", "league_id", leagueID)
			summary.Skipped++
			continue
		}

		items, err := s.provider.FetchTeams(ctx, leagueID, season.Year)
		if err != nil {
			if errors.Is(err, ErrMissingCredential) {
				return summary, fmt.Errorf("fetch teams league=%d: %w", leagueID, err)
			}
			s.logger.ErrorContext(ctx, "fetch teams failed", "league_id", leagueID, "season", season.Year, "error", err)
			summary.Failed++
			continue
		}

		for _, item := range items {
			mapped := mapExternalTeam(item)
			if err := mapped.Validate(); err != nil {
				s.logger.WarnContext(ctx, "skip team with invalid payload", "league_id", leagueID, "team_id", item.TeamID, "error", err)
				summary.Skipped++
				continue
			}

			outcome, err := s.reconcileTeam(ctx, mapped)
			if err != nil {
				s.logger.ErrorContext(ctx, "reconcile team failed", "league_id", leagueID, "team_id", mapped.ID, "error", err)
				summary.Failed++
				continue
			}
			summary.count(outcome)

			if err := s.ensureSeasonLink(ctx, mapped.ID, leagueID, season.Year); err != nil {
				s.logger.ErrorContext(ctx, "link team to season failed", "league_id", leagueID, "team_id", mapped.ID, "season", season.Year, "error", err)
				summary.Failed++
			}
		}
	}

	return summary, nil
}

func (s *TeamSyncService) reconcileTeam(ctx context.Context, incoming team.Team) (syncOutcome, error) {
	existing, found, err := s.teamRepo.GetByID(ctx, incoming.ID)
	if err != nil {
		return 0, fmt.Errorf("get team %d: %w", incoming.ID, err)
	}
	if !found {
		if insErr := s.teamRepo.Insert(ctx, incoming); insErr != nil {
			existing, found, err = s.teamRepo.GetByID(ctx, incoming.ID)
			if err != nil || !found {
				return 0, fmt.Errorf("insert team %d: %w", incoming.ID, insErr)
			}
		} else {
			return outcomeInserted, nil
		}
	}

	merged, changed := mergeTeam(existing, incoming)
	if !changed {
		return outcomeUnchanged, nil
	}
	if err := s.teamRepo.Update(ctx, merged); err != nil {
		return 0, fmt.Errorf("update team %d: %w", incoming.ID, err)
	}
	return outcomeUpdated, nil
}

// ensureSeasonLink is quieter than the entity reconciles: links carry no
// payload beyond their key, so an existing link never counts as an update.
func (s *TeamSyncService) ensureSeasonLink(ctx context.Context, teamID, leagueID int64, seasonYear int) error {
	_, found, err := s.teamRepo.GetSeasonLink(ctx, teamID, leagueID, seasonYear)
	if err != nil {
		return fmt.Errorf("get season link: %w", err)
	}
	if found {
		return nil
	}

	link := team.SeasonLink{TeamID: teamID, LeagueID: leagueID, SeasonYear: seasonYear}
	if insErr := s.teamRepo.InsertSeasonLink(ctx, link); insErr != nil {
		_, found, err = s.teamRepo.GetSeasonLink(ctx, teamID, leagueID, seasonYear)
		if err != nil || !found {
			return fmt.Errorf("insert season link: %w", insErr)
		}
	}
	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

type LeagueSyncConfig struct {
	LeagueIDs []int64
}

// LeagueSyncService reconciles the configured leagues and their seasons from
// the provider. Leagues run first in every full sync: everything else hangs
// off a league row and its current season.
type LeagueSyncService struct {
	provider   FootballDataProvider
	leagueRepo league.Repository
	cfg        LeagueSyncConfig
	logger     *logging.Logger
}

func NewLeagueSyncService(
	provider FootballDataProvider,
	leagueRepo league.Repository,
	cfg LeagueSyncConfig,
	logger *logging.Logger,
) *LeagueSyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeagueSyncService{
		provider:   provider,
		leagueRepo: leagueRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *LeagueSyncService) SyncLeagues(ctx context.Context) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueSyncService.SyncLeagues")
	defer span.End()

	var summary SyncSummary
	if len(s.cfg.LeagueIDs) == 0 {
		return summary, fmt.Errorf("%w: no league ids configured", ErrInvalidInput)
	}

	for _, leagueID := range s.cfg.LeagueIDs {
		part, err := s.SyncLeague(ctx, leagueID)
		summary.Merge(part)
		if err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// SyncLeague reconciles a single league and its seasons. The returned error is
// non-nil only for the fatal credential condition or missing wiring; per-record
// trouble lands in the summary.
func (s *LeagueSyncService) SyncLeague(ctx context.Context, leagueID int64) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueSyncService.SyncLeague")
	defer span.End()

	var summary SyncSummary
	if s.provider == nil || s.leagueRepo == nil {
		return summary, fmt.Errorf("%w: league sync is not fully configured", ErrDependencyUnavailable)
	}

	item, found, err := s.provider.FetchLeague(ctx, leagueID)
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			return summary, fmt.Errorf("fetch league %d: %w", leagueID, err)
		}
		s.logger.ErrorContext(ctx, "fetch league failed", "league_id", leagueID, "error", err)
		summary.Failed++
		return summary, nil
	}
	if !found {
		s.logger.WarnContext(ctx, "league not found at provider", "league_id", leagueID)
		summary.Skipped++
		return summary, nil
	}

	mapped := mapExternalLeague(item)
	if err := mapped.Validate(); err != nil {
		s.logger.WarnContext(ctx, "skip league with invalid payload", "league_id", leagueID, "error", err)
		summary.Skipped++
		return summary, nil
	}

	outcome, err := s.reconcileLeague(ctx, mapped)
	if err != nil {
		s.logger.ErrorContext(ctx, "reconcile league failed", "league_id", leagueID, "error", err)
		summary.Failed++
		return summary, nil
	}
	summary.count(outcome)

	for _, seasonItem := range item.Seasons {
		season := mapExternalSeason(mapped.ID, seasonItem)
		if err := season.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip season with invalid payload", "league_id", leagueID, "year", seasonItem.Year, "error", err)
			summary.Skipped++
			continue
		}

		outcome, err := s.reconcileSeason(ctx, season)
		if err != nil {
			s.logger.ErrorContext(ctx, "reconcile season failed", "league_id", leagueID, "year", season.Year, "error", err)
			summary.Failed++
			continue
		}
		summary.count(outcome)
	}

	return summary, nil
}

func (s *LeagueSyncService) reconcileLeague(ctx context.Context, incoming league.League) (syncOutcome, error) {
	existing, found, err := s.leagueRepo.GetLeagueByID(ctx, incoming.ID)
	if err != nil {
		return 0, fmt.Errorf("get league %d: %w", incoming.ID, err)
	}
	if !found {
		if insErr := s.leagueRepo.InsertLeague(ctx, incoming); insErr != nil {
			// A concurrent writer may have claimed the key; re-read before failing.
			existing, found, err = s.leagueRepo.GetLeagueByID(ctx, incoming.ID)
			if err != nil || !found {
				return 0, fmt.Errorf("insert league %d: %w", incoming.ID, insErr)
			}
		} else {
			return outcomeInserted, nil
		}
	}

	merged, changed := mergeLeague(existing, incoming)
	if !changed {
		return outcomeUnchanged, nil
	}
	if err := s.leagueRepo.UpdateLeague(ctx, merged); err != nil {
		return 0, fmt.Errorf("update league %d: %w", incoming.ID, err)
	}
	return outcomeUpdated, nil
}

func (s *LeagueSyncService) reconcileSeason(ctx context.Context, incoming league.Season) (syncOutcome, error) {
	existing, found, err := s.leagueRepo.GetSeasonByLeagueAndYear(ctx, incoming.LeagueID, incoming.Year)
	if err != nil {
		return 0, fmt.Errorf("get season league=%d year=%d: %w", incoming.LeagueID, incoming.Year, err)
	}
	if !found {
		if insErr := s.leagueRepo.InsertSeason(ctx, incoming); insErr != nil {
			existing, found, err = s.leagueRepo.GetSeasonByLeagueAndYear(ctx, incoming.LeagueID, incoming.Year)
			if err != nil || !found {
				return 0, fmt.Errorf("insert season league=%d year=%d: %w", incoming.LeagueID, incoming.Year, insErr)
			}
		} else {
			return outcomeInserted, nil
		}
	}

	merged, changed := mergeSeason(existing, incoming)
	if !changed {
		return outcomeUnchanged, nil
	}
	if err := s.leagueRepo.UpdateSeason(ctx, merged); err != nil {
		return 0, fmt.Errorf("update season league=%d year=%d: %w", incoming.LeagueID, incoming.Year, err)
	}
	return outcomeUpdated, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/player"
	"github.com/fixturehub/football-data/internal/domain/playerstats"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

type PlayerSyncConfig struct {
	// PageDelay spaces out page fetches so the provider's rate limit holds.
	PageDelay time.Duration
}

// PlayerSyncService reconciles player profiles and their per-season statistics
// for every team of each configured league's current season. The provider
// pages player squads, so both operations walk the same paginated fetch.
type PlayerSyncService struct {
	provider   FootballDataProvider
	leagueRepo league.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	statsRepo  playerstats.Repository
	cfg        PlayerSyncConfig
	logger     *logging.Logger
}

func NewPlayerSyncService(
	provider FootballDataProvider,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	statsRepo playerstats.Repository,
	cfg PlayerSyncConfig,
	logger *logging.Logger,
) *PlayerSyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerSyncService{
		provider:   provider,
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *PlayerSyncService) SyncPlayers(ctx context.Context, leagueIDs []int64) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSyncService.SyncPlayers")
	defer span.End()

	var summary SyncSummary
	if s.provider == nil || s.leagueRepo == nil || s.teamRepo == nil || s.playerRepo == nil {
		return summary, fmt.Errorf("%w: player sync is not fully configured", ErrDependencyUnavailable)
	}

	err := s.walkSquads(ctx, leagueIDs, &summary, func(ctx context.Context, seasonYear int, teamID int64, item ExternalPlayer) {
		mapped := mapExternalPlayer(seasonYear, teamID, item)
		if err := mapped.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip player with invalid payload", "team_id", teamID, "player_id", item.PlayerID, "error", err)
			summary.Skipped++
			return
		}

		outcome, err := s.reconcilePlayer(ctx, mapped)
		if err != nil {
			s.logger.ErrorContext(ctx, "reconcile player failed", "player_id", mapped.ID, "season", seasonYear, "error", err)
			summary.Failed++
			return
		}
		summary.count(outcome)
	})

	return summary, err
}

func (s *PlayerSyncService) SyncPlayerStatistics(ctx context.Context, leagueIDs []int64) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerSyncService.SyncPlayerStatistics")
	defer span.End()

	var summary SyncSummary
	if s.provider == nil || s.leagueRepo == nil || s.teamRepo == nil || s.playerRepo == nil || s.statsRepo == nil {
		return summary, fmt.Errorf("%w: player statistics sync is not fully configured", ErrDependencyUnavailable)
	}

	err := s.walkSquads(ctx, leagueIDs, &summary, func(ctx context.Context, seasonYear int, teamID int64, item ExternalPlayer) {
		// Statistics rows depend on the player profile being ingested first.
		_, found, err := s.playerRepo.GetByIDAndSeason(ctx, item.PlayerID, seasonYear)
		if err != nil {
			s.logger.ErrorContext(ctx, "lookup player for statistics failed", "player_id", item.PlayerID, "season", seasonYear, "error", err)
			summary.Failed += len(item.Statistics)
			return
		}
		if !found {
			s.logger.WarnContext(ctx, "skip statistics for unknown player", "player_id", item.PlayerID, "season", seasonYear)
			summary.Skipped += len(item.Statistics)
			return
		}

		for _, block := range item.Statistics {
			mapped := mapExternalPlayerStatistics(item.PlayerID, block)
			if err := mapped.Validate(); err != nil {
				s.logger.WarnContext(ctx, "skip statistics with invalid payload", "player_id", item.PlayerID, "error", err)
				summary.Skipped++
				continue
			}

			outcome, err := s.reconcileStatistics(ctx, mapped)
			if err != nil {
				s.logger.ErrorContext(ctx, "reconcile player statistics failed", "player_id", mapped.PlayerID, "team_id", mapped.TeamID, "error", err)
				summary.Failed++
				continue
			}
			summary.count(outcome)
		}
	})

	return summary, err
}

// walkSquads drives the per-league, per-team paginated player fetch and hands
// each payload record to visit. A missing credential aborts the whole run;
// any other per-team failure is counted and the walk continues.
func (s *PlayerSyncService) walkSquads(
	ctx context.Context,
	leagueIDs []int64,
	summary *SyncSummary,
	visit func(ctx context.Context, seasonYear int, teamID int64, item ExternalPlayer),
) error {
	for _, leagueID := range leagueIDs {
		season, found, err := s.leagueRepo.GetCurrentSeason(ctx, leagueID)
		if err != nil {
			s.logger.ErrorContext(ctx, "load current season failed", "league_id", leagueID, "error", err)
			summary.Failed++
			continue
		}
		if !found {
			s.logger.WarnContext(ctx, "skip player sync: league has no current season", "league_id", leagueID)
			summary.Skipped++
			continue
		}

		teams, err := s.teamRepo.ListByLeagueSeason(ctx, leagueID, season.Year)
		if err != nil {
			s.logger.ErrorContext(ctx, "list teams failed", "league_id", leagueID, "season", season.Year, "error", err)
			summary.Failed++
			continue
		}

		for _, t := range teams {
			page := 1
			for {
				items, paging, err := s.provider.FetchPlayersPage(ctx, t.ID, season.Year, page)
				if err != nil {
					if errors.Is(err, ErrMissingCredential) {
						return fmt.Errorf("fetch players team=%d season=%d: %w", t.ID, season.Year, err)
					}
					s.logger.ErrorContext(ctx, "fetch players page failed", "team_id", t.ID, "season", season.Year, "page", page, "error", err)
					summary.Failed++
					break
				}
				if len(items) == 0 {
					break
				}

				for _, item := range items {
					visit(ctx, season.Year, t.ID, item)
				}

				if paging.Total <= 0 || paging.Current >= paging.Total {
					break
				}
				page = paging.Current + 1
				if err := sleepBetweenPages(ctx, s.cfg.PageDelay); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (s *PlayerSyncService) reconcilePlayer(ctx context.Context, incoming player.Player) (syncOutcome, error) {
	existing, found, err := s.playerRepo.GetByIDAndSeason(ctx, incoming.ID, incoming.SeasonYear)
	if err != nil {
		return 0, fmt.Errorf("get player %d season=%d: %w", incoming.ID, incoming.SeasonYear, err)
	}
	if !found {
		if insErr := s.playerRepo.Insert(ctx, incoming); insErr != nil {
			existing, found, err = s.playerRepo.GetByIDAndSeason(ctx, incoming.ID, incoming.SeasonYear)
			if err != nil || !found {
				return 0, fmt.Errorf("insert player %d season=%d: %w", incoming.ID, incoming.SeasonYear, insErr)
			}
		} else {
			return outcomeInserted, nil
		}
	}

	merged, changed := mergePlayer(existing, incoming)
	if !changed {
		return outcomeUnchanged, nil
	}
	if err := s.playerRepo.Update(ctx, merged); err != nil {
		return 0, fmt.Errorf("update player %d season=%d: %w", incoming.ID, incoming.SeasonYear, err)
	}
	return outcomeUpdated, nil
}

func (s *PlayerSyncService) reconcileStatistics(ctx context.Context, incoming playerstats.Statistics) (syncOutcome, error) {
	existing, found, err := s.statsRepo.GetByNaturalKey(ctx, incoming.PlayerID, incoming.TeamID, incoming.LeagueID, incoming.SeasonYear)
	if err != nil {
		return 0, fmt.Errorf("get player statistics player=%d team=%d: %w", incoming.PlayerID, incoming.TeamID, err)
	}
	if !found {
		if insErr := s.statsRepo.Insert(ctx, incoming); insErr != nil {
			existing, found, err = s.statsRepo.GetByNaturalKey(ctx, incoming.PlayerID, incoming.TeamID, incoming.LeagueID, incoming.SeasonYear)
			if err != nil || !found {
				return 0, fmt.Errorf("insert player statistics player=%d team=%d: %w", incoming.PlayerID, incoming.TeamID, insErr)
			}
		} else {
			return outcomeInserted, nil
		}
	}

	merged, changed := mergePlayerStatistics(existing, incoming)
	if !changed {
		return outcomeUnchanged, nil
	}
	if err := s.statsRepo.Update(ctx, merged); err != nil {
		return 0, fmt.Errorf("update player statistics player=%d team=%d: %w", incoming.PlayerID, incoming.TeamID, err)
	}
	return outcomeUpdated, nil
}

func sleepBetweenPages(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

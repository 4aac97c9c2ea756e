package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/matchdata"
	"github.com/fixturehub/football-data/internal/domain/odds"
	"github.com/fixturehub/football-data/internal/domain/prediction"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

type FixtureDataSyncConfig struct {
	// PastWindow and FutureWindow bound which fixtures get per-fixture data
	// refreshed, relative to now.
	PastWindow   time.Duration
	FutureWindow time.Duration
	PageDelay    time.Duration
}

// FixtureDataSyncService reconciles the per-fixture satellites: odds trees,
// predictions, match statistics and match events. Odds, statistics and events
// are replaceable trees; predictions are single-row upserts.
type FixtureDataSyncService struct {
	provider       FootballDataProvider
	leagueRepo     league.Repository
	fixtureRepo    fixture.Repository
	oddsRepo       odds.Repository
	predictionRepo prediction.Repository
	matchDataRepo  matchdata.Repository
	cfg            FixtureDataSyncConfig
	logger         *logging.Logger
	now            func() time.Time
}

func NewFixtureDataSyncService(
	provider FootballDataProvider,
	leagueRepo league.Repository,
	fixtureRepo fixture.Repository,
	oddsRepo odds.Repository,
	predictionRepo prediction.Repository,
	matchDataRepo matchdata.Repository,
	cfg FixtureDataSyncConfig,
	logger *logging.Logger,
) *FixtureDataSyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureDataSyncService{
		provider:       provider,
		leagueRepo:     leagueRepo,
		fixtureRepo:    fixtureRepo,
		oddsRepo:       oddsRepo,
		predictionRepo: predictionRepo,
		matchDataRepo:  matchDataRepo,
		cfg:            cfg,
		logger:         logger,
		now:            time.Now,
	}
}

// SyncFixtureData refreshes every per-fixture satellite in one pass.
func (s *FixtureDataSyncService) SyncFixtureData(ctx context.Context, leagueIDs []int64) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureDataSyncService.SyncFixtureData")
	defer span.End()

	var summary SyncSummary
	for _, run := range []func(context.Context, []int64) (SyncSummary, error){
		s.SyncOdds,
		s.SyncPredictions,
		s.SyncMatchStatistics,
		s.SyncMatchEvents,
	} {
		part, err := run(ctx, leagueIDs)
		summary.Merge(part)
		if err != nil {
			return summary, err
		}
	}
	return summary, nil
}

func (s *FixtureDataSyncService) SyncOdds(ctx context.Context, leagueIDs []int64) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureDataSyncService.SyncOdds")
	defer span.End()

	var summary SyncSummary
	if s.provider == nil || s.leagueRepo == nil || s.fixtureRepo == nil || s.oddsRepo == nil {
		return summary, fmt.Errorf("%w: odds sync is not fully configured", ErrDependencyUnavailable)
	}

	for _, leagueID := range leagueIDs {
		season, found, err := s.leagueRepo.GetCurrentSeason(ctx, leagueID)
		if err != nil {
			s.logger.ErrorContext(ctx, "load current season failed", "league_id", leagueID, "error", err)
			summary.Failed++
			continue
		}
		if !found {
			s.logger.WarnContext(ctx, "skip odds sync: league has no current season", "league_id", leagueID)
			summary.Skipped++
			continue
		}

		page := 1
		for {
			items, paging, err := s.provider.FetchOddsPage(ctx, leagueID, season.Year, page)
			if err != nil {
				if errors.Is(err, ErrMissingCredential) {
					return summary, fmt.Errorf("fetch odds league=%d: %w", leagueID, err)
				}
				s.logger.ErrorContext(ctx, "fetch odds page failed", "league_id", leagueID, "season", season.Year, "page", page, "error", err)
				summary.Failed++
				break
			}
			if len(items) == 0 {
				break
			}

			for _, item := range items {
				s.reconcileOdds(ctx, item, &summary)
			}

			if paging.Total <= 0 || paging.Current >= paging.Total {
				break
			}
			page = paging.Current + 1
			if err := sleepBetweenPages(ctx, s.cfg.PageDelay); err != nil {
				return summary, err
			}
		}
	}

	return summary, nil
}

func (s *FixtureDataSyncService) reconcileOdds(ctx context.Context, item ExternalFixtureOdds, summary *SyncSummary) {
	_, found, err := s.fixtureRepo.GetByID(ctx, item.FixtureID)
	if err != nil {
		s.logger.ErrorContext(ctx, "lookup fixture for odds failed", "fixture_id", item.FixtureID, "error", err)
		summary.Failed++
		return
	}
	if !found {
		s.logger.WarnContext(ctx, "skip odds for unknown fixture", "fixture_id", item.FixtureID)
		summary.Skipped++
		return
	}

	mapped := mapExternalFixtureOdds(item)
	if err := mapped.Validate(); err != nil {
		s.logger.WarnContext(ctx, "skip odds with invalid payload", "fixture_id", item.FixtureID, "error", err)
		summary.Skipped++
		return
	}

	_, existed, err := s.oddsRepo.GetByFixture(ctx, item.FixtureID)
	if err != nil {
		s.logger.ErrorContext(ctx, "lookup stored odds failed", "fixture_id", item.FixtureID, "error", err)
		summary.Failed++
		return
	}
	if err := s.oddsRepo.Replace(ctx, mapped); err != nil {
		s.logger.ErrorContext(ctx, "replace odds failed", "fixture_id", item.FixtureID, "error", err)
		summary.Failed++
		return
	}
	if existed {
		summary.Updated++
	} else {
		summary.Inserted++
	}
}

func (s *FixtureDataSyncService) SyncPredictions(ctx context.Context, leagueIDs []int64) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureDataSyncService.SyncPredictions")
	defer span.End()

	var summary SyncSummary
	if s.provider == nil || s.leagueRepo == nil || s.fixtureRepo == nil || s.predictionRepo == nil {
		return summary, fmt.Errorf("%w: prediction sync is not fully configured", ErrDependencyUnavailable)
	}

	err := s.walkWindow(ctx, leagueIDs, &summary, false, func(ctx context.Context, f fixture.Fixture) error {
		item, found, err := s.provider.FetchPrediction(ctx, f.ID)
		if err != nil {
			if errors.Is(err, ErrMissingCredential) {
				return fmt.Errorf("fetch prediction fixture=%d: %w", f.ID, err)
			}
			s.logger.ErrorContext(ctx, "fetch prediction failed", "fixture_id", f.ID, "error", err)
			summary.Failed++
			return nil
		}
		if !found {
			s.logger.WarnContext(ctx, "no prediction available", "fixture_id", f.ID)
			summary.Skipped++
			return nil
		}

		mapped := mapExternalPrediction(item)
		mapped.FixtureID = f.ID
		if err := mapped.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip prediction with invalid payload", "fixture_id", f.ID, "error", err)
			summary.Skipped++
			return nil
		}

		outcome, err := s.reconcilePrediction(ctx, mapped)
		if err != nil {
			s.logger.ErrorContext(ctx, "reconcile prediction failed", "fixture_id", f.ID, "error", err)
			summary.Failed++
			return nil
		}
		summary.count(outcome)
		return nil
	})

	return summary, err
}

func (s *FixtureDataSyncService) reconcilePrediction(ctx context.Context, incoming prediction.Prediction) (syncOutcome, error) {
	existing, found, err := s.predictionRepo.GetByFixture(ctx, incoming.FixtureID)
	if err != nil {
		return 0, fmt.Errorf("get prediction fixture=%d: %w", incoming.FixtureID, err)
	}
	if !found {
		if insErr := s.predictionRepo.Insert(ctx, incoming); insErr != nil {
			existing, found, err = s.predictionRepo.GetByFixture(ctx, incoming.FixtureID)
			if err != nil || !found {
				return 0, fmt.Errorf("insert prediction fixture=%d: %w", incoming.FixtureID, insErr)
			}
		} else {
			return outcomeInserted, nil
		}
	}

	merged, changed := mergePrediction(existing, incoming)
	if !changed {
		return outcomeUnchanged, nil
	}
	if err := s.predictionRepo.Update(ctx, merged); err != nil {
		return 0, fmt.Errorf("update prediction fixture=%d: %w", incoming.FixtureID, err)
	}
	return outcomeUpdated, nil
}

func (s *FixtureDataSyncService) SyncMatchStatistics(ctx context.Context, leagueIDs []int64) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureDataSyncService.SyncMatchStatistics")
	defer span.End()

	var summary SyncSummary
	if s.provider == nil || s.leagueRepo == nil || s.fixtureRepo == nil || s.matchDataRepo == nil {
		return summary, fmt.Errorf("%w: match statistics sync is not fully configured", ErrDependencyUnavailable)
	}

	err := s.walkWindow(ctx, leagueIDs, &summary, true, func(ctx context.Context, f fixture.Fixture) error {
		items, err := s.provider.FetchFixtureStatistics(ctx, f.ID)
		if err != nil {
			if errors.Is(err, ErrMissingCredential) {
				return fmt.Errorf("fetch match statistics fixture=%d: %w", f.ID, err)
			}
			s.logger.ErrorContext(ctx, "fetch match statistics failed", "fixture_id", f.ID, "error", err)
			summary.Failed++
			return nil
		}
		if len(items) == 0 {
			summary.Skipped++
			return nil
		}

		mapped := mapExternalTeamStatistics(f.ID, items)
		for _, row := range mapped {
			if err := row.Validate(); err != nil {
				s.logger.WarnContext(ctx, "skip match statistics with invalid payload", "fixture_id", f.ID, "error", err)
				summary.Skipped++
				return nil
			}
		}

		stored, err := s.matchDataRepo.ListStatisticsByFixture(ctx, f.ID)
		if err != nil {
			s.logger.ErrorContext(ctx, "lookup stored match statistics failed", "fixture_id", f.ID, "error", err)
			summary.Failed++
			return nil
		}
		if err := s.matchDataRepo.ReplaceStatistics(ctx, f.ID, mapped); err != nil {
			s.logger.ErrorContext(ctx, "replace match statistics failed", "fixture_id", f.ID, "error", err)
			summary.Failed++
			return nil
		}
		if len(stored) > 0 {
			summary.Updated++
		} else {
			summary.Inserted++
		}
		return nil
	})

	return summary, err
}

func (s *FixtureDataSyncService) SyncMatchEvents(ctx context.Context, leagueIDs []int64) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureDataSyncService.SyncMatchEvents")
	defer span.End()

	var summary SyncSummary
	if s.provider == nil || s.leagueRepo == nil || s.fixtureRepo == nil || s.matchDataRepo == nil {
		return summary, fmt.Errorf("%w: match events sync is not fully configured", ErrDependencyUnavailable)
	}

	err := s.walkWindow(ctx, leagueIDs, &summary, true, func(ctx context.Context, f fixture.Fixture) error {
		items, err := s.provider.FetchFixtureEvents(ctx, f.ID)
		if err != nil {
			if errors.Is(err, ErrMissingCredential) {
				return fmt.Errorf("fetch match events fixture=%d: %w", f.ID, err)
			}
			s.logger.ErrorContext(ctx, "fetch match events failed", "fixture_id", f.ID, "error", err)
			summary.Failed++
			return nil
		}
		if len(items) == 0 {
			summary.Skipped++
			return nil
		}

		mapped := mapExternalFixtureEvents(f.ID, items)
		for _, row := range mapped {
			if err := row.Validate(); err != nil {
				s.logger.WarnContext(ctx, "skip match events with invalid payload", "fixture_id", f.ID, "error", err)
				summary.Skipped++
				return nil
			}
		}

		stored, err := s.matchDataRepo.ListEventsByFixture(ctx, f.ID)
		if err != nil {
			s.logger.ErrorContext(ctx, "lookup stored match events failed", "fixture_id", f.ID, "error", err)
			summary.Failed++
			return nil
		}
		if err := s.matchDataRepo.ReplaceEvents(ctx, f.ID, mapped); err != nil {
			s.logger.ErrorContext(ctx, "replace match events failed", "fixture_id", f.ID, "error", err)
			summary.Failed++
			return nil
		}
		if len(stored) > 0 {
			summary.Updated++
		} else {
			summary.Inserted++
		}
		return nil
	})

	return summary, err
}

// walkWindow visits the fixtures of each league's current season whose
// kickoff falls inside the configured window. startedOnly narrows to fixtures
// that have kicked off, for satellites that only exist once play begins.
func (s *FixtureDataSyncService) walkWindow(
	ctx context.Context,
	leagueIDs []int64,
	summary *SyncSummary,
	startedOnly bool,
	visit func(ctx context.Context, f fixture.Fixture) error,
) error {
	now := s.now().UTC()
	from := now.Add(-s.cfg.PastWindow)
	to := now.Add(s.cfg.FutureWindow)

	for _, leagueID := range leagueIDs {
		season, found, err := s.leagueRepo.GetCurrentSeason(ctx, leagueID)
		if err != nil {
			s.logger.ErrorContext(ctx, "load current season failed", "league_id", leagueID, "error", err)
			summary.Failed++
			continue
		}
		if !found {
			s.logger.WarnContext(ctx, "skip fixture data sync: league has no current season", "league_id", leagueID)
			summary.Skipped++
			continue
		}

		fixtures, err := s.fixtureRepo.List(ctx, fixture.ListFilter{
			LeagueID:   leagueID,
			SeasonYear: season.Year,
			From:       &from,
			To:         &to,
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "list fixtures in window failed", "league_id", leagueID, "season", season.Year, "error", err)
			summary.Failed++
			continue
		}

		for _, f := range fixtures {
			if startedOnly && f.Date.After(now) {
				continue
			}
			if err := visit(ctx, f); err != nil {
				return err
			}
		}
	}

	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

// FixtureSyncService reconciles the fixture calendar of every configured
// league's current season. Fixtures referencing a team that has not been
// ingested are skipped rather than half-written; venues are created the first
// time a fixture mentions them.
type FixtureSyncService struct {
	provider    FootballDataProvider
	leagueRepo  league.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	logger      *logging.Logger
}

func NewFixtureSyncService(
	provider FootballDataProvider,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	logger *logging.Logger,
) *FixtureSyncService {
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureSyncService{
		provider:    provider,
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		logger:      logger,
	}
}

func (s *FixtureSyncService) SyncFixtures(ctx context.Context, leagueIDs []int64) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureSyncService.SyncFixtures")
	defer span.End()

	var summary SyncSummary
	if s.provider == nil || s.leagueRepo == nil || s.teamRepo == nil || s.fixtureRepo == nil {
		return summary, fmt.Errorf("%w: fixture sync is not fully configured", ErrDependencyUnavailable)
	}

	for _, leagueID := range leagueIDs {
		season, found, err := s.leagueRepo.GetCurrentSeason(ctx, leagueID)
		if err != nil {
			s.logger.ErrorContext(ctx, "load current season failed", "league_id", leagueID, "error", err)
			summary.Failed++
			continue
		}
		if !found {
			s.logger.WarnContext(ctx, "skip fixture sync: league has no current season", "league_id", leagueID)
			summary.Skipped++
			continue
		}

		items, err := s.provider.FetchFixtures(ctx, leagueID, season.Year)
		if err != nil {
			if errors.Is(err, ErrMissingCredential) {
				return summary, fmt.Errorf("fetch fixtures league=%d: %w", leagueID, err)
			}
			s.logger.ErrorContext(ctx, "fetch fixtures failed", "league_id", leagueID, "season", season.Year, "error", err)
			summary.Failed++
			continue
		}

		for _, item := range items {
			mapped := mapExternalFixture(item)
			if err := mapped.Validate(); err != nil {
				s.logger.WarnContext(ctx, "skip fixture with invalid payload", "fixture_id", item.FixtureID, "error", err)
				summary.Skipped++
				continue
			}

			known, err := s.teamsKnown(ctx, mapped.HomeTeamID, mapped.AwayTeamID)
			if err != nil {
				s.logger.ErrorContext(ctx, "lookup fixture teams failed", "fixture_id", mapped.ID, "error", err)
				summary.Failed++
				continue
			}
			if !known {
				s.logger.WarnContext(ctx, "skip fixture referencing unknown team",
					"fixture_id", mapped.ID, "home_team_id", mapped.HomeTeamID, "away_team_id", mapped.AwayTeamID)
				summary.Skipped++
				continue
			}

			if mapped.VenueID != nil {
				if err := s.ensureVenue(ctx, fixture.Venue{
					ID:   *mapped.VenueID,
					Name: item.Venue.Name,
					City: item.Venue.City,
				}); err != nil {
					s.logger.ErrorContext(ctx, "ensure venue failed", "fixture_id", mapped.ID, "venue_id", *mapped.VenueID, "error", err)
					// Persist the fixture anyway, just without the venue link.
					mapped.VenueID = nil
				}
			}

			outcome, err := s.reconcileFixture(ctx, mapped)
			if err != nil {
				s.logger.ErrorContext(ctx, "reconcile fixture failed", "fixture_id", mapped.ID, "error", err)
				summary.Failed++
				continue
			}
			summary.count(outcome)
		}
	}

	return summary, nil
}

func (s *FixtureSyncService) teamsKnown(ctx context.Context, homeTeamID, awayTeamID int64) (bool, error) {
	_, homeFound, err := s.teamRepo.GetByID(ctx, homeTeamID)
	if err != nil {
		return false, fmt.Errorf("get home team %d: %w", homeTeamID, err)
	}
	_, awayFound, err := s.teamRepo.GetByID(ctx, awayTeamID)
	if err != nil {
		return false, fmt.Errorf("get away team %d: %w", awayTeamID, err)
	}
	return homeFound && awayFound, nil
}

func (s *FixtureSyncService) ensureVenue(ctx context.Context, incoming fixture.Venue) error {
	existing, found, err := s.fixtureRepo.GetVenueByID(ctx, incoming.ID)
	if err != nil {
		return fmt.Errorf("get venue %d: %w", incoming.ID, err)
	}
	if !found {
		if insErr := s.fixtureRepo.InsertVenue(ctx, incoming); insErr != nil {
			existing, found, err = s.fixtureRepo.GetVenueByID(ctx, incoming.ID)
			if err != nil || !found {
				return fmt.Errorf("insert venue %d: %w", incoming.ID, insErr)
			}
		} else {
			return nil
		}
	}

	merged, changed := mergeVenue(existing, incoming)
	if !changed {
		return nil
	}
	if err := s.fixtureRepo.UpdateVenue(ctx, merged); err != nil {
		return fmt.Errorf("update venue %d: %w", incoming.ID, err)
	}
	return nil
}

func (s *FixtureSyncService) reconcileFixture(ctx context.Context, incoming fixture.Fixture) (syncOutcome, error) {
	existing, found, err := s.fixtureRepo.GetByID(ctx, incoming.ID)
	if err != nil {
		return 0, fmt.Errorf("get fixture %d: %w", incoming.ID, err)
	}
	if !found {
		if insErr := s.fixtureRepo.Insert(ctx, incoming); insErr != nil {
			existing, found, err = s.fixtureRepo.GetByID(ctx, incoming.ID)
			if err != nil || !found {
				return 0, fmt.Errorf("insert fixture %d: %w", incoming.ID, insErr)
			}
		} else {
			return outcomeInserted, nil
		}
	}

	merged, changed := mergeFixture(existing, incoming)
	if !changed {
		return outcomeUnchanged, nil
	}
	if err := s.fixtureRepo.Update(ctx, merged); err != nil {
		return 0, fmt.Errorf("update fixture %d: %w", incoming.ID, err)
	}
	return outcomeUpdated, nil
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/matchdata"
	"github.com/fixturehub/football-data/internal/domain/odds"
	"github.com/fixturehub/football-data/internal/domain/prediction"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

const defaultMatchLimit = 10

type FixtureDetails struct {
	Fixture    fixture.Fixture
	Odds       *odds.FixtureOdds
	Prediction *prediction.Prediction
	Statistics []matchdata.TeamStatistics
	Events     []matchdata.Event
}

type HeadToHeadResult struct {
	Team1ID   int64             `json:"team1_id"`
	Team2ID   int64             `json:"team2_id"`
	Team1Wins int               `json:"team1_wins"`
	Team2Wins int               `json:"team2_wins"`
	Draws     int               `json:"draws"`
	Matches   []fixture.Fixture `json:"matches"`
}

type FormEntry struct {
	FixtureID    int64     `json:"fixture_id"`
	Date         time.Time `json:"date"`
	OpponentID   int64     `json:"opponent_id"`
	OpponentName string    `json:"opponent_name"`
	Home         bool      `json:"home"`
	GoalsFor     int       `json:"goals_for"`
	GoalsAgainst int       `json:"goals_against"`
	Outcome      string    `json:"outcome"`
}

// FixtureService serves fixture reads plus the fixture-derived aggregates
// (head-to-head record, recent form).
type FixtureService struct {
	fixtureRepo    fixture.Repository
	teamRepo       team.Repository
	oddsRepo       odds.Repository
	predictionRepo prediction.Repository
	matchDataRepo  matchdata.Repository
	logger         *logging.Logger
}

func NewFixtureService(
	fixtureRepo fixture.Repository,
	teamRepo team.Repository,
	oddsRepo odds.Repository,
	predictionRepo prediction.Repository,
	matchDataRepo matchdata.Repository,
	logger *logging.Logger,
) *FixtureService {
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureService{
		fixtureRepo:    fixtureRepo,
		teamRepo:       teamRepo,
		oddsRepo:       oddsRepo,
		predictionRepo: predictionRepo,
		matchDataRepo:  matchDataRepo,
		logger:         logger,
	}
}

func (s *FixtureService) ListFixtures(ctx context.Context, filter fixture.ListFilter) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixtures")
	defer span.End()

	items, err := s.fixtureRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	return items, nil
}

func (s *FixtureService) GetFixture(ctx context.Context, fixtureID int64) (FixtureDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetFixture")
	defer span.End()

	if fixtureID <= 0 {
		return FixtureDetails{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	f, found, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return FixtureDetails{}, fmt.Errorf("get fixture %d: %w", fixtureID, err)
	}
	if !found {
		return FixtureDetails{}, fmt.Errorf("%w: fixture %d", ErrNotFound, fixtureID)
	}

	details := FixtureDetails{Fixture: f}

	if tree, ok, err := s.oddsRepo.GetByFixture(ctx, fixtureID); err != nil {
		return FixtureDetails{}, fmt.Errorf("get odds fixture=%d: %w", fixtureID, err)
	} else if ok {
		details.Odds = &tree
	}

	if p, ok, err := s.predictionRepo.GetByFixture(ctx, fixtureID); err != nil {
		return FixtureDetails{}, fmt.Errorf("get prediction fixture=%d: %w", fixtureID, err)
	} else if ok {
		details.Prediction = &p
	}

	stats, err := s.matchDataRepo.ListStatisticsByFixture(ctx, fixtureID)
	if err != nil {
		return FixtureDetails{}, fmt.Errorf("list match statistics fixture=%d: %w", fixtureID, err)
	}
	details.Statistics = stats

	events, err := s.matchDataRepo.ListEventsByFixture(ctx, fixtureID)
	if err != nil {
		return FixtureDetails{}, fmt.Errorf("list match events fixture=%d: %w", fixtureID, err)
	}
	details.Events = events

	return details, nil
}

func (s *FixtureService) FixtureOdds(ctx context.Context, fixtureID int64) (odds.FixtureOdds, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.FixtureOdds")
	defer span.End()

	if fixtureID <= 0 {
		return odds.FixtureOdds{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	tree, found, err := s.oddsRepo.GetByFixture(ctx, fixtureID)
	if err != nil {
		return odds.FixtureOdds{}, fmt.Errorf("get odds fixture=%d: %w", fixtureID, err)
	}
	if !found {
		return odds.FixtureOdds{}, fmt.Errorf("%w: odds for fixture %d", ErrNotFound, fixtureID)
	}
	return tree, nil
}

func (s *FixtureService) FixturePrediction(ctx context.Context, fixtureID int64) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.FixturePrediction")
	defer span.End()

	if fixtureID <= 0 {
		return prediction.Prediction{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	p, found, err := s.predictionRepo.GetByFixture(ctx, fixtureID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get prediction fixture=%d: %w", fixtureID, err)
	}
	if !found {
		return prediction.Prediction{}, fmt.Errorf("%w: prediction for fixture %d", ErrNotFound, fixtureID)
	}
	return p, nil
}

func (s *FixtureService) FixtureStatistics(ctx context.Context, fixtureID int64) ([]matchdata.TeamStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.FixtureStatistics")
	defer span.End()

	if fixtureID <= 0 {
		return nil, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	stats, err := s.matchDataRepo.ListStatisticsByFixture(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("list match statistics fixture=%d: %w", fixtureID, err)
	}
	return stats, nil
}

func (s *FixtureService) FixtureEvents(ctx context.Context, fixtureID int64) ([]matchdata.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.FixtureEvents")
	defer span.End()

	if fixtureID <= 0 {
		return nil, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	events, err := s.matchDataRepo.ListEventsByFixture(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("list match events fixture=%d: %w", fixtureID, err)
	}
	return events, nil
}

func (s *FixtureService) ListBookmakers(ctx context.Context) ([]odds.Bookmaker, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListBookmakers")
	defer span.End()

	bookmakers, err := s.oddsRepo.ListBookmakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmakers: %w", err)
	}
	return bookmakers, nil
}

// HeadToHead tallies the most recent settled meetings between two teams.
func (s *FixtureService) HeadToHead(ctx context.Context, teamID1, teamID2 int64, limit int) (HeadToHeadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.HeadToHead")
	defer span.End()

	if teamID1 <= 0 || teamID2 <= 0 {
		return HeadToHeadResult{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if teamID1 == teamID2 {
		return HeadToHeadResult{}, fmt.Errorf("%w: team ids must differ", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultMatchLimit
	}

	matches, err := s.fixtureRepo.ListHeadToHead(ctx, teamID1, teamID2, limit)
	if err != nil {
		return HeadToHeadResult{}, fmt.Errorf("list head to head team1=%d team2=%d: %w", teamID1, teamID2, err)
	}

	out := HeadToHeadResult{
		Team1ID: teamID1,
		Team2ID: teamID2,
		Matches: matches,
	}
	for _, m := range matches {
		if m.GoalsHome == nil || m.GoalsAway == nil {
			continue
		}
		var winnerID int64
		switch {
		case *m.GoalsHome > *m.GoalsAway:
			winnerID = m.HomeTeamID
		case *m.GoalsAway > *m.GoalsHome:
			winnerID = m.AwayTeamID
		}
		switch winnerID {
		case teamID1:
			out.Team1Wins++
		case teamID2:
			out.Team2Wins++
		default:
			out.Draws++
		}
	}

	return out, nil
}

// RecentForm lists a team's latest settled fixtures as W/D/L entries, newest
// first.
func (s *FixtureService) RecentForm(ctx context.Context, teamID int64, limit int) ([]FormEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.RecentForm")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultMatchLimit
	}

	matches, err := s.fixtureRepo.ListRecentByTeam(ctx, teamID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent fixtures team=%d: %w", teamID, err)
	}

	opponentNames := make(map[int64]string)
	out := make([]FormEntry, 0, len(matches))
	for _, m := range matches {
		if m.GoalsHome == nil || m.GoalsAway == nil {
			continue
		}

		entry := FormEntry{
			FixtureID: m.ID,
			Date:      m.Date,
			Home:      m.HomeTeamID == teamID,
		}
		if entry.Home {
			entry.OpponentID = m.AwayTeamID
			entry.GoalsFor = *m.GoalsHome
			entry.GoalsAgainst = *m.GoalsAway
		} else {
			entry.OpponentID = m.HomeTeamID
			entry.GoalsFor = *m.GoalsAway
			entry.GoalsAgainst = *m.GoalsHome
		}

		name, ok := opponentNames[entry.OpponentID]
		if !ok {
			opponent, found, err := s.teamRepo.GetByID(ctx, entry.OpponentID)
			if err != nil {
				return nil, fmt.Errorf("get opponent team %d: %w", entry.OpponentID, err)
			}
			if found {
				name = opponent.Name
			}
			opponentNames[entry.OpponentID] = name
		}
		entry.OpponentName = name

		switch {
		case entry.GoalsFor > entry.GoalsAgainst:
			entry.Outcome = "W"
		case entry.GoalsFor == entry.GoalsAgainst:
			entry.Outcome = "D"
		default:
			entry.Outcome = "L"
		}

		out = append(out, entry)
	}

	return out, nil
}

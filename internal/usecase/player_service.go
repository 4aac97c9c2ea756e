package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fixturehub/football-data/internal/domain/player"
	"github.com/fixturehub/football-data/internal/domain/playerstats"
	"github.com/fixturehub/football-data/internal/platform/logging"
)

const defaultRankingLimit = 20

const (
	RankingStatGoals   = "goals"
	RankingStatAssists = "assists"
	RankingStatRating  = "rating"
)

type PlayerWithStatistics struct {
	Player     player.Player            `json:"player"`
	Statistics []playerstats.Statistics `json:"statistics"`
}

type RankedPlayer struct {
	Rank        int      `json:"rank"`
	PlayerID    int64    `json:"player_id"`
	Name        string   `json:"name"`
	TeamID      int64    `json:"team_id"`
	Position    string   `json:"position"`
	Appearances int      `json:"appearances"`
	Goals       int      `json:"goals"`
	Assists     int      `json:"assists"`
	Rating      *float64 `json:"rating,omitempty"`
}

// PlayerService serves player reads and the statistics-derived rankings.
type PlayerService struct {
	playerRepo player.Repository
	statsRepo  playerstats.Repository
	logger     *logging.Logger
}

func NewPlayerService(
	playerRepo player.Repository,
	statsRepo playerstats.Repository,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		logger:     logger,
	}
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64, seasonYear int) (PlayerWithStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	if playerID <= 0 {
		return PlayerWithStatistics{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if seasonYear <= 0 {
		return PlayerWithStatistics{}, fmt.Errorf("%w: season year is required", ErrInvalidInput)
	}

	p, found, err := s.playerRepo.GetByIDAndSeason(ctx, playerID, seasonYear)
	if err != nil {
		return PlayerWithStatistics{}, fmt.Errorf("get player %d season=%d: %w", playerID, seasonYear, err)
	}
	if !found {
		return PlayerWithStatistics{}, fmt.Errorf("%w: player %d season %d", ErrNotFound, playerID, seasonYear)
	}

	all, err := s.statsRepo.ListByPlayerSeason(ctx, playerID, seasonYear)
	if err != nil {
		return PlayerWithStatistics{}, fmt.Errorf("list statistics player=%d season=%d: %w", playerID, seasonYear, err)
	}

	return PlayerWithStatistics{Player: p, Statistics: all}, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, teamID int64, seasonYear int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if seasonYear <= 0 {
		return nil, fmt.Errorf("%w: season year is required", ErrInvalidInput)
	}

	players, err := s.playerRepo.ListByTeamSeason(ctx, teamID, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("list players team=%d season=%d: %w", teamID, seasonYear, err)
	}
	return players, nil
}

// TopPlayers ranks a team's squad by goals scored in the season.
func (s *PlayerService) TopPlayers(ctx context.Context, teamID int64, seasonYear int, limit int) ([]RankedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopPlayers")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if seasonYear <= 0 {
		return nil, fmt.Errorf("%w: season year is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultRankingLimit
	}

	rows, err := s.statsRepo.ListByTeamSeason(ctx, teamID, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("list player statistics team=%d season=%d: %w", teamID, seasonYear, err)
	}

	return s.rank(ctx, rows, RankingStatGoals, limit)
}

// Rankings orders a league season's players by one statistic: goals, assists
// or rating. Players without a rating are left out of the rating board.
func (s *PlayerService) Rankings(ctx context.Context, leagueID int64, seasonYear int, stat string, limit int) ([]RankedPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Rankings")
	defer span.End()

	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if seasonYear <= 0 {
		return nil, fmt.Errorf("%w: season year is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultRankingLimit
	}

	stat = strings.TrimSpace(strings.ToLower(stat))
	if stat == "" {
		stat = RankingStatGoals
	}
	switch stat {
	case RankingStatGoals, RankingStatAssists, RankingStatRating:
	default:
		return nil, fmt.Errorf("%w: unsupported ranking stat=%s", ErrInvalidInput, stat)
	}

	rows, err := s.statsRepo.ListByLeagueSeason(ctx, leagueID, seasonYear)
	if err != nil {
		return nil, fmt.Errorf("list player statistics league=%d season=%d: %w", leagueID, seasonYear, err)
	}

	return s.rank(ctx, rows, stat, limit)
}

func (s *PlayerService) rank(ctx context.Context, rows []playerstats.Statistics, stat string, limit int) ([]RankedPlayer, error) {
	if stat == RankingStatRating {
		filtered := rows[:0:0]
		for _, row := range rows {
			if row.Rating != nil {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	sort.SliceStable(rows, func(i, j int) bool {
		switch stat {
		case RankingStatAssists:
			if rows[i].Assists != rows[j].Assists {
				return rows[i].Assists > rows[j].Assists
			}
		case RankingStatRating:
			if *rows[i].Rating != *rows[j].Rating {
				return *rows[i].Rating > *rows[j].Rating
			}
		default:
			if rows[i].GoalsTotal != rows[j].GoalsTotal {
				return rows[i].GoalsTotal > rows[j].GoalsTotal
			}
		}
		if rows[i].Appearances != rows[j].Appearances {
			return rows[i].Appearances < rows[j].Appearances
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}

	names := make(map[int64]string, len(rows))
	out := make([]RankedPlayer, 0, len(rows))
	for idx, row := range rows {
		name, ok := names[row.PlayerID]
		if !ok {
			p, found, err := s.playerRepo.GetByIDAndSeason(ctx, row.PlayerID, row.SeasonYear)
			if err != nil {
				return nil, fmt.Errorf("get player %d season=%d: %w", row.PlayerID, row.SeasonYear, err)
			}
			if found {
				name = p.Name
			}
			names[row.PlayerID] = name
		}

		out = append(out, RankedPlayer{
			Rank:        idx + 1,
			PlayerID:    row.PlayerID,
			Name:        name,
			TeamID:      row.TeamID,
			Position:    row.Position,
			Appearances: row.Appearances,
			Goals:       row.GoalsTotal,
			Assists:     row.Assists,
			Rating:      row.Rating,
		})
	}

	return out, nil
}

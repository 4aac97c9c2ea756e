package postgres

import (
	"context"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/playerstats"
	qb "github.com/fixturehub/football-data/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) GetByNaturalKey(ctx context.Context, playerID, teamID, leagueID int64, seasonYear int) (playerstats.Statistics, bool, error) {
	query, args, err := qb.Select("*").From("player_statistics").
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("team_id", teamID),
			qb.Eq("league_id", leagueID),
			qb.Eq("season_year", seasonYear),
		).
		ToSQL()
	if err != nil {
		return playerstats.Statistics{}, false, fmt.Errorf("build get player statistics query: %w", err)
	}

	var row playerStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerstats.Statistics{}, false, nil
		}
		return playerstats.Statistics{}, false, fmt.Errorf("get player statistics: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerStatsRepository) Insert(ctx context.Context, s playerstats.Statistics) error {
	query, args, err := qb.InsertInto("player_statistics").
		Columns(
			"player_id", "team_id", "league_id", "season_year",
			"position", "rating", "captain",
			"appearances", "lineups", "minutes", "number",
			"substitutes_in", "substitutes_out", "substitutes_bench",
			"shots_total", "shots_on_target",
			"goals_total", "goals_conceded", "assists", "saves",
			"passes_total", "passes_key", "passes_accuracy",
			"tackles_total", "blocks", "interceptions",
			"duels_total", "duels_won",
			"dribbles_attempts", "dribbles_success", "dribbles_past",
			"fouls_drawn", "fouls_committed",
			"cards_yellow", "cards_yellowred", "cards_red",
			"penalty_won", "penalty_committed", "penalty_scored", "penalty_missed", "penalty_saved",
		).
		Values(
			s.PlayerID, s.TeamID, s.LeagueID, s.SeasonYear,
			s.Position, s.Rating, s.Captain,
			s.Appearances, s.Lineups, s.Minutes, s.Number,
			s.SubstitutesIn, s.SubstitutesOut, s.SubstitutesBench,
			s.ShotsTotal, s.ShotsOnTarget,
			s.GoalsTotal, s.GoalsConceded, s.Assists, s.Saves,
			s.PassesTotal, s.PassesKey, s.PassesAccuracy,
			s.TacklesTotal, s.Blocks, s.Interceptions,
			s.DuelsTotal, s.DuelsWon,
			s.DribblesAttempts, s.DribblesSuccess, s.DribblesPast,
			s.FoulsDrawn, s.FoulsCommitted,
			s.CardsYellow, s.CardsYellowRed, s.CardsRed,
			s.PenaltyWon, s.PenaltyCommitted, s.PenaltyScored, s.PenaltyMissed, s.PenaltySaved,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player statistics query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player statistics: %w", err)
	}
	return nil
}

func (r *PlayerStatsRepository) Update(ctx context.Context, s playerstats.Statistics) error {
	query, args, err := qb.Update("player_statistics").
		Set("position", s.Position).
		Set("rating", s.Rating).
		Set("captain", s.Captain).
		Set("appearances", s.Appearances).
		Set("lineups", s.Lineups).
		Set("minutes", s.Minutes).
		Set("number", s.Number).
		Set("substitutes_in", s.SubstitutesIn).
		Set("substitutes_out", s.SubstitutesOut).
		Set("substitutes_bench", s.SubstitutesBench).
		Set("shots_total", s.ShotsTotal).
		Set("shots_on_target", s.ShotsOnTarget).
		Set("goals_total", s.GoalsTotal).
		Set("goals_conceded", s.GoalsConceded).
		Set("assists", s.Assists).
		Set("saves", s.Saves).
		Set("passes_total", s.PassesTotal).
		Set("passes_key", s.PassesKey).
		Set("passes_accuracy", s.PassesAccuracy).
		Set("tackles_total", s.TacklesTotal).
		Set("blocks", s.Blocks).
		Set("interceptions", s.Interceptions).
		Set("duels_total", s.DuelsTotal).
		Set("duels_won", s.DuelsWon).
		Set("dribbles_attempts", s.DribblesAttempts).
		Set("dribbles_success", s.DribblesSuccess).
		Set("dribbles_past", s.DribblesPast).
		Set("fouls_drawn", s.FoulsDrawn).
		Set("fouls_committed", s.FoulsCommitted).
		Set("cards_yellow", s.CardsYellow).
		Set("cards_yellowred", s.CardsYellowRed).
		Set("cards_red", s.CardsRed).
		Set("penalty_won", s.PenaltyWon).
		Set("penalty_committed", s.PenaltyCommitted).
		Set("penalty_scored", s.PenaltyScored).
		Set("penalty_missed", s.PenaltyMissed).
		Set("penalty_saved", s.PenaltySaved).
		SetExpr("updated_at", "now()").
		Where(
			qb.Eq("player_id", s.PlayerID),
			qb.Eq("team_id", s.TeamID),
			qb.Eq("league_id", s.LeagueID),
			qb.Eq("season_year", s.SeasonYear),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player statistics query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player statistics: %w", err)
	}
	return nil
}

func (r *PlayerStatsRepository) ListByPlayerSeason(ctx context.Context, playerID int64, seasonYear int) ([]playerstats.Statistics, error) {
	return r.list(ctx, qb.Eq("player_id", playerID), qb.Eq("season_year", seasonYear))
}

func (r *PlayerStatsRepository) ListByTeamSeason(ctx context.Context, teamID int64, seasonYear int) ([]playerstats.Statistics, error) {
	return r.list(ctx, qb.Eq("team_id", teamID), qb.Eq("season_year", seasonYear))
}

func (r *PlayerStatsRepository) ListByLeagueSeason(ctx context.Context, leagueID int64, seasonYear int) ([]playerstats.Statistics, error) {
	return r.list(ctx, qb.Eq("league_id", leagueID), qb.Eq("season_year", seasonYear))
}

func (r *PlayerStatsRepository) list(ctx context.Context, conds ...qb.Condition) ([]playerstats.Statistics, error) {
	query, args, err := qb.Select("*").From("player_statistics").
		Where(conds...).
		OrderBy("player_id", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player statistics query: %w", err)
	}

	var rows []playerStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player statistics: %w", err)
	}

	out := make([]playerstats.Statistics, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/player"
	qb "github.com/fixturehub/football-data/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByIDAndSeason(ctx context.Context, playerID int64, seasonYear int) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("season_year", seasonYear),
		).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertInto("players").
		Columns(
			"player_id", "season_year", "team_id", "name", "firstname", "lastname",
			"age", "birth_date", "birth_place", "birth_country", "nationality",
			"height", "weight", "injured", "photo",
		).
		Values(
			p.ID, p.SeasonYear, p.TeamID, p.Name, p.Firstname, p.Lastname,
			p.Age, p.BirthDate, p.BirthPlace, p.BirthCountry, p.Nationality,
			p.Height, p.Weight, p.Injured, p.Photo,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("players").
		Set("team_id", p.TeamID).
		Set("name", p.Name).
		Set("firstname", p.Firstname).
		Set("lastname", p.Lastname).
		Set("age", p.Age).
		Set("birth_date", p.BirthDate).
		Set("birth_place", p.BirthPlace).
		Set("birth_country", p.BirthCountry).
		Set("nationality", p.Nationality).
		Set("height", p.Height).
		Set("weight", p.Weight).
		Set("injured", p.Injured).
		Set("photo", p.Photo).
		SetExpr("updated_at", "now()").
		Where(
			qb.Eq("player_id", p.ID),
			qb.Eq("season_year", p.SeasonYear),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (r *PlayerRepository) ListByTeamSeason(ctx context.Context, teamID int64, seasonYear int) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("season_year", seasonYear),
		).
		OrderBy("name", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) ListBySeason(ctx context.Context, seasonYear int) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("season_year", seasonYear)).
		OrderBy("name", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by season query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by season: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

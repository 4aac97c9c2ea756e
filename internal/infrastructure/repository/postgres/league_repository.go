package postgres

import (
	"context"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/league"
	qb "github.com/fixturehub/football-data/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) ListLeagues(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From("leagues").
		OrderBy("league_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *LeagueRepository) GetLeagueByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(qb.Eq("league_id", leagueID)).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) InsertLeague(ctx context.Context, l league.League) error {
	query, args, err := qb.InsertInto("leagues").
		Columns("league_id", "name", "type", "logo", "country_name", "country_code", "country_flag").
		Values(l.ID, l.Name, l.Type, l.Logo, l.CountryName, l.CountryCode, l.CountryFlag).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert league: %w", err)
	}
	return nil
}

func (r *LeagueRepository) UpdateLeague(ctx context.Context, l league.League) error {
	query, args, err := qb.Update("leagues").
		Set("name", l.Name).
		Set("type", l.Type).
		Set("logo", l.Logo).
		Set("country_name", l.CountryName).
		Set("country_code", l.CountryCode).
		Set("country_flag", l.CountryFlag).
		SetExpr("updated_at", "now()").
		Where(qb.Eq("league_id", l.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update league: %w", err)
	}
	return nil
}

func (r *LeagueRepository) ListSeasonsByLeague(ctx context.Context, leagueID int64) ([]league.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.Eq("league_id", leagueID)).
		OrderBy("year DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]league.Season, 0, len(rows))
	for _, row := range rows {
		season, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode season coverage: %w", err)
		}
		out = append(out, season)
	}
	return out, nil
}

func (r *LeagueRepository) GetSeasonByLeagueAndYear(ctx context.Context, leagueID int64, year int) (league.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("year", year),
		).
		ToSQL()
	if err != nil {
		return league.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Season{}, false, nil
		}
		return league.Season{}, false, fmt.Errorf("get season: %w", err)
	}

	season, err := row.toDomain()
	if err != nil {
		return league.Season{}, false, fmt.Errorf("decode season coverage: %w", err)
	}
	return season, true, nil
}

func (r *LeagueRepository) GetCurrentSeason(ctx context.Context, leagueID int64) (league.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("current", true),
		).
		ToSQL()
	if err != nil {
		return league.Season{}, false, fmt.Errorf("build get current season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Season{}, false, nil
		}
		return league.Season{}, false, fmt.Errorf("get current season: %w", err)
	}

	season, err := row.toDomain()
	if err != nil {
		return league.Season{}, false, fmt.Errorf("decode season coverage: %w", err)
	}
	return season, true, nil
}

func (r *LeagueRepository) InsertSeason(ctx context.Context, s league.Season) error {
	coverage, err := marshalJSONMap(s.Coverage)
	if err != nil {
		return fmt.Errorf("encode season coverage: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for season insert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if s.Current {
		if err := clearCurrentSeasons(ctx, tx, s.LeagueID, s.Year); err != nil {
			return err
		}
	}

	const insertQuery = `
INSERT INTO seasons (league_id, year, start_date, end_date, current, coverage)
VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.ExecContext(ctx, insertQuery,
		s.LeagueID, s.Year, timeOrNil(s.StartDate), timeOrNil(s.EndDate), s.Current, coverage,
	); err != nil {
		return fmt.Errorf("insert season: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit season insert: %w", err)
	}
	return nil
}

func (r *LeagueRepository) UpdateSeason(ctx context.Context, s league.Season) error {
	coverage, err := marshalJSONMap(s.Coverage)
	if err != nil {
		return fmt.Errorf("encode season coverage: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for season update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if s.Current {
		if err := clearCurrentSeasons(ctx, tx, s.LeagueID, s.Year); err != nil {
			return err
		}
	}

	const updateQuery = `
UPDATE seasons
SET start_date = $1, end_date = $2, current = $3, coverage = $4, updated_at = now()
WHERE league_id = $5 AND year = $6`
	if _, err := tx.ExecContext(ctx, updateQuery,
		timeOrNil(s.StartDate), timeOrNil(s.EndDate), s.Current, coverage, s.LeagueID, s.Year,
	); err != nil {
		return fmt.Errorf("update season: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit season update: %w", err)
	}
	return nil
}

// clearCurrentSeasons drops the current flag from every other season of the
// league, keeping at most one current season per league at commit time.
func clearCurrentSeasons(ctx context.Context, tx *sqlx.Tx, leagueID int64, keepYear int) error {
	const query = `UPDATE seasons SET current = FALSE, updated_at = now() WHERE league_id = $1 AND year <> $2 AND current`
	if _, err := tx.ExecContext(ctx, query, leagueID, keepYear); err != nil {
		return fmt.Errorf("clear current seasons: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/team"
	qb "github.com/fixturehub/football-data/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Insert(ctx context.Context, t team.Team) error {
	query, args, err := qb.InsertInto("teams").
		Columns("team_id", "name", "code", "country", "founded", "national", "logo").
		Values(t.ID, t.Name, t.Code, t.Country, t.Founded, t.National, t.Logo).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	query, args, err := qb.Update("teams").
		Set("name", t.Name).
		Set("code", t.Code).
		Set("country", t.Country).
		Set("founded", t.Founded).
		Set("national", t.National).
		Set("logo", t.Logo).
		SetExpr("updated_at", "now()").
		Where(qb.Eq("team_id", t.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	return nil
}

func (r *TeamRepository) ListByLeagueSeason(ctx context.Context, leagueID int64, seasonYear int) ([]team.Team, error) {
	const query = `
SELECT t.*
FROM teams t
JOIN team_season_links l ON l.team_id = t.team_id
WHERE l.league_id = $1
  AND l.season_year = $2
ORDER BY t.team_id`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, leagueID, seasonYear); err != nil {
		return nil, fmt.Errorf("select teams by league season: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) GetSeasonLink(ctx context.Context, teamID, leagueID int64, seasonYear int) (team.SeasonLink, bool, error) {
	query, args, err := qb.Select("*").From("team_season_links").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("league_id", leagueID),
			qb.Eq("season_year", seasonYear),
		).
		ToSQL()
	if err != nil {
		return team.SeasonLink{}, false, fmt.Errorf("build get season link query: %w", err)
	}

	var row teamSeasonLinkTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.SeasonLink{}, false, nil
		}
		return team.SeasonLink{}, false, fmt.Errorf("get season link: %w", err)
	}

	return team.SeasonLink{
		ID:         row.ID,
		TeamID:     row.TeamID,
		LeagueID:   row.LeagueID,
		SeasonYear: row.SeasonYear,
	}, true, nil
}

func (r *TeamRepository) InsertSeasonLink(ctx context.Context, l team.SeasonLink) error {
	query, args, err := qb.InsertInto("team_season_links").
		Columns("team_id", "league_id", "season_year").
		Values(l.TeamID, l.LeagueID, l.SeasonYear).
		Suffix("ON CONFLICT (team_id, league_id, season_year) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert season link query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert season link: %w", err)
	}
	return nil
}

func (r *TeamRepository) ListSeasonLinksByLeague(ctx context.Context, leagueID int64, seasonYear int) ([]team.SeasonLink, error) {
	query, args, err := qb.Select("*").From("team_season_links").
		Where(
			qb.Eq("league_id", leagueID),
			qb.Eq("season_year", seasonYear),
		).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select season links query: %w", err)
	}

	var rows []teamSeasonLinkTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season links: %w", err)
	}

	out := make([]team.SeasonLink, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.SeasonLink{
			ID:         row.ID,
			TeamID:     row.TeamID,
			LeagueID:   row.LeagueID,
			SeasonYear: row.SeasonYear,
		})
	}
	return out, nil
}

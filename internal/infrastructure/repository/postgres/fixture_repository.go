package postgres

import (
	"context"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	qb "github.com/fixturehub/football-data/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

// Short status codes that settle a fixture, mirrored in SQL for the
// head-to-head and recent-form listings.
const terminalStatusSQL = "status_short IN ('FT', 'AET', 'PEN', 'AWD', 'WO')"

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(qb.Eq("fixture_id", fixtureID)).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture by id query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *FixtureRepository) Insert(ctx context.Context, f fixture.Fixture) error {
	query, args, err := qb.InsertInto("fixtures").
		Columns(
			"fixture_id", "referee", "timezone", "date", "timestamp", "venue_id",
			"status_long", "status_short", "status_elapsed", "status_extra", "is_final",
			"league_id", "season_year", "round", "home_team_id", "away_team_id",
			"goals_home", "goals_away",
			"score_halftime_home", "score_halftime_away",
			"score_fulltime_home", "score_fulltime_away",
			"score_extratime_home", "score_extratime_away",
			"score_penalty_home", "score_penalty_away",
		).
		Values(
			f.ID, f.Referee, f.Timezone, f.Date, f.Timestamp, f.VenueID,
			f.StatusLong, f.StatusShort, f.StatusElapsed, f.StatusExtra, f.IsFinal,
			f.LeagueID, f.SeasonYear, f.Round, f.HomeTeamID, f.AwayTeamID,
			f.GoalsHome, f.GoalsAway,
			f.ScoreHalftimeHome, f.ScoreHalftimeAway,
			f.ScoreFulltimeHome, f.ScoreFulltimeAway,
			f.ScoreExtratimeHome, f.ScoreExtratimeAway,
			f.ScorePenaltyHome, f.ScorePenaltyAway,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert fixture query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert fixture: %w", err)
	}
	return nil
}

func (r *FixtureRepository) Update(ctx context.Context, f fixture.Fixture) error {
	query, args, err := qb.Update("fixtures").
		Set("referee", f.Referee).
		Set("timezone", f.Timezone).
		Set("date", f.Date).
		Set("timestamp", f.Timestamp).
		Set("venue_id", f.VenueID).
		Set("status_long", f.StatusLong).
		Set("status_short", f.StatusShort).
		Set("status_elapsed", f.StatusElapsed).
		Set("status_extra", f.StatusExtra).
		Set("is_final", f.IsFinal).
		Set("league_id", f.LeagueID).
		Set("season_year", f.SeasonYear).
		Set("round", f.Round).
		Set("home_team_id", f.HomeTeamID).
		Set("away_team_id", f.AwayTeamID).
		Set("goals_home", f.GoalsHome).
		Set("goals_away", f.GoalsAway).
		Set("score_halftime_home", f.ScoreHalftimeHome).
		Set("score_halftime_away", f.ScoreHalftimeAway).
		Set("score_fulltime_home", f.ScoreFulltimeHome).
		Set("score_fulltime_away", f.ScoreFulltimeAway).
		Set("score_extratime_home", f.ScoreExtratimeHome).
		Set("score_extratime_away", f.ScoreExtratimeAway).
		Set("score_penalty_home", f.ScorePenaltyHome).
		Set("score_penalty_away", f.ScorePenaltyAway).
		SetExpr("updated_at", "now()").
		Where(qb.Eq("fixture_id", f.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fixture query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update fixture: %w", err)
	}
	return nil
}

func (r *FixtureRepository) List(ctx context.Context, filter fixture.ListFilter) ([]fixture.Fixture, error) {
	builder := qb.Select("*").From("fixtures")
	if filter.LeagueID > 0 {
		builder = builder.Where(qb.Eq("league_id", filter.LeagueID))
	}
	if filter.SeasonYear > 0 {
		builder = builder.Where(qb.Eq("season_year", filter.SeasonYear))
	}
	if filter.TeamID > 0 {
		builder = builder.Where(qb.Expr("(home_team_id = ? OR away_team_id = ?)", filter.TeamID, filter.TeamID))
	}
	if filter.Status != "" {
		builder = builder.Where(qb.Eq("status_short", filter.Status))
	}
	if filter.From != nil {
		builder = builder.Where(qb.Expr("date >= ?", *filter.From))
	}
	if filter.To != nil {
		builder = builder.Where(qb.Expr("date <= ?", *filter.To))
	}

	query, args, err := builder.OrderBy("date", "fixture_id").Limit(filter.Limit).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) ListHeadToHead(ctx context.Context, teamID1, teamID2 int64, limit int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Expr(
				"((home_team_id = ? AND away_team_id = ?) OR (home_team_id = ? AND away_team_id = ?))",
				teamID1, teamID2, teamID2, teamID1,
			),
			qb.Expr(terminalStatusSQL),
		).
		OrderBy("date DESC", "fixture_id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build head to head query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select head to head fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) ListRecentByTeam(ctx context.Context, teamID int64, limit int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Expr("(home_team_id = ? OR away_team_id = ?)", teamID, teamID),
			qb.Expr(terminalStatusSQL),
		).
		OrderBy("date DESC", "fixture_id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build recent fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select recent fixtures: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) GetVenueByID(ctx context.Context, venueID int64) (fixture.Venue, bool, error) {
	query, args, err := qb.Select("*").From("venues").
		Where(qb.Eq("venue_id", venueID)).
		ToSQL()
	if err != nil {
		return fixture.Venue{}, false, fmt.Errorf("build get venue query: %w", err)
	}

	var row venueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Venue{}, false, nil
		}
		return fixture.Venue{}, false, fmt.Errorf("get venue: %w", err)
	}

	return fixture.Venue{ID: row.VenueID, Name: row.Name, City: row.City}, true, nil
}

func (r *FixtureRepository) InsertVenue(ctx context.Context, v fixture.Venue) error {
	query, args, err := qb.InsertInto("venues").
		Columns("venue_id", "name", "city").
		Values(v.ID, v.Name, v.City).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert venue query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}
	return nil
}

func (r *FixtureRepository) UpdateVenue(ctx context.Context, v fixture.Venue) error {
	query, args, err := qb.Update("venues").
		Set("name", v.Name).
		Set("city", v.City).
		SetExpr("updated_at", "now()").
		Where(qb.Eq("venue_id", v.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update venue query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update venue: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/matchdata"
	qb "github.com/fixturehub/football-data/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

const (
	deleteFixtureStatisticsSQL = `DELETE FROM fixture_team_statistics WHERE fixture_id = $1`

	insertFixtureStatisticsSQL = `
INSERT INTO fixture_team_statistics (fixture_id, team_id, statistics)
VALUES ($1, $2, $3)`

	deleteFixtureEventsSQL = `DELETE FROM fixture_events WHERE fixture_id = $1`

	insertFixtureEventSQL = `
INSERT INTO fixture_events (fixture_id, minute, extra_minute, team_id, player_id, player_name, type, detail, comments)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
)

type fixtureTeamStatsTableModel struct {
	ID         int64  `db:"id"`
	FixtureID  int64  `db:"fixture_id"`
	TeamID     int64  `db:"team_id"`
	Statistics []byte `db:"statistics"`
}

type fixtureEventTableModel struct {
	ID          int64  `db:"id"`
	FixtureID   int64  `db:"fixture_id"`
	Minute      int    `db:"minute"`
	ExtraMinute *int   `db:"extra_minute"`
	TeamID      int64  `db:"team_id"`
	PlayerID    *int64 `db:"player_id"`
	PlayerName  string `db:"player_name"`
	Type        string `db:"type"`
	Detail      string `db:"detail"`
	Comments    string `db:"comments"`
}

type MatchDataRepository struct {
	db *sqlx.DB
}

func NewMatchDataRepository(db *sqlx.DB) *MatchDataRepository {
	return &MatchDataRepository{db: db}
}

func (r *MatchDataRepository) ReplaceStatistics(ctx context.Context, fixtureID int64, stats []matchdata.TeamStatistics) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace statistics tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteFixtureStatisticsSQL, fixtureID); err != nil {
		return fmt.Errorf("delete fixture statistics: %w", err)
	}

	for _, s := range stats {
		sheet, err := marshalJSONMap(s.Statistics)
		if err != nil {
			return fmt.Errorf("encode fixture statistics sheet: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertFixtureStatisticsSQL, fixtureID, s.TeamID, sheet); err != nil {
			return fmt.Errorf("insert fixture statistics: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace statistics tx: %w", err)
	}
	return nil
}

func (r *MatchDataRepository) ListStatisticsByFixture(ctx context.Context, fixtureID int64) ([]matchdata.TeamStatistics, error) {
	query, args, err := qb.Select("*").From("fixture_team_statistics").
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixture statistics query: %w", err)
	}

	var rows []fixtureTeamStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixture statistics: %w", err)
	}

	out := make([]matchdata.TeamStatistics, 0, len(rows))
	for _, row := range rows {
		sheet, err := unmarshalJSONMap(row.Statistics)
		if err != nil {
			return nil, fmt.Errorf("decode fixture statistics sheet: %w", err)
		}
		out = append(out, matchdata.TeamStatistics{
			ID:         row.ID,
			FixtureID:  row.FixtureID,
			TeamID:     row.TeamID,
			Statistics: sheet,
		})
	}
	return out, nil
}

func (r *MatchDataRepository) ReplaceEvents(ctx context.Context, fixtureID int64, events []matchdata.Event) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace events tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteFixtureEventsSQL, fixtureID); err != nil {
		return fmt.Errorf("delete fixture events: %w", err)
	}

	for _, e := range events {
		_, err := tx.ExecContext(ctx, insertFixtureEventSQL,
			fixtureID, e.Minute, e.ExtraMinute, e.TeamID, e.PlayerID, e.PlayerName, e.Type, e.Detail, e.Comments)
		if err != nil {
			return fmt.Errorf("insert fixture event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace events tx: %w", err)
	}
	return nil
}

func (r *MatchDataRepository) ListEventsByFixture(ctx context.Context, fixtureID int64) ([]matchdata.Event, error) {
	query, args, err := qb.Select("*").From("fixture_events").
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixture events query: %w", err)
	}

	var rows []fixtureEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixture events: %w", err)
	}

	out := make([]matchdata.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchdata.Event{
			ID:          row.ID,
			FixtureID:   row.FixtureID,
			Minute:      row.Minute,
			ExtraMinute: row.ExtraMinute,
			TeamID:      row.TeamID,
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			Type:        row.Type,
			Detail:      row.Detail,
			Comments:    row.Comments,
		})
	}
	return out, nil
}

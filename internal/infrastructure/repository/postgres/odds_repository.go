package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/fixturehub/football-data/internal/domain/odds"
	qb "github.com/fixturehub/football-data/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

const (
	upsertBookmakerSQL = `
INSERT INTO bookmakers (bookmaker_id, name)
VALUES ($1, $2)
ON CONFLICT (bookmaker_id) DO UPDATE SET name = EXCLUDED.name`

	upsertBetTypeSQL = `
INSERT INTO bet_types (bet_type_id, name)
VALUES ($1, $2)
ON CONFLICT (bet_type_id) DO UPDATE SET name = EXCLUDED.name`

	deleteFixtureOddsSQL = `DELETE FROM fixture_odds WHERE fixture_id = $1`

	insertFixtureOddsSQL = `
INSERT INTO fixture_odds (fixture_id, update_time)
VALUES ($1, $2)
RETURNING id`

	insertFixtureBookmakerSQL = `
INSERT INTO fixture_bookmakers (fixture_odds_id, bookmaker_id)
VALUES ($1, $2)
RETURNING id`

	insertBetSQL = `
INSERT INTO bets (fixture_bookmaker_id, bet_type_id)
VALUES ($1, $2)
RETURNING id`

	insertOddValueSQL = `
INSERT INTO odd_values (bet_id, value, odd)
VALUES ($1, $2, $3)`

	selectFixtureOddsHeaderSQL = `
SELECT id, update_time
FROM fixture_odds
WHERE fixture_id = $1`

	selectFixtureOddsTreeSQL = `
SELECT fb.bookmaker_id, bm.name AS bookmaker_name,
       bt.bet_type_id, tp.name AS bet_type_name, ov.value, ov.odd
FROM fixture_bookmakers fb
JOIN bookmakers bm ON bm.bookmaker_id = fb.bookmaker_id
JOIN bets bt ON bt.fixture_bookmaker_id = fb.id
JOIN bet_types tp ON tp.bet_type_id = bt.bet_type_id
JOIN odd_values ov ON ov.bet_id = bt.id
WHERE fb.fixture_odds_id = $1
ORDER BY fb.id, bt.id, ov.id`
)

type fixtureOddsHeaderModel struct {
	ID         int64      `db:"id"`
	UpdateTime *time.Time `db:"update_time"`
}

type fixtureOddsTreeRowModel struct {
	BookmakerID   int64  `db:"bookmaker_id"`
	BookmakerName string `db:"bookmaker_name"`
	BetTypeID     int64  `db:"bet_type_id"`
	BetTypeName   string `db:"bet_type_name"`
	Value         string `db:"value"`
	Odd           string `db:"odd"`
}

type OddsRepository struct {
	db *sqlx.DB
}

func NewOddsRepository(db *sqlx.DB) *OddsRepository {
	return &OddsRepository{db: db}
}

// Replace swaps the fixture's odds tree in one transaction so that readers see
// either the previous tree or the new one, never a mix. Deleting the header
// row cascades through bookmakers, bets and values.
func (r *OddsRepository) Replace(ctx context.Context, o odds.FixtureOdds) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace odds tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, b := range o.Bookmakers {
		if _, err := tx.ExecContext(ctx, upsertBookmakerSQL, b.BookmakerID, b.BookmakerName); err != nil {
			return fmt.Errorf("upsert bookmaker: %w", err)
		}
		for _, bet := range b.Bets {
			if _, err := tx.ExecContext(ctx, upsertBetTypeSQL, bet.BetTypeID, bet.BetTypeName); err != nil {
				return fmt.Errorf("upsert bet type: %w", err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, deleteFixtureOddsSQL, o.FixtureID); err != nil {
		return fmt.Errorf("delete fixture odds: %w", err)
	}

	var oddsID int64
	if err := tx.GetContext(ctx, &oddsID, insertFixtureOddsSQL, o.FixtureID, timeOrNil(o.UpdateTime)); err != nil {
		return fmt.Errorf("insert fixture odds: %w", err)
	}

	for _, b := range o.Bookmakers {
		var bookmakerRowID int64
		if err := tx.GetContext(ctx, &bookmakerRowID, insertFixtureBookmakerSQL, oddsID, b.BookmakerID); err != nil {
			return fmt.Errorf("insert fixture bookmaker: %w", err)
		}

		for _, bet := range b.Bets {
			var betID int64
			if err := tx.GetContext(ctx, &betID, insertBetSQL, bookmakerRowID, bet.BetTypeID); err != nil {
				return fmt.Errorf("insert bet: %w", err)
			}

			for _, v := range bet.Values {
				if _, err := tx.ExecContext(ctx, insertOddValueSQL, betID, v.Value, v.Odd); err != nil {
					return fmt.Errorf("insert odd value: %w", err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace odds tx: %w", err)
	}
	return nil
}

func (r *OddsRepository) GetByFixture(ctx context.Context, fixtureID int64) (odds.FixtureOdds, bool, error) {
	var header fixtureOddsHeaderModel
	if err := r.db.GetContext(ctx, &header, selectFixtureOddsHeaderSQL, fixtureID); err != nil {
		if isNotFound(err) {
			return odds.FixtureOdds{}, false, nil
		}
		return odds.FixtureOdds{}, false, fmt.Errorf("select fixture odds: %w", err)
	}

	out := odds.FixtureOdds{FixtureID: fixtureID, UpdateTime: derefTime(header.UpdateTime)}

	var rows []fixtureOddsTreeRowModel
	if err := r.db.SelectContext(ctx, &rows, selectFixtureOddsTreeSQL, header.ID); err != nil {
		return odds.FixtureOdds{}, false, fmt.Errorf("select fixture odds tree: %w", err)
	}

	// Rows arrive ordered by bookmaker then bet, so each level closes before
	// the next one opens.
	for _, row := range rows {
		if len(out.Bookmakers) == 0 || out.Bookmakers[len(out.Bookmakers)-1].BookmakerID != row.BookmakerID {
			out.Bookmakers = append(out.Bookmakers, odds.BookmakerOdds{
				BookmakerID:   row.BookmakerID,
				BookmakerName: row.BookmakerName,
			})
		}
		bm := &out.Bookmakers[len(out.Bookmakers)-1]

		if len(bm.Bets) == 0 || bm.Bets[len(bm.Bets)-1].BetTypeID != row.BetTypeID {
			bm.Bets = append(bm.Bets, odds.Bet{
				BetTypeID:   row.BetTypeID,
				BetTypeName: row.BetTypeName,
			})
		}
		bet := &bm.Bets[len(bm.Bets)-1]

		bet.Values = append(bet.Values, odds.Value{Value: row.Value, Odd: row.Odd})
	}

	return out, true, nil
}

func (r *OddsRepository) ListBookmakers(ctx context.Context) ([]odds.Bookmaker, error) {
	query, args, err := qb.Select("bookmaker_id", "name").From("bookmakers").
		OrderBy("bookmaker_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bookmakers query: %w", err)
	}

	var rows []struct {
		BookmakerID int64  `db:"bookmaker_id"`
		Name        string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select bookmakers: %w", err)
	}

	out := make([]odds.Bookmaker, 0, len(rows))
	for _, row := range rows {
		out = append(out, odds.Bookmaker{ID: row.BookmakerID, Name: row.Name})
	}
	return out, nil
}

func (r *OddsRepository) ListBetTypes(ctx context.Context) ([]odds.BetType, error) {
	query, args, err := qb.Select("bet_type_id", "name").From("bet_types").
		OrderBy("bet_type_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select bet types query: %w", err)
	}

	var rows []struct {
		BetTypeID int64  `db:"bet_type_id"`
		Name      string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select bet types: %w", err)
	}

	out := make([]odds.BetType, 0, len(rows))
	for _, row := range rows {
		out = append(out, odds.BetType{ID: row.BetTypeID, Name: row.Name})
	}
	return out, nil
}

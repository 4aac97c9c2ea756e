package postgres

import (
	"context"
	"fmt"

	"github.com/fixturehub/football-data/internal/domain/prediction"
	qb "github.com/fixturehub/football-data/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) GetByFixture(ctx context.Context, fixtureID int64) (prediction.Prediction, bool, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(qb.Eq("fixture_id", fixtureID)).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build get prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, false, nil
		}
		return prediction.Prediction{}, false, fmt.Errorf("get prediction: %w", err)
	}

	p, err := row.toDomain()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("decode prediction comparison: %w", err)
	}
	return p, true, nil
}

func (r *PredictionRepository) Insert(ctx context.Context, p prediction.Prediction) error {
	comparison, err := marshalJSONMap(p.Comparison)
	if err != nil {
		return fmt.Errorf("encode prediction comparison: %w", err)
	}

	query, args, err := qb.InsertInto("predictions").
		Columns(
			"fixture_id", "winner_team_id", "win_or_draw", "under_over",
			"goals_home", "goals_away", "advice",
			"percent_home", "percent_draw", "percent_away", "comparison",
		).
		Values(
			p.FixtureID, p.WinnerTeamID, p.WinOrDraw, p.UnderOver,
			p.GoalsHome, p.GoalsAway, p.Advice,
			p.PercentHome, p.PercentDraw, p.PercentAway, comparison,
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert prediction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepository) Update(ctx context.Context, p prediction.Prediction) error {
	comparison, err := marshalJSONMap(p.Comparison)
	if err != nil {
		return fmt.Errorf("encode prediction comparison: %w", err)
	}

	query, args, err := qb.Update("predictions").
		Set("winner_team_id", p.WinnerTeamID).
		Set("win_or_draw", p.WinOrDraw).
		Set("under_over", p.UnderOver).
		Set("goals_home", p.GoalsHome).
		Set("goals_away", p.GoalsAway).
		Set("advice", p.Advice).
		Set("percent_home", p.PercentHome).
		Set("percent_draw", p.PercentDraw).
		Set("percent_away", p.PercentAway).
		Set("comparison", comparison).
		SetExpr("updated_at", "now()").
		Where(qb.Eq("fixture_id", p.FixtureID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update prediction query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepository) ListByFixtureIDs(ctx context.Context, fixtureIDs []int64) ([]prediction.Prediction, error) {
	if len(fixtureIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(fixtureIDs))
	for _, id := range fixtureIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("predictions").
		Where(qb.In("fixture_id", ids)).
		OrderBy("fixture_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("decode prediction comparison: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

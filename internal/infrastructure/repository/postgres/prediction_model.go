package postgres

import (
	"time"

	"github.com/fixturehub/football-data/internal/domain/prediction"
)

type predictionTableModel struct {
	ID           int64     `db:"id"`
	FixtureID    int64     `db:"fixture_id"`
	WinnerTeamID *int64    `db:"winner_team_id"`
	WinOrDraw    *bool     `db:"win_or_draw"`
	UnderOver    *string   `db:"under_over"`
	GoalsHome    *string   `db:"goals_home"`
	GoalsAway    *string   `db:"goals_away"`
	Advice       string    `db:"advice"`
	PercentHome  string    `db:"percent_home"`
	PercentDraw  string    `db:"percent_draw"`
	PercentAway  string    `db:"percent_away"`
	Comparison   []byte    `db:"comparison"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (m predictionTableModel) toDomain() (prediction.Prediction, error) {
	comparison, err := unmarshalJSONMap(m.Comparison)
	if err != nil {
		return prediction.Prediction{}, err
	}

	return prediction.Prediction{
		ID:           m.ID,
		FixtureID:    m.FixtureID,
		WinnerTeamID: m.WinnerTeamID,
		WinOrDraw:    m.WinOrDraw,
		UnderOver:    m.UnderOver,
		GoalsHome:    m.GoalsHome,
		GoalsAway:    m.GoalsAway,
		Advice:       m.Advice,
		PercentHome:  m.PercentHome,
		PercentDraw:  m.PercentDraw,
		PercentAway:  m.PercentAway,
		Comparison:   comparison,
	}, nil
}

package postgres

import (
	"time"

	"github.com/fixturehub/football-data/internal/domain/playerstats"
)

type playerStatsTableModel struct {
	ID         int64 `db:"id"`
	PlayerID   int64 `db:"player_id"`
	TeamID     int64 `db:"team_id"`
	LeagueID   int64 `db:"league_id"`
	SeasonYear int   `db:"season_year"`

	Position string   `db:"position"`
	Rating   *float64 `db:"rating"`
	Captain  bool     `db:"captain"`

	Appearances      int  `db:"appearances"`
	Lineups          int  `db:"lineups"`
	Minutes          int  `db:"minutes"`
	Number           *int `db:"number"`
	SubstitutesIn    int  `db:"substitutes_in"`
	SubstitutesOut   int  `db:"substitutes_out"`
	SubstitutesBench int  `db:"substitutes_bench"`

	ShotsTotal    int `db:"shots_total"`
	ShotsOnTarget int `db:"shots_on_target"`

	GoalsTotal    int `db:"goals_total"`
	GoalsConceded int `db:"goals_conceded"`
	Assists       int `db:"assists"`
	Saves         int `db:"saves"`

	PassesTotal    int  `db:"passes_total"`
	PassesKey      int  `db:"passes_key"`
	PassesAccuracy *int `db:"passes_accuracy"`

	TacklesTotal  int `db:"tackles_total"`
	Blocks        int `db:"blocks"`
	Interceptions int `db:"interceptions"`

	DuelsTotal int `db:"duels_total"`
	DuelsWon   int `db:"duels_won"`

	DribblesAttempts int `db:"dribbles_attempts"`
	DribblesSuccess  int `db:"dribbles_success"`
	DribblesPast     int `db:"dribbles_past"`

	FoulsDrawn     int `db:"fouls_drawn"`
	FoulsCommitted int `db:"fouls_committed"`

	CardsYellow    int `db:"cards_yellow"`
	CardsYellowRed int `db:"cards_yellowred"`
	CardsRed       int `db:"cards_red"`

	PenaltyWon       int `db:"penalty_won"`
	PenaltyCommitted int `db:"penalty_committed"`
	PenaltyScored    int `db:"penalty_scored"`
	PenaltyMissed    int `db:"penalty_missed"`
	PenaltySaved     int `db:"penalty_saved"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m playerStatsTableModel) toDomain() playerstats.Statistics {
	return playerstats.Statistics{
		ID:         m.ID,
		PlayerID:   m.PlayerID,
		TeamID:     m.TeamID,
		LeagueID:   m.LeagueID,
		SeasonYear: m.SeasonYear,

		Position: m.Position,
		Rating:   m.Rating,
		Captain:  m.Captain,

		Appearances:      m.Appearances,
		Lineups:          m.Lineups,
		Minutes:          m.Minutes,
		Number:           m.Number,
		SubstitutesIn:    m.SubstitutesIn,
		SubstitutesOut:   m.SubstitutesOut,
		SubstitutesBench: m.SubstitutesBench,

		ShotsTotal:    m.ShotsTotal,
		ShotsOnTarget: m.ShotsOnTarget,

		GoalsTotal:    m.GoalsTotal,
		GoalsConceded: m.GoalsConceded,
		Assists:       m.Assists,
		Saves:         m.Saves,

		PassesTotal:    m.PassesTotal,
		PassesKey:      m.PassesKey,
		PassesAccuracy: m.PassesAccuracy,

		TacklesTotal:  m.TacklesTotal,
		Blocks:        m.Blocks,
		Interceptions: m.Interceptions,

		DuelsTotal: m.DuelsTotal,
		DuelsWon:   m.DuelsWon,

		DribblesAttempts: m.DribblesAttempts,
		DribblesSuccess:  m.DribblesSuccess,
		DribblesPast:     m.DribblesPast,

		FoulsDrawn:     m.FoulsDrawn,
		FoulsCommitted: m.FoulsCommitted,

		CardsYellow:    m.CardsYellow,
		CardsYellowRed: m.CardsYellowRed,
		CardsRed:       m.CardsRed,

		PenaltyWon:       m.PenaltyWon,
		PenaltyCommitted: m.PenaltyCommitted,
		PenaltyScored:    m.PenaltyScored,
		PenaltyMissed:    m.PenaltyMissed,
		PenaltySaved:     m.PenaltySaved,
	}
}

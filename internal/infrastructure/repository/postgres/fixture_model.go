package postgres

import (
	"time"

	"github.com/fixturehub/football-data/internal/domain/fixture"
)

type fixtureTableModel struct {
	FixtureID     int64     `db:"fixture_id"`
	Referee       string    `db:"referee"`
	Timezone      string    `db:"timezone"`
	Date          time.Time `db:"date"`
	Timestamp     int64     `db:"timestamp"`
	VenueID       *int64    `db:"venue_id"`
	StatusLong    string    `db:"status_long"`
	StatusShort   string    `db:"status_short"`
	StatusElapsed *int      `db:"status_elapsed"`
	StatusExtra   *int      `db:"status_extra"`
	IsFinal       bool      `db:"is_final"`
	LeagueID      int64     `db:"league_id"`
	SeasonYear    int       `db:"season_year"`
	Round         string    `db:"round"`
	HomeTeamID    int64     `db:"home_team_id"`
	AwayTeamID    int64     `db:"away_team_id"`

	GoalsHome          *int `db:"goals_home"`
	GoalsAway          *int `db:"goals_away"`
	ScoreHalftimeHome  *int `db:"score_halftime_home"`
	ScoreHalftimeAway  *int `db:"score_halftime_away"`
	ScoreFulltimeHome  *int `db:"score_fulltime_home"`
	ScoreFulltimeAway  *int `db:"score_fulltime_away"`
	ScoreExtratimeHome *int `db:"score_extratime_home"`
	ScoreExtratimeAway *int `db:"score_extratime_away"`
	ScorePenaltyHome   *int `db:"score_penalty_home"`
	ScorePenaltyAway   *int `db:"score_penalty_away"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:            m.FixtureID,
		Referee:       m.Referee,
		Timezone:      m.Timezone,
		Date:          m.Date,
		Timestamp:     m.Timestamp,
		VenueID:       m.VenueID,
		StatusLong:    m.StatusLong,
		StatusShort:   m.StatusShort,
		StatusElapsed: m.StatusElapsed,
		StatusExtra:   m.StatusExtra,
		IsFinal:       m.IsFinal,
		LeagueID:      m.LeagueID,
		SeasonYear:    m.SeasonYear,
		Round:         m.Round,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,

		GoalsHome:          m.GoalsHome,
		GoalsAway:          m.GoalsAway,
		ScoreHalftimeHome:  m.ScoreHalftimeHome,
		ScoreHalftimeAway:  m.ScoreHalftimeAway,
		ScoreFulltimeHome:  m.ScoreFulltimeHome,
		ScoreFulltimeAway:  m.ScoreFulltimeAway,
		ScoreExtratimeHome: m.ScoreExtratimeHome,
		ScoreExtratimeAway: m.ScoreExtratimeAway,
		ScorePenaltyHome:   m.ScorePenaltyHome,
		ScorePenaltyAway:   m.ScorePenaltyAway,
	}
}

type venueTableModel struct {
	VenueID   int64     `db:"venue_id"`
	Name      string    `db:"name"`
	City      string    `db:"city"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

package postgres

import (
	"time"

	"github.com/fixturehub/football-data/internal/domain/team"
)

type teamTableModel struct {
	TeamID    int64     `db:"team_id"`
	Name      string    `db:"name"`
	Code      string    `db:"code"`
	Country   string    `db:"country"`
	Founded   int       `db:"founded"`
	National  bool      `db:"national"`
	Logo      string    `db:"logo"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:       m.TeamID,
		Name:     m.Name,
		Code:     m.Code,
		Country:  m.Country,
		Founded:  m.Founded,
		National: m.National,
		Logo:     m.Logo,
	}
}

type teamSeasonLinkTableModel struct {
	ID         int64     `db:"id"`
	TeamID     int64     `db:"team_id"`
	LeagueID   int64     `db:"league_id"`
	SeasonYear int       `db:"season_year"`
	CreatedAt  time.Time `db:"created_at"`
}

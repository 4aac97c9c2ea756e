package postgres

import (
	"time"

	"github.com/fixturehub/football-data/internal/domain/player"
)

type playerTableModel struct {
	PlayerID     int64      `db:"player_id"`
	SeasonYear   int        `db:"season_year"`
	TeamID       int64      `db:"team_id"`
	Name         string     `db:"name"`
	Firstname    string     `db:"firstname"`
	Lastname     string     `db:"lastname"`
	Age          *int       `db:"age"`
	BirthDate    *time.Time `db:"birth_date"`
	BirthPlace   string     `db:"birth_place"`
	BirthCountry string     `db:"birth_country"`
	Nationality  string     `db:"nationality"`
	Height       string     `db:"height"`
	Weight       string     `db:"weight"`
	Injured      bool       `db:"injured"`
	Photo        string     `db:"photo"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.PlayerID,
		SeasonYear:   m.SeasonYear,
		TeamID:       m.TeamID,
		Name:         m.Name,
		Firstname:    m.Firstname,
		Lastname:     m.Lastname,
		Age:          m.Age,
		BirthDate:    m.BirthDate,
		BirthPlace:   m.BirthPlace,
		BirthCountry: m.BirthCountry,
		Nationality:  m.Nationality,
		Height:       m.Height,
		Weight:       m.Weight,
		Injured:      m.Injured,
		Photo:        m.Photo,
	}
}

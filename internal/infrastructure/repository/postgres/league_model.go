package postgres

import (
	"time"

	"github.com/fixturehub/football-data/internal/domain/league"
)

type leagueTableModel struct {
	LeagueID    int64     `db:"league_id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	Logo        string    `db:"logo"`
	CountryName string    `db:"country_name"`
	CountryCode string    `db:"country_code"`
	CountryFlag string    `db:"country_flag"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:          m.LeagueID,
		Name:        m.Name,
		Type:        m.Type,
		Logo:        m.Logo,
		CountryName: m.CountryName,
		CountryCode: m.CountryCode,
		CountryFlag: m.CountryFlag,
	}
}

type seasonTableModel struct {
	ID        int64      `db:"id"`
	LeagueID  int64      `db:"league_id"`
	Year      int        `db:"year"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	Current   bool       `db:"current"`
	Coverage  []byte     `db:"coverage"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (m seasonTableModel) toDomain() (league.Season, error) {
	coverage, err := unmarshalJSONMap(m.Coverage)
	if err != nil {
		return league.Season{}, err
	}
	return league.Season{
		ID:        m.ID,
		LeagueID:  m.LeagueID,
		Year:      m.Year,
		StartDate: derefTime(m.StartDate),
		EndDate:   derefTime(m.EndDate),
		Current:   m.Current,
		Coverage:  coverage,
	}, nil
}

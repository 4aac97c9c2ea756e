package player

import (
	"fmt"
	"time"
)

// Player is one athlete's profile for a season. The provider reuses player ids
// across seasons with per-season attributes (age, team, injury flag), so the
// natural key is (ID, SeasonYear).
type Player struct {
	ID           int64
	SeasonYear   int
	TeamID       int64
	Name         string
	Firstname    string
	Lastname     string
	Age          *int
	BirthDate    *time.Time
	BirthPlace   string
	BirthCountry string
	Nationality  string
	Height       string
	Weight       string
	Injured      bool
	Photo        string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if p.SeasonYear < 1900 {
		return fmt.Errorf("player season year is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

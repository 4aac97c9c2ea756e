package team

import "fmt"

// Team is a club or national side, keyed by the provider's team id.
type Team struct {
	ID       int64
	Name     string
	Code     string
	Country  string
	Founded  int
	National bool
	Logo     string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// SeasonLink records that a team took part in a league season.
// (TeamID, LeagueID, SeasonYear) is the natural key.
type SeasonLink struct {
	ID         int64
	TeamID     int64
	LeagueID   int64
	SeasonYear int
}

func (l SeasonLink) Validate() error {
	if l.TeamID <= 0 {
		return fmt.Errorf("season link team id is required")
	}
	if l.LeagueID <= 0 {
		return fmt.Errorf("season link league id is required")
	}
	if l.SeasonYear < 1900 {
		return fmt.Errorf("season link season year is required")
	}

	return nil
}

package matchdata

import "fmt"

// TeamStatistics is one side's stat sheet for a settled or in-play fixture.
// (FixtureID, TeamID) is the natural key; the stat names vary by provider
// coverage, so the sheet stays a loose map persisted as JSONB.
type TeamStatistics struct {
	ID         int64
	FixtureID  int64
	TeamID     int64
	Statistics map[string]any
}

func (s TeamStatistics) Validate() error {
	if s.FixtureID <= 0 {
		return fmt.Errorf("team statistics fixture id is required")
	}
	if s.TeamID <= 0 {
		return fmt.Errorf("team statistics team id is required")
	}

	return nil
}

// Event is one timeline entry (goal, card, substitution, VAR call) of a
// fixture. Events carry no natural key; a fixture's timeline is replaced
// wholesale on re-ingestion.
type Event struct {
	ID          int64
	FixtureID   int64
	Minute      int
	ExtraMinute *int
	TeamID      int64
	PlayerID    *int64
	PlayerName  string
	Type        string
	Detail      string
	Comments    string
}

func (e Event) Validate() error {
	if e.FixtureID <= 0 {
		return fmt.Errorf("event fixture id is required")
	}
	if e.TeamID <= 0 {
		return fmt.Errorf("event team id is required")
	}

	return nil
}

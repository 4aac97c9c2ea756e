package fixture

import (
	"fmt"
	"strings"
	"time"
)

// Short status codes after which a fixture result can no longer change.
const (
	StatusFullTime  = "FT"
	StatusExtraTime = "AET"
	StatusPenalties = "PEN"
	StatusAwarded   = "AWD"
	StatusWalkover  = "WO"
)

// Fixture is one scheduled match, keyed by the provider's fixture id.
type Fixture struct {
	ID            int64
	Referee       string
	Timezone      string
	Date          time.Time
	Timestamp     int64
	VenueID       *int64
	StatusLong    string
	StatusShort   string
	StatusElapsed *int
	StatusExtra   *int
	IsFinal       bool
	LeagueID      int64
	SeasonYear    int
	Round         string
	HomeTeamID    int64
	AwayTeamID    int64

	GoalsHome          *int
	GoalsAway          *int
	ScoreHalftimeHome  *int
	ScoreHalftimeAway  *int
	ScoreFulltimeHome  *int
	ScoreFulltimeAway  *int
	ScoreExtratimeHome *int
	ScoreExtratimeAway *int
	ScorePenaltyHome   *int
	ScorePenaltyAway   *int
}

func (f Fixture) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("fixture id is required")
	}
	if f.LeagueID <= 0 {
		return fmt.Errorf("fixture league id is required")
	}
	if f.HomeTeamID <= 0 || f.AwayTeamID <= 0 {
		return fmt.Errorf("fixture team ids are required")
	}

	return nil
}

// IsTerminalStatus reports whether a short status code marks a settled result.
func IsTerminalStatus(statusShort string) bool {
	switch strings.ToUpper(strings.TrimSpace(statusShort)) {
	case StatusFullTime, StatusExtraTime, StatusPenalties, StatusAwarded, StatusWalkover:
		return true
	default:
		return false
	}
}

// Venue is a stadium referenced by fixtures, created lazily on first sighting.
type Venue struct {
	ID   int64
	Name string
	City string
}

// ListFilter narrows fixture listings. Nil and zero fields are ignored.
type ListFilter struct {
	LeagueID   int64
	SeasonYear int
	TeamID     int64
	Status     string
	From       *time.Time
	To         *time.Time
	Limit      int
}

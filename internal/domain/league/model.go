package league

import (
	"fmt"
	"time"
)

// League is a competition tracked by the platform, keyed by the provider's league id.
type League struct {
	ID          int64
	Name        string
	Type        string
	Logo        string
	CountryName string
	CountryCode string
	CountryFlag string
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}

	return nil
}

// Season is one yearly edition of a league. (LeagueID, Year) is the natural key;
// at most one season per league carries Current=true.
type Season struct {
	ID        int64
	LeagueID  int64
	Year      int
	StartDate time.Time
	EndDate   time.Time
	Current   bool
	Coverage  map[string]any
}

func (s Season) Validate() error {
	if s.LeagueID <= 0 {
		return fmt.Errorf("season league id is required")
	}
	if s.Year < 1900 {
		return fmt.Errorf("season year is required")
	}

	return nil
}

package playerstats

import "fmt"

// Statistics is one player's accumulated numbers for a team within a league
// season. (PlayerID, TeamID, LeagueID, SeasonYear) is the natural key; the
// same player can hold several rows after a mid-season transfer.
type Statistics struct {
	ID         int64
	PlayerID   int64
	TeamID     int64
	LeagueID   int64
	SeasonYear int

	Position string
	Rating   *float64
	Captain  bool

	Appearances      int
	Lineups          int
	Minutes          int
	Number           *int
	SubstitutesIn    int
	SubstitutesOut   int
	SubstitutesBench int

	ShotsTotal    int
	ShotsOnTarget int

	GoalsTotal    int
	GoalsConceded int
	Assists       int
	Saves         int

	PassesTotal    int
	PassesKey      int
	PassesAccuracy *int

	TacklesTotal  int
	Blocks        int
	Interceptions int

	DuelsTotal int
	DuelsWon   int

	DribblesAttempts int
	DribblesSuccess  int
	DribblesPast     int

	FoulsDrawn     int
	FoulsCommitted int

	CardsYellow    int
	CardsYellowRed int
	CardsRed       int

	PenaltyWon       int
	PenaltyCommitted int
	PenaltyScored    int
	PenaltyMissed    int
	PenaltySaved     int
}

func (s Statistics) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("statistics player id is required")
	}
	if s.TeamID <= 0 {
		return fmt.Errorf("statistics team id is required")
	}
	if s.LeagueID <= 0 {
		return fmt.Errorf("statistics league id is required")
	}
	if s.SeasonYear < 1900 {
		return fmt.Errorf("statistics season year is required")
	}

	return nil
}

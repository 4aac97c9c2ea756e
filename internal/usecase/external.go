package usecase

import (
	"context"
	"time"
)

// FootballDataProvider is the outbound port to the football data source.
// Implementations translate provider payloads into the External* records
// below; sync services never see wire formats.
type FootballDataProvider interface {
	FetchLeague(ctx context.Context, leagueID int64) (ExternalLeague, bool, error)
	FetchTeams(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalTeam, error)
	FetchPlayersPage(ctx context.Context, teamID int64, seasonYear, page int) ([]ExternalPlayer, Paging, error)
	FetchFixtures(ctx context.Context, leagueID int64, seasonYear int) ([]ExternalFixture, error)
	FetchOddsPage(ctx context.Context, leagueID int64, seasonYear, page int) ([]ExternalFixtureOdds, Paging, error)
	FetchPrediction(ctx context.Context, fixtureID int64) (ExternalPrediction, bool, error)
	FetchFixtureStatistics(ctx context.Context, fixtureID int64) ([]ExternalTeamStatistics, error)
	FetchFixtureEvents(ctx context.Context, fixtureID int64) ([]ExternalFixtureEvent, error)
}

// Paging mirrors the provider's page cursor; callers fetch until
// Current >= Total.
type Paging struct {
	Current int
	Total   int
}

type ExternalLeague struct {
	LeagueID    int64
	Name        string
	Type        string
	Logo        string
	CountryName string
	CountryCode string
	CountryFlag string
	Seasons     []ExternalSeason
}

type ExternalSeason struct {
	Year      int
	StartDate time.Time
	EndDate   time.Time
	Current   bool
	Coverage  map[string]any
}

type ExternalTeam struct {
	TeamID   int64
	Name     string
	Code     string
	Country  string
	Founded  int
	National bool
	Logo     string
}

type ExternalPlayer struct {
	PlayerID     int64
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
	Statistics   []ExternalPlayerStatistics
}

type ExternalPlayerStatistics struct {
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

type ExternalVenue struct {
	VenueID int64
	Name    string
	City    string
}

type ExternalFixture struct {
	FixtureID     int64
	Referee       string
	Timezone      string
	Date          time.Time
	Timestamp     int64
	Venue         ExternalVenue
	StatusLong    string
	StatusShort   string
	StatusElapsed *int
	StatusExtra   *int
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

type ExternalOddValue struct {
	Value string
	Odd   string
}

type ExternalBet struct {
	BetID  int64
	Name   string
	Values []ExternalOddValue
}

type ExternalBookmakerOdds struct {
	BookmakerID int64
	Name        string
	Bets        []ExternalBet
}

type ExternalFixtureOdds struct {
	FixtureID  int64
	UpdateTime time.Time
	Bookmakers []ExternalBookmakerOdds
}

type ExternalPrediction struct {
	FixtureID    int64
	WinnerTeamID *int64
	WinOrDraw    *bool
	UnderOver    *string
	GoalsHome    *string
	GoalsAway    *string
	Advice       string
	PercentHome  string
	PercentDraw  string
	PercentAway  string
	Comparison   map[string]any
}

type ExternalTeamStatistics struct {
	TeamID     int64
	Statistics map[string]any
}

type ExternalFixtureEvent struct {
	Minute      int
	ExtraMinute *int
	TeamID      int64
	PlayerID    *int64
	PlayerName  string
	Type        string
	Detail      string
	Comments    string
}

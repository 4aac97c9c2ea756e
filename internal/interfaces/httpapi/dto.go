package httpapi

import (
	"time"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/matchdata"
	"github.com/fixturehub/football-data/internal/domain/odds"
	"github.com/fixturehub/football-data/internal/domain/player"
	"github.com/fixturehub/football-data/internal/domain/playerstats"
	"github.com/fixturehub/football-data/internal/domain/prediction"
	"github.com/fixturehub/football-data/internal/domain/team"
	"github.com/fixturehub/football-data/internal/usecase"
)

type leagueResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Logo        string `json:"logo,omitempty"`
	CountryName string `json:"country_name,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	CountryFlag string `json:"country_flag,omitempty"`
}

type seasonResponse struct {
	LeagueID  int64          `json:"league_id"`
	Year      int            `json:"year"`
	StartDate string         `json:"start_date,omitempty"`
	EndDate   string         `json:"end_date,omitempty"`
	Current   bool           `json:"current"`
	Coverage  map[string]any `json:"coverage,omitempty"`
}

type leagueDetailsResponse struct {
	League  leagueResponse   `json:"league"`
	Seasons []seasonResponse `json:"seasons"`
}

type teamResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	Country  string `json:"country,omitempty"`
	Founded  int    `json:"founded,omitempty"`
	National bool   `json:"national"`
	Logo     string `json:"logo,omitempty"`
}

type fixtureResponse struct {
	ID            int64     `json:"id"`
	Referee       string    `json:"referee,omitempty"`
	Timezone      string    `json:"timezone,omitempty"`
	Date          time.Time `json:"date"`
	VenueID       *int64    `json:"venue_id,omitempty"`
	StatusLong    string    `json:"status_long"`
	StatusShort   string    `json:"status_short"`
	StatusElapsed *int      `json:"status_elapsed,omitempty"`
	IsFinal       bool      `json:"is_final"`
	LeagueID      int64     `json:"league_id"`
	SeasonYear    int       `json:"season_year"`
	Round         string    `json:"round,omitempty"`
	HomeTeamID    int64     `json:"home_team_id"`
	AwayTeamID    int64     `json:"away_team_id"`

	GoalsHome          *int `json:"goals_home,omitempty"`
	GoalsAway          *int `json:"goals_away,omitempty"`
	ScoreHalftimeHome  *int `json:"score_halftime_home,omitempty"`
	ScoreHalftimeAway  *int `json:"score_halftime_away,omitempty"`
	ScoreFulltimeHome  *int `json:"score_fulltime_home,omitempty"`
	ScoreFulltimeAway  *int `json:"score_fulltime_away,omitempty"`
	ScoreExtratimeHome *int `json:"score_extratime_home,omitempty"`
	ScoreExtratimeAway *int `json:"score_extratime_away,omitempty"`
	ScorePenaltyHome   *int `json:"score_penalty_home,omitempty"`
	ScorePenaltyAway   *int `json:"score_penalty_away,omitempty"`
}

type fixtureDetailsResponse struct {
	Fixture    fixtureResponse            `json:"fixture"`
	Odds       *fixtureOddsResponse       `json:"odds,omitempty"`
	Prediction *predictionResponse        `json:"prediction,omitempty"`
	Statistics []fixtureTeamStatsResponse `json:"statistics,omitempty"`
	Events     []fixtureEventResponse     `json:"events,omitempty"`
}

type oddsValueResponse struct {
	Value string `json:"value"`
	Odd   string `json:"odd"`
}

type oddsBetResponse struct {
	BetTypeID   int64               `json:"bet_type_id"`
	BetTypeName string              `json:"bet_type_name"`
	Values      []oddsValueResponse `json:"values"`
}

type oddsBookmakerResponse struct {
	BookmakerID   int64             `json:"bookmaker_id"`
	BookmakerName string            `json:"bookmaker_name"`
	Bets          []oddsBetResponse `json:"bets"`
}

type fixtureOddsResponse struct {
	FixtureID  int64                   `json:"fixture_id"`
	UpdateTime *time.Time              `json:"update_time,omitempty"`
	Bookmakers []oddsBookmakerResponse `json:"bookmakers"`
}

type bookmakerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type predictionResponse struct {
	FixtureID    int64          `json:"fixture_id"`
	WinnerTeamID *int64         `json:"winner_team_id,omitempty"`
	WinOrDraw    *bool          `json:"win_or_draw,omitempty"`
	UnderOver    *string        `json:"under_over,omitempty"`
	GoalsHome    *string        `json:"goals_home,omitempty"`
	GoalsAway    *string        `json:"goals_away,omitempty"`
	Advice       string         `json:"advice,omitempty"`
	PercentHome  string         `json:"percent_home,omitempty"`
	PercentDraw  string         `json:"percent_draw,omitempty"`
	PercentAway  string         `json:"percent_away,omitempty"`
	Comparison   map[string]any `json:"comparison,omitempty"`
}

type fixtureTeamStatsResponse struct {
	FixtureID  int64          `json:"fixture_id"`
	TeamID     int64          `json:"team_id"`
	Statistics map[string]any `json:"statistics"`
}

type fixtureEventResponse struct {
	FixtureID   int64  `json:"fixture_id"`
	Minute      int    `json:"minute"`
	ExtraMinute *int   `json:"extra_minute,omitempty"`
	TeamID      int64  `json:"team_id"`
	PlayerID    *int64 `json:"player_id,omitempty"`
	PlayerName  string `json:"player_name,omitempty"`
	Type        string `json:"type"`
	Detail      string `json:"detail,omitempty"`
	Comments    string `json:"comments,omitempty"`
}

type playerResponse struct {
	ID           int64  `json:"id"`
	SeasonYear   int    `json:"season_year"`
	TeamID       int64  `json:"team_id,omitempty"`
	Name         string `json:"name"`
	Firstname    string `json:"firstname,omitempty"`
	Lastname     string `json:"lastname,omitempty"`
	Age          *int   `json:"age,omitempty"`
	BirthDate    string `json:"birth_date,omitempty"`
	BirthPlace   string `json:"birth_place,omitempty"`
	BirthCountry string `json:"birth_country,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
	Height       string `json:"height,omitempty"`
	Weight       string `json:"weight,omitempty"`
	Injured      bool   `json:"injured"`
	Photo        string `json:"photo,omitempty"`
}

type playerStatisticsResponse struct {
	PlayerID   int64 `json:"player_id"`
	TeamID     int64 `json:"team_id"`
	LeagueID   int64 `json:"league_id"`
	SeasonYear int   `json:"season_year"`

	Position string   `json:"position,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	Captain  bool     `json:"captain"`

	Appearances      int  `json:"appearances"`
	Lineups          int  `json:"lineups"`
	Minutes          int  `json:"minutes"`
	Number           *int `json:"number,omitempty"`
	SubstitutesIn    int  `json:"substitutes_in"`
	SubstitutesOut   int  `json:"substitutes_out"`
	SubstitutesBench int  `json:"substitutes_bench"`

	ShotsTotal    int `json:"shots_total"`
	ShotsOnTarget int `json:"shots_on_target"`

	GoalsTotal    int `json:"goals_total"`
	GoalsConceded int `json:"goals_conceded"`
	Assists       int `json:"assists"`
	Saves         int `json:"saves"`

	PassesTotal    int  `json:"passes_total"`
	PassesKey      int  `json:"passes_key"`
	PassesAccuracy *int `json:"passes_accuracy,omitempty"`

	TacklesTotal  int `json:"tackles_total"`
	Blocks        int `json:"blocks"`
	Interceptions int `json:"interceptions"`

	DuelsTotal int `json:"duels_total"`
	DuelsWon   int `json:"duels_won"`

	DribblesAttempts int `json:"dribbles_attempts"`
	DribblesSuccess  int `json:"dribbles_success"`
	DribblesPast     int `json:"dribbles_past"`

	FoulsDrawn     int `json:"fouls_drawn"`
	FoulsCommitted int `json:"fouls_committed"`

	CardsYellow    int `json:"cards_yellow"`
	CardsYellowRed int `json:"cards_yellowred"`
	CardsRed       int `json:"cards_red"`

	PenaltyWon       int `json:"penalty_won"`
	PenaltyCommitted int `json:"penalty_committed"`
	PenaltyScored    int `json:"penalty_scored"`
	PenaltyMissed    int `json:"penalty_missed"`
	PenaltySaved     int `json:"penalty_saved"`
}

type playerWithStatisticsResponse struct {
	Player     playerResponse             `json:"player"`
	Statistics []playerStatisticsResponse `json:"statistics"`
}

type headToHeadResponse struct {
	Team1ID   int64             `json:"team1_id"`
	Team2ID   int64             `json:"team2_id"`
	Team1Wins int               `json:"team1_wins"`
	Team2Wins int               `json:"team2_wins"`
	Draws     int               `json:"draws"`
	Matches   []fixtureResponse `json:"matches"`
}

func toLeagueResponse(l league.League) leagueResponse {
	return leagueResponse{
		ID:          l.ID,
		Name:        l.Name,
		Type:        l.Type,
		Logo:        l.Logo,
		CountryName: l.CountryName,
		CountryCode: l.CountryCode,
		CountryFlag: l.CountryFlag,
	}
}

func toSeasonResponse(s league.Season) seasonResponse {
	out := seasonResponse{
		LeagueID: s.LeagueID,
		Year:     s.Year,
		Current:  s.Current,
		Coverage: s.Coverage,
	}
	if !s.StartDate.IsZero() {
		out.StartDate = s.StartDate.Format("2006-01-02")
	}
	if !s.EndDate.IsZero() {
		out.EndDate = s.EndDate.Format("2006-01-02")
	}
	return out
}

func toTeamResponse(t team.Team) teamResponse {
	return teamResponse{
		ID:       t.ID,
		Name:     t.Name,
		Code:     t.Code,
		Country:  t.Country,
		Founded:  t.Founded,
		National: t.National,
		Logo:     t.Logo,
	}
}

func toFixtureResponse(f fixture.Fixture) fixtureResponse {
	return fixtureResponse{
		ID:                 f.ID,
		Referee:            f.Referee,
		Timezone:           f.Timezone,
		Date:               f.Date,
		VenueID:            f.VenueID,
		StatusLong:         f.StatusLong,
		StatusShort:        f.StatusShort,
		StatusElapsed:      f.StatusElapsed,
		IsFinal:            f.IsFinal,
		LeagueID:           f.LeagueID,
		SeasonYear:         f.SeasonYear,
		Round:              f.Round,
		HomeTeamID:         f.HomeTeamID,
		AwayTeamID:         f.AwayTeamID,
		GoalsHome:          f.GoalsHome,
		GoalsAway:          f.GoalsAway,
		ScoreHalftimeHome:  f.ScoreHalftimeHome,
		ScoreHalftimeAway:  f.ScoreHalftimeAway,
		ScoreFulltimeHome:  f.ScoreFulltimeHome,
		ScoreFulltimeAway:  f.ScoreFulltimeAway,
		ScoreExtratimeHome: f.ScoreExtratimeHome,
		ScoreExtratimeAway: f.ScoreExtratimeAway,
		ScorePenaltyHome:   f.ScorePenaltyHome,
		ScorePenaltyAway:   f.ScorePenaltyAway,
	}
}

func toFixtureResponses(fixtures []fixture.Fixture) []fixtureResponse {
	out := make([]fixtureResponse, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, toFixtureResponse(f))
	}
	return out
}

func toFixtureOddsResponse(o odds.FixtureOdds) fixtureOddsResponse {
	out := fixtureOddsResponse{
		FixtureID:  o.FixtureID,
		Bookmakers: make([]oddsBookmakerResponse, 0, len(o.Bookmakers)),
	}
	if !o.UpdateTime.IsZero() {
		updateTime := o.UpdateTime
		out.UpdateTime = &updateTime
	}
	for _, b := range o.Bookmakers {
		bookmaker := oddsBookmakerResponse{
			BookmakerID:   b.BookmakerID,
			BookmakerName: b.BookmakerName,
			Bets:          make([]oddsBetResponse, 0, len(b.Bets)),
		}
		for _, bet := range b.Bets {
			betOut := oddsBetResponse{
				BetTypeID:   bet.BetTypeID,
				BetTypeName: bet.BetTypeName,
				Values:      make([]oddsValueResponse, 0, len(bet.Values)),
			}
			for _, v := range bet.Values {
				betOut.Values = append(betOut.Values, oddsValueResponse{Value: v.Value, Odd: v.Odd})
			}
			bookmaker.Bets = append(bookmaker.Bets, betOut)
		}
		out.Bookmakers = append(out.Bookmakers, bookmaker)
	}
	return out
}

func toPredictionResponse(p prediction.Prediction) predictionResponse {
	return predictionResponse{
		FixtureID:    p.FixtureID,
		WinnerTeamID: p.WinnerTeamID,
		WinOrDraw:    p.WinOrDraw,
		UnderOver:    p.UnderOver,
		GoalsHome:    p.GoalsHome,
		GoalsAway:    p.GoalsAway,
		Advice:       p.Advice,
		PercentHome:  p.PercentHome,
		PercentDraw:  p.PercentDraw,
		PercentAway:  p.PercentAway,
		Comparison:   p.Comparison,
	}
}

func toFixtureTeamStatsResponses(rows []matchdata.TeamStatistics) []fixtureTeamStatsResponse {
	out := make([]fixtureTeamStatsResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixtureTeamStatsResponse{
			FixtureID:  row.FixtureID,
			TeamID:     row.TeamID,
			Statistics: row.Statistics,
		})
	}
	return out
}

func toFixtureEventResponses(events []matchdata.Event) []fixtureEventResponse {
	out := make([]fixtureEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, fixtureEventResponse{
			FixtureID:   e.FixtureID,
			Minute:      e.Minute,
			ExtraMinute: e.ExtraMinute,
			TeamID:      e.TeamID,
			PlayerID:    e.PlayerID,
			PlayerName:  e.PlayerName,
			Type:        e.Type,
			Detail:      e.Detail,
			Comments:    e.Comments,
		})
	}
	return out
}

func toPlayerResponse(p player.Player) playerResponse {
	out := playerResponse{
		ID:           p.ID,
		SeasonYear:   p.SeasonYear,
		TeamID:       p.TeamID,
		Name:         p.Name,
		Firstname:    p.Firstname,
		Lastname:     p.Lastname,
		Age:          p.Age,
		BirthPlace:   p.BirthPlace,
		BirthCountry: p.BirthCountry,
		Nationality:  p.Nationality,
		Height:       p.Height,
		Weight:       p.Weight,
		Injured:      p.Injured,
		Photo:        p.Photo,
	}
	if p.BirthDate != nil {
		out.BirthDate = p.BirthDate.Format("2006-01-02")
	}
	return out
}

func toPlayerStatisticsResponse(s playerstats.Statistics) playerStatisticsResponse {
	return playerStatisticsResponse{
		PlayerID:         s.PlayerID,
		TeamID:           s.TeamID,
		LeagueID:         s.LeagueID,
		SeasonYear:       s.SeasonYear,
		Position:         s.Position,
		Rating:           s.Rating,
		Captain:          s.Captain,
		Appearances:      s.Appearances,
		Lineups:          s.Lineups,
		Minutes:          s.Minutes,
		Number:           s.Number,
		SubstitutesIn:    s.SubstitutesIn,
		SubstitutesOut:   s.SubstitutesOut,
		SubstitutesBench: s.SubstitutesBench,
		ShotsTotal:       s.ShotsTotal,
		ShotsOnTarget:    s.ShotsOnTarget,
		GoalsTotal:       s.GoalsTotal,
		GoalsConceded:    s.GoalsConceded,
		Assists:          s.Assists,
		Saves:            s.Saves,
		PassesTotal:      s.PassesTotal,
		PassesKey:        s.PassesKey,
		PassesAccuracy:   s.PassesAccuracy,
		TacklesTotal:     s.TacklesTotal,
		Blocks:           s.Blocks,
		Interceptions:    s.Interceptions,
		DuelsTotal:       s.DuelsTotal,
		DuelsWon:         s.DuelsWon,
		DribblesAttempts: s.DribblesAttempts,
		DribblesSuccess:  s.DribblesSuccess,
		DribblesPast:     s.DribblesPast,
		FoulsDrawn:       s.FoulsDrawn,
		FoulsCommitted:   s.FoulsCommitted,
		CardsYellow:      s.CardsYellow,
		CardsYellowRed:   s.CardsYellowRed,
		CardsRed:         s.CardsRed,
		PenaltyWon:       s.PenaltyWon,
		PenaltyCommitted: s.PenaltyCommitted,
		PenaltyScored:    s.PenaltyScored,
		PenaltyMissed:    s.PenaltyMissed,
		PenaltySaved:     s.PenaltySaved,
	}
}

func toPlayerWithStatisticsResponse(p usecase.PlayerWithStatistics) playerWithStatisticsResponse {
	out := playerWithStatisticsResponse{
		Player:     toPlayerResponse(p.Player),
		Statistics: make([]playerStatisticsResponse, 0, len(p.Statistics)),
	}
	for _, s := range p.Statistics {
		out.Statistics = append(out.Statistics, toPlayerStatisticsResponse(s))
	}
	return out
}

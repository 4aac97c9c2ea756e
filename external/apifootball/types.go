package apifootball

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fixturehub/football-data/internal/usecase"
)

// envelopeChecker lets doJSON validate the standard api-football envelope
// after decoding. The provider reports auth and rate-limit problems inside a
// 200 response, so status codes alone are not enough.
type envelopeChecker interface {
	check() error
}

type pagingInfo struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type apiEnvelope struct {
	Get     string     `json:"get"`
	Errors  any        `json:"errors"`
	Results int        `json:"results"`
	Paging  pagingInfo `json:"paging"`
}

func (e apiEnvelope) check() error {
	messages := flattenEnvelopeErrors(e.Errors)
	if len(messages) == 0 {
		return nil
	}

	for key, message := range messages {
		lowered := strings.ToLower(key + " " + message)
		if strings.Contains(lowered, "token") || strings.Contains(lowered, "key") || strings.Contains(lowered, "subscription") {
			return fmt.Errorf("%w: %s", usecase.ErrMissingCredential, message)
		}
	}
	for key, message := range messages {
		return fmt.Errorf("provider error %s: %s", key, message)
	}
	return nil
}

func flattenEnvelopeErrors(raw any) map[string]string {
	switch typed := raw.(type) {
	case map[string]any:
		if len(typed) == 0 {
			return nil
		}
		out := make(map[string]string, len(typed))
		for key, value := range typed {
			out[key] = fmt.Sprint(value)
		}
		return out
	case []any:
		if len(typed) == 0 {
			return nil
		}
		out := make(map[string]string, len(typed))
		for idx, value := range typed {
			out[strconv.Itoa(idx)] = fmt.Sprint(value)
		}
		return out
	default:
		return nil
	}
}

func mapPaging(p pagingInfo) usecase.Paging {
	return usecase.Paging{Current: p.Current, Total: p.Total}
}

type leaguesEnvelope struct {
	apiEnvelope
	Response []leagueItem `json:"response"`
}

type leagueItem struct {
	League  leagueInfo   `json:"league"`
	Country countryInfo  `json:"country"`
	Seasons []seasonItem `json:"seasons"`
}

type leagueInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Logo string `json:"logo"`
}

type countryInfo struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

type seasonItem struct {
	Year     int            `json:"year"`
	Start    string         `json:"start"`
	End      string         `json:"end"`
	Current  bool           `json:"current"`
	Coverage map[string]any `json:"coverage"`
}

func mapLeagueItem(item leagueItem) usecase.ExternalLeague {
	out := usecase.ExternalLeague{
		LeagueID:    item.League.ID,
		Name:        item.League.Name,
		Type:        item.League.Type,
		Logo:        item.League.Logo,
		CountryName: item.Country.Name,
		CountryCode: item.Country.Code,
		CountryFlag: item.Country.Flag,
		Seasons:     make([]usecase.ExternalSeason, 0, len(item.Seasons)),
	}
	for _, season := range item.Seasons {
		out.Seasons = append(out.Seasons, usecase.ExternalSeason{
			Year:      season.Year,
			StartDate: parseDate(season.Start),
			EndDate:   parseDate(season.End),
			Current:   season.Current,
			Coverage:  season.Coverage,
		})
	}
	return out
}

type teamsEnvelope struct {
	apiEnvelope
	Response []teamItem `json:"response"`
}

type teamItem struct {
	Team teamInfo `json:"team"`
}

type teamInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Country  string `json:"country"`
	Founded  int    `json:"founded"`
	National bool   `json:"national"`
	Logo     string `json:"logo"`
}

func mapTeamItem(item teamItem) usecase.ExternalTeam {
	return usecase.ExternalTeam{
		TeamID:   item.Team.ID,
		Name:     item.Team.Name,
		Code:     item.Team.Code,
		Country:  item.Team.Country,
		Founded:  item.Team.Founded,
		National: item.Team.National,
		Logo:     item.Team.Logo,
	}
}

type playersEnvelope struct {
	apiEnvelope
	Response []playerItem `json:"response"`
}

type playerItem struct {
	Player     playerInfo       `json:"player"`
	Statistics []playerStatItem `json:"statistics"`
}

type playerInfo struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Firstname   string      `json:"firstname"`
	Lastname    string      `json:"lastname"`
	Age         *int        `json:"age"`
	Birth       playerBirth `json:"birth"`
	Nationality string      `json:"nationality"`
	Height      string      `json:"height"`
	Weight      string      `json:"weight"`
	Injured     bool        `json:"injured"`
	Photo       string      `json:"photo"`
}

type playerBirth struct {
	Date    string `json:"date"`
	Place   string `json:"place"`
	Country string `json:"country"`
}

type playerStatItem struct {
	Team   idRef `json:"team"`
	League struct {
		ID     int64 `json:"id"`
		Season int   `json:"season"`
	} `json:"league"`
	Games struct {
		// Misspelled in the provider payload.
		Appearences *int    `json:"appearences"`
		Lineups     *int    `json:"lineups"`
		Minutes     *int    `json:"minutes"`
		Number      *int    `json:"number"`
		Position    string  `json:"position"`
		Rating      *string `json:"rating"`
		Captain     bool    `json:"captain"`
	} `json:"games"`
	Substitutes struct {
		In    *int `json:"in"`
		Out   *int `json:"out"`
		Bench *int `json:"bench"`
	} `json:"substitutes"`
	Shots struct {
		Total *int `json:"total"`
		On    *int `json:"on"`
	} `json:"shots"`
	Goals struct {
		Total    *int `json:"total"`
		Conceded *int `json:"conceded"`
		Assists  *int `json:"assists"`
		Saves    *int `json:"saves"`
	} `json:"goals"`
	Passes struct {
		Total    *int `json:"total"`
		Key      *int `json:"key"`
		Accuracy *int `json:"accuracy"`
	} `json:"passes"`
	Tackles struct {
		Total         *int `json:"total"`
		Blocks        *int `json:"blocks"`
		Interceptions *int `json:"interceptions"`
	} `json:"tackles"`
	Duels struct {
		Total *int `json:"total"`
		Won   *int `json:"won"`
	} `json:"duels"`
	Dribbles struct {
		Attempts *int `json:"attempts"`
		Success  *int `json:"success"`
		Past     *int `json:"past"`
	} `json:"dribbles"`
	Fouls struct {
		Drawn     *int `json:"drawn"`
		Committed *int `json:"committed"`
	} `json:"fouls"`
	Cards struct {
		Yellow    *int `json:"yellow"`
		YellowRed *int `json:"yellowred"`
		Red       *int `json:"red"`
	} `json:"cards"`
	Penalty struct {
		Won *int `json:"won"`
		// Misspelled in the provider payload.
		Commited *int `json:"commited"`
		Scored   *int `json:"scored"`
		Missed   *int `json:"missed"`
		Saved    *int `json:"saved"`
	} `json:"penalty"`
}

type idRef struct {
	ID int64 `json:"id"`
}

func mapPlayerItem(item playerItem) usecase.ExternalPlayer {
	out := usecase.ExternalPlayer{
		PlayerID:     item.Player.ID,
		Name:         item.Player.Name,
		Firstname:    item.Player.Firstname,
		Lastname:     item.Player.Lastname,
		Age:          item.Player.Age,
		BirthDate:    parseDatePtr(item.Player.Birth.Date),
		BirthPlace:   item.Player.Birth.Place,
		BirthCountry: item.Player.Birth.Country,
		Nationality:  item.Player.Nationality,
		Height:       item.Player.Height,
		Weight:       item.Player.Weight,
		Injured:      item.Player.Injured,
		Photo:        item.Player.Photo,
		Statistics:   make([]usecase.ExternalPlayerStatistics, 0, len(item.Statistics)),
	}
	for _, stat := range item.Statistics {
		out.Statistics = append(out.Statistics, mapPlayerStatItem(stat))
	}
	return out
}

func mapPlayerStatItem(item playerStatItem) usecase.ExternalPlayerStatistics {
	return usecase.ExternalPlayerStatistics{
		TeamID:     item.Team.ID,
		LeagueID:   item.League.ID,
		SeasonYear: item.League.Season,

		Position: item.Games.Position,
		Rating:   parseRating(item.Games.Rating),
		Captain:  item.Games.Captain,

		Appearances:      derefInt(item.Games.Appearences),
		Lineups:          derefInt(item.Games.Lineups),
		Minutes:          derefInt(item.Games.Minutes),
		Number:           item.Games.Number,
		SubstitutesIn:    derefInt(item.Substitutes.In),
		SubstitutesOut:   derefInt(item.Substitutes.Out),
		SubstitutesBench: derefInt(item.Substitutes.Bench),

		ShotsTotal:    derefInt(item.Shots.Total),
		ShotsOnTarget: derefInt(item.Shots.On),

		GoalsTotal:    derefInt(item.Goals.Total),
		GoalsConceded: derefInt(item.Goals.Conceded),
		Assists:       derefInt(item.Goals.Assists),
		Saves:         derefInt(item.Goals.Saves),

		PassesTotal:    derefInt(item.Passes.Total),
		PassesKey:      derefInt(item.Passes.Key),
		PassesAccuracy: item.Passes.Accuracy,

		TacklesTotal:  derefInt(item.Tackles.Total),
		Blocks:        derefInt(item.Tackles.Blocks),
		Interceptions: derefInt(item.Tackles.Interceptions),

		DuelsTotal: derefInt(item.Duels.Total),
		DuelsWon:   derefInt(item.Duels.Won),

		DribblesAttempts: derefInt(item.Dribbles.Attempts),
		DribblesSuccess:  derefInt(item.Dribbles.Success),
		DribblesPast:     derefInt(item.Dribbles.Past),

		FoulsDrawn:     derefInt(item.Fouls.Drawn),
		FoulsCommitted: derefInt(item.Fouls.Committed),

		CardsYellow:    derefInt(item.Cards.Yellow),
		CardsYellowRed: derefInt(item.Cards.YellowRed),
		CardsRed:       derefInt(item.Cards.Red),

		PenaltyWon:       derefInt(item.Penalty.Won),
		PenaltyCommitted: derefInt(item.Penalty.Commited),
		PenaltyScored:    derefInt(item.Penalty.Scored),
		PenaltyMissed:    derefInt(item.Penalty.Missed),
		PenaltySaved:     derefInt(item.Penalty.Saved),
	}
}

type fixturesEnvelope struct {
	apiEnvelope
	Response []fixtureItem `json:"response"`
}

type fixtureItem struct {
	Fixture struct {
		ID        int64  `json:"id"`
		Referee   string `json:"referee"`
		Timezone  string `json:"timezone"`
		Date      string `json:"date"`
		Timestamp int64  `json:"timestamp"`
		Venue     struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"venue"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
			Extra   *int   `json:"extra"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID     int64  `json:"id"`
		Season int    `json:"season"`
		Round  string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home idRef `json:"home"`
		Away idRef `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
	Score struct {
		Halftime  scorePair `json:"halftime"`
		Fulltime  scorePair `json:"fulltime"`
		Extratime scorePair `json:"extratime"`
		Penalty   scorePair `json:"penalty"`
	} `json:"score"`
}

type scorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

func mapFixtureItem(item fixtureItem) usecase.ExternalFixture {
	return usecase.ExternalFixture{
		FixtureID: item.Fixture.ID,
		Referee:   item.Fixture.Referee,
		Timezone:  item.Fixture.Timezone,
		Date:      parseDateTime(item.Fixture.Date),
		Timestamp: item.Fixture.Timestamp,
		Venue: usecase.ExternalVenue{
			VenueID: item.Fixture.Venue.ID,
			Name:    item.Fixture.Venue.Name,
			City:    item.Fixture.Venue.City,
		},
		StatusLong:    item.Fixture.Status.Long,
		StatusShort:   item.Fixture.Status.Short,
		StatusElapsed: item.Fixture.Status.Elapsed,
		StatusExtra:   item.Fixture.Status.Extra,
		LeagueID:      item.League.ID,
		SeasonYear:    item.League.Season,
		Round:         item.League.Round,
		HomeTeamID:    item.Teams.Home.ID,
		AwayTeamID:    item.Teams.Away.ID,

		GoalsHome:          item.Goals.Home,
		GoalsAway:          item.Goals.Away,
		ScoreHalftimeHome:  item.Score.Halftime.Home,
		ScoreHalftimeAway:  item.Score.Halftime.Away,
		ScoreFulltimeHome:  item.Score.Fulltime.Home,
		ScoreFulltimeAway:  item.Score.Fulltime.Away,
		ScoreExtratimeHome: item.Score.Extratime.Home,
		ScoreExtratimeAway: item.Score.Extratime.Away,
		ScorePenaltyHome:   item.Score.Penalty.Home,
		ScorePenaltyAway:   item.Score.Penalty.Away,
	}
}

type oddsEnvelope struct {
	apiEnvelope
	Response []oddsItem `json:"response"`
}

type oddsItem struct {
	Fixture    idRef           `json:"fixture"`
	Update     string          `json:"update"`
	Bookmakers []bookmakerItem `json:"bookmakers"`
}

type bookmakerItem struct {
	ID   int64     `json:"id"`
	Name string    `json:"name"`
	Bets []betItem `json:"bets"`
}

type betItem struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	Values []betValueItem `json:"values"`
}

type betValueItem struct {
	// Numeric for some markets, string for others.
	Value any    `json:"value"`
	Odd   string `json:"odd"`
}

func mapOddsItem(item oddsItem) usecase.ExternalFixtureOdds {
	out := usecase.ExternalFixtureOdds{
		FixtureID:  item.Fixture.ID,
		UpdateTime: parseDateTime(item.Update),
		Bookmakers: make([]usecase.ExternalBookmakerOdds, 0, len(item.Bookmakers)),
	}
	for _, bookmaker := range item.Bookmakers {
		mapped := usecase.ExternalBookmakerOdds{
			BookmakerID: bookmaker.ID,
			Name:        bookmaker.Name,
			Bets:        make([]usecase.ExternalBet, 0, len(bookmaker.Bets)),
		}
		for _, bet := range bookmaker.Bets {
			mappedBet := usecase.ExternalBet{
				BetID:  bet.ID,
				Name:   bet.Name,
				Values: make([]usecase.ExternalOddValue, 0, len(bet.Values)),
			}
			for _, value := range bet.Values {
				mappedBet.Values = append(mappedBet.Values, usecase.ExternalOddValue{
					Value: asString(value.Value),
					Odd:   value.Odd,
				})
			}
			mapped.Bets = append(mapped.Bets, mappedBet)
		}
		out.Bookmakers = append(out.Bookmakers, mapped)
	}
	return out
}

type predictionsEnvelope struct {
	apiEnvelope
	Response []predictionItem `json:"response"`
}

type predictionItem struct {
	Predictions struct {
		Winner struct {
			ID *int64 `json:"id"`
		} `json:"winner"`
		WinOrDraw *bool   `json:"win_or_draw"`
		UnderOver *string `json:"under_over"`
		Goals     struct {
			Home *string `json:"home"`
			Away *string `json:"away"`
		} `json:"goals"`
		Advice  string `json:"advice"`
		Percent struct {
			Home string `json:"home"`
			Draw string `json:"draw"`
			Away string `json:"away"`
		} `json:"percent"`
	} `json:"predictions"`
	Comparison map[string]any `json:"comparison"`
}

func mapPredictionItem(fixtureID int64, item predictionItem) usecase.ExternalPrediction {
	return usecase.ExternalPrediction{
		FixtureID:    fixtureID,
		WinnerTeamID: item.Predictions.Winner.ID,
		WinOrDraw:    item.Predictions.WinOrDraw,
		UnderOver:    item.Predictions.UnderOver,
		GoalsHome:    item.Predictions.Goals.Home,
		GoalsAway:    item.Predictions.Goals.Away,
		Advice:       item.Predictions.Advice,
		PercentHome:  item.Predictions.Percent.Home,
		PercentDraw:  item.Predictions.Percent.Draw,
		PercentAway:  item.Predictions.Percent.Away,
		Comparison:   item.Comparison,
	}
}

type fixtureStatisticsEnvelope struct {
	apiEnvelope
	Response []teamStatisticsItem `json:"response"`
}

type teamStatisticsItem struct {
	Team       idRef `json:"team"`
	Statistics []struct {
		Type  string `json:"type"`
		Value any    `json:"value"`
	} `json:"statistics"`
}

func mapTeamStatisticsItem(item teamStatisticsItem) usecase.ExternalTeamStatistics {
	stats := make(map[string]any, len(item.Statistics))
	for _, entry := range item.Statistics {
		if entry.Type == "" {
			continue
		}
		stats[entry.Type] = entry.Value
	}
	return usecase.ExternalTeamStatistics{
		TeamID:     item.Team.ID,
		Statistics: stats,
	}
}

type fixtureEventsEnvelope struct {
	apiEnvelope
	Response []eventItem `json:"response"`
}

type eventItem struct {
	Time struct {
		Elapsed int  `json:"elapsed"`
		Extra   *int `json:"extra"`
	} `json:"time"`
	Team   idRef `json:"team"`
	Player struct {
		ID   *int64 `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Type     string  `json:"type"`
	Detail   string  `json:"detail"`
	Comments *string `json:"comments"`
}

func mapEventItem(item eventItem) usecase.ExternalFixtureEvent {
	comments := ""
	if item.Comments != nil {
		comments = *item.Comments
	}
	return usecase.ExternalFixtureEvent{
		Minute:      item.Time.Elapsed,
		ExtraMinute: item.Time.Extra,
		TeamID:      item.Team.ID,
		PlayerID:    item.Player.ID,
		PlayerName:  item.Player.Name,
		Type:        item.Type,
		Detail:      item.Detail,
		Comments:    comments,
	}
}

func parseDate(raw string) time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}
	}
	return parsed.UTC()
}

func parseDatePtr(raw string) *time.Time {
	parsed := parseDate(raw)
	if parsed.IsZero() {
		return nil
	}
	return &parsed
}

func parseDateTime(raw string) time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func parseRating(raw *string) *float64 {
	if raw == nil {
		return nil
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func derefInt(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func asString(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		if typed == float64(int64(typed)) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}

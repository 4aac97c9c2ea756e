package usecase

import (
	"strings"
	"time"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/matchdata"
	"github.com/fixturehub/football-data/internal/domain/odds"
	"github.com/fixturehub/football-data/internal/domain/player"
	"github.com/fixturehub/football-data/internal/domain/playerstats"
	"github.com/fixturehub/football-data/internal/domain/prediction"
	"github.com/fixturehub/football-data/internal/domain/team"
)

func mapExternalLeague(item ExternalLeague) league.League {
	return league.League{
		ID:          item.LeagueID,
		Name:        strings.TrimSpace(item.Name),
		Type:        strings.TrimSpace(item.Type),
		Logo:        strings.TrimSpace(item.Logo),
		CountryName: strings.TrimSpace(item.CountryName),
		CountryCode: strings.TrimSpace(item.CountryCode),
		CountryFlag: strings.TrimSpace(item.CountryFlag),
	}
}

func mapExternalSeason(leagueID int64, item ExternalSeason) league.Season {
	return league.Season{
		LeagueID:  leagueID,
		Year:      item.Year,
		StartDate: item.StartDate.UTC(),
		EndDate:   item.EndDate.UTC(),
		Current:   item.Current,
		Coverage:  copyMap(item.Coverage),
	}
}

func mapExternalTeam(item ExternalTeam) team.Team {
	return team.Team{
		ID:       item.TeamID,
		Name:     strings.TrimSpace(item.Name),
		Code:     strings.TrimSpace(item.Code),
		Country:  strings.TrimSpace(item.Country),
		Founded:  item.Founded,
		National: item.National,
		Logo:     strings.TrimSpace(item.Logo),
	}
}

func mapExternalPlayer(seasonYear int, teamID int64, item ExternalPlayer) player.Player {
	return player.Player{
		ID:           item.PlayerID,
		SeasonYear:   seasonYear,
		TeamID:       teamID,
		Name:         strings.TrimSpace(item.Name),
		Firstname:    strings.TrimSpace(item.Firstname),
		Lastname:     strings.TrimSpace(item.Lastname),
		Age:          cloneIntPtr(item.Age),
		BirthDate:    cloneTimePtr(item.BirthDate),
		BirthPlace:   strings.TrimSpace(item.BirthPlace),
		BirthCountry: strings.TrimSpace(item.BirthCountry),
		Nationality:  strings.TrimSpace(item.Nationality),
		Height:       strings.TrimSpace(item.Height),
		Weight:       strings.TrimSpace(item.Weight),
		Injured:      item.Injured,
		Photo:        strings.TrimSpace(item.Photo),
	}
}

func mapExternalPlayerStatistics(playerID int64, item ExternalPlayerStatistics) playerstats.Statistics {
	return playerstats.Statistics{
		PlayerID:   playerID,
		TeamID:     item.TeamID,
		LeagueID:   item.LeagueID,
		SeasonYear: item.SeasonYear,

		Position: strings.TrimSpace(item.Position),
		Rating:   cloneFloat64Ptr(item.Rating),
		Captain:  item.Captain,

		Appearances:      item.Appearances,
		Lineups:          item.Lineups,
		Minutes:          item.Minutes,
		Number:           cloneIntPtr(item.Number),
		SubstitutesIn:    item.SubstitutesIn,
		SubstitutesOut:   item.SubstitutesOut,
		SubstitutesBench: item.SubstitutesBench,

		ShotsTotal:    item.ShotsTotal,
		ShotsOnTarget: item.ShotsOnTarget,

		GoalsTotal:    item.GoalsTotal,
		GoalsConceded: item.GoalsConceded,
		Assists:       item.Assists,
		Saves:         item.Saves,

		PassesTotal:    item.PassesTotal,
		PassesKey:      item.PassesKey,
		PassesAccuracy: cloneIntPtr(item.PassesAccuracy),

		TacklesTotal:  item.TacklesTotal,
		Blocks:        item.Blocks,
		Interceptions: item.Interceptions,

		DuelsTotal: item.DuelsTotal,
		DuelsWon:   item.DuelsWon,

		DribblesAttempts: item.DribblesAttempts,
		DribblesSuccess:  item.DribblesSuccess,
		DribblesPast:     item.DribblesPast,

		FoulsDrawn:     item.FoulsDrawn,
		FoulsCommitted: item.FoulsCommitted,

		CardsYellow:    item.CardsYellow,
		CardsYellowRed: item.CardsYellowRed,
		CardsRed:       item.CardsRed,

		PenaltyWon:       item.PenaltyWon,
		PenaltyCommitted: item.PenaltyCommitted,
		PenaltyScored:    item.PenaltyScored,
		PenaltyMissed:    item.PenaltyMissed,
		PenaltySaved:     item.PenaltySaved,
	}
}

func mapExternalFixture(item ExternalFixture) fixture.Fixture {
	var venueID *int64
	if item.Venue.VenueID > 0 {
		v := item.Venue.VenueID
		venueID = &v
	}

	statusShort := strings.ToUpper(strings.TrimSpace(item.StatusShort))

	return fixture.Fixture{
		ID:            item.FixtureID,
		Referee:       strings.TrimSpace(item.Referee),
		Timezone:      strings.TrimSpace(item.Timezone),
		Date:          item.Date.UTC(),
		Timestamp:     item.Timestamp,
		VenueID:       venueID,
		StatusLong:    strings.TrimSpace(item.StatusLong),
		StatusShort:   statusShort,
		StatusElapsed: cloneIntPtr(item.StatusElapsed),
		StatusExtra:   cloneIntPtr(item.StatusExtra),
		IsFinal:       fixture.IsTerminalStatus(statusShort),
		LeagueID:      item.LeagueID,
		SeasonYear:    item.SeasonYear,
		Round:         strings.TrimSpace(item.Round),
		HomeTeamID:    item.HomeTeamID,
		AwayTeamID:    item.AwayTeamID,

		GoalsHome:          cloneIntPtr(item.GoalsHome),
		GoalsAway:          cloneIntPtr(item.GoalsAway),
		ScoreHalftimeHome:  cloneIntPtr(item.ScoreHalftimeHome),
		ScoreHalftimeAway:  cloneIntPtr(item.ScoreHalftimeAway),
		ScoreFulltimeHome:  cloneIntPtr(item.ScoreFulltimeHome),
		ScoreFulltimeAway:  cloneIntPtr(item.ScoreFulltimeAway),
		ScoreExtratimeHome: cloneIntPtr(item.ScoreExtratimeHome),
		ScoreExtratimeAway: cloneIntPtr(item.ScoreExtratimeAway),
		ScorePenaltyHome:   cloneIntPtr(item.ScorePenaltyHome),
		ScorePenaltyAway:   cloneIntPtr(item.ScorePenaltyAway),
	}
}

func mapExternalFixtureOdds(item ExternalFixtureOdds) odds.FixtureOdds {
	out := odds.FixtureOdds{
		FixtureID:  item.FixtureID,
		UpdateTime: item.UpdateTime.UTC(),
		Bookmakers: make([]odds.BookmakerOdds, 0, len(item.Bookmakers)),
	}
	for _, bm := range item.Bookmakers {
		mapped := odds.BookmakerOdds{
			BookmakerID:   bm.BookmakerID,
			BookmakerName: strings.TrimSpace(bm.Name),
			Bets:          make([]odds.Bet, 0, len(bm.Bets)),
		}
		for _, bet := range bm.Bets {
			values := make([]odds.Value, 0, len(bet.Values))
			for _, v := range bet.Values {
				values = append(values, odds.Value{Value: strings.TrimSpace(v.Value), Odd: strings.TrimSpace(v.Odd)})
			}
			mapped.Bets = append(mapped.Bets, odds.Bet{
				BetTypeID:   bet.BetID,
				BetTypeName: strings.TrimSpace(bet.Name),
				Values:      values,
			})
		}
		out.Bookmakers = append(out.Bookmakers, mapped)
	}
	return out
}

func mapExternalPrediction(item ExternalPrediction) prediction.Prediction {
	return prediction.Prediction{
		FixtureID:    item.FixtureID,
		WinnerTeamID: cloneInt64Ptr(item.WinnerTeamID),
		WinOrDraw:    cloneBoolPtr(item.WinOrDraw),
		UnderOver:    cloneStringPtr(item.UnderOver),
		GoalsHome:    cloneStringPtr(item.GoalsHome),
		GoalsAway:    cloneStringPtr(item.GoalsAway),
		Advice:       strings.TrimSpace(item.Advice),
		PercentHome:  strings.TrimSpace(item.PercentHome),
		PercentDraw:  strings.TrimSpace(item.PercentDraw),
		PercentAway:  strings.TrimSpace(item.PercentAway),
		Comparison:   copyMap(item.Comparison),
	}
}

func mapExternalTeamStatistics(fixtureID int64, items []ExternalTeamStatistics) []matchdata.TeamStatistics {
	out := make([]matchdata.TeamStatistics, 0, len(items))
	for _, item := range items {
		out = append(out, matchdata.TeamStatistics{
			FixtureID:  fixtureID,
			TeamID:     item.TeamID,
			Statistics: copyMap(item.Statistics),
		})
	}
	return out
}

func mapExternalFixtureEvents(fixtureID int64, items []ExternalFixtureEvent) []matchdata.Event {
	out := make([]matchdata.Event, 0, len(items))
	for _, item := range items {
		out = append(out, matchdata.Event{
			FixtureID:   fixtureID,
			Minute:      item.Minute,
			ExtraMinute: cloneIntPtr(item.ExtraMinute),
			TeamID:      item.TeamID,
			PlayerID:    cloneInt64Ptr(item.PlayerID),
			PlayerName:  strings.TrimSpace(item.PlayerName),
			Type:        strings.TrimSpace(item.Type),
			Detail:      strings.TrimSpace(item.Detail),
			Comments:    strings.TrimSpace(item.Comments),
		})
	}
	return out
}

func cloneIntPtr(value *int) *int {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

func cloneInt64Ptr(value *int64) *int64 {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

func cloneFloat64Ptr(value *float64) *float64 {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

func cloneBoolPtr(value *bool) *bool {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}

func cloneTimePtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	v := value.UTC()
	return &v
}

func copyMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return map[string]any{}
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

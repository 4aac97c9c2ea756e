package usecase

import (
	"time"

	"github.com/fixturehub/football-data/internal/domain/fixture"
	"github.com/fixturehub/football-data/internal/domain/league"
	"github.com/fixturehub/football-data/internal/domain/player"
	"github.com/fixturehub/football-data/internal/domain/playerstats"
	"github.com/fixturehub/football-data/internal/domain/prediction"
	"github.com/fixturehub/football-data/internal/domain/team"
)

// Merge functions take the stored row and the freshly mapped incoming row and
// return the row to persist plus whether anything actually changed. Surrogate
// ids survive from the stored row; every payload field follows the incoming
// one. A false result means the update can be elided.

func mergeLeague(existing, incoming league.League) (league.League, bool) {
	merged := incoming
	return merged, merged != existing
}

func mergeSeason(existing, incoming league.Season) (league.Season, bool) {
	merged := incoming
	merged.ID = existing.ID

	changed := existing.LeagueID != merged.LeagueID ||
		existing.Year != merged.Year ||
		!existing.StartDate.Equal(merged.StartDate) ||
		!existing.EndDate.Equal(merged.EndDate) ||
		existing.Current != merged.Current ||
		!equalMaps(existing.Coverage, merged.Coverage)

	return merged, changed
}

func mergeTeam(existing, incoming team.Team) (team.Team, bool) {
	merged := incoming
	return merged, merged != existing
}

func mergeVenue(existing, incoming fixture.Venue) (fixture.Venue, bool) {
	merged := incoming
	return merged, merged != existing
}

func mergePlayer(existing, incoming player.Player) (player.Player, bool) {
	merged := incoming

	changed := existing.TeamID != merged.TeamID ||
		existing.Name != merged.Name ||
		existing.Firstname != merged.Firstname ||
		existing.Lastname != merged.Lastname ||
		!equalIntPtr(existing.Age, merged.Age) ||
		!equalTimePtr(existing.BirthDate, merged.BirthDate) ||
		existing.BirthPlace != merged.BirthPlace ||
		existing.BirthCountry != merged.BirthCountry ||
		existing.Nationality != merged.Nationality ||
		existing.Height != merged.Height ||
		existing.Weight != merged.Weight ||
		existing.Injured != merged.Injured ||
		existing.Photo != merged.Photo

	return merged, changed
}

func mergePlayerStatistics(existing, incoming playerstats.Statistics) (playerstats.Statistics, bool) {
	merged := incoming
	merged.ID = existing.ID

	normalizedExisting := existing
	normalizedExisting.ID = 0
	normalizedIncoming := merged
	normalizedIncoming.ID = 0

	changed := normalizedExisting.Position != normalizedIncoming.Position ||
		!equalFloat64Ptr(normalizedExisting.Rating, normalizedIncoming.Rating) ||
		!equalIntPtr(normalizedExisting.Number, normalizedIncoming.Number) ||
		!equalIntPtr(normalizedExisting.PassesAccuracy, normalizedIncoming.PassesAccuracy) ||
		withoutPointers(normalizedExisting) != withoutPointers(normalizedIncoming)

	return merged, changed
}

// withoutPointers strips the pointer fields so the remaining scalar block can
// be compared with a single struct equality.
func withoutPointers(s playerstats.Statistics) playerstats.Statistics {
	s.Rating = nil
	s.Number = nil
	s.PassesAccuracy = nil
	return s
}

func mergeFixture(existing, incoming fixture.Fixture) (fixture.Fixture, bool) {
	merged := incoming

	changed := existing.Referee != merged.Referee ||
		existing.Timezone != merged.Timezone ||
		!existing.Date.Equal(merged.Date) ||
		existing.Timestamp != merged.Timestamp ||
		!equalInt64Ptr(existing.VenueID, merged.VenueID) ||
		existing.StatusLong != merged.StatusLong ||
		existing.StatusShort != merged.StatusShort ||
		!equalIntPtr(existing.StatusElapsed, merged.StatusElapsed) ||
		!equalIntPtr(existing.StatusExtra, merged.StatusExtra) ||
		existing.IsFinal != merged.IsFinal ||
		existing.LeagueID != merged.LeagueID ||
		existing.SeasonYear != merged.SeasonYear ||
		existing.Round != merged.Round ||
		existing.HomeTeamID != merged.HomeTeamID ||
		existing.AwayTeamID != merged.AwayTeamID ||
		!equalIntPtr(existing.GoalsHome, merged.GoalsHome) ||
		!equalIntPtr(existing.GoalsAway, merged.GoalsAway) ||
		!equalIntPtr(existing.ScoreHalftimeHome, merged.ScoreHalftimeHome) ||
		!equalIntPtr(existing.ScoreHalftimeAway, merged.ScoreHalftimeAway) ||
		!equalIntPtr(existing.ScoreFulltimeHome, merged.ScoreFulltimeHome) ||
		!equalIntPtr(existing.ScoreFulltimeAway, merged.ScoreFulltimeAway) ||
		!equalIntPtr(existing.ScoreExtratimeHome, merged.ScoreExtratimeHome) ||
		!equalIntPtr(existing.ScoreExtratimeAway, merged.ScoreExtratimeAway) ||
		!equalIntPtr(existing.ScorePenaltyHome, merged.ScorePenaltyHome) ||
		!equalIntPtr(existing.ScorePenaltyAway, merged.ScorePenaltyAway)

	return merged, changed
}

func mergePrediction(existing, incoming prediction.Prediction) (prediction.Prediction, bool) {
	merged := incoming
	merged.ID = existing.ID

	changed := !equalInt64Ptr(existing.WinnerTeamID, merged.WinnerTeamID) ||
		!equalBoolPtr(existing.WinOrDraw, merged.WinOrDraw) ||
		!equalStringPtr(existing.UnderOver, merged.UnderOver) ||
		!equalStringPtr(existing.GoalsHome, merged.GoalsHome) ||
		!equalStringPtr(existing.GoalsAway, merged.GoalsAway) ||
		existing.Advice != merged.Advice ||
		existing.PercentHome != merged.PercentHome ||
		existing.PercentDraw != merged.PercentDraw ||
		existing.PercentAway != merged.PercentAway ||
		!equalMaps(existing.Comparison, merged.Comparison)

	return merged, changed
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalFloat64Ptr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func equalMaps(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for key, av := range a {
		bv, ok := b[key]
		if !ok {
			return false
		}
		if !equalMapValue(av, bv) {
			return false
		}
	}
	return true
}

func equalMapValue(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		return ok && equalMaps(av, bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !equalMapValue(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		if _, ok := b.(map[string]any); ok {
			return false
		}
		if _, ok := b.([]any); ok {
			return false
		}
		return a == b
	}
}

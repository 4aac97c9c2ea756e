package league

import "context"

// Repository describes league and season persistence needs from use cases.
//
// InsertSeason and UpdateSeason clear the current flag on every other season of
// the same league inside their own transaction whenever the saved season is
// current, so the single-current invariant holds at every commit point.
type Repository interface {
	ListLeagues(ctx context.Context) ([]League, error)
	GetLeagueByID(ctx context.Context, leagueID int64) (League, bool, error)
	InsertLeague(ctx context.Context, l League) error
	UpdateLeague(ctx context.Context, l League) error

	ListSeasonsByLeague(ctx context.Context, leagueID int64) ([]Season, error)
	GetSeasonByLeagueAndYear(ctx context.Context, leagueID int64, year int) (Season, bool, error)
	GetCurrentSeason(ctx context.Context, leagueID int64) (Season, bool, error)
	InsertSeason(ctx context.Context, s Season) error
	UpdateSeason(ctx context.Context, s Season) error
}

package playerstats

import "context"

// Repository describes player-statistics persistence needs from use cases.
type Repository interface {
	GetByNaturalKey(ctx context.Context, playerID, teamID, leagueID int64, seasonYear int) (Statistics, bool, error)
	Insert(ctx context.Context, s Statistics) error
	Update(ctx context.Context, s Statistics) error
	ListByPlayerSeason(ctx context.Context, playerID int64, seasonYear int) ([]Statistics, error)
	ListByTeamSeason(ctx context.Context, teamID int64, seasonYear int) ([]Statistics, error)
	ListByLeagueSeason(ctx context.Context, leagueID int64, seasonYear int) ([]Statistics, error)
}

package team

import "context"

// Repository describes team and season-link persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	Insert(ctx context.Context, t Team) error
	Update(ctx context.Context, t Team) error
	ListByLeagueSeason(ctx context.Context, leagueID int64, seasonYear int) ([]Team, error)

	GetSeasonLink(ctx context.Context, teamID, leagueID int64, seasonYear int) (SeasonLink, bool, error)
	InsertSeasonLink(ctx context.Context, l SeasonLink) error
	ListSeasonLinksByLeague(ctx context.Context, leagueID int64, seasonYear int) ([]SeasonLink, error)
}

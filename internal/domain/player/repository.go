package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	GetByIDAndSeason(ctx context.Context, playerID int64, seasonYear int) (Player, bool, error)
	Insert(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
	ListByTeamSeason(ctx context.Context, teamID int64, seasonYear int) ([]Player, error)
	ListBySeason(ctx context.Context, seasonYear int) ([]Player, error)
}

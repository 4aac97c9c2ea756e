package fixture

import "context"

// Repository describes fixture and venue persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, fixtureID int64) (Fixture, bool, error)
	Insert(ctx context.Context, f Fixture) error
	Update(ctx context.Context, f Fixture) error
	List(ctx context.Context, filter ListFilter) ([]Fixture, error)

	// ListHeadToHead returns the most recent settled fixtures between the two
	// teams in either orientation, newest first.
	ListHeadToHead(ctx context.Context, teamID1, teamID2 int64, limit int) ([]Fixture, error)
	// ListRecentByTeam returns the most recent settled fixtures involving the
	// team, newest first.
	ListRecentByTeam(ctx context.Context, teamID int64, limit int) ([]Fixture, error)

	GetVenueByID(ctx context.Context, venueID int64) (Venue, bool, error)
	InsertVenue(ctx context.Context, v Venue) error
	UpdateVenue(ctx context.Context, v Venue) error
}

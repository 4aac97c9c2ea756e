package odds

import "context"

// Repository describes odds persistence needs from use cases.
//
// Replace deletes any stored tree for the fixture and inserts the new one in a
// single transaction, upserting the referenced bookmakers and bet types first.
// Readers never observe a partially deleted tree.
type Repository interface {
	Replace(ctx context.Context, o FixtureOdds) error
	GetByFixture(ctx context.Context, fixtureID int64) (FixtureOdds, bool, error)
	ListBookmakers(ctx context.Context) ([]Bookmaker, error)
	ListBetTypes(ctx context.Context) ([]BetType, error)
}

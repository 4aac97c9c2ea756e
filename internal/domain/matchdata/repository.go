package matchdata

import "context"

// Repository describes match statistics and event persistence needs from use
// cases. Both Replace methods delete the fixture's stored rows and insert the
// new set in one transaction.
type Repository interface {
	ReplaceStatistics(ctx context.Context, fixtureID int64, stats []TeamStatistics) error
	ListStatisticsByFixture(ctx context.Context, fixtureID int64) ([]TeamStatistics, error)

	ReplaceEvents(ctx context.Context, fixtureID int64, events []Event) error
	ListEventsByFixture(ctx context.Context, fixtureID int64) ([]Event, error)
}

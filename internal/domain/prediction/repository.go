package prediction

import "context"

// Repository describes prediction persistence needs from use cases.
type Repository interface {
	GetByFixture(ctx context.Context, fixtureID int64) (Prediction, bool, error)
	Insert(ctx context.Context, p Prediction) error
	Update(ctx context.Context, p Prediction) error
	ListByFixtureIDs(ctx context.Context, fixtureIDs []int64) ([]Prediction, error)
}

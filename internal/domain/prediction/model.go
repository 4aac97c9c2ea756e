package prediction

import "fmt"

// Prediction is the provider's pre-match forecast for one fixture, one row per
// fixture, overwritten in place when the forecast changes.
type Prediction struct {
	ID           int64
	FixtureID    int64
	WinnerTeamID *int64
	WinOrDraw    *bool
	UnderOver    *string
	GoalsHome    *string
	GoalsAway    *string
	Advice       string
	PercentHome  string
	PercentDraw  string
	PercentAway  string
	Comparison   map[string]any
}

func (p Prediction) Validate() error {
	if p.FixtureID <= 0 {
		return fmt.Errorf("prediction fixture id is required")
	}

	return nil
}

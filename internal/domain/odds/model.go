package odds

import (
	"fmt"
	"time"
)

// Bookmaker and BetType are reference rows keyed by the provider's ids,
// shared across every fixture's odds tree.
type Bookmaker struct {
	ID   int64
	Name string
}

type BetType struct {
	ID   int64
	Name string
}

// Value is one quoted price, e.g. {"Home", "1.85"}.
type Value struct {
	Value string
	Odd   string
}

// Bet groups the quoted values of one market from one bookmaker.
type Bet struct {
	BetTypeID   int64
	BetTypeName string
	Values      []Value
}

// BookmakerOdds holds every market one bookmaker quotes for a fixture.
type BookmakerOdds struct {
	BookmakerID   int64
	BookmakerName string
	Bets          []Bet
}

// FixtureOdds is the full odds tree for one fixture. A fixture has at most one
// tree; re-ingestion replaces it wholesale.
type FixtureOdds struct {
	FixtureID  int64
	UpdateTime time.Time
	Bookmakers []BookmakerOdds
}

func (o FixtureOdds) Validate() error {
	if o.FixtureID <= 0 {
		return fmt.Errorf("fixture odds fixture id is required")
	}
	for _, b := range o.Bookmakers {
		if b.BookmakerID <= 0 {
			return fmt.Errorf("fixture odds bookmaker id is required")
		}
		for _, bet := range b.Bets {
			if bet.BetTypeID <= 0 {
				return fmt.Errorf("fixture odds bet type id is required")
			}
		}
	}

	return nil
}

package blackjack

import "blackjack-server/internal/rng"

// DefaultStartingChips is the stake a new or reset game starts with
const DefaultStartingChips = 1000

// dealerStandsOn is the score the dealer stops drawing at
const dealerStandsOn = 17

// Options contains options for creating a new game of blackjack
type Options struct {
	StartingChips int

	// Generator shuffles each new deck. Defaults to rng.Crypto
	Generator rng.Generator
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingChips: DefaultStartingChips,
		Generator:     rng.Crypto{},
	}
}

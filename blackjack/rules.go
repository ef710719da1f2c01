package blackjack

// Rules defines the table rules for a game
type Rules struct {
	StartingBankroll int
	MaxPlayers       int
	DealerStand      int // dealer hits below this value, stands at or above it (soft totals included)
}

// DefaultRules returns the house rules: $1000 buy-in, the usual
// seven-seat Vegas table cap, and a dealer that stands on all 17s.
func DefaultRules() Rules {
	return Rules{
		StartingBankroll: 1000,
		MaxPlayers:       7,
		DealerStand:      17,
	}
}

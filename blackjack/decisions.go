package blackjack

// Action is a decision a player can take on a hand
type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
	ActionSplit  Action = "split"
)

// DecisionProvider supplies raw player choices to the engine. The
// engine owns validation: a provider may return anything, and is simply
// invoked again after the engine rejects an out-of-bounds wager or a
// choice outside the legal set.
type DecisionProvider interface {
	// Wager asks for the player's opening bet for the round, expected
	// to be between 0 and max inclusive.
	Wager(player *Player, max int) int

	// Action asks for the player's next move on a hand, expected to be
	// one of the legal actions.
	Action(player *Player, hand *Hand, legal []Action) Action

	// RaiseAmount asks how much to add to the wager on a double-down,
	// expected to be between 0 and max inclusive.
	RaiseAmount(player *Player, max int) int

	// PlayAnotherRound asks whether the player wants to continue or
	// cash out after a round.
	PlayAnotherRound(player *Player) bool
}

package blackjack

// Outcome classifies how a single hand ended the round
type Outcome string

const (
	OutcomeNaturalWin Outcome = "natural_blackjack_win"
	OutcomeWin        Outcome = "win"
	OutcomePush       Outcome = "push"
	OutcomeLoss       Outcome = "loss"
	OutcomeBust       Outcome = "bust"
)

// Settle returns the amount credited back to the player for a hand,
// the wager having already been deducted when it was placed. A natural
// blackjack pays the wager plus a 3:2 bonus rounded down; a win pays
// double the wager; a push returns the wager; losses and busts return
// nothing.
func Settle(outcome Outcome, wager int) int {
	switch outcome {
	case OutcomeNaturalWin:
		return wager + wager*3/2
	case OutcomeWin:
		return 2 * wager
	case OutcomePush:
		return wager
	default:
		return 0
	}
}

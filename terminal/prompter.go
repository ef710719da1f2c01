package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/MarissaSkud/Blackjack/blackjack"
)

// Prompter collects player decisions from the terminal through pterm
// interactive prompts. It only parses raw input; bounds and legality
// are enforced by the engine, which re-invokes on rejection.
type Prompter struct{}

// NewPrompter creates a terminal decision provider
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Wager asks for the player's opening bet
func (pr *Prompter) Wager(p *blackjack.Player, max int) int {
	pterm.Printfln("%s, you have $%d to wager.", p.Name, p.Bankroll)
	return pr.askAmount(fmt.Sprintf("How much do you wager for this round? (up to $%d)", max))
}

// Action asks for the player's next move on a hand
func (pr *Prompter) Action(p *blackjack.Player, hand *blackjack.Hand, legal []blackjack.Action) blackjack.Action {
	prompt := "Do you want to [H]it, [S]tand, or [D]ouble Down?"
	for _, action := range legal {
		if action == blackjack.ActionSplit {
			prompt = "Do you want to [H]it, [S]tand, s[P]lit, or [D]ouble Down?"
		}
	}

	raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "H":
		return blackjack.ActionHit
	case "S":
		return blackjack.ActionStand
	case "D":
		return blackjack.ActionDouble
	case "P":
		return blackjack.ActionSplit
	default:
		// Returned as-is so the engine rejects it and asks again.
		return blackjack.Action(raw)
	}
}

// RaiseAmount asks how much to add to the wager on a double-down
func (pr *Prompter) RaiseAmount(p *blackjack.Player, max int) int {
	return pr.askAmount(fmt.Sprintf("How much more would you like to wager? It can be up to $%d.", max))
}

// PlayAnotherRound asks whether the player wants another round
func (pr *Prompter) PlayAnotherRound(p *blackjack.Player) bool {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("%s, do you want to play again? Y/N", p.Name)).
			Show()

		switch strings.ToUpper(strings.TrimSpace(raw)) {
		case "Y":
			return true
		case "N":
			return false
		default:
			pterm.Warning.Println("Input not valid, try again")
		}
	}
}

// askAmount prompts until the input parses as a whole dollar amount
func (pr *Prompter) askAmount(prompt string) int {
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		amount, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			pterm.Warning.Println("Please enter a whole dollar amount.")
			continue
		}
		return amount
	}
}

package terminal

import (
	"time"

	"github.com/pterm/pterm"

	"github.com/MarissaSkud/Blackjack/events"
)

// Display renders engine events as terminal output. A short pacing
// delay after the dramatic moments makes the game more fun to watch;
// a zero delay disables it.
type Display struct {
	delay time.Duration
}

// NewDisplay creates a terminal display with the given pacing delay
func NewDisplay(delay time.Duration) *Display {
	return &Display{delay: delay}
}

// HandleEvent renders a single engine event
func (d *Display) HandleEvent(event events.Event) {
	switch ev := event.(type) {
	case events.RoundStarted:
		pterm.DefaultSection.Printfln("Round %d", ev.Round)

	case events.WagerRejected:
		pterm.Warning.Printfln("You cannot wager that much. The most you can wager is $%d.", ev.Max)

	case events.WagerPlaced:
		pterm.Printfln("%s wagers $%d.", ev.Player, ev.Amount)

	case events.HandRevealed:
		pterm.Printfln("%s, your hand is %s. Its value is %d.", ev.Player, ev.Hand, ev.Value)
		if ev.Natural {
			pterm.Success.Println("This is a natural blackjack! You will win unless the dealer also has a natural blackjack.")
		}
		d.pause()

	case events.DealerUpcardShown:
		pterm.Printfln("The dealer's faceup card is %s. Their other card is facedown.", ev.Card)

	case events.DealerPeeked:
		pterm.Println("Therefore, the dealer must check to see if they have a natural blackjack.")
		if !ev.Natural {
			pterm.Println("The dealer's hand is not a blackjack.")
		}
		d.pause()

	case events.DealerPeekImpossible:
		pterm.Println("It is impossible for the dealer to have a natural blackjack.")

	case events.DealerBlackjack:
		pterm.Printfln("The dealer's hand is %s -- a natural blackjack.", ev.Hand)
		d.pause()

	case events.NaturalPaid:
		pterm.Success.Printfln("%s, you have won 1.5 times your wager of $%d and now have $%d.", ev.Player, ev.Wager, ev.Bankroll)
		pterm.Println("Play will continue for any remaining players.")

	case events.TurnStarted:
		if ev.SecondHand {
			pterm.Printfln("%s, your second hand is currently worth %d.", ev.Player, ev.Value)
		} else {
			pterm.Printfln("%s, your hand is currently worth %d.", ev.Player, ev.Value)
		}

	case events.ChoiceRejected:
		pterm.Warning.Println("Choice not recognized, try again")

	case events.CardDrawn:
		pterm.Printfln("%s draws a %s. The hand's value is now %d.", ev.Owner, ev.Card, ev.Value)
		d.pause()

	case events.PairSplit:
		pterm.Printfln("Your new hands are %s and %s.", ev.FirstHand, ev.SecondHand)

	case events.AcesSplit:
		pterm.Println("Because you split a pair of aces, you will get no more cards. Both these hands stand.")

	case events.HandBusted:
		pterm.Error.Printfln("%s, the hand %s is bust. Your $%d bet is forfeit.", ev.Player, ev.Hand, ev.Wager)
		d.pause()

	case events.DealerRevealed:
		pterm.Printfln("The dealer's hand is %s. Its value is %d.", ev.Hand, ev.Value)
		d.pause()

	case events.DealerBusted:
		pterm.Success.Println("The dealer's hand is bust! All remaining players win this round.")

	case events.HandWon:
		pterm.Success.Printfln("%s, your hand %s has won $%d. You now have $%d.", ev.Player, ev.Hand, ev.Winnings, ev.Bankroll)
		d.pause()

	case events.HandPushed:
		pterm.Printfln("%s, your hand %s has tied the dealer. We are returning your $%d bet; you have $%d.", ev.Player, ev.Hand, ev.Wager, ev.Bankroll)
		d.pause()

	case events.HandLost:
		pterm.Printfln("%s, the dealer beats your hand %s. Your bet of $%d is forfeit. You now have $%d.", ev.Player, ev.Hand, ev.Wager, ev.Bankroll)
		d.pause()

	case events.PlayerBankrupt:
		pterm.Error.Printfln("%s, you have lost all your money and will need to leave the game.", ev.Player)

	case events.PlayerCashedOut:
		pterm.Printfln("%s, you are cashing out with $%d.", ev.Player, ev.Bankroll)
		if ev.Profit > 0 {
			pterm.Success.Printfln("You won $%d this game!", ev.Profit)
		}

	case events.GameOver:
		pterm.Println("There are no more players, goodbye!")
	}
}

func (d *Display) pause() {
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
}

package blackjack

import (
	"errors"
	"fmt"

	"github.com/MarissaSkud/Blackjack/cards"
	"github.com/google/uuid"
)

// Player represents a person playing blackjack
type Player struct {
	ID         string
	Name       string
	Bankroll   int
	Hand       *Hand
	SecondHand *Hand // split-derived, nil unless the player split this round
	Stand      bool
	CashedOut  bool
}

// NewPlayer creates a new player with the given name and starting bankroll
func NewPlayer(name string, bankroll int) *Player {
	return &Player{
		ID:       uuid.NewString(),
		Name:     name,
		Bankroll: bankroll,
		Hand:     NewHand(),
	}
}

// ResetForNewRound clears the player's hands, wagers and stand flag
func (p *Player) ResetForNewRound() {
	p.Hand = NewHand()
	p.SecondHand = nil
	p.Stand = false
}

// PlaceWager commits a wager on the player's primary hand, deducting it
// from the bankroll. The wager may be any non-negative amount up to the
// bankroll.
func (p *Player) PlaceWager(amount int) error {
	if amount < 0 || amount > p.Bankroll {
		return fmt.Errorf("cannot wager %d with a bankroll of %d", amount, p.Bankroll)
	}

	p.Hand.Wager = amount
	p.Bankroll -= amount
	return nil
}

// Hands returns the player's active hands in play order
func (p *Player) Hands() []*Hand {
	hands := []*Hand{p.Hand}
	if p.SecondHand != nil {
		hands = append(hands, p.SecondHand)
	}
	return hands
}

// CanSplit reports whether the player's primary hand qualifies for a
// split: exactly two cards of equal rank, no split performed yet this
// round, and enough bankroll to match the wager.
func (p *Player) CanSplit() bool {
	return len(p.Hand.Cards) == 2 &&
		p.Hand.Cards[0].Rank == p.Hand.Cards[1].Rank &&
		p.SecondHand == nil &&
		p.Bankroll >= p.Hand.Wager
}

// SplitPair moves the second card of the primary hand into a new second
// hand, matches the original wager on it, and draws one replacement
// card into each hand.
func (p *Player) SplitPair(deck *cards.Deck) error {
	if !p.CanSplit() {
		return errors.New("hand does not qualify for a split")
	}

	split := p.Hand.Cards[1]
	p.Hand.Cards = p.Hand.Cards[:1]
	p.Hand.Value -= split.Points

	// An Ace demoted on the deal counts 11 again once it stands alone.
	if split.Rank == cards.Ace {
		split.Points = 11
	}

	p.SecondHand = NewHand()
	p.SecondHand.Cards = append(p.SecondHand.Cards, split)
	p.SecondHand.Value = split.Points

	if _, err := p.Hand.Draw(deck); err != nil {
		return err
	}
	if _, err := p.SecondHand.Draw(deck); err != nil {
		return err
	}

	p.SecondHand.Wager = p.Hand.Wager
	p.Bankroll -= p.SecondHand.Wager
	return nil
}

// SplitAces reports whether the player's split was of a pair of Aces
func (p *Player) SplitAces() bool {
	return p.SecondHand != nil &&
		p.Hand.Cards[0].Rank == cards.Ace &&
		p.SecondHand.Cards[0].Rank == cards.Ace
}

// CashOut marks the player as having voluntarily left the game
func (p *Player) CashOut() {
	p.CashedOut = true
}

// Dealer is the house the players are trying to beat. It holds a single
// hand, places no wagers, and follows a fixed drawing policy.
type Dealer struct {
	Hand *Hand
}

// NewDealer creates the dealer for a game
func NewDealer() *Dealer {
	return &Dealer{Hand: NewHand()}
}

// ResetForNewRound clears the dealer's hand
func (d *Dealer) ResetForNewRound() {
	d.Hand = NewHand()
}

// Upcard returns the dealer's visible card, which is the second one
// dealt to them.
func (d *Dealer) Upcard() HeldCard {
	return d.Hand.Cards[len(d.Hand.Cards)-1]
}

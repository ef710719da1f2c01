package blackjack

import (
	"strings"

	"github.com/MarissaSkud/Blackjack/cards"
)

// Limit is the hand value above which a hand is bust.
const Limit = 21

// HeldCard is a card in play together with the point value it currently
// counts for in the hand holding it. Only an Ace's points ever change
// after the card is added; every other rank keeps its base value forever.
type HeldCard struct {
	cards.Card
	Points int
}

// Hand is an ordered set of held cards belonging to one participant.
// Value is cached and kept consistent on every mutation; it always
// equals the sum of the held cards' current points.
type Hand struct {
	Cards   []HeldCard
	Value   int
	Natural bool
	Wager   int
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{}
}

// AddCard appends a card to the hand and updates its value. An Ace is
// counted as 1 instead of 11 when the hand is already worth more than
// 10, which avoids an unnecessary bust on addition.
func (h *Hand) AddCard(card cards.Card) int {
	points := card.Points()
	if card.Rank == cards.Ace && h.Value > 10 {
		points = 1
	}

	h.Cards = append(h.Cards, HeldCard{Card: card, Points: points})
	h.Value += points
	return h.Value
}

// ReevaluateAces demotes Aces still counted as 11 to 1, one at a time,
// until the hand is no longer bust or no such Ace remains. Invoking it
// on a hand already at or below the limit is a no-op.
func (h *Hand) ReevaluateAces() int {
	for i := range h.Cards {
		if h.Value <= Limit {
			break
		}
		if h.Cards[i].Rank == cards.Ace && h.Cards[i].Points == 11 {
			h.Cards[i].Points = 1
			h.Value -= 10
		}
	}
	return h.Value
}

// CheckNaturalBlackjack flags the hand as a natural blackjack when it
// holds exactly two cards worth the limit. Only meaningful immediately
// after the initial deal, before any hit.
func (h *Hand) CheckNaturalBlackjack() bool {
	h.Natural = len(h.Cards) == 2 && h.Value == Limit
	return h.Natural
}

// Draw deals one card from the deck into the hand, reapplying the Ace
// rule, and returns the drawn card.
func (h *Hand) Draw(deck *cards.Deck) (cards.Card, error) {
	card, err := deck.Deal()
	if err != nil {
		return cards.Card{}, err
	}

	h.AddCard(card)
	h.ReevaluateAces()
	return card, nil
}

// Busted reports whether the hand's value exceeds the limit.
func (h *Hand) Busted() bool {
	return h.Value > Limit
}

// String returns the hand's cards separated by spaces, e.g. "K♠ A♥"
func (h *Hand) String() string {
	names := make([]string, len(h.Cards))
	for i, held := range h.Cards {
		names[i] = held.Card.String()
	}
	return strings.Join(names, " ")
}

package cards

import (
	"errors"
	"math/rand"
	"time"
)

// ErrDeckExhausted is returned when a deal is requested from an empty deck.
// A single round with at most seven players never draws 52 cards, so
// hitting this error indicates a bug in the caller.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is an ordered, shuffled set of the 52 distinct playing cards.
// Dealing permanently shrinks it; a deck is never replenished mid-round.
type Deck struct {
	cards []Card
}

// NewDeck creates a freshly shuffled standard deck of 52 cards
func NewDeck() *Deck {
	var stack []Card
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	ranks := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	for _, suit := range suits {
		for _, rank := range ranks {
			stack = append(stack, Card{Suit: suit, Rank: rank})
		}
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	r.Shuffle(len(stack), func(i, j int) {
		stack[i], stack[j] = stack[j], stack[i]
	})

	return &Deck{cards: stack}
}

// NewStackedDeck creates an unshuffled deck that deals the given cards
// in the order listed. Intended for tests and scripted scenarios.
func NewStackedDeck(stacked ...Card) *Deck {
	reversed := make([]Card, len(stacked))
	for i, card := range stacked {
		reversed[len(stacked)-1-i] = card
	}
	return &Deck{cards: reversed}
}

// Deal removes and returns the top card of the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

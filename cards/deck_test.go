package cards

import (
	"errors"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()

	if deck.Remaining() != 52 {
		t.Errorf("Expected deck to have 52 cards, got %d", deck.Remaining())
	}

	// Every card must appear exactly once
	seen := make(map[Card]bool)
	for deck.Remaining() > 0 {
		card, err := deck.Deal()
		if err != nil {
			t.Fatalf("Unexpected error dealing: %v", err)
		}
		if seen[card] {
			t.Errorf("Card %s appears more than once", card)
		}
		seen[card] = true
	}

	if len(seen) != 52 {
		t.Errorf("Expected 52 distinct cards, got %d", len(seen))
	}
}

func TestDeckShuffled(t *testing.T) {
	first := NewDeck()
	second := NewDeck()

	// Probabilistic, but two fresh decks in identical order are
	// vanishingly unlikely.
	differences := 0
	for first.Remaining() > 0 {
		a, _ := first.Deal()
		b, _ := second.Deal()
		if a != b {
			differences++
		}
	}

	if differences == 0 {
		t.Error("Two freshly shuffled decks are in identical order")
	}
}

func TestDealShrinksDeck(t *testing.T) {
	deck := NewDeck()

	if _, err := deck.Deal(); err != nil {
		t.Fatalf("Unexpected error dealing: %v", err)
	}

	if deck.Remaining() != 51 {
		t.Errorf("Expected 51 cards after one deal, got %d", deck.Remaining())
	}
}

func TestDealFromExhaustedDeck(t *testing.T) {
	deck := NewStackedDeck(Card{Suit: Spades, Rank: Ace})

	if _, err := deck.Deal(); err != nil {
		t.Fatalf("Unexpected error dealing: %v", err)
	}

	_, err := deck.Deal()
	if !errors.Is(err, ErrDeckExhausted) {
		t.Errorf("Expected ErrDeckExhausted, got %v", err)
	}
}

func TestStackedDeckDealsInOrder(t *testing.T) {
	stacked := []Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Hearts, Rank: King},
		{Suit: Diamonds, Rank: Two},
	}
	deck := NewStackedDeck(stacked...)

	for _, want := range stacked {
		got, err := deck.Deal()
		if err != nil {
			t.Fatalf("Unexpected error dealing: %v", err)
		}
		if !got.Equals(want) {
			t.Errorf("Expected %s, got %s", want, got)
		}
	}
}

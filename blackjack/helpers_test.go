package blackjack

import (
	"testing"

	"github.com/MarissaSkud/Blackjack/cards"
	"github.com/MarissaSkud/Blackjack/events"
)

// card builds a card from shorthand like "As" or "10♥"
func card(t *testing.T, s string) cards.Card {
	t.Helper()
	c, err := cards.CardFromString(s)
	if err != nil {
		t.Fatalf("bad card shorthand %q: %v", s, err)
	}
	return c
}

// stackedDeck builds a deck dealing the given shorthands in order
func stackedDeck(t *testing.T, shorthands ...string) *cards.Deck {
	t.Helper()
	stacked := make([]cards.Card, len(shorthands))
	for i, s := range shorthands {
		stacked[i] = card(t, s)
	}
	return cards.NewStackedDeck(stacked...)
}

// scriptedDecisions replays queued answers in order and fails the test
// if the engine asks for a decision that was not scripted.
type scriptedDecisions struct {
	t       *testing.T
	wagers  []int
	actions []Action
	raises  []int
	again   []bool
}

func (s *scriptedDecisions) Wager(p *Player, max int) int {
	if len(s.wagers) == 0 {
		s.t.Fatalf("no scripted wager left for %s", p.Name)
	}
	wager := s.wagers[0]
	s.wagers = s.wagers[1:]
	return wager
}

func (s *scriptedDecisions) Action(p *Player, hand *Hand, legal []Action) Action {
	if len(s.actions) == 0 {
		s.t.Fatalf("no scripted action left for %s (hand %s)", p.Name, hand)
	}
	action := s.actions[0]
	s.actions = s.actions[1:]
	return action
}

func (s *scriptedDecisions) RaiseAmount(p *Player, max int) int {
	if len(s.raises) == 0 {
		s.t.Fatalf("no scripted raise left for %s", p.Name)
	}
	raise := s.raises[0]
	s.raises = s.raises[1:]
	return raise
}

func (s *scriptedDecisions) PlayAnotherRound(p *Player) bool {
	if len(s.again) == 0 {
		s.t.Fatalf("no scripted continue answer left for %s", p.Name)
	}
	answer := s.again[0]
	s.again = s.again[1:]
	return answer
}

// eventRecorder collects every event the engine emits
type eventRecorder struct {
	events []events.Event
}

func (r *eventRecorder) handle(event events.Event) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) byName(name string) []events.Event {
	var matched []events.Event
	for _, event := range r.events {
		if event.Name() == name {
			matched = append(matched, event)
		}
	}
	return matched
}

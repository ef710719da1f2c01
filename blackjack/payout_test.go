package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name     string
		outcome  Outcome
		wager    int
		expected int
	}{
		{"natural pays three to two", OutcomeNaturalWin, 10, 25},
		{"natural bonus rounds down", OutcomeNaturalWin, 25, 62},
		{"win pays double", OutcomeWin, 10, 20},
		{"push returns the wager", OutcomePush, 10, 10},
		{"loss returns nothing", OutcomeLoss, 10, 0},
		{"bust returns nothing", OutcomeBust, 10, 0},
		{"zero wager", OutcomeNaturalWin, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Settle(tt.outcome, tt.wager))
		})
	}
}

package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Marissa", 1000)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Marissa", p.Name)
	assert.Equal(t, 1000, p.Bankroll)
	assert.NotNil(t, p.Hand)
	assert.Nil(t, p.SecondHand)
}

func TestPlaceWager(t *testing.T) {
	p := NewPlayer("Marissa", 100)

	require.NoError(t, p.PlaceWager(40))
	assert.Equal(t, 40, p.Hand.Wager)
	assert.Equal(t, 60, p.Bankroll)

	assert.Error(t, p.PlaceWager(61))
	assert.Error(t, p.PlaceWager(-1))

	// A zero wager is accepted.
	p2 := NewPlayer("Cautious", 100)
	require.NoError(t, p2.PlaceWager(0))
	assert.Equal(t, 100, p2.Bankroll)
}

func TestResetForNewRound(t *testing.T) {
	p := NewPlayer("Marissa", 100)
	require.NoError(t, p.PlaceWager(10))
	p.Hand.AddCard(card(t, "Ks"))
	p.Stand = true
	p.SecondHand = NewHand()

	p.ResetForNewRound()

	assert.Empty(t, p.Hand.Cards)
	assert.Zero(t, p.Hand.Wager)
	assert.Nil(t, p.SecondHand)
	assert.False(t, p.Stand)
	assert.Equal(t, 90, p.Bankroll) // bankroll carries over
}

func TestCanSplit(t *testing.T) {
	newPair := func(t *testing.T, first, second string, bankroll, wager int) *Player {
		p := NewPlayer("Marissa", bankroll)
		require.NoError(t, p.PlaceWager(wager))
		p.Hand.AddCard(card(t, first))
		p.Hand.AddCard(card(t, second))
		return p
	}

	assert.True(t, newPair(t, "8s", "8h", 100, 10).CanSplit())
	assert.False(t, newPair(t, "8s", "9h", 100, 10).CanSplit(), "ranks differ")
	assert.False(t, newPair(t, "Ks", "10h", 100, 10).CanSplit(), "equal points but different ranks")
	assert.False(t, newPair(t, "8s", "8h", 10, 10).CanSplit(), "bankroll cannot match the wager")

	split := newPair(t, "8s", "8h", 100, 10)
	split.SecondHand = NewHand()
	assert.False(t, split.CanSplit(), "only one split per round")

	three := newPair(t, "8s", "8h", 100, 10)
	three.Hand.AddCard(card(t, "2d"))
	assert.False(t, three.CanSplit(), "more than two cards")
}

func TestSplitPair(t *testing.T) {
	p := NewPlayer("Marissa", 100)
	require.NoError(t, p.PlaceWager(10))
	p.Hand.AddCard(card(t, "8s"))
	p.Hand.AddCard(card(t, "8h"))

	deck := stackedDeck(t, "5d", "Kc")
	require.NoError(t, p.SplitPair(deck))

	require.NotNil(t, p.SecondHand)
	assert.Len(t, p.Hand.Cards, 2)
	assert.Len(t, p.SecondHand.Cards, 2)
	assert.Equal(t, 13, p.Hand.Value)       // 8♠ 5♦
	assert.Equal(t, 18, p.SecondHand.Value) // 8♥ K♣
	assert.Equal(t, 10, p.Hand.Wager)
	assert.Equal(t, 10, p.SecondHand.Wager)
	assert.Equal(t, 20, p.Hand.Wager+p.SecondHand.Wager)
	assert.Equal(t, 80, p.Bankroll)
	assert.False(t, p.SplitAces())
}

func TestSplitPairRejectsNonQualifyingHand(t *testing.T) {
	p := NewPlayer("Marissa", 100)
	require.NoError(t, p.PlaceWager(10))
	p.Hand.AddCard(card(t, "8s"))
	p.Hand.AddCard(card(t, "9h"))

	assert.Error(t, p.SplitPair(stackedDeck(t, "5d", "Kc")))
}

func TestSplitAcesRestoresElevenPoints(t *testing.T) {
	p := NewPlayer("Marissa", 100)
	require.NoError(t, p.PlaceWager(10))
	p.Hand.AddCard(card(t, "As"))
	p.Hand.AddCard(card(t, "Ah"))
	require.Equal(t, 12, p.Hand.Value) // second Ace demoted on the deal

	deck := stackedDeck(t, "5d", "7c")
	require.NoError(t, p.SplitPair(deck))

	assert.True(t, p.SplitAces())
	assert.Equal(t, 16, p.Hand.Value)       // A♠ counted 11 plus 5♦
	assert.Equal(t, 18, p.SecondHand.Value) // A♥ back to 11 plus 7♣
	assert.Equal(t, 11, p.SecondHand.Cards[0].Points)
}

func TestCashOut(t *testing.T) {
	p := NewPlayer("Marissa", 100)
	assert.False(t, p.CashedOut)
	p.CashOut()
	assert.True(t, p.CashedOut)
}

func TestDealerUpcard(t *testing.T) {
	d := NewDealer()
	d.Hand.AddCard(card(t, "7s")) // hole card, dealt first
	d.Hand.AddCard(card(t, "Kh")) // faceup card, dealt second

	assert.Equal(t, card(t, "Kh"), d.Upcard().Card)
	assert.Equal(t, 10, d.Upcard().Points)
}

func TestDealerReset(t *testing.T) {
	d := NewDealer()
	d.Hand.AddCard(card(t, "7s"))

	d.ResetForNewRound()
	assert.Empty(t, d.Hand.Cards)
	assert.Zero(t, d.Hand.Value)
}

package events

// Event is a round-progress notification published by the game engine.
// Events are a pure output side-channel: handlers never feed anything
// back into the engine.
type Event interface {
	Name() string
}

// EventHandler receives events as they are emitted.
type EventHandler func(event Event)

// Round lifecycle

type RoundStarted struct {
	Round   int
	Players []string
}

func (RoundStarted) Name() string { return "ROUND_STARTED" }

type RoundEnded struct {
	Round int
}

func (RoundEnded) Name() string { return "ROUND_ENDED" }

type GameOver struct {
	Reason string
}

func (GameOver) Name() string { return "GAME_OVER" }

// Betting

type WagerPlaced struct {
	Player   string
	Amount   int
	Bankroll int
}

func (WagerPlaced) Name() string { return "WAGER_PLACED" }

type WagerRejected struct {
	Player string
	Amount int
	Max    int
}

func (WagerRejected) Name() string { return "WAGER_REJECTED" }

// Dealing and reveals

type HandRevealed struct {
	Player  string
	Hand    string
	Value   int
	Natural bool
}

func (HandRevealed) Name() string { return "HAND_REVEALED" }

type DealerUpcardShown struct {
	Card string
}

func (DealerUpcardShown) Name() string { return "DEALER_UPCARD_SHOWN" }

type DealerPeeked struct {
	Natural bool
}

func (DealerPeeked) Name() string { return "DEALER_PEEKED" }

// DealerPeekImpossible is emitted when the upcard rules out a dealer
// natural, so no peek takes place.
type DealerPeekImpossible struct{}

func (DealerPeekImpossible) Name() string { return "DEALER_PEEK_IMPOSSIBLE" }

type DealerBlackjack struct {
	Hand string
}

func (DealerBlackjack) Name() string { return "DEALER_BLACKJACK" }

// Player decisions

type TurnStarted struct {
	Player     string
	Value      int
	SecondHand bool
}

func (TurnStarted) Name() string { return "TURN_STARTED" }

type ChoiceRejected struct {
	Player string
	Input  string
}

func (ChoiceRejected) Name() string { return "CHOICE_REJECTED" }

type CardDrawn struct {
	Owner string
	Card  string
	Value int
}

func (CardDrawn) Name() string { return "CARD_DRAWN" }

type PairSplit struct {
	Player     string
	FirstHand  string
	SecondHand string
}

func (PairSplit) Name() string { return "PAIR_SPLIT" }

// AcesSplit is emitted when a split pair turns out to be two Aces;
// both hands stand immediately with no further cards.
type AcesSplit struct {
	Player string
}

func (AcesSplit) Name() string { return "ACES_SPLIT" }

type HandBusted struct {
	Player string
	Hand   string
	Wager  int
}

func (HandBusted) Name() string { return "HAND_BUSTED" }

// Dealer turn

type DealerRevealed struct {
	Hand  string
	Value int
}

func (DealerRevealed) Name() string { return "DEALER_REVEALED" }

type DealerBusted struct {
	Value int
}

func (DealerBusted) Name() string { return "DEALER_BUSTED" }

// Settlement

type NaturalPaid struct {
	Player   string
	Wager    int
	Winnings int
	Bankroll int
}

func (NaturalPaid) Name() string { return "NATURAL_PAID" }

type HandWon struct {
	Player   string
	Hand     string
	Winnings int
	Bankroll int
}

func (HandWon) Name() string { return "HAND_WON" }

type HandPushed struct {
	Player   string
	Hand     string
	Wager    int
	Bankroll int
}

func (HandPushed) Name() string { return "HAND_PUSHED" }

type HandLost struct {
	Player   string
	Hand     string
	Wager    int
	Bankroll int
}

func (HandLost) Name() string { return "HAND_LOST" }

// Roster changes

type PlayerBankrupt struct {
	Player string
}

func (PlayerBankrupt) Name() string { return "PLAYER_BANKRUPT" }

type PlayerCashedOut struct {
	Player   string
	Bankroll int
	Profit   int
}

func (PlayerCashedOut) Name() string { return "PLAYER_CASHED_OUT" }

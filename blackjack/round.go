package blackjack

import (
	"slices"

	"github.com/MarissaSkud/Blackjack/cards"
	"github.com/MarissaSkud/Blackjack/events"
)

// Phase represents the current phase of a round. Phases only ever
// advance; there are no backward transitions within a round.
type Phase string

const (
	PhaseBetting      Phase = "betting"
	PhaseInitialDeal  Phase = "initial_deal"
	PhaseNaturalCheck Phase = "natural_check"
	PhaseDealerPeek   Phase = "dealer_peek"
	PhasePlayerTurns  Phase = "player_turns"
	PhaseDealerTurn   Phase = "dealer_turn"
	PhaseSettlement   Phase = "settlement"
	PhaseEnded        Phase = "ended"
)

// Removal says why a player left the roster, if they did
type Removal string

const (
	RemovalNone      Removal = ""
	RemovalBankrupt  Removal = "bankrupt"
	RemovalCashedOut Removal = "cashed_out"
)

// HandResult is the settled outcome of a single hand
type HandResult struct {
	Outcome Outcome
	Wager   int
}

// PlayerResult is one player's view of a finished round
type PlayerResult struct {
	PlayerID string
	Name     string
	Bankroll int
	Hands    []HandResult
	Removal  Removal
}

// RoundResult reports the settled state of every player after a round
type RoundResult struct {
	Number  int
	Players []PlayerResult
}

func (r *RoundResult) markRemoved(playerID string, removal Removal) {
	for i := range r.Players {
		if r.Players[i].PlayerID == playerID {
			r.Players[i].Removal = removal
			return
		}
	}
}

// Round drives a single round of blackjack from betting through
// settlement. It mutates the players, the dealer, and the deck it is
// given; a fresh Round (and a fresh deck) is created for every round.
type Round struct {
	number    int
	phase     Phase
	deck      *cards.Deck
	players   []*Player
	dealer    *Dealer
	rules     Rules
	decisions DecisionProvider
	handlers  []events.EventHandler
	outcomes  map[string][]HandResult
}

// NewRound creates a round over the given roster, dealer and deck.
// Players and dealer are expected to have been reset for the round.
func NewRound(number int, players []*Player, dealer *Dealer, deck *cards.Deck, rules Rules, decisions DecisionProvider) *Round {
	return &Round{
		number:    number,
		phase:     PhaseBetting,
		deck:      deck,
		players:   players,
		dealer:    dealer,
		rules:     rules,
		decisions: decisions,
		outcomes:  make(map[string][]HandResult),
	}
}

// OnEvent registers a handler for the round's progress notifications
func (r *Round) OnEvent(handler events.EventHandler) {
	r.handlers = append(r.handlers, handler)
}

func (r *Round) emit(event events.Event) {
	for _, handler := range r.handlers {
		handler(event)
	}
}

// Phase returns the round's current phase
func (r *Round) Phase() Phase {
	return r.phase
}

func (r *Round) transitionTo(phase Phase) {
	r.phase = phase
}

// Play runs the round to completion and returns its result. The only
// error condition is deck exhaustion, which cannot occur at a table
// within the player cap.
func (r *Round) Play() (*RoundResult, error) {
	names := make([]string, len(r.players))
	for i, p := range r.players {
		names[i] = p.Name
	}
	r.emit(events.RoundStarted{Round: r.number, Players: names})

	r.collectWagers()

	r.transitionTo(PhaseInitialDeal)
	if err := r.dealInitialHands(); err != nil {
		return nil, err
	}

	r.transitionTo(PhaseNaturalCheck)
	r.revealInitialHands()

	r.transitionTo(PhaseDealerPeek)
	dealerBlackjack := r.dealerPeek()

	if !dealerBlackjack {
		r.transitionTo(PhasePlayerTurns)
		if err := r.playerTurns(); err != nil {
			return nil, err
		}

		r.transitionTo(PhaseDealerTurn)
		if err := r.dealerTurn(); err != nil {
			return nil, err
		}
	}

	r.transitionTo(PhaseSettlement)
	result := r.result()

	r.transitionTo(PhaseEnded)
	r.emit(events.RoundEnded{Round: r.number})
	return result, nil
}

// collectWagers asks every player for an opening bet, re-prompting
// while the amount exceeds their bankroll.
func (r *Round) collectWagers() {
	for _, p := range r.players {
		for {
			amount := r.decisions.Wager(p, p.Bankroll)
			if err := p.PlaceWager(amount); err != nil {
				r.emit(events.WagerRejected{Player: p.Name, Amount: amount, Max: p.Bankroll})
				continue
			}
			r.emit(events.WagerPlaced{Player: p.Name, Amount: amount, Bankroll: p.Bankroll})
			break
		}
	}
}

// dealInitialHands deals two cards to every player and the dealer,
// round-robin: one card to each player then the dealer, twice.
func (r *Round) dealInitialHands() error {
	for i := 0; i < 2; i++ {
		for _, p := range r.players {
			if _, err := p.Hand.Draw(r.deck); err != nil {
				return err
			}
		}
		if _, err := r.dealer.Hand.Draw(r.deck); err != nil {
			return err
		}
	}
	return nil
}

func (r *Round) revealInitialHands() {
	for _, p := range r.players {
		p.Hand.CheckNaturalBlackjack()
		r.emit(events.HandRevealed{
			Player:  p.Name,
			Hand:    p.Hand.String(),
			Value:   p.Hand.Value,
			Natural: p.Hand.Natural,
		})
	}
}

// dealerPeek checks whether the dealer could hold a natural blackjack
// and resolves it when they do. Returns true when the dealer's natural
// ends the round. The peek happens only when the upcard's current
// points are 10 or its rank is an Ace; checking points == 11 instead
// would miss a dealer holding two Aces, where the upcard Ace was
// demoted to 1 on the deal.
func (r *Round) dealerPeek() bool {
	up := r.dealer.Upcard()
	r.emit(events.DealerUpcardShown{Card: up.Card.String()})

	if up.Points == 10 || up.Rank == cards.Ace {
		r.dealer.Hand.CheckNaturalBlackjack()
		r.emit(events.DealerPeeked{Natural: r.dealer.Hand.Natural})

		if r.dealer.Hand.Natural {
			r.settleDealerBlackjack()
			return true
		}
	} else {
		r.emit(events.DealerPeekImpossible{})
	}

	r.payNaturals()
	return false
}

// settleDealerBlackjack ends the round on a dealer natural: players
// holding a natural themselves push, everyone else forfeits.
func (r *Round) settleDealerBlackjack() {
	r.emit(events.DealerBlackjack{Hand: r.dealer.Hand.String()})

	for _, p := range r.players {
		if p.Hand.Natural {
			p.Bankroll += Settle(OutcomePush, p.Hand.Wager)
			r.recordOutcome(p, OutcomePush, p.Hand.Wager)
			r.emit(events.HandPushed{
				Player:   p.Name,
				Hand:     p.Hand.String(),
				Wager:    p.Hand.Wager,
				Bankroll: p.Bankroll,
			})
		} else {
			p.Stand = true
			r.recordOutcome(p, OutcomeLoss, p.Hand.Wager)
			r.emit(events.HandLost{
				Player:   p.Name,
				Hand:     p.Hand.String(),
				Wager:    p.Hand.Wager,
				Bankroll: p.Bankroll,
			})
		}
	}
}

// payNaturals pays every player holding a natural blackjack right away.
// Those players take no further decisions this round.
func (r *Round) payNaturals() {
	for _, p := range r.players {
		if !p.Hand.Natural {
			continue
		}
		winnings := Settle(OutcomeNaturalWin, p.Hand.Wager)
		p.Bankroll += winnings
		r.recordOutcome(p, OutcomeNaturalWin, p.Hand.Wager)
		r.emit(events.NaturalPaid{
			Player:   p.Name,
			Wager:    p.Hand.Wager,
			Winnings: winnings,
			Bankroll: p.Bankroll,
		})
	}
}

// playerTurns runs the decision loop for every player still in play,
// and for the second hand of any non-Ace split.
func (r *Round) playerTurns() error {
	for _, p := range r.players {
		if p.Hand.Natural || p.Stand {
			continue
		}

		if err := r.playHand(p, p.Hand, false); err != nil {
			return err
		}

		if p.SecondHand != nil && !p.SplitAces() {
			if err := r.playHand(p, p.SecondHand, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// playHand plays a single hand to completion: hit, stand, double down,
// and (on the primary hand only) split. The loop ends when the player
// stands or doubles, or the hand reaches or exceeds the limit.
func (r *Round) playHand(p *Player, hand *Hand, secondHand bool) error {
	for hand.Value < Limit {
		r.emit(events.TurnStarted{Player: p.Name, Value: hand.Value, SecondHand: secondHand})

		legal := []Action{ActionHit, ActionStand, ActionDouble}
		if !secondHand && p.CanSplit() {
			legal = append(legal, ActionSplit)
		}

		action := r.promptAction(p, hand, legal)
		done := false

		switch action {
		case ActionSplit:
			if err := p.SplitPair(r.deck); err != nil {
				return err
			}
			r.emit(events.PairSplit{
				Player:     p.Name,
				FirstHand:  p.Hand.String(),
				SecondHand: p.SecondHand.String(),
			})
			if p.SplitAces() {
				r.emit(events.AcesSplit{Player: p.Name})
				p.Stand = true
				done = true
			}

		case ActionHit:
			card, err := hand.Draw(r.deck)
			if err != nil {
				return err
			}
			r.emit(events.CardDrawn{Owner: p.Name, Card: card.String(), Value: hand.Value})

		case ActionStand:
			p.Stand = true
			done = true

		case ActionDouble:
			if err := r.doubleDown(p, hand); err != nil {
				return err
			}
			done = true
		}

		if done {
			break
		}
	}

	if hand.Value == Limit {
		p.Stand = true
	}

	if hand.Busted() {
		r.recordOutcome(p, OutcomeBust, hand.Wager)
		r.emit(events.HandBusted{Player: p.Name, Hand: hand.String(), Wager: hand.Wager})
		// A busted primary hand takes the player out of the dealer
		// comparison; a busted second hand must not undo a stand the
		// first hand already earned.
		if !secondHand {
			p.Stand = false
		}
	}

	return nil
}

// promptAction re-invokes the decision provider until it returns one of
// the legal actions.
func (r *Round) promptAction(p *Player, hand *Hand, legal []Action) Action {
	for {
		action := r.decisions.Action(p, hand, legal)
		if slices.Contains(legal, action) {
			return action
		}
		r.emit(events.ChoiceRejected{Player: p.Name, Input: string(action)})
	}
}

// doubleDown raises the hand's wager by up to the smaller of the
// current wager and the remaining bankroll, deals exactly one card, and
// stands.
func (r *Round) doubleDown(p *Player, hand *Hand) error {
	max := min(hand.Wager, p.Bankroll)

	for {
		raise := r.decisions.RaiseAmount(p, max)
		if raise < 0 || raise > max {
			r.emit(events.WagerRejected{Player: p.Name, Amount: raise, Max: max})
			continue
		}
		hand.Wager += raise
		p.Bankroll -= raise
		break
	}

	card, err := hand.Draw(r.deck)
	if err != nil {
		return err
	}
	r.emit(events.CardDrawn{Owner: p.Name, Card: card.String(), Value: hand.Value})

	p.Stand = true
	return nil
}

// dealerTurn reveals the dealer's hand, draws to the stand threshold,
// and settles every standing player's hands. Skipped entirely when no
// player is standing.
func (r *Round) dealerTurn() error {
	anyStanding := false
	for _, p := range r.players {
		if p.Stand {
			anyStanding = true
			break
		}
	}
	if !anyStanding {
		return nil
	}

	d := r.dealer.Hand
	r.emit(events.DealerRevealed{Hand: d.String(), Value: d.Value})

	for d.Value < r.rules.DealerStand {
		card, err := d.Draw(r.deck)
		if err != nil {
			return err
		}
		r.emit(events.CardDrawn{Owner: "Dealer", Card: card.String(), Value: d.Value})
	}

	if d.Busted() {
		r.emit(events.DealerBusted{Value: d.Value})
		r.payAfterDealerBust()
	} else {
		r.compareHands()
	}
	return nil
}

// payAfterDealerBust pays double the wager on every standing player's
// non-busted hand.
func (r *Round) payAfterDealerBust() {
	for _, p := range r.players {
		if !p.Stand {
			continue
		}
		for _, hand := range p.Hands() {
			if hand.Busted() {
				continue
			}
			winnings := Settle(OutcomeWin, hand.Wager)
			p.Bankroll += winnings
			r.recordOutcome(p, OutcomeWin, hand.Wager)
			r.emit(events.HandWon{
				Player:   p.Name,
				Hand:     hand.String(),
				Winnings: winnings,
				Bankroll: p.Bankroll,
			})
		}
	}
}

// compareHands settles every standing player's non-busted hands against
// the dealer's final value.
func (r *Round) compareHands() {
	dealerValue := r.dealer.Hand.Value

	for _, p := range r.players {
		if !p.Stand {
			continue
		}
		for _, hand := range p.Hands() {
			if hand.Busted() {
				continue
			}

			switch {
			case dealerValue > hand.Value:
				r.recordOutcome(p, OutcomeLoss, hand.Wager)
				r.emit(events.HandLost{
					Player:   p.Name,
					Hand:     hand.String(),
					Wager:    hand.Wager,
					Bankroll: p.Bankroll,
				})

			case dealerValue == hand.Value:
				p.Bankroll += Settle(OutcomePush, hand.Wager)
				r.recordOutcome(p, OutcomePush, hand.Wager)
				r.emit(events.HandPushed{
					Player:   p.Name,
					Hand:     hand.String(),
					Wager:    hand.Wager,
					Bankroll: p.Bankroll,
				})

			default:
				winnings := Settle(OutcomeWin, hand.Wager)
				p.Bankroll += winnings
				r.recordOutcome(p, OutcomeWin, hand.Wager)
				r.emit(events.HandWon{
					Player:   p.Name,
					Hand:     hand.String(),
					Winnings: winnings,
					Bankroll: p.Bankroll,
				})
			}
		}
	}
}

func (r *Round) recordOutcome(p *Player, outcome Outcome, wager int) {
	r.outcomes[p.ID] = append(r.outcomes[p.ID], HandResult{Outcome: outcome, Wager: wager})
}

func (r *Round) result() *RoundResult {
	result := &RoundResult{Number: r.number}
	for _, p := range r.players {
		result.Players = append(result.Players, PlayerResult{
			PlayerID: p.ID,
			Name:     p.Name,
			Bankroll: p.Bankroll,
			Hands:    r.outcomes[p.ID],
		})
	}
	return result
}

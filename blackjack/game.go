package blackjack

import (
	"fmt"
	"log/slog"

	"github.com/MarissaSkud/Blackjack/cards"
	"github.com/MarissaSkud/Blackjack/events"
	"github.com/google/uuid"
)

// Game is a blackjack session: a roster of players against one dealer,
// played round after round with a fresh deck each time, until every
// player has gone bankrupt or cashed out.
type Game struct {
	ID        string
	Players   []*Player
	Dealer    *Dealer
	Rules     Rules
	decisions DecisionProvider
	handlers  []events.EventHandler
	logger    *slog.Logger
	round     int
	newDeck   func() *cards.Deck
}

// NewGame creates a game with the given rules and decision provider
func NewGame(rules Rules, decisions DecisionProvider, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}

	return &Game{
		ID:        uuid.NewString(),
		Dealer:    NewDealer(),
		Rules:     rules,
		decisions: decisions,
		logger:    logger,
		newDeck:   cards.NewDeck,
	}
}

// OnEvent registers a handler for the game's progress notifications
func (g *Game) OnEvent(handler events.EventHandler) {
	g.handlers = append(g.handlers, handler)
}

func (g *Game) emit(event events.Event) {
	for _, handler := range g.handlers {
		handler(event)
	}
}

// AddPlayer seats a new player with the starting bankroll
func (g *Game) AddPlayer(name string) (*Player, error) {
	if g.round > 0 {
		return nil, fmt.Errorf("cannot seat players once play has started")
	}
	if len(g.Players) >= g.Rules.MaxPlayers {
		return nil, fmt.Errorf("this table has a %d-player maximum", g.Rules.MaxPlayers)
	}

	player := NewPlayer(name, g.Rules.StartingBankroll)
	g.Players = append(g.Players, player)
	return player, nil
}

// Run plays rounds until the roster is empty, returning every round's
// result in order.
func (g *Game) Run() ([]RoundResult, error) {
	var results []RoundResult

	for len(g.Players) > 0 {
		result, err := g.PlayRound()
		if err != nil {
			return results, err
		}
		results = append(results, *result)
	}

	g.emit(events.GameOver{Reason: "no players remaining"})
	return results, nil
}

// PlayRound plays a single round with a freshly shuffled deck, then
// removes bankrupt players and asks the rest whether to continue.
func (g *Game) PlayRound() (*RoundResult, error) {
	g.round++

	for _, p := range g.Players {
		p.ResetForNewRound()
	}
	g.Dealer.ResetForNewRound()

	round := NewRound(g.round, g.Players, g.Dealer, g.newDeck(), g.Rules, g.decisions)
	round.OnEvent(g.emit)

	g.logger.Debug("round starting", "game", g.ID, "round", g.round, "players", len(g.Players))

	result, err := round.Play()
	if err != nil {
		return nil, err
	}

	g.removeBankrupt(result)
	if len(g.Players) > 0 {
		g.askToContinue(result)
	}

	g.logger.Debug("round settled", "game", g.ID, "round", g.round, "remaining", len(g.Players))
	return result, nil
}

// removeBankrupt drops every player whose bankroll reached zero. The
// roster is rebuilt after a full pass so that several players going
// broke in the same round are all removed.
func (g *Game) removeBankrupt(result *RoundResult) {
	var remaining []*Player
	for _, p := range g.Players {
		if p.Bankroll == 0 {
			result.markRemoved(p.ID, RemovalBankrupt)
			g.emit(events.PlayerBankrupt{Player: p.Name})
			continue
		}
		remaining = append(remaining, p)
	}
	g.Players = remaining
}

// askToContinue offers every remaining player the choice to keep
// playing or cash out, then rebuilds the roster without the leavers.
func (g *Game) askToContinue(result *RoundResult) {
	for _, p := range g.Players {
		if g.decisions.PlayAnotherRound(p) {
			continue
		}

		p.CashOut()
		result.markRemoved(p.ID, RemovalCashedOut)

		profit := p.Bankroll - g.Rules.StartingBankroll
		if profit < 0 {
			profit = 0
		}
		g.emit(events.PlayerCashedOut{Player: p.Name, Bankroll: p.Bankroll, Profit: profit})
	}

	var remaining []*Player
	for _, p := range g.Players {
		if !p.CashedOut {
			remaining = append(remaining, p)
		}
	}
	g.Players = remaining
}

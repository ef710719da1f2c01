package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/MarissaSkud/Blackjack/blackjack"
	"github.com/MarissaSkud/Blackjack/terminal"
)

func main() {
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()
	pterm.Println("Welcome to Blackjack!")

	rules := blackjack.DefaultRules()
	game := blackjack.NewGame(rules, terminal.NewPrompter(), logger)
	game.OnEvent(terminal.NewDisplay(time.Second).HandleEvent)
	if os.Getenv("BLACKJACK_TRACE") != "" {
		game.OnEvent(terminal.NewTracer(logger).HandleEvent)
	}

	for i, name := range askPlayerNames(rules.MaxPlayers) {
		if _, err := game.AddPlayer(name); err != nil {
			logger.Error("could not seat player", "seat", i+1, "error", err)
			os.Exit(1)
		}
	}

	if _, err := game.Run(); err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

// askPlayerNames prompts for the table size and a name per seat
func askPlayerNames(maxPlayers int) []string {
	var count int
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("How many people are playing?").Show()
		parsed, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || parsed < 1 {
			pterm.Warning.Println("Please enter a number of players.")
			continue
		}
		if parsed > maxPlayers {
			pterm.Warning.Printfln("This blackjack table has a %d-player maximum.", maxPlayers)
			continue
		}
		count = parsed
		break
	}

	names := make([]string, count)
	for i := range names {
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("What is Player %d's name?", i+1)).
			Show()
		names[i] = strings.TrimSpace(name)
	}
	return names
}

// Command simulate runs bot-vs-bot batches and prints aggregate results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/manacore/manacore-go/internal/cards"
	"github.com/manacore/manacore-go/internal/config"
	"github.com/manacore/manacore-go/internal/game"
	"github.com/manacore/manacore-go/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	games := flag.Int("games", 0, "number of games (overrides config)")
	seed := flag.Uint64("seed", 0, "batch seed (overrides config)")
	format := flag.String("format", "", "output format: summary, json or csv (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *games > 0 {
		cfg.Sim.Games = *games
	}
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}
	if *format != "" {
		cfg.Sim.Format = *format
	}

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("simulate failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	provider := cards.Builtin()
	deckA, deckB, err := loadDecks(cfg, provider)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := sim.NewRunner(game.New(provider), deckA, deckB, log)
	report, err := runner.Run(ctx, sim.Config{
		Games:    cfg.Sim.Games,
		Seed:     cfg.Sim.Seed,
		Workers:  cfg.Sim.Workers,
		MaxTurns: cfg.Sim.MaxTurns,
		BotOne:   cfg.Sim.BotOne,
		BotTwo:   cfg.Sim.BotTwo,
	})
	if report != nil {
		if werr := write(cfg.Sim.Format, report); werr != nil {
			return werr
		}
	}
	return err
}

func loadDecks(cfg *config.Config, provider *cards.Provider) (game.Decklist, game.Decklist, error) {
	if cfg.DecksFile == "" {
		a, b := cards.DefaultDecks()
		return a, b, nil
	}
	decks, err := cards.LoadDecks(cfg.DecksFile, provider)
	if err != nil {
		return game.Decklist{}, game.Decklist{}, err
	}
	if len(decks) < 2 {
		return game.Decklist{}, game.Decklist{}, fmt.Errorf("%s: need at least two decks", cfg.DecksFile)
	}
	return decks[0], decks[1], nil
}

func write(format string, report *sim.Report) error {
	switch format {
	case "json":
		return sim.WriteJSON(os.Stdout, report)
	case "csv":
		return sim.WriteCSV(os.Stdout, report)
	case "", "summary":
		return sim.WriteSummary(os.Stdout, report)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

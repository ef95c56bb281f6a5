// Command web-demo serves a human-vs-bot game over a websocket. The
// browser plays player1 by legal-action index; the configured bot plays
// player2.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/manacore/manacore-go/internal/bot"
	"github.com/manacore/manacore-go/internal/cards"
	"github.com/manacore/manacore-go/internal/config"
	"github.com/manacore/manacore-go/internal/game"
	"github.com/manacore/manacore-go/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Web.Addr = *addr
	}
	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("web-demo failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	provider := cards.Builtin()
	deckA, deckB := cards.DefaultDecks()
	if cfg.DecksFile != "" {
		decks, err := cards.LoadDecks(cfg.DecksFile, provider)
		if err != nil {
			return err
		}
		if len(decks) < 2 {
			return fmt.Errorf("%s: need at least two decks", cfg.DecksFile)
		}
		deckA, deckB = decks[0], decks[1]
	}

	opponent, err := bot.New(cfg.Web.Bot, uint64(time.Now().UnixNano()))
	if err != nil {
		return err
	}

	hub := web.NewHub(game.New(provider), deckA, deckB, opponent, uint64(time.Now().UnixNano()), log)
	go hub.Run()

	http.HandleFunc("/ws", hub.ServeWS)
	log.Info("websocket server listening",
		zap.String("addr", cfg.Web.Addr),
		zap.String("bot", opponent.Name()))
	return http.ListenAndServe(cfg.Web.Addr, nil)
}

// Command server exposes the rules engine as an MCP tool server on
// stdio. Tool-calling clients start games, inspect legal actions and
// submit choices by index.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/manacore/manacore-go/internal/cards"
	"github.com/manacore/manacore-go/internal/config"
	"github.com/manacore/manacore-go/internal/game"
	"github.com/manacore/manacore-go/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	provider := cards.Builtin()
	decks, err := loadDecks(cfg, provider)
	if err != nil {
		return err
	}

	svc, err := server.NewService(game.New(provider), decks, uint64(time.Now().UnixNano()), log)
	if err != nil {
		return err
	}

	s := mcpserver.NewMCPServer(cfg.Server.Name, cfg.Server.Version)
	server.RegisterTools(s, svc)

	log.Info("serving MCP on stdio",
		zap.String("name", cfg.Server.Name),
		zap.Strings("decks", svc.DeckNames()))
	return mcpserver.ServeStdio(s)
}

func loadDecks(cfg *config.Config, provider *cards.Provider) ([]game.Decklist, error) {
	if cfg.DecksFile == "" {
		a, b := cards.DefaultDecks()
		return []game.Decklist{a, b}, nil
	}
	return cards.LoadDecks(cfg.DecksFile, provider)
}

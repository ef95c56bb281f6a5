// Package sim runs bot-vs-bot game batches and aggregates the outcomes.
// Every game in a batch gets its own seed derived from the batch seed, so
// a single failing game can be replayed in isolation.
package sim

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/manacore/manacore-go/internal/bot"
	"github.com/manacore/manacore-go/internal/game"
)

// Config describes one batch.
type Config struct {
	Games    int
	Seed     uint64
	Workers  int
	MaxTurns int
	BotOne   string
	BotTwo   string
}

// GameResult is the outcome of a single game.
type GameResult struct {
	Index     int           `json:"index"`
	Seed      uint64        `json:"seed"`
	Winner    game.PlayerID `json:"winner"`
	Turns     int           `json:"turns"`
	Decisions int           `json:"decisions"`
	Duration  time.Duration `json:"duration_ns"`
	Error     string        `json:"error,omitempty"`

	// Replay is only populated for games that hit an engine error, so the
	// failure can be reproduced offline.
	Replay *game.Replay `json:"replay,omitempty"`
}

// Report aggregates a finished batch.
type Report struct {
	Config   Config        `json:"config"`
	DeckOne  string        `json:"deck_one"`
	DeckTwo  string        `json:"deck_two"`
	WinsOne  int           `json:"wins_one"`
	WinsTwo  int           `json:"wins_two"`
	Draws    int           `json:"draws"`
	Errors   int           `json:"errors"`
	AvgTurns float64       `json:"avg_turns"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	Results  []GameResult  `json:"results"`
}

// Runner executes batches against one engine and deck pair.
type Runner struct {
	engine *game.Engine
	deckA  game.Decklist
	deckB  game.Decklist
	log    *zap.Logger
}

func NewRunner(e *game.Engine, deckA, deckB game.Decklist, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{engine: e, deckA: deckA, deckB: deckB, log: log}
}

// Run plays cfg.Games games across cfg.Workers goroutines. Results come
// back ordered by game index regardless of completion order. Cancelling
// the context abandons unstarted games but the returned report still
// covers every finished one.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Games <= 0 {
		cfg.Games = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultMaxTurns
	}

	start := time.Now()
	results := make([]GameResult, cfg.Games)
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = r.playOne(cfg, i)
			}
		}()
	}

feed:
	for i := 0; i < cfg.Games; i++ {
		select {
		case indices <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indices)
	wg.Wait()

	report := &Report{
		Config:  cfg,
		DeckOne: r.deckA.Name,
		DeckTwo: r.deckB.Name,
		Elapsed: time.Since(start),
		Results: results,
	}
	turns := 0
	played := 0
	for _, res := range results {
		if res.Decisions == 0 && res.Error == "" {
			continue // cancelled before start
		}
		played++
		turns += res.Turns
		switch {
		case res.Error != "":
			report.Errors++
		case res.Winner == game.PlayerOne:
			report.WinsOne++
		case res.Winner == game.PlayerTwo:
			report.WinsTwo++
		default:
			report.Draws++
		}
	}
	if played > 0 {
		report.AvgTurns = float64(turns) / float64(played)
	}

	r.log.Info("batch finished",
		zap.Int("games", played),
		zap.Int("wins_one", report.WinsOne),
		zap.Int("wins_two", report.WinsTwo),
		zap.Int("draws", report.Draws),
		zap.Int("errors", report.Errors),
		zap.Duration("elapsed", report.Elapsed))
	return report, ctx.Err()
}

// DefaultMaxTurns caps runaway games before adjudication.
const DefaultMaxTurns = 60

func (r *Runner) playOne(cfg Config, index int) GameResult {
	seed := game.DeriveSeed(cfg.Seed, uint64(index))
	res := GameResult{Index: index, Seed: seed}
	begin := time.Now()

	one, err := bot.New(cfg.BotOne, game.DeriveSeed(seed, 1))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	two, err := bot.New(cfg.BotTwo, game.DeriveSeed(seed, 2))
	if err != nil {
		res.Error = err.Error()
		return res
	}

	s, err := r.engine.NewGame(r.deckA, r.deckB, seed)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	replay := game.Replay{Seed: seed, DeckA: r.deckA, DeckB: r.deckB}
	for !s.GameOver && s.Turn <= cfg.MaxTurns {
		mover := s.Priority
		b := one
		if mover == game.PlayerTwo {
			b = two
		}
		actions, err := r.engine.LegalActionsChecked(s, mover)
		if err != nil {
			return r.fail(res, replay, begin, s, err)
		}
		idx := b.Choose(r.engine, s, mover, actions)
		next, err := r.engine.ApplyIndex(s, mover, idx)
		if err != nil {
			return r.fail(res, replay, begin, s, err)
		}
		replay.Record(idx)
		res.Decisions++
		s = next
	}

	res.Turns = s.Turn
	res.Winner = adjudicate(s)
	res.Duration = time.Since(begin)
	return res
}

func (r *Runner) fail(res GameResult, replay game.Replay, begin time.Time, s *game.GameState, err error) GameResult {
	res.Error = err.Error()
	res.Turns = s.Turn
	res.Duration = time.Since(begin)
	res.Replay = &replay
	r.log.Error("game failed",
		zap.Int("game", res.Index),
		zap.Uint64("seed", res.Seed),
		zap.Int("turn", s.Turn),
		zap.Error(err))
	return res
}

// adjudicate names the winner of a finished or capped game. A capped game
// goes to the higher life total, or to a draw on a tie.
func adjudicate(s *game.GameState) game.PlayerID {
	if s.GameOver {
		return s.Winner
	}
	one := s.Player(game.PlayerOne).Life
	two := s.Player(game.PlayerTwo).Life
	switch {
	case one > two:
		return game.PlayerOne
	case two > one:
		return game.PlayerTwo
	default:
		return game.NoPlayer
	}
}

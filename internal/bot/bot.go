// Package bot provides decision policies that drive games through the
// engine's positional action interface. Every policy is deterministic for
// a given seed, which keeps batch results reproducible.
package bot

import (
	"fmt"

	"github.com/manacore/manacore-go/internal/game"
)

// Bot picks one index from a non-empty legal action list. Implementations
// must not mutate the state they are shown.
type Bot interface {
	Name() string
	Choose(e *game.Engine, s *game.GameState, p game.PlayerID, actions []game.Action) int
}

// New builds a bot by policy name. Seed only matters for policies that
// randomize.
func New(policy string, seed uint64) (Bot, error) {
	switch policy {
	case "random":
		return NewRandom(seed), nil
	case "greedy":
		return NewGreedy(), nil
	case "search":
		return NewSearch(DefaultSearchDepth), nil
	default:
		return nil, fmt.Errorf("unknown bot policy %q", policy)
	}
}

// Random picks uniformly among the legal actions, excluding concession.
type Random struct {
	rng game.RNG
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: game.NewRNG(seed)}
}

func (b *Random) Name() string { return "random" }

func (b *Random) Choose(e *game.Engine, s *game.GameState, p game.PlayerID, actions []game.Action) int {
	n := len(actions)
	if n > 1 && actions[n-1].Type == game.ActionConcede {
		n--
	}
	if n <= 1 {
		return 0
	}
	return b.rng.Intn(n)
}

package bot

import "github.com/manacore/manacore-go/internal/game"

// Greedy applies every legal action to a scratch copy and keeps the one
// whose immediate successor scores best. Ties go to the lowest index so
// the policy is a pure function of the state.
type Greedy struct{}

func NewGreedy() *Greedy { return &Greedy{} }

func (b *Greedy) Name() string { return "greedy" }

func (b *Greedy) Choose(e *game.Engine, s *game.GameState, p game.PlayerID, actions []game.Action) int {
	best, bestScore := 0, minScore
	for i, a := range actions {
		if a.Type == game.ActionConcede {
			continue
		}
		next, err := e.Apply(s, a)
		if err != nil {
			continue
		}
		if score := evaluate(e, next, p); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

const minScore = -winScore * 2

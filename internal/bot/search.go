package bot

import "github.com/manacore/manacore-go/internal/game"

// DefaultSearchDepth is the decision depth the search bot looks ahead.
const DefaultSearchDepth = 3

// searchBranchCap bounds the actions expanded per node. Combat steps can
// enumerate dozens of declarations; beyond the cap only the first entries
// in enumeration order are searched, which keeps the policy deterministic.
const searchBranchCap = 16

// Search runs a depth-limited minimax over decision points. Both players
// are modeled with the shared evaluation; the opponent minimizes. Leaves
// are scored with the greedy evaluation.
type Search struct {
	depth int
}

func NewSearch(depth int) *Search {
	if depth < 1 {
		depth = 1
	}
	return &Search{depth: depth}
}

func (b *Search) Name() string { return "search" }

func (b *Search) Choose(e *game.Engine, s *game.GameState, p game.PlayerID, actions []game.Action) int {
	best, bestScore := 0, minScore
	for i, a := range capped(actions) {
		if a.Type == game.ActionConcede {
			continue
		}
		next, err := e.Apply(s, a)
		if err != nil {
			continue
		}
		if score := b.minimax(e, next, p, b.depth-1); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best
}

func (b *Search) minimax(e *game.Engine, s *game.GameState, p game.PlayerID, depth int) int {
	if depth <= 0 || s.GameOver {
		return evaluate(e, s, p)
	}

	mover := s.Priority
	actions := e.LegalActions(s, mover)
	if len(actions) == 0 {
		return evaluate(e, s, p)
	}

	maximizing := mover == p
	best := minScore
	if !maximizing {
		best = -minScore
	}
	for _, a := range capped(actions) {
		if a.Type == game.ActionConcede {
			continue
		}
		next, err := e.Apply(s, a)
		if err != nil {
			continue
		}
		score := b.minimax(e, next, p, depth-1)
		if maximizing && score > best {
			best = score
		}
		if !maximizing && score < best {
			best = score
		}
	}
	return best
}

func capped(actions []game.Action) []game.Action {
	if len(actions) > searchBranchCap {
		return actions[:searchBranchCap]
	}
	return actions
}

package bot

import "github.com/manacore/manacore-go/internal/game"

// Evaluation weights. Life and board material dominate; the small land,
// hand and floating-mana terms teach one-step policies to develop before
// they can see tangible payoff.
const (
	winScore       = 1_000_000
	lifeWeight     = 12
	powerWeight    = 8
	toughWeight    = 4
	handWeight     = 3
	landWeight     = 5
	floatingWeight = 1
)

// evaluate scores a state from p's point of view. Symmetric: the opponent's
// assets count negatively with the same weights.
func evaluate(e *game.Engine, s *game.GameState, p game.PlayerID) int {
	if s.GameOver {
		switch s.Winner {
		case p:
			return winScore
		case game.NoPlayer:
			return 0
		default:
			return -winScore
		}
	}
	return sideScore(e, s, p) - sideScore(e, s, s.Opponent(p))
}

func sideScore(e *game.Engine, s *game.GameState, p game.PlayerID) int {
	ps := s.Player(p)
	score := ps.Life * lifeWeight
	score += len(ps.Hand) * handWeight
	score += ps.Pool.Total() * floatingWeight

	for i := range ps.Battlefield {
		c := &ps.Battlefield[i]
		switch e.TemplateOf(c).Kind {
		case game.KindLand:
			score += landWeight
		case game.KindCreature:
			score += e.Power(c)*powerWeight + e.Toughness(c)*toughWeight
		}
	}
	return score
}

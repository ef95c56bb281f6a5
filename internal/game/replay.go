package game

import "fmt"

// Replay captures everything needed to reproduce a game: the seed, both
// decklists, and the index each priority holder picked from their legal
// action list, in order. Because action enumeration is deterministic, the
// indices alone replay the game exactly.
type Replay struct {
	Seed    uint64   `json:"seed" yaml:"seed"`
	DeckA   Decklist `json:"deck_a" yaml:"deck_a"`
	DeckB   Decklist `json:"deck_b" yaml:"deck_b"`
	Actions []int    `json:"actions" yaml:"actions"`
}

// Record appends the chosen action index.
func (r *Replay) Record(idx int) {
	r.Actions = append(r.Actions, idx)
}

// Run replays the recorded game from scratch and returns the final state.
// An index that is out of range for the replayed legal set means the
// replay no longer matches the engine and is reported as an error.
func (e *Engine) Run(r Replay) (*GameState, error) {
	s, err := e.NewGame(r.DeckA, r.DeckB, r.Seed)
	if err != nil {
		return nil, err
	}
	for step, idx := range r.Actions {
		if s.GameOver {
			return nil, fmt.Errorf("replay step %d: game already over", step)
		}
		s, err = e.ApplyIndex(s, s.Priority, idx)
		if err != nil {
			return nil, fmt.Errorf("replay step %d: %w", step, err)
		}
	}
	return s, nil
}

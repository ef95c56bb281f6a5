// Package web serves a human-vs-bot game over websockets. The browser
// plays player1 by submitting legal-action indices; a bot answers for
// player2 whenever it holds priority.
package web

import (
	"github.com/manacore/manacore-go/internal/game"
	"github.com/manacore/manacore-go/internal/server"
)

// CardView is the wire shape of one card instance.
type CardView struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Power      int      `json:"power,omitempty"`
	Toughness  int      `json:"toughness,omitempty"`
	Damage     int      `json:"damage,omitempty"`
	Tapped     bool     `json:"tapped"`
	Attacking  bool     `json:"attacking"`
	Blocking   string   `json:"blocking,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`
	Controller string   `json:"controller"`
}

// PlayerView is the wire shape of one seat.
type PlayerView struct {
	ID             string     `json:"id"`
	Life           int        `json:"life"`
	LibraryCount   int        `json:"library_count"`
	GraveyardCount int        `json:"graveyard_count"`
	HandCount      int        `json:"hand_count"`
	Battlefield    []CardView `json:"battlefield"`
}

// StateView is the full client-facing game state. Only player1's hand is
// revealed; the contract is the human seat sees its own cards and counts
// for everything hidden.
type StateView struct {
	GameID   string       `json:"game_id"`
	Turn     int          `json:"turn"`
	Phase    string       `json:"phase"`
	Step     string       `json:"step"`
	Active   string       `json:"active_player"`
	Priority string       `json:"priority_player"`
	GameOver bool         `json:"game_over"`
	Winner   string       `json:"winner,omitempty"`
	Players  []PlayerView `json:"players"`
	Hand     []CardView   `json:"hand"`
	Stack    []string     `json:"stack"`
	Actions  []ActionView `json:"actions"`
	Events   []string     `json:"events"`
}

// ActionView pairs an index with its description; the client submits the
// index back verbatim.
type ActionView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// BuildView renders the state for the human seat.
func BuildView(e *game.Engine, gameID string, s *game.GameState, human game.PlayerID) StateView {
	view := StateView{
		GameID:   gameID,
		Turn:     s.Turn,
		Phase:    s.Phase().String(),
		Step:     s.Step().String(),
		Active:   string(s.Active),
		Priority: string(s.Priority),
		GameOver: s.GameOver,
		Winner:   string(s.Winner),
	}

	for i := range s.Players {
		ps := &s.Players[i]
		pv := PlayerView{
			ID:             string(ps.ID),
			Life:           ps.Life,
			LibraryCount:   len(ps.Library),
			GraveyardCount: len(ps.Graveyard),
			HandCount:      len(ps.Hand),
		}
		for j := range ps.Battlefield {
			pv.Battlefield = append(pv.Battlefield, cardView(e, &ps.Battlefield[j], ps.ID))
		}
		view.Players = append(view.Players, pv)

		if ps.ID == human {
			for j := range ps.Hand {
				view.Hand = append(view.Hand, cardView(e, &ps.Hand[j], ps.ID))
			}
		}
	}

	for _, item := range s.Stack {
		view.Stack = append(view.Stack, item.Description)
	}
	for _, ev := range s.Log {
		if ev.Message != "" {
			view.Events = append(view.Events, ev.Message)
		}
	}

	if !s.GameOver && s.Priority == human {
		for i, a := range e.LegalActions(s, human) {
			view.Actions = append(view.Actions, ActionView{
				Index: i,
				Text:  server.RenderAction(e, s, a),
			})
		}
	}
	return view
}

func cardView(e *game.Engine, c *game.CardInstance, controller game.PlayerID) CardView {
	t := e.TemplateOf(c)
	view := CardView{
		ID:         c.ID,
		Name:       t.Name,
		Kind:       t.Kind.String(),
		Damage:     c.Damage,
		Tapped:     c.Tapped,
		Attacking:  c.Attacking,
		Blocking:   c.BlockerOf,
		Controller: string(controller),
	}
	if t.Kind == game.KindCreature {
		view.Power = e.Power(c)
		view.Toughness = e.Toughness(c)
	}
	for _, k := range t.Keywords {
		view.Keywords = append(view.Keywords, string(k))
	}
	return view
}

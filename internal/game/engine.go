package game

import (
	"fmt"

	"github.com/manacore/manacore-go/internal/game/counters"
)

// StartingLife is each player's starting life total.
const StartingLife = 20

// OpeningHandSize is the number of cards drawn at game start.
const OpeningHandSize = 7

// MaxHandSize is the hand size enforced at cleanup.
const MaxHandSize = 7

// PlayerOne and PlayerTwo are the conventional seat ids. NewGame always
// uses them; PlayerOne takes the first turn.
const (
	PlayerOne PlayerID = "player1"
	PlayerTwo PlayerID = "player2"
)

// Engine evaluates rules over immutable GameState snapshots. It holds only
// the injected read-only card provider; all game state lives in the
// snapshots, so one Engine can serve any number of concurrent games.
type Engine struct {
	cards CardProvider
}

// New creates an engine backed by the given card provider.
func New(cards CardProvider) *Engine {
	return &Engine{cards: cards}
}

// template resolves a template key, panicking on keys that NewGame already
// validated. Unknown keys after validation indicate state corruption.
func (e *Engine) template(key string) Template {
	t, ok := e.cards.Template(key)
	if !ok {
		panic(fmt.Sprintf("game: unknown card template %q", key))
	}
	return t
}

// power returns a battlefield creature's current power.
func (e *Engine) power(c *CardInstance) int {
	t := e.template(c.Template)
	p := t.Power + c.TempPower + c.Counters.Count(counters.PlusOnePlusOne)
	if p < 0 {
		return 0
	}
	return p
}

// toughness returns a battlefield creature's current toughness.
func (e *Engine) toughness(c *CardInstance) int {
	t := e.template(c.Template)
	return t.Toughness + c.TempToughness + c.Counters.Count(counters.PlusOnePlusOne)
}

// isCreature reports whether the battlefield instance is a creature.
func (e *Engine) isCreature(c *CardInstance) bool {
	return e.template(c.Template).Kind == KindCreature
}

// TemplateOf resolves a card instance's template. Callers outside the
// rules code use this to render or score cards.
func (e *Engine) TemplateOf(c *CardInstance) Template {
	return e.template(c.Template)
}

// Power is the exported view of a battlefield creature's current power.
func (e *Engine) Power(c *CardInstance) int {
	return e.power(c)
}

// Toughness is the exported view of a battlefield creature's current
// toughness.
func (e *Engine) Toughness(c *CardInstance) int {
	return e.toughness(c)
}

// NewGame shuffles both decks with the seeded generator, draws opening
// hands of seven, and returns the initial snapshot: turn 1, untap step,
// player1 active and holding priority.
func (e *Engine) NewGame(deckA, deckB Decklist, seed uint64) (*GameState, error) {
	if deckA.Size() == 0 || deckB.Size() == 0 {
		return nil, fmt.Errorf("both decks must be non-empty")
	}

	s := &GameState{
		Turn:     1,
		Active:   PlayerOne,
		Priority: PlayerOne,
		RNG:      NewRNG(seed),
	}

	for _, setup := range []struct {
		id   PlayerID
		deck Decklist
	}{
		{PlayerOne, deckA},
		{PlayerTwo, deckB},
	} {
		library := make([]CardInstance, 0, setup.deck.Size())
		for _, key := range setup.deck.Cards {
			t, ok := e.cards.Template(key)
			if !ok {
				return nil, fmt.Errorf("deck %q: unknown card template %q", setup.deck.Name, key)
			}
			if t.Token {
				return nil, fmt.Errorf("deck %q: token template %q cannot be in a deck", setup.deck.Name, key)
			}
			library = append(library, CardInstance{
				ID:       s.newInstanceID(),
				Template: key,
			})
		}

		s.RNG.Shuffle(len(library), func(a, b int) {
			library[a], library[b] = library[b], library[a]
		})

		hand := make([]CardInstance, 0, OpeningHandSize)
		if len(library) < OpeningHandSize {
			return nil, fmt.Errorf("deck %q: needs at least %d cards, has %d", setup.deck.Name, OpeningHandSize, len(library))
		}
		hand = append(hand, library[:OpeningHandSize]...)
		library = library[OpeningHandSize:]

		s.Players = append(s.Players, PlayerState{
			ID:      setup.id,
			Life:    StartingLife,
			Library: library,
			Hand:    hand,
		})
	}

	s.logf(EventGameStart, NoPlayer, "game started, seed %d", seed)
	return s, nil
}

// LegalActionsChecked wraps LegalActions with the priority-liveness
// contract: a priority holder with zero actions is an engine defect.
func (e *Engine) LegalActionsChecked(s *GameState, p PlayerID) ([]Action, error) {
	actions := e.LegalActions(s, p)
	if len(actions) == 0 && !s.GameOver && s.Priority == p {
		return nil, &NoLegalActionsError{Player: p, State: s}
	}
	return actions, nil
}

// ApplyIndex applies the idx-th entry of the legal-action list for p. This
// is the positional contract every external caller uses.
func (e *Engine) ApplyIndex(s *GameState, p PlayerID, idx int) (*GameState, error) {
	actions, err := e.LegalActionsChecked(s, p)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(actions) {
		return nil, &IndexOutOfRangeError{Index: idx, Len: len(actions)}
	}
	return e.Apply(s, actions[idx])
}

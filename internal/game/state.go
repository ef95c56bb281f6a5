package game

import (
	"fmt"

	"github.com/manacore/manacore-go/internal/game/counters"
	"github.com/manacore/manacore-go/internal/game/mana"
	"github.com/manacore/manacore-go/internal/game/rules"
)

// PlayerID identifies one of the two players.
type PlayerID string

// NoPlayer is the absent player id (e.g. Winner of a drawn game).
const NoPlayer PlayerID = ""

// Zone identifies where a card instance currently lives.
type Zone int

const (
	ZoneLibrary Zone = iota
	ZoneHand
	ZoneBattlefield
	ZoneGraveyard
	ZoneStack
)

func (z Zone) String() string {
	switch z {
	case ZoneLibrary:
		return "library"
	case ZoneHand:
		return "hand"
	case ZoneBattlefield:
		return "battlefield"
	case ZoneGraveyard:
		return "graveyard"
	case ZoneStack:
		return "stack"
	default:
		return "unknown"
	}
}

// CardInstance is one physical card (or token). The instance id is assigned
// from a per-game counter when the card first enters the game and is never
// reused, so zone transfers can be audited across the whole game.
type CardInstance struct {
	ID       string
	Template string
	Token    bool

	// Battlefield state. Reset whenever the card leaves the battlefield.
	Tapped        bool
	SummoningSick bool
	Attacking     bool
	BlockerOf     string
	Damage        int
	TempPower     int
	TempToughness int
	Counters      counters.Counters
}

// resetBattlefieldState clears everything that only means something on the
// battlefield.
func (c *CardInstance) resetBattlefieldState() {
	c.Tapped = false
	c.SummoningSick = false
	c.Attacking = false
	c.BlockerOf = ""
	c.Damage = 0
	c.TempPower = 0
	c.TempToughness = 0
	c.Counters = nil
}

func (c CardInstance) clone() CardInstance {
	c.Counters = c.Counters.Copy()
	return c
}

// StackItem is a spell awaiting resolution. The card itself rides on the
// item while it is on the stack.
type StackItem struct {
	ID          string
	Card        CardInstance
	Controller  PlayerID
	Targets     []string
	Description string
}

func (si StackItem) clone() StackItem {
	si.Card = si.Card.clone()
	si.Targets = append([]string(nil), si.Targets...)
	return si
}

// PlayerState is everything owned by one player. Zone slices are ordered;
// the battlefield keeps entry order so that action enumeration is stable.
type PlayerState struct {
	ID          PlayerID
	Life        int
	Library     []CardInstance // index 0 = top
	Hand        []CardInstance
	Battlefield []CardInstance
	Graveyard   []CardInstance
	Pool        mana.Pool
	LandsPlayed int
	Lost        bool
}

func (p PlayerState) clone() PlayerState {
	p.Library = cloneCards(p.Library)
	p.Hand = cloneCards(p.Hand)
	p.Battlefield = cloneCards(p.Battlefield)
	p.Graveyard = cloneCards(p.Graveyard)
	return p
}

func cloneCards(cards []CardInstance) []CardInstance {
	if cards == nil {
		return nil
	}
	out := make([]CardInstance, len(cards))
	for i := range cards {
		out[i] = cards[i].clone()
	}
	return out
}

// GameState is an immutable snapshot of a game. Apply never edits a state
// in place; it clones and returns a new one, which is what makes search
// rollback and bit-exact replay possible.
type GameState struct {
	Turn      int
	StepIndex int
	Active    PlayerID
	Priority  PlayerID
	Players   []PlayerState // seat order; Players[0] takes the first turn
	Stack     []StackItem   // top = last element

	// Passes counts consecutive priority passes since the last action or
	// resolution. Two passes advance the game.
	Passes int

	// Combat declaration latches for the current combat phase.
	AttackersDeclared bool
	BlockersDeclared  bool

	NextInstance int
	RNG          RNG

	GameOver bool
	Winner   PlayerID

	Log []Event
}

// Phase returns the current phase.
func (s *GameState) Phase() rules.Phase {
	return rules.EntryAt(s.StepIndex).Phase
}

// Step returns the current step.
func (s *GameState) Step() rules.Step {
	return rules.EntryAt(s.StepIndex).Step
}

// Player returns the state for the given player id, or nil.
func (s *GameState) Player(id PlayerID) *PlayerState {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// Opponent returns the other player's id.
func (s *GameState) Opponent(id PlayerID) PlayerID {
	for i := range s.Players {
		if s.Players[i].ID != id {
			return s.Players[i].ID
		}
	}
	return NoPlayer
}

// Clone deep-copies the state, including the RNG cursor.
func (s *GameState) Clone() *GameState {
	ns := *s
	ns.Players = make([]PlayerState, len(s.Players))
	for i := range s.Players {
		ns.Players[i] = s.Players[i].clone()
	}
	ns.Stack = make([]StackItem, len(s.Stack))
	for i := range s.Stack {
		ns.Stack[i] = s.Stack[i].clone()
	}
	ns.Log = append([]Event(nil), s.Log...)
	return &ns
}

// newInstanceID mints the next deterministic card instance id.
func (s *GameState) newInstanceID() string {
	s.NextInstance++
	return fmt.Sprintf("c%03d", s.NextInstance)
}

// FindCard locates an instance in any zone.
func (s *GameState) FindCard(id string) (card *CardInstance, zone Zone, owner PlayerID, ok bool) {
	for i := range s.Players {
		p := &s.Players[i]
		for _, pair := range []struct {
			zone  Zone
			cards []CardInstance
		}{
			{ZoneLibrary, p.Library},
			{ZoneHand, p.Hand},
			{ZoneBattlefield, p.Battlefield},
			{ZoneGraveyard, p.Graveyard},
		} {
			for j := range pair.cards {
				if pair.cards[j].ID == id {
					return &pair.cards[j], pair.zone, p.ID, true
				}
			}
		}
	}
	for i := range s.Stack {
		if s.Stack[i].Card.ID == id {
			return &s.Stack[i].Card, ZoneStack, s.Stack[i].Controller, true
		}
	}
	return nil, 0, NoPlayer, false
}

// battlefieldCard returns the battlefield instance with the given id.
func (s *GameState) battlefieldCard(id string) (*CardInstance, PlayerID, bool) {
	for i := range s.Players {
		p := &s.Players[i]
		for j := range p.Battlefield {
			if p.Battlefield[j].ID == id {
				return &p.Battlefield[j], p.ID, true
			}
		}
	}
	return nil, NoPlayer, false
}

// CardCount returns the number of non-token instances a player owns across
// all zones plus the stack. Conservation tests rely on it.
func (s *GameState) CardCount(id PlayerID) int {
	p := s.Player(id)
	if p == nil {
		return 0
	}
	count := 0
	for _, zone := range [][]CardInstance{p.Library, p.Hand, p.Battlefield, p.Graveyard} {
		for _, c := range zone {
			if !c.Token {
				count++
			}
		}
	}
	for _, item := range s.Stack {
		if item.Controller == id && !item.Card.Token {
			count++
		}
	}
	return count
}

package game

import (
	"github.com/manacore/manacore-go/internal/game/mana"
	"github.com/manacore/manacore-go/internal/game/rules"
)

// Apply validates a against the legal set for its player and returns the
// successor state. The input state is never mutated; every transition runs
// on a deep clone. Actions that are not in LegalActions(s, a.Player) are
// rejected with IllegalActionError.
func (e *Engine) Apply(s *GameState, a Action) (*GameState, error) {
	if s.GameOver {
		return nil, ErrGameOver
	}
	// Concession is allowed from either seat at any time; everything else
	// must be in the priority holder's enumerated legal set.
	if a.Type == ActionConcede {
		if s.Player(a.Player) == nil {
			return nil, &IllegalActionError{Action: a, Reason: "unknown player"}
		}
	} else if !e.isLegal(s, a) {
		return nil, &IllegalActionError{Action: a, Reason: "not in the legal action set"}
	}

	next := s.Clone()
	switch a.Type {
	case ActionPass:
		e.handlePass(next)
	case ActionPlayLand:
		e.handlePlayLand(next, a)
	case ActionTapForMana:
		e.handleTapForMana(next, a)
	case ActionCastSpell:
		e.handleCast(next, a)
	case ActionDeclareAttackers:
		e.handleDeclareAttackers(next, a)
	case ActionDeclareBlockers:
		e.handleDeclareBlockers(next, a)
	case ActionConcede:
		e.handleConcede(next, a)
	}
	e.checkStateBased(next)
	return next, nil
}

func (e *Engine) isLegal(s *GameState, a Action) bool {
	for _, legal := range e.LegalActions(s, a.Player) {
		if legal.Equal(a) {
			return true
		}
	}
	return false
}

// handlePass advances the priority protocol. A single pass hands priority
// to the opponent; the second consecutive pass either resolves the top of
// the stack or moves the game to the next step.
func (e *Engine) handlePass(s *GameState) {
	s.Passes++
	if s.Passes < 2 {
		s.Priority = s.Opponent(s.Priority)
		return
	}
	s.Passes = 0
	if len(s.Stack) > 0 {
		e.resolveTop(s)
		s.Priority = s.Active
		return
	}
	e.advanceStep(s)
}

// advanceStep leaves the current step, performs the next step's turn-based
// actions, and grants priority to the active player. Leaving cleanup
// starts the next turn.
func (e *Engine) advanceStep(s *GameState) {
	for i := range s.Players {
		s.Players[i].Pool.Empty()
	}

	s.StepIndex++
	if s.StepIndex >= rules.SequenceLength() {
		e.beginTurn(s)
	}

	s.Passes = 0
	s.Priority = s.Active
	s.logf(EventStepChange, s.Active, "turn %d, %s", s.Turn, s.Step())
	e.stepEntry(s)
}

// beginTurn hands the turn to the other player and resets per-turn state.
func (e *Engine) beginTurn(s *GameState) {
	s.StepIndex = 0
	s.Turn++
	s.Active = s.Opponent(s.Active)
	s.Priority = s.Active
	active := s.Player(s.Active)
	active.LandsPlayed = 0
	s.logf(EventTurnChange, s.Active, "turn %d begins for %s", s.Turn, s.Active)
}

// stepEntry performs the turn-based actions of the step just entered.
func (e *Engine) stepEntry(s *GameState) {
	switch s.Step() {
	case rules.StepUntap:
		e.untapStep(s)
	case rules.StepDraw:
		// The player going first skips the first draw.
		if !(s.Turn == 1 && s.Active == PlayerOne) {
			e.drawCards(s, s.Active, 1)
		}
	case rules.StepCombatDamage:
		e.computeCombatDamage(s)
	case rules.StepEndCombat:
		e.clearCombat(s)
	case rules.StepCleanup:
		e.cleanupStep(s)
	}
}

func (e *Engine) untapStep(s *GameState) {
	active := s.Player(s.Active)
	for i := range active.Battlefield {
		active.Battlefield[i].Tapped = false
		active.Battlefield[i].SummoningSick = false
	}
}

// drawCards draws n cards for p. Drawing from an empty library loses the
// game; the loss is finalized by the state-based check.
func (e *Engine) drawCards(s *GameState, p PlayerID, n int) {
	ps := s.Player(p)
	for i := 0; i < n; i++ {
		if len(ps.Library) == 0 {
			ps.Lost = true
			s.logf(EventGameOver, p, "%s tried to draw from an empty library", p)
			return
		}
		card := ps.Library[0]
		ps.Library = ps.Library[1:]
		ps.Hand = append(ps.Hand, card)
		s.logf(EventDraw, p, "%s draws a card", p)
	}
}

// cleanupStep discards down to the hand limit and wipes damage and
// until-end-of-turn effects. Discards come from the back of the hand so
// the step needs no player choice.
func (e *Engine) cleanupStep(s *GameState) {
	active := s.Player(s.Active)
	for len(active.Hand) > MaxHandSize {
		last := len(active.Hand) - 1
		card := active.Hand[last]
		active.Hand = active.Hand[:last]
		active.Graveyard = append(active.Graveyard, card)
		s.logf(EventDiscard, s.Active, "%s discards %s", s.Active, e.template(card.Template).Name)
	}
	for i := range s.Players {
		for j := range s.Players[i].Battlefield {
			c := &s.Players[i].Battlefield[j]
			c.Damage = 0
			c.TempPower = 0
			c.TempToughness = 0
		}
	}
}

func (e *Engine) handlePlayLand(s *GameState, a Action) {
	ps := s.Player(a.Player)
	card, ok := removeCard(&ps.Hand, a.Card)
	if !ok {
		return
	}
	card.resetBattlefieldState()
	card.SummoningSick = false
	ps.Battlefield = append(ps.Battlefield, card)
	ps.LandsPlayed++
	s.Passes = 0
	s.logf(EventPlayLand, a.Player, "%s plays %s", a.Player, e.template(card.Template).Name)
}

func (e *Engine) handleTapForMana(s *GameState, a Action) {
	ps := s.Player(a.Player)
	card, _, ok := s.battlefieldCard(a.Card)
	if !ok {
		return
	}
	t := e.template(card.Template)
	card.Tapped = true
	ps.Pool.Add(t.Produces, 1)
	s.Passes = 0
	s.logf(EventTapForMana, a.Player, "%s taps %s for %s", a.Player, t.Name, t.Produces)
}

// handleCast pays the cost and moves the card from hand to the top of the
// stack. The caster keeps priority.
func (e *Engine) handleCast(s *GameState, a Action) {
	ps := s.Player(a.Player)
	card, ok := removeCard(&ps.Hand, a.Card)
	if !ok {
		return
	}
	t := e.template(card.Template)
	pay, err := mana.Plan(t.ManaCost, ps.Pool)
	if err != nil {
		// Legality was already checked; treat as unreachable.
		panic("cast of unpayable spell passed legality: " + t.Key)
	}
	mana.Execute(&ps.Pool, pay)

	s.Stack = append(s.Stack, StackItem{
		ID:          s.newInstanceID(),
		Card:        card,
		Controller:  a.Player,
		Targets:     append([]string(nil), a.Targets...),
		Description: t.Name,
	})
	s.Passes = 0
	s.logf(EventCast, a.Player, "%s casts %s", a.Player, t.Name)
}

func (e *Engine) handleDeclareAttackers(s *GameState, a Action) {
	for _, id := range a.Attackers {
		card, _, ok := s.battlefieldCard(id)
		if !ok {
			continue
		}
		card.Attacking = true
		if !e.template(card.Template).HasKeyword(KeywordVigilance) {
			card.Tapped = true
		}
		s.logf(EventAttack, a.Player, "%s attacks with %s", a.Player, e.template(card.Template).Name)
	}
	s.AttackersDeclared = true
	s.Passes = 0
}

func (e *Engine) handleDeclareBlockers(s *GameState, a Action) {
	for _, b := range a.Blocks {
		card, _, ok := s.battlefieldCard(b.Blocker)
		if !ok {
			continue
		}
		card.BlockerOf = b.Attacker
		s.logf(EventBlock, a.Player, "%s blocks with %s", a.Player, e.template(card.Template).Name)
	}
	s.BlockersDeclared = true
	s.Passes = 0
}

func (e *Engine) handleConcede(s *GameState, a Action) {
	s.Player(a.Player).Lost = true
	s.logf(EventConcede, a.Player, "%s concedes", a.Player)
}

// checkStateBased applies state-based actions until the state is stable:
// creatures with lethal damage or zero toughness die, and players at zero
// life or marked as lost lose the game.
func (e *Engine) checkStateBased(s *GameState) {
	if s.GameOver {
		return
	}
	for {
		changed := false
		for i := range s.Players {
			ps := &s.Players[i]
			kept := ps.Battlefield[:0]
			for _, c := range ps.Battlefield {
				if e.isCreature(&c) && (e.toughness(&c) <= 0 || c.Damage >= e.toughness(&c)) {
					e.moveToGraveyard(s, ps, c)
					changed = true
					continue
				}
				kept = append(kept, c)
			}
			ps.Battlefield = kept
		}
		for i := range s.Players {
			ps := &s.Players[i]
			if !ps.Lost && ps.Life <= 0 {
				ps.Lost = true
				s.logf(EventLifeChange, ps.ID, "%s is at %d life", ps.ID, ps.Life)
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for i := range s.Players {
		if s.Players[i].Lost {
			s.GameOver = true
			s.Winner = s.Opponent(s.Players[i].ID)
			if s.Player(s.Winner).Lost {
				s.Winner = NoPlayer
			}
			s.logf(EventGameOver, s.Winner, "game over, winner %s", s.Winner)
			return
		}
	}
}

// moveToGraveyard puts a battlefield card into its owner's graveyard.
// Tokens cease to exist instead.
func (e *Engine) moveToGraveyard(s *GameState, ps *PlayerState, c CardInstance) {
	s.logf(EventDestroy, ps.ID, "%s is destroyed", e.template(c.Template).Name)
	if c.Token {
		return
	}
	c.resetBattlefieldState()
	c.Damage = 0
	ps.Graveyard = append(ps.Graveyard, c)
}

// removeCard removes the card with the given id from the slice and
// returns it, preserving the order of the rest.
func removeCard(cards *[]CardInstance, id string) (CardInstance, bool) {
	for i, c := range *cards {
		if c.ID == id {
			*cards = append((*cards)[:i], (*cards)[i+1:]...)
			return c, true
		}
	}
	return CardInstance{}, false
}

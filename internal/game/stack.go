package game

import "github.com/manacore/manacore-go/internal/game/counters"

// resolveTop pops the top item off the stack and resolves it. Targets are
// re-checked at resolution time; a spell whose every target has become
// illegal fizzles and goes to the graveyard with no effect. Creatures
// enter the battlefield summoning sick.
func (e *Engine) resolveTop(s *GameState) {
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]

	t := e.template(top.Card.Template)
	owner := s.Player(top.Controller)

	if t.Kind == KindCreature {
		card := top.Card
		card.resetBattlefieldState()
		card.SummoningSick = true
		owner.Battlefield = append(owner.Battlefield, card)
		s.logf(EventResolve, top.Controller, "%s enters the battlefield", t.Name)
		return
	}

	valid := validTargets(s, t.Effect.Target, top.Targets)
	if len(top.Targets) > 0 && len(valid) == 0 {
		s.logf(EventFizzle, top.Controller, "%s fizzles, all targets gone", t.Name)
		owner.Graveyard = append(owner.Graveyard, top.Card)
		return
	}

	s.logf(EventResolve, top.Controller, "%s resolves", t.Name)
	e.applyEffect(s, top.Controller, t.Effect, valid)
	owner.Graveyard = append(owner.Graveyard, top.Card)
}

// validTargets filters the recorded targets down to the ones that are
// still legal for the target kind.
func validTargets(s *GameState, kind TargetKind, targets []string) []string {
	var valid []string
	for _, id := range targets {
		if targetStillLegal(s, kind, id) {
			valid = append(valid, id)
		}
	}
	return valid
}

func targetStillLegal(s *GameState, kind TargetKind, id string) bool {
	switch kind {
	case TargetCreature:
		_, _, ok := s.battlefieldCard(id)
		return ok
	case TargetPlayer:
		ps := s.Player(PlayerID(id))
		return ps != nil && !ps.Lost
	case TargetAny:
		if _, _, ok := s.battlefieldCard(id); ok {
			return true
		}
		ps := s.Player(PlayerID(id))
		return ps != nil && !ps.Lost
	default:
		return false
	}
}

// applyEffect executes a resolved spell's effect against its surviving
// targets.
func (e *Engine) applyEffect(s *GameState, controller PlayerID, ef Effect, targets []string) {
	switch ef.Kind {
	case EffectDamage:
		for _, id := range targets {
			e.dealEffectDamage(s, id, ef.Amount)
		}
	case EffectDestroyCreature:
		for _, id := range targets {
			if card, _, ok := s.battlefieldCard(id); ok {
				// Lethal damage; the state-based check moves the card.
				card.Damage = e.toughness(card)
			}
		}
	case EffectPump:
		for _, id := range targets {
			if card, _, ok := s.battlefieldCard(id); ok {
				card.TempPower += ef.Power
				card.TempToughness += ef.Toughness
			}
		}
	case EffectPutCounters:
		for _, id := range targets {
			if card, _, ok := s.battlefieldCard(id); ok {
				card.Counters = card.Counters.Add(counters.PlusOnePlusOne, ef.Amount)
			}
		}
	case EffectDraw:
		e.drawCards(s, controller, ef.Amount)
	case EffectGainLife:
		e.changeLife(s, controller, ef.Amount)
	case EffectCreateTokens:
		e.createTokens(s, controller, ef.TokenTemplate, ef.Amount)
	}
}

// dealEffectDamage routes spell damage to a creature or a player.
func (e *Engine) dealEffectDamage(s *GameState, target string, amount int) {
	if card, owner, ok := s.battlefieldCard(target); ok {
		card.Damage += amount
		s.logf(EventDamage, owner, "%s takes %d damage", e.template(card.Template).Name, amount)
		return
	}
	if ps := s.Player(PlayerID(target)); ps != nil {
		e.changeLife(s, ps.ID, -amount)
	}
}

func (e *Engine) changeLife(s *GameState, p PlayerID, delta int) {
	ps := s.Player(p)
	if ps == nil || delta == 0 {
		return
	}
	ps.Life += delta
	s.logf(EventLifeChange, p, "%s goes to %d life", p, ps.Life)
}

// createTokens mints n token creatures on the controller's battlefield.
// Tokens enter summoning sick like any other creature.
func (e *Engine) createTokens(s *GameState, controller PlayerID, templateKey string, n int) {
	ps := s.Player(controller)
	t := e.template(templateKey)
	for i := 0; i < n; i++ {
		ps.Battlefield = append(ps.Battlefield, CardInstance{
			ID:            s.newInstanceID(),
			Template:      templateKey,
			Token:         true,
			SummoningSick: true,
		})
	}
	s.logf(EventTokens, controller, "%s creates %d %s tokens", controller, n, t.Name)
}

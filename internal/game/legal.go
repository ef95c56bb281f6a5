package game

import (
	"github.com/manacore/manacore-go/internal/game/mana"
	"github.com/manacore/manacore-go/internal/game/rules"
)

// Enumeration caps for combat declarations. Below the cap every possible
// declaration is enumerated in deterministic order; above it a reduced but
// still deterministic set is offered. The caps are a documented policy,
// not a rules concept.
const (
	maxAttackerSubsetBits = 6   // full subsets up to 2^6-1 declarations
	maxBlockAssignments   = 256 // full mixed-radix assignments up to this count
)

// LegalActions enumerates the actions p may take in s, in a stable order:
// hand cards by index (land plays, then the casts of each card, one action
// per target), battlefield cards by index (mana abilities), combat
// declarations, then pass and concede. External callers address actions by
// their position in this exact list.
//
// The result is nil when p does not hold priority or the game is over. For
// the priority holder it always contains at least a pass.
func (e *Engine) LegalActions(s *GameState, p PlayerID) []Action {
	if s.GameOver || s.Priority != p {
		return nil
	}
	me := s.Player(p)
	if me == nil || me.Lost {
		return nil
	}

	var actions []Action

	sorcerySpeed := p == s.Active && len(s.Stack) == 0 && rules.IsMainStep(s.Step())

	for i := range me.Hand {
		card := &me.Hand[i]
		t := e.template(card.Template)
		switch t.Kind {
		case KindLand:
			if sorcerySpeed && me.LandsPlayed < 1 {
				actions = append(actions, Action{Type: ActionPlayLand, Player: p, Card: card.ID})
			}
		case KindCreature, KindSorcery:
			if sorcerySpeed {
				actions = append(actions, e.castActions(s, p, card, t)...)
			}
		case KindInstant:
			actions = append(actions, e.castActions(s, p, card, t)...)
		}
	}

	for i := range me.Battlefield {
		card := &me.Battlefield[i]
		t := e.template(card.Template)
		if t.Kind == KindLand && !card.Tapped && t.Produces != "" {
			actions = append(actions, Action{Type: ActionTapForMana, Player: p, Card: card.ID})
		}
	}

	actions = append(actions, e.combatActions(s, p)...)

	actions = append(actions,
		Action{Type: ActionPass, Player: p},
		Action{Type: ActionConcede, Player: p},
	)
	return actions
}

// castActions returns one cast action per legal target choice for the
// card, or a single untargeted cast. Nothing is returned when the cost is
// unpayable or a required target does not exist.
func (e *Engine) castActions(s *GameState, p PlayerID, card *CardInstance, t Template) []Action {
	if !mana.CanPay(t.ManaCost, s.Player(p).Pool) {
		return nil
	}

	targetKind := TargetNone
	if t.Kind != KindCreature {
		targetKind = t.Effect.Target
	}
	if targetKind == TargetNone {
		return []Action{{Type: ActionCastSpell, Player: p, Card: card.ID}}
	}

	var actions []Action
	for _, target := range e.targetChoices(s, p, targetKind) {
		actions = append(actions, Action{
			Type:    ActionCastSpell,
			Player:  p,
			Card:    card.ID,
			Targets: []string{target},
		})
	}
	return actions
}

// targetChoices lists legal targets in stable order: the caster's
// battlefield creatures by index, the opponent's battlefield creatures by
// index, then (for player-capable targets) the caster and the opponent.
func (e *Engine) targetChoices(s *GameState, p PlayerID, kind TargetKind) []string {
	var choices []string

	if kind == TargetCreature || kind == TargetAny {
		for _, id := range []PlayerID{p, s.Opponent(p)} {
			ps := s.Player(id)
			for i := range ps.Battlefield {
				if e.isCreature(&ps.Battlefield[i]) {
					choices = append(choices, ps.Battlefield[i].ID)
				}
			}
		}
	}
	if kind == TargetPlayer || kind == TargetAny {
		choices = append(choices, string(p), string(s.Opponent(p)))
	}
	return choices
}

// combatActions enumerates attacker or blocker declarations when the step
// and seat call for them.
func (e *Engine) combatActions(s *GameState, p PlayerID) []Action {
	switch s.Step() {
	case rules.StepDeclareAttackers:
		if p != s.Active || s.AttackersDeclared {
			return nil
		}
		return e.attackerDeclarations(s, p)
	case rules.StepDeclareBlockers:
		if p == s.Active || !s.AttackersDeclared || s.BlockersDeclared {
			return nil
		}
		return e.blockerDeclarations(s, p)
	default:
		return nil
	}
}

// eligibleAttackers lists the active player's creatures that may attack:
// untapped, not summoning sick (or hasty), and not defenders.
func (e *Engine) eligibleAttackers(s *GameState, p PlayerID) []string {
	ps := s.Player(p)
	var ids []string
	for i := range ps.Battlefield {
		c := &ps.Battlefield[i]
		t := e.template(c.Template)
		if t.Kind != KindCreature || c.Tapped || t.HasKeyword(KeywordDefender) {
			continue
		}
		if c.SummoningSick && !t.HasKeyword(KeywordHaste) {
			continue
		}
		ids = append(ids, c.ID)
	}
	return ids
}

// attackerDeclarations enumerates DECLARE_ATTACKERS actions. With up to
// maxAttackerSubsetBits eligible creatures every non-empty subset appears,
// ordered by ascending bitmask over battlefield order (declaring no
// attackers is expressed by passing). Larger boards fall back to each
// single attacker plus the full team.
func (e *Engine) attackerDeclarations(s *GameState, p PlayerID) []Action {
	eligible := e.eligibleAttackers(s, p)
	if len(eligible) == 0 {
		return nil
	}

	var actions []Action
	if len(eligible) <= maxAttackerSubsetBits {
		for mask := 1; mask < 1<<len(eligible); mask++ {
			var attackers []string
			for i, id := range eligible {
				if mask&(1<<i) != 0 {
					attackers = append(attackers, id)
				}
			}
			actions = append(actions, Action{Type: ActionDeclareAttackers, Player: p, Attackers: attackers})
		}
		return actions
	}

	for _, id := range eligible {
		actions = append(actions, Action{Type: ActionDeclareAttackers, Player: p, Attackers: []string{id}})
	}
	actions = append(actions, Action{Type: ActionDeclareAttackers, Player: p, Attackers: append([]string(nil), eligible...)})
	return actions
}

// canBlock applies evasion: flying attackers are blockable only by
// creatures with flying or reach.
func (e *Engine) canBlock(blocker, attacker *CardInstance) bool {
	bt := e.template(blocker.Template)
	at := e.template(attacker.Template)
	if at.HasKeyword(KeywordFlying) && !bt.HasKeyword(KeywordFlying) && !bt.HasKeyword(KeywordReach) {
		return false
	}
	return true
}

// blockerDeclarations enumerates DECLARE_BLOCKERS actions. Each untapped
// defending creature may block one attacker it can legally block, or stay
// back. Assignments are enumerated mixed-radix ascending (blocker order by
// battlefield index, attacker choices in declared order) up to
// maxBlockAssignments; past the cap the fallback is every single-pair
// block plus the maximal block (each blocker on the first attacker it can
// block). Declaring no blockers is expressed by passing.
func (e *Engine) blockerDeclarations(s *GameState, p PlayerID) []Action {
	attackers := e.declaredAttackers(s)
	if len(attackers) == 0 {
		return nil
	}

	ps := s.Player(p)
	type candidate struct {
		id      string
		options []string // attacker ids this creature can block
	}
	var candidates []candidate
	for i := range ps.Battlefield {
		c := &ps.Battlefield[i]
		if !e.isCreature(c) || c.Tapped {
			continue
		}
		var options []string
		for _, aid := range attackers {
			attacker, _, ok := s.battlefieldCard(aid)
			if ok && e.canBlock(c, attacker) {
				options = append(options, aid)
			}
		}
		if len(options) > 0 {
			candidates = append(candidates, candidate{id: c.ID, options: options})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	total := 1
	for _, cand := range candidates {
		total *= len(cand.options) + 1
		if total > maxBlockAssignments {
			break
		}
	}

	var actions []Action
	if total <= maxBlockAssignments {
		// Mixed-radix count: digit i selects candidate i's choice, 0 = no
		// block, k = options[k-1]. Code 0 (nobody blocks) is skipped.
		digits := make([]int, len(candidates))
		for code := 1; code < total; code++ {
			rem := code
			for i, cand := range candidates {
				radix := len(cand.options) + 1
				digits[i] = rem % radix
				rem /= radix
			}
			var blocks []Block
			for i, cand := range candidates {
				if digits[i] > 0 {
					blocks = append(blocks, Block{Blocker: cand.id, Attacker: cand.options[digits[i]-1]})
				}
			}
			actions = append(actions, Action{Type: ActionDeclareBlockers, Player: p, Blocks: blocks})
		}
		return actions
	}

	for _, cand := range candidates {
		for _, aid := range cand.options {
			actions = append(actions, Action{
				Type:   ActionDeclareBlockers,
				Player: p,
				Blocks: []Block{{Blocker: cand.id, Attacker: aid}},
			})
		}
	}
	maximal := make([]Block, 0, len(candidates))
	for _, cand := range candidates {
		maximal = append(maximal, Block{Blocker: cand.id, Attacker: cand.options[0]})
	}
	actions = append(actions, Action{Type: ActionDeclareBlockers, Player: p, Blocks: maximal})
	return actions
}

// declaredAttackers lists attacking creature ids in the active player's
// battlefield order.
func (e *Engine) declaredAttackers(s *GameState) []string {
	ps := s.Player(s.Active)
	var ids []string
	for i := range ps.Battlefield {
		if ps.Battlefield[i].Attacking {
			ids = append(ids, ps.Battlefield[i].ID)
		}
	}
	return ids
}

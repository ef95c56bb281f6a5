package game

import (
	"testing"

	"github.com/manacore/manacore-go/internal/game/rules"
)

// attackWith advances to the declare-attackers step and declares the given
// attackers for the active player.
func attackWith(t *testing.T, e *Engine, s *GameState, attackers ...string) *GameState {
	t.Helper()
	s = advanceToStep(t, e, s, rules.StepDeclareAttackers)
	return mustApply(t, e, s, Action{Type: ActionDeclareAttackers, Player: s.Active, Attackers: attackers})
}

// blockWith passes to the declare-blockers step and declares blocks for
// the defending player.
func blockWith(t *testing.T, e *Engine, s *GameState, blocks ...Block) *GameState {
	t.Helper()
	for s.Step() != rules.StepDeclareBlockers {
		s = pass(t, e, s)
	}
	for s.Priority == s.Active {
		s = pass(t, e, s)
	}
	return mustApply(t, e, s, Action{Type: ActionDeclareBlockers, Player: s.Priority, Blocks: blocks})
}

// toDamage passes until combat damage has been dealt.
func toDamage(t *testing.T, e *Engine, s *GameState) *GameState {
	t.Helper()
	for s.Step() != rules.StepCombatDamage && !s.GameOver {
		s = pass(t, e, s)
	}
	return s
}

func TestUnblockedAttackerDamagesPlayer(t *testing.T) {
	e, s := newTestGame(t, 1)

	bears := summon(s, PlayerOne, "bears")
	s = attackWith(t, e, s, bears)

	card, _, _ := s.battlefieldCard(bears)
	if !card.Attacking || !card.Tapped {
		t.Fatalf("attacker state: attacking=%t tapped=%t", card.Attacking, card.Tapped)
	}

	s = toDamage(t, e, s)
	if got := s.Player(PlayerTwo).Life; got != StartingLife-2 {
		t.Fatalf("defender life = %d, want %d", got, StartingLife-2)
	}
}

func TestBlockedCombatTradesSimultaneously(t *testing.T) {
	e, s := newTestGame(t, 1)

	mine := summon(s, PlayerOne, "bears")    // 2/2
	theirs := summon(s, PlayerTwo, "goblin") // 1/1
	s = attackWith(t, e, s, mine)
	s = blockWith(t, e, s, Block{Blocker: theirs, Attacker: mine})
	s = toDamage(t, e, s)

	if _, _, ok := s.battlefieldCard(theirs); ok {
		t.Fatal("1/1 blocker survived a 2/2")
	}
	card, _, ok := s.battlefieldCard(mine)
	if !ok {
		t.Fatal("2/2 attacker died to a 1/1")
	}
	if card.Damage != 1 {
		t.Fatalf("attacker damage = %d, want 1", card.Damage)
	}
	if got := s.Player(PlayerTwo).Life; got != StartingLife {
		t.Fatalf("blocked attacker dealt player damage, life = %d", got)
	}
}

func TestMutualLethalKillsBoth(t *testing.T) {
	e, s := newTestGame(t, 1)

	mine := summon(s, PlayerOne, "bears")
	theirs := summon(s, PlayerTwo, "bears")
	s = attackWith(t, e, s, mine)
	s = blockWith(t, e, s, Block{Blocker: theirs, Attacker: mine})
	s = toDamage(t, e, s)

	if _, _, ok := s.battlefieldCard(mine); ok {
		t.Fatal("attacker survived a mutual 2/2 trade")
	}
	if _, _, ok := s.battlefieldCard(theirs); ok {
		t.Fatal("blocker survived a mutual 2/2 trade")
	}
}

func TestSummoningSickCreatureCannotAttack(t *testing.T) {
	e, s := newTestGame(t, 1)

	bears := summon(s, PlayerOne, "bears")
	goblin := summon(s, PlayerOne, "goblin")
	for _, id := range []string{bears, goblin} {
		card, _, _ := s.battlefieldCard(id)
		card.SummoningSick = true
	}

	s = advanceToStep(t, e, s, rules.StepDeclareAttackers)
	eligible := e.eligibleAttackers(s, PlayerOne)
	if len(eligible) != 1 || eligible[0] != goblin {
		t.Fatalf("eligible attackers = %v, want only the hasty goblin", eligible)
	}
}

func TestDefenderCannotAttack(t *testing.T) {
	e, s := newTestGame(t, 1)

	summon(s, PlayerOne, "wall")
	s = advanceToStep(t, e, s, rules.StepDeclareAttackers)
	if got := e.eligibleAttackers(s, PlayerOne); len(got) != 0 {
		t.Fatalf("defender enumerated as attacker: %v", got)
	}
}

func TestFlyingEvasion(t *testing.T) {
	e, s := newTestGame(t, 1)

	sprite := summon(s, PlayerOne, "sprite") // 1/1 flying
	bears := summon(s, PlayerTwo, "bears")   // no flying, no reach
	spider := summon(s, PlayerTwo, "spider") // reach

	s = attackWith(t, e, s, sprite)
	for s.Step() != rules.StepDeclareBlockers {
		s = pass(t, e, s)
	}
	for s.Priority == s.Active {
		s = pass(t, e, s)
	}

	var blockers []string
	for _, a := range e.LegalActions(s, PlayerTwo) {
		if a.Type == ActionDeclareBlockers {
			for _, b := range a.Blocks {
				blockers = append(blockers, b.Blocker)
			}
		}
	}
	for _, id := range blockers {
		if id == bears {
			t.Fatal("ground creature offered as blocker against a flyer")
		}
	}
	found := false
	for _, id := range blockers {
		if id == spider {
			found = true
		}
	}
	if !found {
		t.Fatal("reach creature not offered as blocker against a flyer")
	}
}

func TestVigilanceAttacksUntapped(t *testing.T) {
	e, s := newTestGame(t, 1)

	sentry := summon(s, PlayerOne, "sentry")
	s = attackWith(t, e, s, sentry)

	card, _, _ := s.battlefieldCard(sentry)
	if card.Tapped {
		t.Fatal("vigilant attacker tapped")
	}
}

func TestLifelinkGainsOnCombatDamage(t *testing.T) {
	e, s := newTestGame(t, 1)

	cleric := summon(s, PlayerOne, "cleric") // 2/2 lifelink
	s = attackWith(t, e, s, cleric)
	s = toDamage(t, e, s)

	if got := s.Player(PlayerOne).Life; got != StartingLife+2 {
		t.Fatalf("lifelink controller life = %d, want %d", got, StartingLife+2)
	}
	if got := s.Player(PlayerTwo).Life; got != StartingLife-2 {
		t.Fatalf("defender life = %d, want %d", got, StartingLife-2)
	}
}

func TestLifelinkGainsLogInSeatOrder(t *testing.T) {
	// A lifelink attacker blocked by a lifelink blocker gains life for
	// both players in one combat. The log order must not vary between
	// runs of the same game.
	run := func() []Event {
		e, s := newTestGame(t, 7)
		mine := summon(s, PlayerOne, "cleric")
		theirs := summon(s, PlayerTwo, "cleric")
		s = attackWith(t, e, s, mine)
		s = blockWith(t, e, s, Block{Blocker: theirs, Attacker: mine})
		s = toDamage(t, e, s)

		for _, p := range []PlayerID{PlayerOne, PlayerTwo} {
			if got := s.Player(p).Life; got != StartingLife+2 {
				t.Fatalf("%s life = %d, want %d", p, got, StartingLife+2)
			}
		}
		return s.Log
	}

	want := run()
	for i := 0; i < 50; i++ {
		got := run()
		if len(got) != len(want) {
			t.Fatalf("run %d: log length %d, want %d", i, len(got), len(want))
		}
		for j := range got {
			if got[j].Message != want[j].Message {
				t.Fatalf("run %d log[%d] = %q, want %q", i, j, got[j].Message, want[j].Message)
			}
		}
	}
}

func TestMultiBlockAssignsLethalInOrder(t *testing.T) {
	e, s := newTestGame(t, 1)

	spider := summon(s, PlayerOne, "spider") // 2/4
	card, _, _ := s.battlefieldCard(spider)
	card.TempPower = 1 // 3 power for this turn

	first := summon(s, PlayerTwo, "goblin") // 1/1
	second := summon(s, PlayerTwo, "bears") // 2/2

	s = attackWith(t, e, s, spider)
	s = blockWith(t, e, s,
		Block{Blocker: first, Attacker: spider},
		Block{Blocker: second, Attacker: spider},
	)
	s = toDamage(t, e, s)

	// 3 power: 1 lethal to the goblin, remaining 2 to the bears. Both die;
	// the spider takes 1+2=3 and survives on 4 toughness.
	if _, _, ok := s.battlefieldCard(first); ok {
		t.Fatal("first blocker survived lethal assignment")
	}
	if _, _, ok := s.battlefieldCard(second); ok {
		t.Fatal("second blocker survived the remainder")
	}
	card, _, ok := s.battlefieldCard(spider)
	if !ok {
		t.Fatal("spider died with damage under its toughness")
	}
	if card.Damage != 3 {
		t.Fatalf("spider damage = %d, want 3", card.Damage)
	}
}

func TestCombatFlagsClearAtEndOfCombat(t *testing.T) {
	e, s := newTestGame(t, 1)

	bears := summon(s, PlayerOne, "bears")
	s = attackWith(t, e, s, bears)
	s = toDamage(t, e, s)

	for s.Step() != rules.StepEndCombat {
		s = pass(t, e, s)
	}
	card, _, _ := s.battlefieldCard(bears)
	if card.Attacking {
		t.Fatal("attacking flag survived end of combat")
	}
	if s.AttackersDeclared || s.BlockersDeclared {
		t.Fatal("declaration flags survived end of combat")
	}
}

func TestCombatDamageCanEndTheGame(t *testing.T) {
	e, s := newTestGame(t, 1)

	s.Player(PlayerTwo).Life = 2
	bears := summon(s, PlayerOne, "bears")
	s = attackWith(t, e, s, bears)
	s = toDamage(t, e, s)

	if !s.GameOver || s.Winner != PlayerOne {
		t.Fatalf("lethal attack: over=%t winner=%s", s.GameOver, s.Winner)
	}
}

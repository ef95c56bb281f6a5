package game

import (
	"testing"

	"github.com/manacore/manacore-go/internal/game/counters"
	"github.com/manacore/manacore-go/internal/game/mana"
	"github.com/manacore/manacore-go/internal/game/rules"
)

func TestStackResolvesLastInFirstOut(t *testing.T) {
	e, s := newTestGame(t, 1)
	s = advanceToStep(t, e, s, rules.StepMain1)

	bears := summon(s, PlayerOne, "bears")
	growth := giveHand(s, PlayerOne, "growth")
	bolt := giveHand(s, PlayerTwo, "bolt")
	giveMana(s, PlayerOne, mana.Green, 1)
	giveMana(s, PlayerTwo, mana.Red, 1)

	// p2 bolts the bears; p1 responds with the pump. The pump sits on top
	// and resolves first, so the 2/2 survives the bolt as a 5/5.
	s = pass(t, e, s) // p1 passes priority at its main
	s = mustApply(t, e, s, Action{Type: ActionCastSpell, Player: PlayerTwo, Card: bolt, Targets: []string{bears}})
	s = pass(t, e, s) // p2 passes, p1 responds
	s = mustApply(t, e, s, Action{Type: ActionCastSpell, Player: PlayerOne, Card: growth, Targets: []string{bears}})
	if len(s.Stack) != 2 {
		t.Fatalf("stack = %d items, want 2", len(s.Stack))
	}

	s = pass(t, e, s)
	s = pass(t, e, s) // pump resolves
	card, _, ok := s.battlefieldCard(bears)
	if !ok {
		t.Fatal("bears gone before the bolt resolved")
	}
	if got := e.toughness(card); got != 5 {
		t.Fatalf("toughness after pump = %d, want 5", got)
	}

	s = pass(t, e, s)
	s = pass(t, e, s) // bolt resolves
	card, _, ok = s.battlefieldCard(bears)
	if !ok {
		t.Fatal("pumped bears died to a 3-damage bolt")
	}
	if card.Damage != 3 {
		t.Fatalf("marked damage = %d, want 3", card.Damage)
	}
}

func TestSpellFizzlesWhenAllTargetsAreGone(t *testing.T) {
	e, s := newTestGame(t, 1)
	s = advanceToStep(t, e, s, rules.StepMain1)

	goblin := summon(s, PlayerOne, "goblin")
	growth := giveHand(s, PlayerOne, "growth")
	bolt := giveHand(s, PlayerTwo, "bolt")
	giveMana(s, PlayerOne, mana.Green, 1)
	giveMana(s, PlayerTwo, mana.Red, 1)

	// p1 pumps the goblin; p2 responds by bolting it. The bolt kills the
	// 1/1 first, so the pump has no target left and fizzles.
	s = mustApply(t, e, s, Action{Type: ActionCastSpell, Player: PlayerOne, Card: growth, Targets: []string{goblin}})
	s = pass(t, e, s)
	s = mustApply(t, e, s, Action{Type: ActionCastSpell, Player: PlayerTwo, Card: bolt, Targets: []string{goblin}})
	s = pass(t, e, s)
	s = pass(t, e, s) // bolt resolves, goblin dies

	if _, _, ok := s.battlefieldCard(goblin); ok {
		t.Fatal("goblin survived a 3-damage bolt")
	}

	s = pass(t, e, s)
	s = pass(t, e, s) // pump fizzles

	fizzled := false
	for _, ev := range s.Log {
		if ev.Type == EventFizzle {
			fizzled = true
		}
	}
	if !fizzled {
		t.Fatal("no fizzle event logged")
	}
	// Dead goblin plus the fizzled pump.
	if got := len(s.Player(PlayerOne).Graveyard); got != 2 {
		t.Fatalf("p1 graveyard = %d cards, want 2", got)
	}
}

func TestDestroyEffect(t *testing.T) {
	e, s := newTestGame(t, 1)
	s = advanceToStep(t, e, s, rules.StepMain1)

	spider := summon(s, PlayerTwo, "spider")
	doom := giveHand(s, PlayerOne, "doom")
	giveMana(s, PlayerOne, mana.Black, 1)

	s = mustApply(t, e, s, Action{Type: ActionCastSpell, Player: PlayerOne, Card: doom, Targets: []string{spider}})
	s = pass(t, e, s)
	s = pass(t, e, s)

	if _, _, ok := s.battlefieldCard(spider); ok {
		t.Fatal("spider survived removal")
	}
	if got := len(s.Player(PlayerTwo).Graveyard); got != 1 {
		t.Fatalf("p2 graveyard = %d, want 1", got)
	}
}

func TestCounterSpellEffectIsPermanent(t *testing.T) {
	e, s := newTestGame(t, 1)
	s = advanceToStep(t, e, s, rules.StepMain1)

	bears := summon(s, PlayerOne, "bears")
	train := giveHand(s, PlayerOne, "train")
	giveMana(s, PlayerOne, mana.Green, 1)

	s = mustApply(t, e, s, Action{Type: ActionCastSpell, Player: PlayerOne, Card: train, Targets: []string{bears}})
	s = pass(t, e, s)
	s = pass(t, e, s)

	card, _, _ := s.battlefieldCard(bears)
	if got := card.Counters.Count(counters.PlusOnePlusOne); got != 1 {
		t.Fatalf("counters = %d, want 1", got)
	}
	if got := e.power(card); got != 3 {
		t.Fatalf("power with counter = %d, want 3", got)
	}

	// Unlike a pump, the counter survives cleanup.
	s = advanceToStep(t, e, s, rules.StepCleanup)
	s = pass(t, e, s)
	s = pass(t, e, s)
	card, _, _ = s.battlefieldCard(bears)
	if got := e.power(card); got != 3 {
		t.Fatalf("power after cleanup = %d, want 3", got)
	}
}

func TestTokenCreationAndEvaporation(t *testing.T) {
	e, s := newTestGame(t, 1)
	s = advanceToStep(t, e, s, rules.StepMain1)

	muster := giveHand(s, PlayerOne, "muster")
	giveMana(s, PlayerOne, mana.Green, 1)

	s = mustApply(t, e, s, Action{Type: ActionCastSpell, Player: PlayerOne, Card: muster})
	s = pass(t, e, s)
	s = pass(t, e, s)

	var tokens []string
	for _, c := range s.Player(PlayerOne).Battlefield {
		if c.Token {
			tokens = append(tokens, c.ID)
		}
	}
	if len(tokens) != 2 {
		t.Fatalf("tokens on battlefield = %d, want 2", len(tokens))
	}

	// Kill a token: it leaves the game instead of going to a graveyard.
	bolt := giveHand(s, PlayerTwo, "bolt")
	giveMana(s, PlayerTwo, mana.Red, 1)
	s = pass(t, e, s) // priority to p2
	s = mustApply(t, e, s, Action{Type: ActionCastSpell, Player: PlayerTwo, Card: bolt, Targets: []string{tokens[0]}})
	s = pass(t, e, s)
	s = pass(t, e, s)

	gy := len(s.Player(PlayerOne).Graveyard)
	if gy != 1 { // only the muster sorcery
		t.Fatalf("p1 graveyard = %d cards, want only the sorcery", gy)
	}
	if _, _, ok := s.battlefieldCard(tokens[0]); ok {
		t.Fatal("bolted token still on the battlefield")
	}
}

func TestDrawAndLifeGainEffects(t *testing.T) {
	e, s := newTestGame(t, 1)
	s = advanceToStep(t, e, s, rules.StepMain1)

	insight := giveHand(s, PlayerOne, "insight")
	tonic := giveHand(s, PlayerOne, "tonic")
	giveMana(s, PlayerOne, mana.Green, 3)

	handBefore := len(s.Player(PlayerOne).Hand)
	s = mustApply(t, e, s, Action{Type: ActionCastSpell, Player: PlayerOne, Card: insight})
	s = pass(t, e, s)
	s = pass(t, e, s)
	// Cast one from hand, drew two back.
	if got := len(s.Player(PlayerOne).Hand); got != handBefore+1 {
		t.Fatalf("hand after draw spell = %d, want %d", got, handBefore+1)
	}

	s = mustApply(t, e, s, Action{Type: ActionCastSpell, Player: PlayerOne, Card: tonic})
	s = pass(t, e, s)
	s = pass(t, e, s)
	if got := s.Player(PlayerOne).Life; got != StartingLife+3 {
		t.Fatalf("life after tonic = %d, want %d", got, StartingLife+3)
	}
}

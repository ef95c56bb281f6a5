package server

import (
	"fmt"
	"strings"

	"github.com/manacore/manacore-go/internal/game"
	"github.com/manacore/manacore-go/internal/game/mana"
)

// RenderState writes a text snapshot of the game for a tool-calling
// client: turn header, both seats, and the stack.
func RenderState(e *game.Engine, s *game.GameState) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Turn %d, %s (%s phase). Active: %s, priority: %s.\n",
		s.Turn, s.Step(), s.Phase(), s.Active, s.Priority)
	if s.GameOver {
		if s.Winner == game.NoPlayer {
			b.WriteString("GAME OVER: draw.\n")
		} else {
			fmt.Fprintf(&b, "GAME OVER: %s wins.\n", s.Winner)
		}
	}

	for i := range s.Players {
		renderSeat(&b, e, &s.Players[i])
	}

	if len(s.Stack) == 0 {
		b.WriteString("Stack: empty\n")
	} else {
		b.WriteString("Stack (top last):\n")
		for _, item := range s.Stack {
			fmt.Fprintf(&b, "  %s (%s)", item.Description, item.Controller)
			if len(item.Targets) > 0 {
				fmt.Fprintf(&b, " -> %s", strings.Join(item.Targets, ", "))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderSeat(b *strings.Builder, e *game.Engine, ps *game.PlayerState) {
	fmt.Fprintf(b, "%s: %d life, %d in hand, %d in library, %d in graveyard",
		ps.ID, ps.Life, len(ps.Hand), len(ps.Library), len(ps.Graveyard))
	if pool := renderPool(ps.Pool); pool != "" {
		fmt.Fprintf(b, ", pool %s", pool)
	}
	b.WriteByte('\n')

	if len(ps.Battlefield) == 0 {
		b.WriteString("  battlefield: empty\n")
		return
	}
	b.WriteString("  battlefield:\n")
	for i := range ps.Battlefield {
		fmt.Fprintf(b, "    %s\n", RenderCard(e, &ps.Battlefield[i]))
	}
}

// RenderCard is the one-line battlefield view of a card instance.
func RenderCard(e *game.Engine, c *game.CardInstance) string {
	t := e.TemplateOf(c)
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", c.ID, t.Name)
	if t.Kind == game.KindCreature {
		fmt.Fprintf(&b, " %d/%d", e.Power(c), e.Toughness(c))
		if c.Damage > 0 {
			fmt.Fprintf(&b, " (%d damage)", c.Damage)
		}
	}
	var flags []string
	if c.Tapped {
		flags = append(flags, "tapped")
	}
	if c.SummoningSick && t.Kind == game.KindCreature {
		flags = append(flags, "sick")
	}
	if c.Attacking {
		flags = append(flags, "attacking")
	}
	if c.BlockerOf != "" {
		flags = append(flags, "blocking "+c.BlockerOf)
	}
	for _, k := range t.Keywords {
		flags = append(flags, string(k))
	}
	if len(flags) > 0 {
		fmt.Fprintf(&b, " {%s}", strings.Join(flags, ", "))
	}
	return b.String()
}

func renderPool(p mana.Pool) string {
	var parts []string
	for _, t := range mana.Types {
		if n := p.Get(t); n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", t, n))
		}
	}
	return strings.Join(parts, " ")
}

// RenderActions numbers the legal actions the way take_action expects
// them.
func RenderActions(e *game.Engine, s *game.GameState, actions []game.Action) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Legal actions for %s:\n", s.Priority)
	for i, a := range actions {
		fmt.Fprintf(&b, "  %d: %s\n", i, RenderAction(e, s, a))
	}
	return b.String()
}

// RenderAction describes one action in terms of card names.
func RenderAction(e *game.Engine, s *game.GameState, a game.Action) string {
	name := func(id string) string {
		if c, _, _, ok := s.FindCard(id); ok {
			return fmt.Sprintf("%s [%s]", e.TemplateOf(c).Name, id)
		}
		return id
	}

	switch a.Type {
	case game.ActionPass:
		return "pass priority"
	case game.ActionConcede:
		return "concede"
	case game.ActionPlayLand:
		return "play land " + name(a.Card)
	case game.ActionTapForMana:
		return "tap " + name(a.Card) + " for mana"
	case game.ActionCastSpell:
		desc := "cast " + name(a.Card)
		if len(a.Targets) > 0 {
			targets := make([]string, len(a.Targets))
			for i, t := range a.Targets {
				targets[i] = name(t)
			}
			desc += " targeting " + strings.Join(targets, ", ")
		}
		return desc
	case game.ActionDeclareAttackers:
		attackers := make([]string, len(a.Attackers))
		for i, id := range a.Attackers {
			attackers[i] = name(id)
		}
		return "attack with " + strings.Join(attackers, ", ")
	case game.ActionDeclareBlockers:
		blocks := make([]string, len(a.Blocks))
		for i, blk := range a.Blocks {
			blocks[i] = name(blk.Blocker) + " blocks " + name(blk.Attacker)
		}
		return "block: " + strings.Join(blocks, "; ")
	default:
		return a.Type.String()
	}
}

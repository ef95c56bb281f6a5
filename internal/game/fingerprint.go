package game

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/manacore/manacore-go/internal/game/counters"
	"github.com/manacore/manacore-go/internal/game/mana"
)

// Fingerprint hashes the rules-relevant parts of the state into a 64-bit
// value. Two states with the same fingerprint are interchangeable for
// play purposes; the event log is deliberately excluded. Used by the
// batch runner to cross-check replays and by tests to compare runs.
func (s *GameState) Fingerprint() uint64 {
	h := fnv.New64a()
	w := func(format string, args ...any) {
		fmt.Fprintf(h, format, args...)
	}

	w("t%d s%d a%s p%s pass%d ad%t bd%t rng%d",
		s.Turn, s.StepIndex, s.Active, s.Priority, s.Passes,
		s.AttackersDeclared, s.BlockersDeclared, s.RNG.State)
	w(" over%t win%s", s.GameOver, s.Winner)

	for i := range s.Players {
		ps := &s.Players[i]
		w("|%s life%d lands%d lost%t", ps.ID, ps.Life, ps.LandsPlayed, ps.Lost)
		for _, t := range mana.Types {
			if n := ps.Pool.Get(t); n > 0 {
				w(" %s%d", t, n)
			}
		}
		writeCards(w, "lib", ps.Library)
		writeCards(w, "hand", ps.Hand)
		writeCards(w, "bf", ps.Battlefield)
		writeCards(w, "gy", ps.Graveyard)
	}

	for _, item := range s.Stack {
		w("|stk %s %s %s", item.Card.Template, item.Controller, item.Targets)
	}
	return h.Sum64()
}

func writeCards(w func(string, ...any), zone string, cards []CardInstance) {
	w(" %s[", zone)
	for _, c := range cards {
		w("%s:%s", c.ID, c.Template)
		if c.Tapped {
			w("T")
		}
		if c.SummoningSick {
			w("S")
		}
		if c.Attacking {
			w("A")
		}
		if c.BlockerOf != "" {
			w("B=%s", c.BlockerOf)
		}
		if c.Damage != 0 {
			w("d%d", c.Damage)
		}
		if c.TempPower != 0 || c.TempToughness != 0 {
			w("p%d/%d", c.TempPower, c.TempToughness)
		}
		if len(c.Counters) > 0 {
			kinds := make([]string, 0, len(c.Counters))
			for k := range c.Counters {
				kinds = append(kinds, string(k))
			}
			sort.Strings(kinds)
			for _, k := range kinds {
				w("c%s=%d", k, c.Counters[counters.Kind(k)])
			}
		}
		w(";")
	}
	w("]")
}

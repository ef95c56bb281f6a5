// Package cards ships the built-in card pool and deck loading. The engine
// itself is card-agnostic; everything it knows about a card comes from the
// provider wired in here.
package cards

import (
	"fmt"
	"sort"

	"github.com/manacore/manacore-go/internal/game"
	"github.com/manacore/manacore-go/internal/game/mana"
)

// Provider is an immutable template catalog. It satisfies
// game.CardProvider and is safe for concurrent use.
type Provider struct {
	templates map[string]game.Template
}

// Template implements game.CardProvider.
func (p *Provider) Template(key string) (game.Template, bool) {
	t, ok := p.templates[key]
	return t, ok
}

// Keys lists every template key in sorted order.
func (p *Provider) Keys() []string {
	keys := make([]string, 0, len(p.templates))
	for k := range p.templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewProvider builds a catalog from the given templates. Duplicate keys
// and unparseable costs are rejected.
func NewProvider(templates []game.Template) (*Provider, error) {
	m := make(map[string]game.Template, len(templates))
	for _, t := range templates {
		if t.Key == "" {
			return nil, fmt.Errorf("template %q has no key", t.Name)
		}
		if _, dup := m[t.Key]; dup {
			return nil, fmt.Errorf("duplicate template key %q", t.Key)
		}
		m[t.Key] = t
	}
	return &Provider{templates: m}, nil
}

// Builtin returns the stock card pool.
func Builtin() *Provider {
	p, err := NewProvider(builtinTemplates())
	if err != nil {
		panic("cards: bad builtin set: " + err.Error())
	}
	return p
}

func mustCost(text string) mana.Cost {
	c, err := mana.ParseCost(text)
	if err != nil {
		panic("cards: bad builtin cost " + text + ": " + err.Error())
	}
	return c
}

func builtinTemplates() []game.Template {
	return []game.Template{
		// Basic lands.
		{Key: "plains", Name: "Plains", Kind: game.KindLand, Produces: mana.White},
		{Key: "island", Name: "Island", Kind: game.KindLand, Produces: mana.Blue},
		{Key: "swamp", Name: "Swamp", Kind: game.KindLand, Produces: mana.Black},
		{Key: "mountain", Name: "Mountain", Kind: game.KindLand, Produces: mana.Red},
		{Key: "forest", Name: "Forest", Kind: game.KindLand, Produces: mana.Green},

		// Creatures.
		{Key: "raging_goblin", Name: "Raging Goblin", Kind: game.KindCreature,
			ManaCost: mustCost("{R}"), Power: 1, Toughness: 1,
			Keywords: []game.Keyword{game.KeywordHaste}},
		{Key: "grizzly_bears", Name: "Grizzly Bears", Kind: game.KindCreature,
			ManaCost: mustCost("{1}{G}"), Power: 2, Toughness: 2},
		{Key: "wind_drake", Name: "Wind Drake", Kind: game.KindCreature,
			ManaCost: mustCost("{2}{U}"), Power: 2, Toughness: 2,
			Keywords: []game.Keyword{game.KeywordFlying}},
		{Key: "trained_armodon", Name: "Trained Armodon", Kind: game.KindCreature,
			ManaCost: mustCost("{1}{G}{G}"), Power: 3, Toughness: 3},
		{Key: "hill_giant", Name: "Hill Giant", Kind: game.KindCreature,
			ManaCost: mustCost("{3}{R}"), Power: 3, Toughness: 3},
		{Key: "giant_spider", Name: "Giant Spider", Kind: game.KindCreature,
			ManaCost: mustCost("{3}{G}"), Power: 2, Toughness: 4,
			Keywords: []game.Keyword{game.KeywordReach}},
		{Key: "wall_of_stone", Name: "Wall of Stone", Kind: game.KindCreature,
			ManaCost: mustCost("{1}{R}{R}"), Power: 0, Toughness: 8,
			Keywords: []game.Keyword{game.KeywordDefender}},
		{Key: "dawnhand_cleric", Name: "Dawnhand Cleric", Kind: game.KindCreature,
			ManaCost: mustCost("{2}{W}"), Power: 2, Toughness: 2,
			Keywords: []game.Keyword{game.KeywordLifelink}},
		{Key: "serra_angel", Name: "Serra Angel", Kind: game.KindCreature,
			ManaCost: mustCost("{3}{W}{W}"), Power: 4, Toughness: 4,
			Keywords: []game.Keyword{game.KeywordFlying, game.KeywordVigilance}},

		// Instants.
		{Key: "lightning_bolt", Name: "Lightning Bolt", Kind: game.KindInstant,
			ManaCost: mustCost("{R}"),
			Effect:   game.Effect{Kind: game.EffectDamage, Target: game.TargetAny, Amount: 3}},
		{Key: "shock", Name: "Shock", Kind: game.KindInstant,
			ManaCost: mustCost("{R}"),
			Effect:   game.Effect{Kind: game.EffectDamage, Target: game.TargetAny, Amount: 2}},
		{Key: "giant_growth", Name: "Giant Growth", Kind: game.KindInstant,
			ManaCost: mustCost("{G}"),
			Effect:   game.Effect{Kind: game.EffectPump, Target: game.TargetCreature, Power: 3, Toughness: 3}},
		{Key: "doom_blade", Name: "Doom Blade", Kind: game.KindInstant,
			ManaCost: mustCost("{1}{B}"),
			Effect:   game.Effect{Kind: game.EffectDestroyCreature, Target: game.TargetCreature}},
		{Key: "healing_salve", Name: "Healing Salve", Kind: game.KindInstant,
			ManaCost: mustCost("{W}"),
			Effect:   game.Effect{Kind: game.EffectGainLife, Amount: 3}},

		// Sorceries.
		{Key: "divination", Name: "Divination", Kind: game.KindSorcery,
			ManaCost: mustCost("{2}{U}"),
			Effect:   game.Effect{Kind: game.EffectDraw, Amount: 2}},
		{Key: "courage_drill", Name: "Courage Drill", Kind: game.KindSorcery,
			ManaCost: mustCost("{1}{G}"),
			Effect:   game.Effect{Kind: game.EffectPutCounters, Target: game.TargetCreature, Amount: 2}},
		{Key: "raise_the_alarm", Name: "Raise the Alarm", Kind: game.KindSorcery,
			ManaCost: mustCost("{1}{W}"),
			Effect:   game.Effect{Kind: game.EffectCreateTokens, Amount: 2, TokenTemplate: "soldier_token"}},

		// Tokens.
		{Key: "soldier_token", Name: "Soldier", Kind: game.KindCreature,
			Power: 1, Toughness: 1, Token: true},
	}
}

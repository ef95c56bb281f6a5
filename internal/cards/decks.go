package cards

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/manacore/manacore-go/internal/game"
)

// deckFile is the on-disk shape of a deck collection:
//
//	decks:
//	  - name: Gruul Beats
//	    cards:
//	      - key: mountain
//	        count: 10
type deckFile struct {
	Decks []deckEntry `yaml:"decks"`
}

type deckEntry struct {
	Name  string      `yaml:"name"`
	Cards []cardCount `yaml:"cards"`
}

type cardCount struct {
	Key   string `yaml:"key"`
	Count int    `yaml:"count"`
}

// LoadDecks reads a YAML deck collection and expands card counts into the
// flat lists the engine consumes. Every key is validated against the
// provider before any deck is returned.
func LoadDecks(path string, p *Provider) ([]game.Decklist, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read decks: %w", err)
	}
	return ParseDecks(raw, p)
}

// ParseDecks is LoadDecks over in-memory bytes.
func ParseDecks(raw []byte, p *Provider) ([]game.Decklist, error) {
	var file deckFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse decks: %w", err)
	}
	if len(file.Decks) == 0 {
		return nil, fmt.Errorf("no decks defined")
	}

	decks := make([]game.Decklist, 0, len(file.Decks))
	for _, entry := range file.Decks {
		if entry.Name == "" {
			return nil, fmt.Errorf("deck without a name")
		}
		var cards []string
		for _, cc := range entry.Cards {
			t, ok := p.Template(cc.Key)
			if !ok {
				return nil, fmt.Errorf("deck %q: unknown card %q", entry.Name, cc.Key)
			}
			if t.Token {
				return nil, fmt.Errorf("deck %q: %q is a token and cannot be in a deck", entry.Name, cc.Key)
			}
			if cc.Count <= 0 {
				return nil, fmt.Errorf("deck %q: card %q has count %d", entry.Name, cc.Key, cc.Count)
			}
			for i := 0; i < cc.Count; i++ {
				cards = append(cards, cc.Key)
			}
		}
		if len(cards) < game.OpeningHandSize {
			return nil, fmt.Errorf("deck %q: %d cards is below the %d-card minimum", entry.Name, len(cards), game.OpeningHandSize)
		}
		decks = append(decks, game.Decklist{Name: entry.Name, Cards: cards})
	}
	return decks, nil
}

// DefaultDecks returns the two stock decks used when no deck file is
// configured: a red-green aggro list and a white-blue flyers list.
func DefaultDecks() (game.Decklist, game.Decklist) {
	gruul := game.Decklist{Name: "Gruul Beats", Cards: expand(map[string]int{
		"mountain":        6,
		"forest":          6,
		"raging_goblin":   3,
		"grizzly_bears":   3,
		"trained_armodon": 3,
		"hill_giant":      2,
		"giant_spider":    2,
		"lightning_bolt":  3,
		"shock":           2,
		"giant_growth":    3,
		"courage_drill":   2,
	}, []string{
		"mountain", "forest", "raging_goblin", "grizzly_bears", "trained_armodon",
		"hill_giant", "giant_spider", "lightning_bolt", "shock", "giant_growth",
		"courage_drill",
	})}
	azorius := game.Decklist{Name: "Azorius Wings", Cards: expand(map[string]int{
		"plains":          6,
		"island":          6,
		"wind_drake":      4,
		"serra_angel":     2,
		"dawnhand_cleric": 3,
		"divination":      3,
		"healing_salve":   3,
		"raise_the_alarm": 4,
	}, []string{
		"plains", "island", "wind_drake", "serra_angel", "dawnhand_cleric",
		"divination", "healing_salve", "raise_the_alarm",
	})}
	return gruul, azorius
}

// expand flattens counts in the given key order so deck contents are
// stable across runs.
func expand(counts map[string]int, order []string) []string {
	var cards []string
	for _, key := range order {
		for i := 0; i < counts[key]; i++ {
			cards = append(cards, key)
		}
	}
	return cards
}

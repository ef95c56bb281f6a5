package game

import "github.com/manacore/manacore-go/internal/game/mana"

// CardKind is the closed set of card kinds the engine understands.
type CardKind int

const (
	KindLand CardKind = iota
	KindCreature
	KindInstant
	KindSorcery
)

func (k CardKind) String() string {
	switch k {
	case KindLand:
		return "Land"
	case KindCreature:
		return "Creature"
	case KindInstant:
		return "Instant"
	case KindSorcery:
		return "Sorcery"
	default:
		return "Unknown"
	}
}

// Keyword is an evergreen keyword ability relevant to combat and timing.
type Keyword string

const (
	KeywordFlying    Keyword = "flying"
	KeywordReach     Keyword = "reach"
	KeywordHaste     Keyword = "haste"
	KeywordVigilance Keyword = "vigilance"
	KeywordDefender  Keyword = "defender"
	KeywordLifelink  Keyword = "lifelink"
)

// TargetKind describes what a spell effect must target.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCreature
	TargetPlayer
	TargetAny // creature or player
)

// EffectKind is the closed set of spell effects. There is deliberately no
// general ability interpreter; each kind is resolved by the engine directly.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectDamage
	EffectDestroyCreature
	EffectPump
	EffectPutCounters
	EffectDraw
	EffectGainLife
	EffectCreateTokens
)

// Effect is the resolution payload of an instant or sorcery.
type Effect struct {
	Kind   EffectKind
	Target TargetKind
	// Amount is damage dealt, cards drawn, life gained, counters placed, or
	// tokens created, depending on Kind.
	Amount int
	// Power/Toughness are the until-end-of-turn bonus for EffectPump.
	Power     int
	Toughness int
	// TokenTemplate is the template key minted by EffectCreateTokens.
	TokenTemplate string
}

// Template is the static, rules-relevant description of a card. The engine
// itself stores only template keys on card instances; display data lives
// with the card provider.
type Template struct {
	Key       string
	Name      string
	Kind      CardKind
	ManaCost  mana.Cost
	Power     int
	Toughness int
	Keywords  []Keyword
	// Produces is the mana added when a land of this template is tapped.
	Produces mana.Type
	Effect   Effect
	// Token marks templates that only exist as token permanents.
	Token bool
}

// HasKeyword reports whether the template carries the given keyword.
func (t Template) HasKeyword(k Keyword) bool {
	for _, kw := range t.Keywords {
		if kw == k {
			return true
		}
	}
	return false
}

// CardProvider resolves opaque template keys to card data. It is injected
// into the engine; there is no package-level registry.
type CardProvider interface {
	// Template returns the template for a key. The second result is false
	// when the key is unknown.
	Template(key string) (Template, bool)
}

// Decklist is an ordered list of template keys making up one library.
type Decklist struct {
	Name  string
	Cards []string
}

// Size returns the number of cards in the decklist.
func (d Decklist) Size() int {
	return len(d.Cards)
}

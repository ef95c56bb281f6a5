package game

// ActionType is the closed set of player actions. Exhaustive switches over
// this enum replace the string dispatch of earlier engines.
type ActionType int

const (
	ActionPass ActionType = iota
	ActionPlayLand
	ActionCastSpell
	ActionTapForMana
	ActionDeclareAttackers
	ActionDeclareBlockers
	ActionConcede
)

func (t ActionType) String() string {
	switch t {
	case ActionPass:
		return "PASS_PRIORITY"
	case ActionPlayLand:
		return "PLAY_LAND"
	case ActionCastSpell:
		return "CAST_SPELL"
	case ActionTapForMana:
		return "TAP_FOR_MANA"
	case ActionDeclareAttackers:
		return "DECLARE_ATTACKERS"
	case ActionDeclareBlockers:
		return "DECLARE_BLOCKERS"
	case ActionConcede:
		return "CONCEDE"
	default:
		return "UNKNOWN"
	}
}

// Block assigns one blocking creature to one attacker.
type Block struct {
	Blocker  string
	Attacker string
}

// Action is a player decision. Exactly which payload fields are meaningful
// depends on Type:
//
//	PlayLand, TapForMana: Card
//	CastSpell:            Card, Targets (when the spell targets)
//	DeclareAttackers:     Attackers
//	DeclareBlockers:      Blocks
//	Pass, Concede:        none
type Action struct {
	Type      ActionType
	Player    PlayerID
	Card      string
	Targets   []string
	Attackers []string
	Blocks    []Block
}

// Equal reports payload-exact equality. Apply uses it to check membership
// of an action in the enumerated legal set.
func (a Action) Equal(b Action) bool {
	if a.Type != b.Type || a.Player != b.Player || a.Card != b.Card {
		return false
	}
	if len(a.Targets) != len(b.Targets) || len(a.Attackers) != len(b.Attackers) || len(a.Blocks) != len(b.Blocks) {
		return false
	}
	for i := range a.Targets {
		if a.Targets[i] != b.Targets[i] {
			return false
		}
	}
	for i := range a.Attackers {
		if a.Attackers[i] != b.Attackers[i] {
			return false
		}
	}
	for i := range a.Blocks {
		if a.Blocks[i] != b.Blocks[i] {
			return false
		}
	}
	return true
}

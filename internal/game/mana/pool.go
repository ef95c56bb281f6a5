package mana

// Type represents a type of mana.
type Type string

const (
	White     Type = "WHITE"
	Blue      Type = "BLUE"
	Black     Type = "BLACK"
	Red       Type = "RED"
	Green     Type = "GREEN"
	Colorless Type = "COLORLESS"
)

// Types lists every mana type in canonical WUBRG-then-colorless order.
// Iteration over pools always follows this order so that payment plans and
// action enumeration stay deterministic.
var Types = []Type{White, Blue, Black, Red, Green, Colorless}

// Pool is a player's mana pool. It is a plain value: copying a Pool copies
// its contents, which is what lets game snapshots share nothing.
type Pool struct {
	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
	Colorless int
}

// Add adds mana of the given type. Negative amounts are ignored.
func (p *Pool) Add(t Type, amount int) {
	if amount <= 0 {
		return
	}
	switch t {
	case White:
		p.White += amount
	case Blue:
		p.Blue += amount
	case Black:
		p.Black += amount
	case Red:
		p.Red += amount
	case Green:
		p.Green += amount
	case Colorless:
		p.Colorless += amount
	}
}

// Get returns the amount of the given mana type in the pool.
func (p Pool) Get(t Type) int {
	switch t {
	case White:
		return p.White
	case Blue:
		return p.Blue
	case Black:
		return p.Black
	case Red:
		return p.Red
	case Green:
		return p.Green
	case Colorless:
		return p.Colorless
	default:
		return 0
	}
}

// Spend removes mana of the given type. It reports whether the pool held
// enough; on failure the pool is unchanged.
func (p *Pool) Spend(t Type, amount int) bool {
	if amount <= 0 {
		return true
	}
	if p.Get(t) < amount {
		return false
	}
	switch t {
	case White:
		p.White -= amount
	case Blue:
		p.Blue -= amount
	case Black:
		p.Black -= amount
	case Red:
		p.Red -= amount
	case Green:
		p.Green -= amount
	case Colorless:
		p.Colorless -= amount
	}
	return true
}

// Total returns the total mana count across all types.
func (p Pool) Total() int {
	return p.White + p.Blue + p.Black + p.Red + p.Green + p.Colorless
}

// Empty clears the pool. Pools empty at the end of every step.
func (p *Pool) Empty() {
	*p = Pool{}
}

// IsEmpty reports whether the pool holds no mana.
func (p Pool) IsEmpty() bool {
	return p.Total() == 0
}

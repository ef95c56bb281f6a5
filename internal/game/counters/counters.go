package counters

import "sort"

// Kind names a counter variety placed on a permanent.
type Kind string

const (
	// PlusOnePlusOne is the +1/+1 counter; each one adds one power and one
	// toughness to the creature carrying it.
	PlusOnePlusOne Kind = "+1/+1"
)

// Counters tracks counters by kind on a single permanent. The zero value is
// usable. Copy before sharing across snapshots; the map is the only pointer
// inside a card instance.
type Counters map[Kind]int

// Add places amount counters of the given kind. Non-positive amounts are
// ignored.
func (cs Counters) Add(kind Kind, amount int) Counters {
	if amount <= 0 {
		return cs
	}
	if cs == nil {
		cs = make(Counters)
	}
	cs[kind] += amount
	return cs
}

// Remove takes up to amount counters of the given kind, stopping at zero.
func (cs Counters) Remove(kind Kind, amount int) {
	if cs == nil || amount <= 0 {
		return
	}
	if cs[kind] <= amount {
		delete(cs, kind)
		return
	}
	cs[kind] -= amount
}

// Count returns the number of counters of the given kind.
func (cs Counters) Count(kind Kind) int {
	return cs[kind]
}

// Total returns the number of counters of every kind.
func (cs Counters) Total() int {
	total := 0
	for _, n := range cs {
		total += n
	}
	return total
}

// Copy returns an independent copy. A nil receiver copies to nil.
func (cs Counters) Copy() Counters {
	if cs == nil {
		return nil
	}
	cp := make(Counters, len(cs))
	for k, v := range cs {
		cp[k] = v
	}
	return cp
}

// Kinds returns the counter kinds present in deterministic (sorted) order.
func (cs Counters) Kinds() []Kind {
	kinds := make([]Kind, 0, len(cs))
	for k := range cs {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

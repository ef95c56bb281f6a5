package mana

import "fmt"

// Payment is a concrete assignment of pool mana to a cost. Colored fields
// include both the colored requirement and any generic portion paid with
// that color.
type Payment struct {
	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
	Colorless int
}

// Total returns the total mana spent by the payment.
func (pay Payment) Total() int {
	return pay.White + pay.Blue + pay.Black + pay.Red + pay.Green + pay.Colorless
}

func (pay *Payment) add(t Type, amount int) {
	switch t {
	case White:
		pay.White += amount
	case Blue:
		pay.Blue += amount
	case Black:
		pay.Black += amount
	case Red:
		pay.Red += amount
	case Green:
		pay.Green += amount
	case Colorless:
		pay.Colorless += amount
	}
}

// Plan computes the payment for cost from pool, or an error when the pool
// cannot cover it.
//
// Colored requirements are paid first, from matching pool entries. The
// generic portion is then paid colorless-first, and after that one mana at
// a time from whichever color has the largest remaining surplus, ties
// broken in WUBRG order. Multiple valid assignments usually exist; this
// policy minimizes stranded colored mana and is fixed so that replays and
// searches see identical payments.
func Plan(cost Cost, pool Pool) (Payment, error) {
	var pay Payment
	remaining := pool

	for _, t := range Types {
		need := cost.colored(t)
		if need == 0 {
			continue
		}
		if !remaining.Spend(t, need) {
			return Payment{}, fmt.Errorf("insufficient %s mana: need %d, have %d", t, need, remaining.Get(t))
		}
		pay.add(t, need)
	}

	generic := cost.Generic
	if generic > remaining.Total() {
		return Payment{}, fmt.Errorf("insufficient mana for generic cost: need %d, have %d", generic, remaining.Total())
	}

	// Colorless first.
	if generic > 0 && remaining.Colorless > 0 {
		take := generic
		if take > remaining.Colorless {
			take = remaining.Colorless
		}
		remaining.Spend(Colorless, take)
		pay.add(Colorless, take)
		generic -= take
	}

	// Then the colored surplus, largest first, WUBRG on ties.
	for generic > 0 {
		pick := Type("")
		best := 0
		for _, t := range Types {
			if t == Colorless {
				continue
			}
			if n := remaining.Get(t); n > best {
				best = n
				pick = t
			}
		}
		if pick == "" {
			return Payment{}, fmt.Errorf("insufficient mana for generic cost: %d unpaid", generic)
		}
		remaining.Spend(pick, 1)
		pay.add(pick, 1)
		generic--
	}

	return pay, nil
}

// CanPay reports whether pool covers cost under the standard payment policy.
func CanPay(cost Cost, pool Pool) bool {
	_, err := Plan(cost, pool)
	return err == nil
}

// Execute deducts a previously planned payment from the pool. It reports
// whether the pool held enough of every type; on failure the pool is left
// unchanged.
func Execute(pool *Pool, pay Payment) bool {
	check := *pool
	for _, t := range Types {
		var amount int
		switch t {
		case White:
			amount = pay.White
		case Blue:
			amount = pay.Blue
		case Black:
			amount = pay.Black
		case Red:
			amount = pay.Red
		case Green:
			amount = pay.Green
		case Colorless:
			amount = pay.Colorless
		}
		if !check.Spend(t, amount) {
			return false
		}
	}
	*pool = check
	return true
}

package mana

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Cost represents a parsed mana cost.
type Cost struct {
	Generic   int
	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
	Colorless int
}

var symbolPattern = regexp.MustCompile(`\{([^}]+)\}`)

// ParseCost parses a mana cost string such as "{1}{G}" or "{2}{R}{R}".
// Supported symbols: generic numbers {0}..{n}, {W} {U} {B} {R} {G}, and {C}.
func ParseCost(costStr string) (Cost, error) {
	var cost Cost
	if costStr == "" {
		return cost, nil
	}

	matches := symbolPattern.FindAllStringSubmatch(costStr, -1)
	if len(matches) == 0 {
		return cost, fmt.Errorf("malformed mana cost %q", costStr)
	}

	for _, match := range matches {
		symbol := strings.ToUpper(strings.TrimSpace(match[1]))
		switch symbol {
		case "W":
			cost.White++
		case "U":
			cost.Blue++
		case "B":
			cost.Black++
		case "R":
			cost.Red++
		case "G":
			cost.Green++
		case "C":
			cost.Colorless++
		default:
			num, err := strconv.Atoi(symbol)
			if err != nil || num < 0 {
				return Cost{}, fmt.Errorf("unknown mana symbol {%s}", symbol)
			}
			cost.Generic += num
		}
	}

	return cost, nil
}

// colored returns the colored (non-generic) requirement for the given type.
func (c Cost) colored(t Type) int {
	switch t {
	case White:
		return c.White
	case Blue:
		return c.Blue
	case Black:
		return c.Black
	case Red:
		return c.Red
	case Green:
		return c.Green
	case Colorless:
		return c.Colorless
	default:
		return 0
	}
}

// ConvertedCost returns the total amount of mana the cost requires.
func (c Cost) ConvertedCost() int {
	return c.Generic + c.White + c.Blue + c.Black + c.Red + c.Green + c.Colorless
}

// IsFree reports whether the cost requires no mana at all.
func (c Cost) IsFree() bool {
	return c.ConvertedCost() == 0
}

// String renders the cost back into symbol notation.
func (c Cost) String() string {
	var sb strings.Builder
	if c.Generic > 0 {
		fmt.Fprintf(&sb, "{%d}", c.Generic)
	}
	for i := 0; i < c.White; i++ {
		sb.WriteString("{W}")
	}
	for i := 0; i < c.Blue; i++ {
		sb.WriteString("{U}")
	}
	for i := 0; i < c.Black; i++ {
		sb.WriteString("{B}")
	}
	for i := 0; i < c.Red; i++ {
		sb.WriteString("{R}")
	}
	for i := 0; i < c.Green; i++ {
		sb.WriteString("{G}")
	}
	for i := 0; i < c.Colorless; i++ {
		sb.WriteString("{C}")
	}
	if sb.Len() == 0 {
		return "{0}"
	}
	return sb.String()
}

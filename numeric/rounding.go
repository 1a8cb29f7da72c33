// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Rounding names the rule used to round a result to the context precision.
type Rounding int

const (
	// HalfUp rounds to nearest, ties away from zero (2.5 → 3, -2.5 → -3).
	HalfUp Rounding = iota
	// HalfEven rounds to nearest, ties to the even neighbour (banker's rounding).
	HalfEven
	// HalfDown rounds to nearest, ties toward zero.
	HalfDown
	// Up rounds away from zero.
	Up
	// Down truncates toward zero.
	Down
	// Ceiling rounds toward +Inf.
	Ceiling
	// Floor rounds toward -Inf.
	Floor
)

// roundingNames are the stable configuration spellings, indexed by Rounding.
var roundingNames = [...]string{
	HalfUp:   "half-up",
	HalfEven: "half-even",
	HalfDown: "half-down",
	Up:       "up",
	Down:     "down",
	Ceiling:  "ceiling",
	Floor:    "floor",
}

// RoundingNames lists every accepted rounding name in declaration order.
func RoundingNames() []string {
	out := make([]string, len(roundingNames))
	copy(out, roundingNames[:])

	return out
}

// String returns the configuration spelling of r.
func (r Rounding) String() string {
	if r < 0 || int(r) >= len(roundingNames) {
		return fmt.Sprintf("Rounding(%d)", int(r))
	}

	return roundingNames[r]
}

// ParseRounding maps a name such as "half-up" (case-insensitive, '_' and '-'
// interchangeable) onto a Rounding. Unknown names yield ErrUnknownRounding.
func ParseRounding(name string) (Rounding, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range roundingNames {
		if n == norm {
			return Rounding(i), nil
		}
	}

	return HalfUp, fmt.Errorf("ParseRounding(%q): %w", name, ErrUnknownRounding)
}

// rounder converts r into the apd rounding rule.
func (r Rounding) rounder() apd.Rounder {
	switch r {
	case HalfEven:
		return apd.RoundHalfEven
	case HalfDown:
		return apd.RoundHalfDown
	case Up:
		return apd.RoundUp
	case Down:
		return apd.RoundDown
	case Ceiling:
		return apd.RoundCeiling
	case Floor:
		return apd.RoundFloor
	default:
		return apd.RoundHalfUp
	}
}

func (r Rounding) valid() bool { return r >= 0 && int(r) < len(roundingNames) }

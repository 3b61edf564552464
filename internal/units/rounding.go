package units

import (
	"fmt"
	"math"
	"strings"
)

// Rounding selects how a scaled value is rounded to a whole number.
// The zero value applies no rounding.
type Rounding int

const (
	RoundNone Rounding = iota
	RoundNearest
	RoundNearestEven
	RoundTowardZero
	RoundUp
	RoundDown
)

var roundingNames = map[Rounding]string{
	RoundNone:        "none",
	RoundNearest:     "nearest",
	RoundNearestEven: "nearest-even",
	RoundTowardZero:  "truncate",
	RoundUp:          "up",
	RoundDown:        "down",
}

// ParseRounding maps a configuration value onto a Rounding. Empty means none.
func ParseRounding(value string) (Rounding, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return RoundNone, nil
	}
	for rule, name := range roundingNames {
		if name == normalized {
			return rule, nil
		}
	}
	return RoundNone, fmt.Errorf("unsupported rounding %q", value)
}

func (r Rounding) String() string {
	if name, ok := roundingNames[r]; ok {
		return name
	}
	return fmt.Sprintf("rounding(%d)", int(r))
}

// Apply rounds v. RoundNearest rounds halves away from zero.
func (r Rounding) Apply(v float64) float64 {
	switch r {
	case RoundNearest:
		return math.Round(v)
	case RoundNearestEven:
		return math.RoundToEven(v)
	case RoundTowardZero:
		return math.Trunc(v)
	case RoundUp:
		return math.Ceil(v)
	case RoundDown:
		return math.Floor(v)
	default:
		return v
	}
}

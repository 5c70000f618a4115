// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdecimal

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/avdva/bigdecimal/internal/mathutil"
)

// RoundingMode determines how a value is rounded to the requested number of digits.
// The zero value is HalfEven.
type RoundingMode byte

// Rounding modes. In the examples 'x' is a value rounded to zero digits after the decimal point.
const (
	// HalfEven rounds to the nearest neighbour, ties go to the even one: 2.5 -> 2, 3.5 -> 4, -2.5 -> -2.
	HalfEven RoundingMode = iota
	// HalfUp rounds to the nearest neighbour, ties go away from zero: 2.5 -> 3, -2.5 -> -3.
	HalfUp
	// HalfDown rounds to the nearest neighbour, ties go towards zero: 2.5 -> 2, -2.6 -> -3.
	HalfDown
	// Up rounds away from zero: 2.1 -> 3, -2.1 -> -3.
	Up
	// Down truncates: 2.9 -> 2, -2.9 -> -2.
	Down
	// Ceiling rounds towards +Inf: 2.1 -> 3, -2.9 -> -2.
	Ceiling
	// Floor rounds towards -Inf: 2.9 -> 2, -2.1 -> -3.
	Floor
)

const (
	// DefaultRoundingMode is used when no mode is given.
	DefaultRoundingMode = HalfEven
	// DefaultPrecision is the default number of digits after the decimal point.
	DefaultPrecision = 10
)

var roundingModeNames = [...]string{
	HalfEven: "halfEven",
	HalfUp:   "halfUp",
	HalfDown: "halfDown",
	Up:       "up",
	Down:     "down",
	Ceiling:  "ceiling",
	Floor:    "floor",
}

func (m RoundingMode) String() string {
	if int(m) < len(roundingModeNames) {
		return roundingModeNames[m]
	}
	return fmt.Sprintf("RoundingMode(%d)", byte(m))
}

// ParseRoundingMode returns a mode for its name, like "halfEven" or "ceiling".
// The name is case-insensitive, '-' and '_' are ignored, so "HALF_EVEN" is accepted too.
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(s))
	for m, modeName := range roundingModeNames {
		if strings.ToLower(modeName) == name {
			return RoundingMode(m), nil
		}
	}
	return DefaultRoundingMode, fmt.Errorf("unknown rounding mode %q: %w", s, ErrInvalidFormat)
}

// mirror returns the mode, that gives the same result for -x, as m gives for x, negated.
func (m RoundingMode) mirror() RoundingMode {
	switch m {
	case Ceiling:
		return Floor
	case Floor:
		return Ceiling
	default:
		return m
	}
}

// roundUp decides if the kept digits of a non-negative value must be incremented.
// digit is the first discarded digit, sticky is true if any discarded digit is not zero.
func (m RoundingMode) roundUp(base *big.Int, digit uint, sticky bool) bool {
	switch m {
	case Ceiling, Up:
		return sticky
	case Floor, Down:
		return false
	case HalfUp:
		return digit >= 5
	case HalfDown:
		return digit > 5
	case HalfEven:
		return digit > 5 || digit == 5 && base.Bit(0) == 1
	default:
		panic(fmt.Sprintf("unknown rounding mode %v", m))
	}
}

// Round returns d rounded to prec digits after the decimal point.
// A negative prec rounds to the left of the decimal point: 1250 rounded to -2 digits with HalfUp is 1300.
// The result is normalized.
func (d Decimal) Round(prec int, mode RoundingMode) Decimal {
	return d.round(prec, mode, false)
}

// RoundDefault rounds d to DefaultPrecision digits with DefaultRoundingMode.
func (d Decimal) RoundDefault() Decimal {
	return d.round(DefaultPrecision, DefaultRoundingMode, false)
}

func (d Decimal) round(prec int, mode RoundingMode, normalized bool) Decimal {
	if !normalized {
		d = d.Normalized()
	}
	if d.IsZero() {
		return Zero
	}
	if d.Sign() < 0 {
		return d.Neg().round(prec, mode.mirror(), true).Neg()
	}
	excess := -d.exp - prec
	if excess <= 0 {
		return d
	}
	sig := d.significant()
	base, rest := new(big.Int).QuoRem(sig, mathutil.Pow10(excess), new(big.Int))
	// the first discarded digit.
	digit := new(big.Int).Quo(rest, mathutil.Pow10(excess-1)).Uint64()
	if mode.roundUp(base, uint(digit), rest.Sign() != 0) {
		base.Add(base, big.NewInt(1))
	}
	return fromBig(mathutil.TrimZeros(base, -prec))
}

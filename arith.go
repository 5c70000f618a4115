package bigdecimal

import (
	"fmt"
	"math"
	"math/big"

	"github.com/avdva/bigdecimal/internal/mathutil"
)

const (
	// maxDivisionScale is the number of decimal digits Div may add to the dividend
	// when the significants are not divisible.
	maxDivisionScale = 10
	// sqrtIterations is the number of Newton steps made by Sqrt.
	sqrtIterations = 10
)

var bigTen = big.NewInt(10)

// Add returns d + other.
func (d Decimal) Add(other Decimal) Decimal {
	m1, m2, e := alignExp(d, other)
	return fromBig(mathutil.TrimZeros(m1.Add(m1, m2), e))
}

// Sub returns d - other.
func (d Decimal) Sub(other Decimal) Decimal {
	return d.Add(other.Neg())
}

// Neg returns -d. The result has the same exponent as d.
func (d Decimal) Neg() Decimal {
	return fromBig(new(big.Int).Neg(d.significant()), d.exp)
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.Sign() < 0 {
		return d.Neg()
	}
	return d
}

// Mul returns d * other.
func (d Decimal) Mul(other Decimal) Decimal {
	// a*10^e1 * b*10^e2 = a * b * 10^(e1+e2)
	m := new(big.Int).Mul(d.significant(), other.significant())
	return fromBig(mathutil.TrimZeros(m, d.exp+other.exp))
}

// Div returns d / other.
// If the significants are not divisible, the dividend is multiplied by 10 until they are,
// but not more than 10 times, and the rest of the quotient is truncated.
// So 1/3 is 0.3333333333, and the result never has more than 10 digits more than
// the integer quotient of the significants. For more digits pass a dividend with a longer
// significant, like New(big.NewInt(1e10), -10) instead of One.
// Returns ErrDivisionUndefined for 0/0, and ErrDivisionByZero for x/0.
func (d Decimal) Div(other Decimal) (Decimal, error) {
	if other.IsZero() {
		if d.IsZero() {
			return Zero, ErrDivisionUndefined
		}
		return Zero, ErrDivisionByZero
	}
	if d.IsZero() {
		return Zero, nil
	}
	// a*10^e1 / b*10^e2 = (a/b) * 10^(e1-e2)
	m1, m2 := new(big.Int).Set(d.significant()), other.significant()
	e := d.exp - other.exp
	quo, rem := new(big.Int).QuoRem(m1, m2, new(big.Int))
	for i := 0; i < maxDivisionScale && rem.Sign() != 0; i++ {
		m1.Mul(m1, bigTen)
		e--
		quo.QuoRem(m1, m2, rem)
	}
	return fromBig(mathutil.TrimZeros(quo, e)), nil
}

// DivToIntegralValue returns the integer part of d / other, truncated towards zero.
func (d Decimal) DivToIntegralValue(other Decimal) (Decimal, error) {
	quo, err := d.Div(other)
	if err != nil {
		return Zero, err
	}
	return quo.round(0, Down, true), nil
}

// Rem returns d - other * DivToIntegralValue(d, other).
// The result has the sign of d, so Rem(-7, 2) is -1.
func (d Decimal) Rem(other Decimal) (Decimal, error) {
	quo, err := d.DivToIntegralValue(other)
	if err != nil {
		return Zero, err
	}
	return d.Sub(quo.Mul(other)), nil
}

// IntegralPart returns the integer part of d, truncated towards zero.
func (d Decimal) IntegralPart() Decimal {
	if d.Sign() < 0 {
		return d.Neg().IntegralPart().Neg()
	}
	if d.exp >= 0 {
		return d.Normalized()
	}
	quo := new(big.Int).Quo(d.significant(), mathutil.Pow10(-d.exp))
	return FromBigInt(quo)
}

// DecimalPart returns the fractional part of d, so that d == d.IntegralPart() + d.DecimalPart().
// The result has the sign of d.
func (d Decimal) DecimalPart() Decimal {
	if d.Sign() < 0 {
		return d.Neg().DecimalPart().Neg()
	}
	return d.Sub(d.IntegralPart())
}

// Pow returns d^n.
// Returns ErrInvalidOperand for negative n.
func (d Decimal) Pow(n int) (Decimal, error) {
	if n < 0 {
		return Zero, fmt.Errorf("negative power %d: %w", n, ErrInvalidOperand)
	}
	m := new(big.Int).Exp(d.significant(), big.NewInt(int64(n)), nil)
	return fromBig(mathutil.TrimZeros(m, d.exp*n)), nil
}

// Sqrt returns an approximation of the square root of d.
// It makes a fixed number of Newton's steps, g = g - (g*g - d) / 2g, starting from the float64
// square root, so the result is only as precise, as 10 iterations with the limited precision of Div allow.
// Returns ErrInvalidOperand for negative values.
func (d Decimal) Sqrt() (Decimal, error) {
	switch d.Sign() {
	case -1:
		return Zero, fmt.Errorf("square root of %s: %w", d, ErrInvalidOperand)
	case 0:
		return Zero, nil
	}
	guess := sqrtSeed(d)
	for i := 0; i < sqrtIterations; i++ {
		delta, err := guess.Mul(guess).Sub(d).Div(guess.Mul(Two))
		if err != nil {
			return Zero, err
		}
		guess = guess.Sub(delta)
	}
	return guess, nil
}

// sqrtSeed returns the float64 square root of a positive d.
// d is scaled by an even power of ten first, so that the float conversion never overflows.
func sqrtSeed(d Decimal) Decimal {
	shift := (d.exp + mathutil.DecimalDigits(d.significant())) / 2 * 2
	f := math.Sqrt(d.ScaleByPowerOfTen(-shift).Float64())
	return MustFromFloat64(f).ScaleByPowerOfTen(shift / 2)
}

// ScaleByPowerOfTen returns d * 10^n.
func (d Decimal) ScaleByPowerOfTen(n int) Decimal {
	return fromBig(mathutil.TrimZeros(d.significant(), d.exp+n))
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bigdecimal implements arbitrary-precision decimal numbers.
// A number is stored as a pair of a significant of arbitrary length and a decimal exponent,
// so that its value is significant * 10^exponent.
// Can be used for financial calculations or unit conversions, where float64 errors are unacceptable.
package bigdecimal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/avdva/bigdecimal/internal/mathutil"
)

var (
	// ErrInvalidOperand is returned for non-finite floats, negative powers and square roots of negative values.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrInvalidFormat is returned when a string is not a valid decimal number.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrDivisionUndefined is returned for 0 / 0.
	ErrDivisionUndefined = errors.New("division undefined")
	// ErrDivisionByZero is returned for x / 0, where x != 0.
	ErrDivisionByZero = errors.New("division by zero")
)

var (
	// MinusOne is -1.
	MinusOne = FromInt64(-1)
	// Zero is 0. It is equal to Decimal{}.
	Zero = Decimal{}
	// Half is 0.5.
	Half = New(big.NewInt(5), -1)
	// One is 1.
	One = FromInt64(1)
	// Two is 2.
	Two = FromInt64(2)
	// Ten is 10.
	Ten = New(big.NewInt(1), 1)

	bigZero = new(big.Int)
)

// Decimal is an immutable arbitrary-precision decimal number.
// The value of a Decimal is sig * 10^exp.
//
// Several (sig, exp) pairs can represent the same number, like (1, 1) and (10, 0).
// The normalized form has no trailing zeros in sig, and zero is always stored as (0, 0).
// Most operations return normalized values, see Normalized, Equal and EqualValue.
//
// The zero value is 0. Decimals are safe for concurrent use, as no method modifies its receiver.
type Decimal struct {
	sig *big.Int // nil means zero.
	exp int
}

// New returns a decimal equal to sig * 10^exp.
// The value is kept as is, without normalization. sig is copied.
func New(sig *big.Int, exp int) Decimal {
	return Decimal{sig: new(big.Int).Set(sig), exp: exp}
}

// FromBigInt returns a normalized decimal for given integer.
func FromBigInt(x *big.Int) Decimal {
	return fromBig(mathutil.TrimZeros(x, 0))
}

// FromInt64 returns a normalized decimal for given int64 number.
func FromInt64(v int64) Decimal {
	return FromBigInt(big.NewInt(v))
}

// FromFloat64 returns a value for given float64.
// The float is multiplied by 10 until it becomes an integer, so the result is limited
// by float64 precision: FromFloat64(0.1) is 0.1, but values obtained by float arithmetic
// may carry its error, like 0.30000000000000004.
// Returns ErrInvalidOperand for infinities and not-a-numbers.
func FromFloat64(f float64) (Decimal, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Zero, fmt.Errorf("bad float number %v: %w", f, ErrInvalidOperand)
	}
	return fromBig(mathutil.TrimZeros(mathutil.FloatMantissa(f))), nil
}

// MustFromFloat64 is like FromFloat64, but panics on error.
func MustFromFloat64(f float64) Decimal {
	d, err := FromFloat64(f)
	if err != nil {
		panic(err)
	}
	return d
}

// MustFromString is like FromString, but panics on error.
// Useful for initialization of global variables.
func MustFromString(s string) Decimal {
	d, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fromBig wraps sig without copying it. The caller must not modify sig afterwards.
func fromBig(sig *big.Int, exp int) Decimal {
	return Decimal{sig: sig, exp: exp}
}

func (d Decimal) significant() *big.Int {
	if d.sig == nil {
		return bigZero
	}
	return d.sig
}

// Significant returns a copy of d's significant.
func (d Decimal) Significant() *big.Int {
	return new(big.Int).Set(d.significant())
}

// Exponent returns d's exponent as is.
func (d Decimal) Exponent() int {
	return d.exp
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.significant().Sign() == 0
}

// Sign returns -1 if d < 0, 0 if d == 0, 1 if d > 0.
func (d Decimal) Sign() int {
	return d.significant().Sign()
}

// Normalized eliminates trailing zeros in the significant, increasing the exponent.
// Zero is normalized to (0, 0).
func (d Decimal) Normalized() Decimal {
	return fromBig(mathutil.TrimZeros(d.significant(), d.exp))
}

// Equal returns true if both values have the same significant and exponent.
// 1.0 and 1 are not Equal, see EqualValue.
func (d Decimal) Equal(other Decimal) bool {
	return d.exp == other.exp && d.significant().Cmp(other.significant()) == 0
}

// EqualValue returns true if both values represent the same number.
func (d Decimal) EqualValue(other Decimal) bool {
	if d.Equal(other) {
		return true
	}
	return d.Normalized().Equal(other.Normalized())
}

// Cmp compares two values.
// Returns -1 if d < other, 0 if d == other, 1 if d > other.
func (d Decimal) Cmp(other Decimal) int {
	s1, s2 := d.Sign(), other.Sign()
	if s1 != s2 || s1 == 0 {
		return intCmp(s1, s2)
	}
	if d.exp != other.exp {
		// first, compare positions of the most significant digits.
		maxDigit1 := d.exp + mathutil.DecimalDigits(d.significant())
		maxDigit2 := other.exp + mathutil.DecimalDigits(other.significant())
		if maxDigit1 != maxDigit2 {
			return intCmp(maxDigit1, maxDigit2) * s1
		}
	}
	m1, m2, _ := alignExp(d, other)
	return m1.Cmp(m2)
}

// Min returns the smallest of d and other. If they are equal, d is returned.
func (d Decimal) Min(other Decimal) Decimal {
	if other.Cmp(d) < 0 {
		return other
	}
	return d
}

// Max returns the largest of d and other. If they are equal, d is returned.
func (d Decimal) Max(other Decimal) Decimal {
	if other.Cmp(d) > 0 {
		return other
	}
	return d
}

// Float64 returns the nearest float64 value.
// The conversion is lossy for values, which need more than 17 significant digits,
// and it overflows to ±Inf or underflows to 0 out of the float64 range.
func (d Decimal) Float64() float64 {
	// ParseFloat reports range errors along with ±Inf or 0, which is what we want.
	f, _ := strconv.ParseFloat(d.significant().String()+"e"+strconv.Itoa(d.exp), 64)
	return f
}

// alignExp returns significants of a and b scaled to the smallest of their exponents.
// The results are fresh integers.
func alignExp(a, b Decimal) (m1, m2 *big.Int, exp int) {
	switch ediff := a.exp - b.exp; {
	case ediff > 0:
		return mathutil.MulPow10(a.significant(), ediff), new(big.Int).Set(b.significant()), b.exp
	case ediff < 0:
		r2, r1, e := alignExp(b, a)
		return r1, r2, e
	default:
		return new(big.Int).Set(a.significant()), new(big.Int).Set(b.significant()), a.exp
	}
}

func intCmp(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

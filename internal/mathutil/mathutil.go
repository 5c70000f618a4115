package mathutil

import (
	"math"
	"math/big"
)

const cachedPowers = 64

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)

	// decimalFactorTable holds 10^0..10^63. Its values are shared and must not be modified.
	decimalFactorTable = func() [cachedPowers]*big.Int {
		var t [cachedPowers]*big.Int
		t[0] = bigOne
		for i := 1; i < cachedPowers; i++ {
			t[i] = new(big.Int).Mul(t[i-1], bigTen)
		}
		return t
	}()
)

// Pow10 returns 10^pow. pow must be non-negative.
// The result may be shared with other callers, so it must be treated as read-only.
func Pow10(pow int) *big.Int {
	if pow < cachedPowers {
		return decimalFactorTable[pow]
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(pow)), nil)
}

// MulPow10 returns a new integer equal to x * 10^pow.
func MulPow10(x *big.Int, pow int) *big.Int {
	if pow == 0 {
		return new(big.Int).Set(x)
	}
	return new(big.Int).Mul(x, Pow10(pow))
}

// DecimalDigits returns the number of decimal digits in abs(x).
// Zero has one digit.
func DecimalDigits(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}
	abs := new(big.Int).Abs(x)
	// 2^(n-1) <= abs < 2^n, so the estimate is off by at most one.
	digits := int(float64(abs.BitLen()-1)*math.Log10(2)) + 1
	if abs.Cmp(Pow10(digits)) >= 0 {
		digits++
	} else if digits > 1 && abs.Cmp(Pow10(digits-1)) < 0 {
		digits--
	}
	return digits
}

// TrimZeros removes trailing decimal zeros from m, incrementing e for every removed digit.
// A zero mantissa results in (0, 0). m is not modified.
func TrimZeros(m *big.Int, e int) (*big.Int, int) {
	if m.Sign() == 0 {
		return new(big.Int), 0
	}
	result := new(big.Int).Set(m)
	if m.Bit(0) != 0 { // odd numbers never end with a zero.
		return result, e
	}
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(result, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		result, q = q, result
		e++
	}
	return result, e
}

// FloatMantissa returns such (mant, exp) that mant * 10^exp == f.
// f is multiplied by 10 until it has no fractional part, so the result is as precise as
// float64 arithmetic allows. f must be finite.
func FloatMantissa(f float64) (mant *big.Int, exp int) {
	for f != math.Trunc(f) {
		f *= 10
		exp--
	}
	mant, _ = new(big.Float).SetFloat64(f).Int(nil)
	return mant, exp
}

package mathutil

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func bigFromString(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad integer " + s)
	}
	return v
}

func TestPow10(t *testing.T) {
	a := assert.New(t)
	for _, pow := range []int{0, 1, 5, 19, 20, 63, 64, 100} {
		a.Equal("1"+strings.Repeat("0", pow), Pow10(pow).String(), "pow %d", pow)
	}
}

func TestMulPow10(t *testing.T) {
	a := assert.New(t)
	x := big.NewInt(-123)
	a.Equal("-123000", MulPow10(x, 3).String())
	res := MulPow10(x, 0)
	a.Equal("-123", res.String())
	res.SetInt64(5)
	a.Equal("-123", x.String())
}

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s      string
		digits int
	}{
		{"0", 1},
		{"1", 1},
		{"9", 1},
		{"10", 2},
		{"-99", 2},
		{"100", 3},
		{"18446744073709551615", 20},
		{"18446744073709551616", 20},
		{"99999999999999999999", 20},
		{"100000000000000000000", 21},
		{"-" + strings.Repeat("9", 150), 150},
		{"1" + strings.Repeat("0", 150), 151},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.digits, DecimalDigits(bigFromString(test.s)))
		})
	}
}

func TestTrimZeros(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		m    string
		e    int
		resM string
		resE int
	}{
		{"0", 5, "0", 0},
		{"1", 0, "1", 0},
		{"10", 0, "1", 1},
		{"-12300", -4, "-123", -2},
		{"1005", 0, "1005", 0},
		{"1" + strings.Repeat("0", 80), -3, "1", 77},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			in := bigFromString(test.m)
			m, e := TrimZeros(in, test.e)
			a.Equal(test.resM, m.String())
			a.Equal(test.resE, e)
			a.Equal(test.m, in.String(), "input must stay untouched")
		})
	}
}

func TestFloatMantissa(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f    float64
		mant string
		exp  int
	}{
		{0, "0", 0},
		{1, "1", 0},
		{0.5, "5", -1},
		{-2.75, "-275", -2},
		{0.125, "125", -3},
		{1500, "1500", 0},
		{math.Pow(2, 60), "1152921504606846976", 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			mant, exp := FloatMantissa(test.f)
			a.Equal(test.mant, mant.String())
			a.Equal(test.exp, exp)
		})
	}
}

func BenchmarkDecimalDigits(b *testing.B) {
	x := bigFromString(strings.Repeat("1234567890", 10))
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += DecimalDigits(x)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

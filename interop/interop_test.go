package interop

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/avdva/bigdecimal"
	"github.com/cockroachdb/apd/v3"
	gv "github.com/govalues/decimal"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/inf.v0"
)

var exactSamples = []string{"0", "1", "-1", "10.325", "-2.5", "0.001", "1200", "-99999.9999999"}

func TestTargets(t *testing.T) {
	assert.Equal(t, []string{"apd", "fixed", "govalues", "inf", "shopspring"}, Targets())
}

func TestRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, target := range Targets() {
		t.Run(target, func(t *testing.T) {
			for _, s := range exactSamples {
				d := bigdecimal.MustFromString(s)
				res, err := RoundTrip(d, target)
				if a.NoError(err, s) {
					a.True(res.Equal(d), "%s: %#v", s, res)
				}
			}
		})
	}
	_, err := RoundTrip(bigdecimal.One, "float")
	a.EqualError(err, `unknown target "float"`)
}

func TestShopspring(t *testing.T) {
	a := assert.New(t)
	a.Equal("1.5", FromShopspring(decimal.RequireFromString("1.500")).String())
	a.Equal("-1200", FromShopspring(decimal.New(-12, 2)).String())

	v, err := ToShopspring(bigdecimal.MustFromString("-12.34"))
	if a.NoError(err) {
		a.Equal("-12.34", v.String())
		a.Equal(int32(-2), v.Exponent())
	}
	long := "123456789012345678901234567890.0987654321"
	v, err = ToShopspring(bigdecimal.MustFromString(long))
	if a.NoError(err) {
		a.Equal(long, v.String())
	}

	_, err = ToShopspring(bigdecimal.New(big1(), math.MaxInt32+1))
	a.True(errors.Is(err, ErrOutOfRange))
	_, err = ToShopspring(bigdecimal.New(big1(), math.MinInt32-1))
	a.True(errors.Is(err, ErrOutOfRange))
}

func TestInf(t *testing.T) {
	a := assert.New(t)
	a.Equal("12.345", FromInf(inf.NewDec(12345, 3)).String())
	a.Equal("500", FromInf(inf.NewDec(5, -2)).String())
	a.Equal("0", FromInf(inf.NewDec(0, 7)).String())

	v, err := ToInf(bigdecimal.MustFromString("-0.25"))
	if a.NoError(err) {
		a.Equal("-0.25", v.String())
		a.Equal(inf.Scale(2), v.Scale())
	}
	_, err = ToInf(bigdecimal.New(big1(), math.MinInt32))
	a.True(errors.Is(err, ErrOutOfRange))
	_, err = ToInf(bigdecimal.New(big1(), math.MaxInt32+1))
	a.True(errors.Is(err, ErrOutOfRange))
}

func TestAPD(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   *apd.Decimal
		res string
	}{
		{apd.New(12345, -3), "12.345"},
		{apd.New(5, 2), "500"},
		{apd.New(-1000, -1), "-100"},
		{apd.New(0, -3), "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := FromAPD(test.v)
			if a.NoError(err) {
				a.Equal(test.res, d.String())
			}
		})
	}
	for _, form := range []apd.Form{apd.Infinite, apd.NaN, apd.NaNSignaling} {
		_, err := FromAPD(&apd.Decimal{Form: form})
		a.True(errors.Is(err, bigdecimal.ErrInvalidOperand), "%v", form)
	}

	v, err := ToAPD(bigdecimal.MustFromString("-1.25"))
	if a.NoError(err) {
		a.Equal(0, v.Cmp(apd.New(-125, -2)))
	}
}

func TestGovalues(t *testing.T) {
	a := assert.New(t)
	a.Equal("1.5", FromGovalues(gv.MustParse("1.500")).String())
	a.Equal("-0.001", FromGovalues(gv.MustParse("-0.001")).String())
	a.Equal("0", FromGovalues(gv.MustParse("0.00")).String())

	v, err := ToGovalues(bigdecimal.MustFromString("123.45"))
	if a.NoError(err) {
		a.Equal("123.45", v.String())
	}
	for _, s := range []string{"12345678901234567890", "0.12345678901234567891", "1e30"} {
		_, err = ToGovalues(bigdecimal.MustFromString(s))
		a.True(errors.Is(err, ErrOutOfRange), s)
	}
}

func TestFixed(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)
	d, err := FromFixed(fixed.NewS("123.25"))
	r.NoError(err)
	a.Equal("123.25", d.String())
	d, err = FromFixed(fixed.NewS("-2.5"))
	r.NoError(err)
	a.Equal("-2.5", d.String())

	_, err = FromFixed(fixed.NaN)
	a.True(errors.Is(err, bigdecimal.ErrInvalidOperand))

	v, err := ToFixed(bigdecimal.MustFromString("1.23456789"))
	r.NoError(err)
	a.Equal("1.2345679", v.String())
	v, err = ToFixed(bigdecimal.MustFromString("1.00000005"))
	r.NoError(err)
	a.Equal("1", v.String())

	for _, s := range []string{"1e12", "-100000000000", "99999999999.99999999"} {
		_, err = ToFixed(bigdecimal.MustFromString(s))
		a.True(errors.Is(err, ErrOutOfRange), s)
	}
}

func big1() *big.Int {
	return big.NewInt(1)
}

package interop

import (
	"fmt"
	"math/big"

	"github.com/avdva/bigdecimal"
	"github.com/govalues/decimal"
)

// FromGovalues returns a decimal equal to v.
func FromGovalues(v decimal.Decimal) bigdecimal.Decimal {
	sig := new(big.Int).SetUint64(v.Coef())
	if v.IsNeg() {
		sig.Neg(sig)
	}
	return bigdecimal.New(sig, -v.Scale()).Normalized()
}

// ToGovalues returns a govalues decimal equal to d.
// govalues keeps at most 19 digits, so longer values result in ErrOutOfRange.
func ToGovalues(d bigdecimal.Decimal) (decimal.Decimal, error) {
	s := d.Normalized().String()
	v, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %v: %w", s, err, ErrOutOfRange)
	}
	// Parse rounds the fractional part, if it's too long.
	if !FromGovalues(v).EqualValue(d) {
		return decimal.Decimal{}, fmt.Errorf("%s loses digits: %w", s, ErrOutOfRange)
	}
	return v, nil
}

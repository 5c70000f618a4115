package interop

import (
	"fmt"

	"github.com/avdva/bigdecimal"
	"github.com/robaho/fixed"
)

const fixedPlaces = 7

// fixedMax is the largest absolute value of fixed.Fixed.
var fixedMax = bigdecimal.MustFromString("99999999999.9999999")

// FromFixed returns a decimal equal to v.
// NaN results in bigdecimal.ErrInvalidOperand.
func FromFixed(v fixed.Fixed) (bigdecimal.Decimal, error) {
	if v.IsNaN() {
		return bigdecimal.Zero, fmt.Errorf("fixed NaN: %w", bigdecimal.ErrInvalidOperand)
	}
	return bigdecimal.FromString(v.String())
}

// ToFixed returns d rounded half-even to 7 decimal places as fixed.Fixed.
// Values above 99999999999.9999999 by absolute value result in ErrOutOfRange.
func ToFixed(d bigdecimal.Decimal) (fixed.Fixed, error) {
	rounded := d.Round(fixedPlaces, bigdecimal.HalfEven)
	if rounded.Abs().Cmp(fixedMax) > 0 {
		return fixed.NaN, fmt.Errorf("%s: %w", d, ErrOutOfRange)
	}
	v, err := fixed.NewSErr(rounded.String())
	if err != nil {
		return fixed.NaN, fmt.Errorf("%s: %v: %w", d, err, ErrOutOfRange)
	}
	return v, nil
}

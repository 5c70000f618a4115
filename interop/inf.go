package interop

import (
	"fmt"
	"math"

	"github.com/avdva/bigdecimal"
	"gopkg.in/inf.v0"
)

// FromInf returns a decimal equal to v, which is unscaled * 10^-scale.
func FromInf(v *inf.Dec) bigdecimal.Decimal {
	return bigdecimal.New(v.UnscaledBig(), -int(v.Scale())).Normalized()
}

// ToInf returns an inf.Dec equal to d.
// The scale, which is the negated exponent of normalized d, must fit into int32.
func ToInf(d bigdecimal.Decimal) (*inf.Dec, error) {
	d, exp, err := exponentToInt32(d)
	if err != nil {
		return nil, err
	}
	if exp == math.MinInt32 {
		return nil, fmt.Errorf("scale %d: %w", -int64(exp), ErrOutOfRange)
	}
	return inf.NewDecBig(d.Significant(), inf.Scale(-exp)), nil
}

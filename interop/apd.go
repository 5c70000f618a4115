package interop

import (
	"fmt"

	"github.com/avdva/bigdecimal"
	"github.com/cockroachdb/apd/v3"
)

// FromAPD returns a decimal equal to v.
// Infinities and NaNs result in bigdecimal.ErrInvalidOperand.
func FromAPD(v *apd.Decimal) (bigdecimal.Decimal, error) {
	if v.Form != apd.Finite {
		return bigdecimal.Zero, fmt.Errorf("apd value %s: %w", v, bigdecimal.ErrInvalidOperand)
	}
	return bigdecimal.FromString(v.Text('f'))
}

// ToAPD returns an apd decimal equal to d.
// Values exceeding the exponent limits of apd.BaseContext result in ErrOutOfRange.
func ToAPD(d bigdecimal.Decimal) (*apd.Decimal, error) {
	v, _, err := apd.NewFromString(d.Normalized().String())
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrOutOfRange)
	}
	return v, nil
}

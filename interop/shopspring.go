package interop

import (
	"github.com/avdva/bigdecimal"
	"github.com/shopspring/decimal"
)

// FromShopspring returns a decimal equal to v.
func FromShopspring(v decimal.Decimal) bigdecimal.Decimal {
	return bigdecimal.New(v.Coefficient(), int(v.Exponent())).Normalized()
}

// ToShopspring returns a shopspring decimal equal to d.
// The exponent of normalized d must fit into int32.
func ToShopspring(d bigdecimal.Decimal) (decimal.Decimal, error) {
	d, exp, err := exponentToInt32(d)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(d.Significant(), exp), nil
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package interop converts bigdecimal values to and from other decimal types.
// All From* functions return normalized values.
// To* functions fail with ErrOutOfRange, if the value can't be represented exactly by the target type.
package interop

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/avdva/bigdecimal"
)

// ErrOutOfRange is returned when a value doesn't fit the target type.
var ErrOutOfRange = errors.New("out of range")

// converters maps target names to round trip functions.
var converters = map[string]func(bigdecimal.Decimal) (bigdecimal.Decimal, error){
	"shopspring": func(d bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		v, err := ToShopspring(d)
		if err != nil {
			return bigdecimal.Zero, err
		}
		return FromShopspring(v), nil
	},
	"inf": func(d bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		v, err := ToInf(d)
		if err != nil {
			return bigdecimal.Zero, err
		}
		return FromInf(v), nil
	},
	"apd": func(d bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		v, err := ToAPD(d)
		if err != nil {
			return bigdecimal.Zero, err
		}
		return FromAPD(v)
	},
	"govalues": func(d bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		v, err := ToGovalues(d)
		if err != nil {
			return bigdecimal.Zero, err
		}
		return FromGovalues(v), nil
	},
	"fixed": func(d bigdecimal.Decimal) (bigdecimal.Decimal, error) {
		v, err := ToFixed(d)
		if err != nil {
			return bigdecimal.Zero, err
		}
		return FromFixed(v)
	},
}

// Targets returns sorted names of the types accepted by RoundTrip.
func Targets() []string {
	result := make([]string, 0, len(converters))
	for name := range converters {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// RoundTrip converts d to the target type and back.
// The result differs from d only if the target is lossy, like 'fixed', which keeps 7 decimal places.
func RoundTrip(d bigdecimal.Decimal, target string) (bigdecimal.Decimal, error) {
	conv, found := converters[target]
	if !found {
		return bigdecimal.Zero, fmt.Errorf("unknown target %q", target)
	}
	return conv(d)
}

// exponentToInt32 checks that the normalized exponent of d fits into int32.
func exponentToInt32(d bigdecimal.Decimal) (bigdecimal.Decimal, int32, error) {
	d = d.Normalized()
	exp := d.Exponent()
	if exp < math.MinInt32 || exp > math.MaxInt32 {
		return d, 0, fmt.Errorf("exponent %d: %w", exp, ErrOutOfRange)
	}
	return d, int32(exp), nil
}

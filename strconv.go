// Copyright 2020 Aleksandr Demakin. All rights reserved.

package bigdecimal

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	delim    = '.'
	expDelim = 'e'
	minus    = '-'
)

var (
	manyZeros = strings.Repeat("0", 256)

	errEmptyInput = fmt.Errorf("empty input: %w", ErrInvalidFormat)
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Is makes every position error match ErrInvalidFormat.
func (pe posError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// FromString parses a string into a normalized value.
// The accepted grammar is
//
//	[-]digits[.digits][e[-]digits]
//
// like "12", "-0.25", "1.5e-3". Leading zeros are allowed, spaces and a leading '+' are not.
// The returned error matches ErrInvalidFormat and contains the position of the first bad symbol.
func FromString(s string) (Decimal, error) {
	parsed, err := parse(s)
	if err != nil {
		return Zero, fmt.Errorf("parsing failed: %w", err)
	}
	return parsed.decimal(), nil
}

// parsedString holds the parts of a decimal string.
type parsedString struct {
	neg  bool
	unit string
	frac string
	exp  int
}

// decimal combines the parts into a value.
// The fractional part is negated for negative numbers, so "-2.5" is -(2 + 0.5), and "-0.5" is negative.
func (p parsedString) decimal() Decimal {
	unit, _ := new(big.Int).SetString(p.unit, 10)
	if p.neg {
		unit.Neg(unit)
	}
	result := fromBig(unit, 0)
	if len(p.frac) > 0 {
		fracSig, _ := new(big.Int).SetString(p.frac, 10)
		frac := fromBig(fracSig, -len(p.frac))
		if p.neg {
			frac = frac.Neg()
		}
		result = result.Add(frac)
	}
	return result.ScaleByPowerOfTen(p.exp)
}

func parse(s string) (result parsedString, err error) {
	if len(s) == 0 {
		return result, errEmptyInput
	}
	i := 0
	if s[0] == minus {
		result.neg = true
		i++
	}
	if result.unit, i, err = scanDigits(s, i); err != nil {
		return result, err
	}
	if i < len(s) && s[i] == delim {
		if result.frac, i, err = scanDigits(s, i+1); err != nil {
			return result, err
		}
	}
	if i < len(s) && s[i] == expDelim {
		if result.exp, i, err = scanExponent(s, i+1); err != nil {
			return result, err
		}
	}
	if i < len(s) {
		return result, unexpectedSymbol(s, i)
	}
	return result, nil
}

// scanDigits reads at least one decimal digit starting at s[from].
// returns the digits and the position right after them.
func scanDigits(s string, from int) (digits string, next int, err error) {
	next = from
	for next < len(s) && '0' <= s[next] && s[next] <= '9' {
		next++
	}
	if next == from {
		if next == len(s) {
			return "", next, newPosError("unexpected end of input", next+1)
		}
		return "", next, unexpectedSymbol(s, next)
	}
	return s[from:next], next, nil
}

func scanExponent(s string, from int) (exp int, next int, err error) {
	start := from
	if from < len(s) && s[from] == minus {
		from++
	}
	if _, next, err = scanDigits(s, from); err != nil {
		return 0, next, err
	}
	exp, err = strconv.Atoi(s[start:next])
	if err != nil {
		return 0, next, newPosError("exponent out of range", start+1)
	}
	return exp, next, nil
}

func unexpectedSymbol(s string, i int) error {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return newPosError(fmt.Sprintf("unexpected symbol %q", r), i+1)
}

// String returns a string representation of the value without exponent notation.
// The value is printed as is: New(big.NewInt(100), -2) is "1.00".
func (d Decimal) String() string {
	var builder strings.Builder
	d.toStringsBuilder(&builder)
	return builder.String()
}

// GoString returns debug string representation.
func (d Decimal) GoString() string {
	return d.String() + fmt.Sprintf(" {%v, %v}", d.significant(), d.exp)
}

func (d Decimal) toStringsBuilder(builder *strings.Builder) {
	sig := d.significant()
	if sig.Sign() == 0 && d.exp >= 0 {
		builder.WriteByte('0')
		return
	}
	if sig.Sign() < 0 {
		builder.WriteByte(minus)
	}
	s := new(big.Int).Abs(sig).String()
	switch e := d.exp; {
	case e >= 0:
		builder.WriteString(s)
		writeZeros(builder, e)
	default:
		if diff := len(s) + e; diff <= 0 { // add leading zeros and a delimiter
			builder.WriteByte('0')
			builder.WriteByte(delim)
			writeZeros(builder, -diff)
			builder.WriteString(s)
		} else { // insert a delimiter
			builder.WriteString(s[:diff])
			builder.WriteByte(delim)
			builder.WriteString(s[diff:])
		}
	}
}

func writeZeros(builder *strings.Builder, count int) {
	for ; count > len(manyZeros); count -= len(manyZeros) {
		builder.WriteString(manyZeros)
	}
	builder.WriteString(manyZeros[:count])
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, see FromString.
func (d *Decimal) UnmarshalText(text []byte) error {
	value, err := FromString(string(text))
	if err != nil {
		return err
	}
	*d = value
	return nil
}

// MarshalJSON marshals the value as a json string, like `"1234.5678"`.
func (d Decimal) MarshalJSON() ([]byte, error) {
	var builder strings.Builder
	builder.WriteByte('"')
	d.toStringsBuilder(&builder)
	builder.WriteByte('"')
	return []byte(builder.String()), nil
}

// UnmarshalJSON unmarshals a json string or number into a value.
// null is a no-op.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	switch {
	case s == "null":
		return nil
	case len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"':
		s = s[1 : len(s)-1]
	default: // a json number may use 'E' and '+' in the exponent.
		s = strings.Replace(strings.ToLower(s), "e+", "e", 1)
	}
	value, err := FromString(s)
	if err != nil {
		return err
	}
	*d = value
	return nil
}

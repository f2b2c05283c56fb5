// Package units converts amounts between the network's named denominations.
//
// Every unit is a fixed power of ten of raw, the smallest denomination, so
// conversion is an exact decimal exponent shift and never rounds.
package units

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/shopspring/decimal"
)

// exponents maps each denomination name to its power-of-ten scale factor
// relative to raw. Fixed at process start, never mutated.
var exponents = map[string]int32{
	"Gxrb": 33,
	"Grai": 33,
	"Mxrb": 30,
	"Mrai": 30,
	"XRB":  30,
	"kxrb": 27,
	"krai": 27,
	"xrb":  24,
	"rai":  24,
	"mxrb": 21,
	"mrai": 21,
	"uxrb": 18,
	"urai": 18,
	"raw":  0,
}

// UnknownUnitError reports a denomination name missing from the unit table.
type UnknownUnitError struct {
	Unit string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit: %q", e.Unit)
}

// InvalidInputError reports an amount supplied in a form the converter
// refuses, such as a binary float.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid amount: %s", e.Reason)
}

// Convert scales amount from one denomination to another.
//
// The amount may be a decimal.Decimal, a numeric string, an integer, or a
// *big.Int. Binary floats are rejected with InvalidInputError: they cannot
// represent the scale ratios exactly, so callers must pass a string or a
// decimal instead.
func Convert(amount any, fromUnit, toUnit string) (decimal.Decimal, error) {
	// The amount is vetted first so that a float fails with
	// InvalidInputError regardless of the unit pair.
	d, err := toDecimal(amount)
	if err != nil {
		return decimal.Zero, err
	}

	expFrom, ok := exponents[fromUnit]
	if !ok {
		return decimal.Zero, &UnknownUnitError{Unit: fromUnit}
	}

	expTo, ok := exponents[toUnit]
	if !ok {
		return decimal.Zero, &UnknownUnitError{Unit: toUnit}
	}

	return d.Shift(expFrom - expTo), nil
}

// Scale returns the scale factor of unit relative to raw.
func Scale(unit string) (decimal.Decimal, error) {
	exp, ok := exponents[unit]
	if !ok {
		return decimal.Zero, &UnknownUnitError{Unit: unit}
	}
	return decimal.New(1, exp), nil
}

// Names returns the valid unit names in sorted order.
func Names() []string {
	names := make([]string, 0, len(exponents))
	for name := range exponents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toDecimal(amount any) (decimal.Decimal, error) {
	switch v := amount.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, &InvalidInputError{Reason: fmt.Sprintf("%q is not a number", v)}
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), nil
	case *big.Int:
		return decimal.NewFromBigInt(v, 0), nil
	case float32, float64:
		return decimal.Zero, &InvalidInputError{
			Reason: "floats lose precision, pass the amount as a string or decimal.Decimal",
		}
	default:
		return decimal.Zero, &InvalidInputError{Reason: fmt.Sprintf("unsupported amount type %T", amount)}
	}
}

package stream

import (
	"errors"
	"fmt"

	sdkmath "cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits of Stellar token amounts.
const Decimals = 7

// ErrInvalidAmount is returned by ParseAmount for malformed input.
var ErrInvalidAmount = errors.New("invalid amount")

// FormatAmount renders an amount in smallest units as a decimal string,
// e.g. 12345000 -> "1.2345". It is meant for display only.
func FormatAmount(v sdkmath.Int) string {
	if v.IsNil() {
		return "0"
	}

	return decimal.NewFromBigInt(v.BigInt(), -Decimals).String()
}

// ParseAmount converts a decimal string such as "1.5" into smallest units.
// More than Decimals fractional digits is an error.
func ParseAmount(s string) (sdkmath.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	scaled := d.Shift(Decimals)
	if !scaled.IsInteger() {
		return sdkmath.Int{}, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, s, Decimals)
	}

	return sdkmath.NewIntFromBigInt(scaled.BigInt()), nil
}

package scoring

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// The engine carries two rounding disciplines that must stay distinct:
// Round2 (half-up) is applied after every arithmetic combination inside
// the reducer and calculator, while Format2 (half-even) is the
// presentation rounding used for period scores. Mixing them drifts
// merged aggregates at API boundaries.

// Round2 rounds to two decimal places, ties away from zero
// (123.455 -> 123.46, -123.456 -> -123.46). Decimal arithmetic on the
// shortest string representation of v, so binary float noise does not
// flip a tie the wrong way.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Format2 rounds to two decimal places, ties to even.
func Format2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}

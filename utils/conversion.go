package utils

import (
	"github.com/shopspring/decimal"
)

// MultiplyExact returns a x b computed in decimal, so litres x rate does not
// pick up binary float error before it is persisted.
func MultiplyExact(a, b float64) float64 {
	return decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).InexactFloat64()
}

// AddExact returns a + b computed in decimal.
func AddExact(a, b float64) float64 {
	return decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).InexactFloat64()
}

// SumExact adds values in decimal and converts once at the end.
func SumExact(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}

// Round2 rounds to two decimals for display. Stored values are never rounded.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

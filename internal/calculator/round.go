package calculator

import "github.com/shopspring/decimal"

// RoundCents rounds a monetary value to 2 decimal places, half away from zero.
func RoundCents(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

package money

import "math"

// RoundCents rounds a dollar amount to two decimal places.
// Rounding happens at every point of computation, not once at the final sum,
// so category totals never accumulate cross-category drift.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// RoundTenth rounds to one decimal place. Used for estimated hours.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// CeilDiv returns ceil(n / d) for positive d.
func CeilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

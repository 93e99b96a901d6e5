package pricing

import "math"

// Round2 rounds a monetary value to cents, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds a stored rate (e.g. tax rate) to 4 decimals.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

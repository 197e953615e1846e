package pricing

import "math"

// Monetary values persisted or compared by this engine are fixed-point:
// rounded immediately after each arithmetic step, 2 decimals for display
// totals and 4 decimals for per-pound rates. Nothing downstream may rely on
// raw float64 equality.

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

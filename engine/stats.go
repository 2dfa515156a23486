package engine

import "math"

// ============================================================================
// STATS — Numeric helpers shared by the analyzers
// ============================================================================
// Empty inputs degrade to 0.0 rather than dividing by zero.
// ============================================================================

// Sum adds up a slice of values.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean, or 0.0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// PopStdDev returns the population standard deviation (divisor N, not N-1).
// A single-element or empty slice yields 0.0.
func PopStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

package utils

import "math"

// FormatFloat rounds f to the given number of decimal places, passing
// NaN and Inf through unchanged.
func FormatFloat(f float64, round int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	pow := math.Pow(10, float64(round))
	return math.Round(f*pow) / pow
}

// FormatFloats applies FormatFloat to every element of a copy of values.
func FormatFloats(values []float64, round int) []float64 {
	res := make([]float64, len(values))
	for i, v := range values {
		res[i] = FormatFloat(v, round)
	}
	return res
}

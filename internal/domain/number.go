package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts raw form text to a float64.
// Text that is not a finite number yields NaN; callers decide what NaN means.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// FormatPrediction renders a yield prediction with two decimals.
func FormatPrediction(v float64) string {
	return strconv.FormatFloat(roundHalfUp(v, 100), 'f', 2, 64)
}

// FormatConfidence renders a confidence percentage rounded to one decimal.
func FormatConfidence(v float64) string {
	return strconv.FormatFloat(roundHalfUp(v, 10), 'f', 1, 64) + "%"
}

// roundHalfUp rounds v to 1/scale with ties away from zero, the way the web
// page's toFixed does. FormatFloat alone rounds ties to even.
func roundHalfUp(v, scale float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*scale) / scale
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

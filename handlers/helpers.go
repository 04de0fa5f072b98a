package handlers

import (
	"math"
	"strconv"
)

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func numOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatNumber renders a float the way it arrived: whole values without a
// decimal point.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

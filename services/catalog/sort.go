package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"tripdesk/models"
)

// SortGuides stably orders guides by one named field. An empty field keeps
// the input order; records missing the sort field sink to the end of an
// ascending sort.
func SortGuides(guides []models.GuideProfile, sortBy, sortOrder string) []models.GuideProfile {
	if sortBy == "" {
		return guides
	}

	sorted := make([]models.GuideProfile, len(guides))
	copy(sorted, guides)

	key := func(g models.GuideProfile) float64 {
		switch sortBy {
		case "price":
			return numOrDefault(g.Price, math.Inf(1))
		case "rating":
			return numOrDefault(g.Rating, math.Inf(-1))
		case "experience":
			return numOrDefault(g.ExperienceYears, math.Inf(-1))
		case "reviews":
			return float64(g.TotalReviews)
		default:
			return 0
		}
	}

	direction := 1.0
	if sortOrder == "desc" {
		direction = -1
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i])*direction < key(sorted[j])*direction
	})
	return sorted
}

// SortTransport stably orders transport options by one named field.
func SortTransport(options []models.TransportOption, sortBy, sortOrder string) []models.TransportOption {
	if sortBy == "" {
		return options
	}

	sorted := make([]models.TransportOption, len(options))
	copy(sorted, options)

	key := func(t models.TransportOption) float64 {
		switch sortBy {
		case "price":
			return numOrDefault(t.Price, math.Inf(1))
		case "duration":
			return durationMinutes(t.Schedule.Duration)
		case "rating":
			return numOrDefault(t.Rating, math.Inf(-1))
		default:
			return 0
		}
	}

	direction := 1.0
	if sortOrder == "desc" {
		direction = -1
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i])*direction < key(sorted[j])*direction
	})
	return sorted
}

func numOrDefault(v *float64, missing float64) float64 {
	if v == nil {
		return missing
	}
	return *v
}

// durationMinutes extracts the leading number from a duration description
// like "45 minutes"; options without a parseable duration sink to the end.
func durationMinutes(duration *string) float64 {
	if duration == nil {
		return math.Inf(1)
	}
	fields := strings.Fields(*duration)
	if len(fields) == 0 {
		return math.Inf(1)
	}
	if minutes, err := strconv.ParseFloat(fields[0], 64); err == nil {
		return minutes
	}
	return math.Inf(1)
}

package catalog

import (
	"strings"

	"tripdesk/models"
)

// FilterGuides evaluates the conjunction of every active guide predicate.
// Absent parameters skip their predicate, so adding one can only shrink or
// preserve the result set.
func FilterGuides(guides []models.GuideProfile, p GuideSearchParams) []models.GuideProfile {
	out := make([]models.GuideProfile, 0, len(guides))
	for _, guide := range guides {
		if guideMatches(guide, p) {
			out = append(out, guide)
		}
	}
	return out
}

func guideMatches(g models.GuideProfile, p GuideSearchParams) bool {
	if p.Location != "" {
		needle := strings.ToLower(strings.TrimSpace(p.Location))
		haystack := []*string{g.Area, g.Location.City, g.Location.Region, g.Location.Country}
		found := false
		for _, candidate := range haystack {
			if candidate != nil && strings.ToLower(strings.TrimSpace(*candidate)) == needle {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if p.Area != "" {
		area := ""
		if g.Area != nil {
			area = *g.Area
		}
		if !strings.EqualFold(strings.TrimSpace(area), strings.TrimSpace(p.Area)) {
			return false
		}
	}

	if len(p.Specialties) > 0 && !containsAll(g.Specialties, p.Specialties) {
		return false
	}
	if len(p.Languages) > 0 && !containsAll(g.Languages, p.Languages) {
		return false
	}
	if len(p.Services) > 0 && !containsAll(g.ServicesOffered, p.Services) {
		return false
	}

	// Numeric predicates are skipped when the record has no numeric value;
	// a missing price never disqualifies a guide from a max_price search.
	if p.MaxPrice != nil && g.Price != nil && *g.Price > *p.MaxPrice {
		return false
	}
	if p.MinRating != nil && g.Rating != nil && *g.Rating < *p.MinRating {
		return false
	}
	if p.ExperienceYears != nil && g.ExperienceYears != nil && *g.ExperienceYears < *p.ExperienceYears {
		return false
	}

	if p.AvailabilityDate != "" && !g.Availability {
		return false
	}

	return true
}

// FilterTransport evaluates the conjunction of every active transport
// predicate.
func FilterTransport(options []models.TransportOption, p TransportSearchParams) []models.TransportOption {
	out := make([]models.TransportOption, 0, len(options))
	for _, option := range options {
		if transportMatches(option, p) {
			out = append(out, option)
		}
	}
	return out
}

func transportMatches(t models.TransportOption, p TransportSearchParams) bool {
	if p.From != "" && !ptrEqualFold(t.FromLocation, p.From) {
		return false
	}
	if p.To != "" && !ptrEqualFold(t.ToLocation, p.To) {
		return false
	}
	if p.TransportType != "" && !ptrEqualFold(t.Type, p.TransportType) {
		return false
	}
	if p.MaxPrice != nil && t.Price != nil && *t.Price > *p.MaxPrice {
		return false
	}
	if len(p.Features) > 0 && !containsAll(t.Features, p.Features) {
		return false
	}
	if p.Date != "" && !t.Availability {
		return false
	}
	return true
}

func ptrEqualFold(have *string, want string) bool {
	if have == nil {
		return false
	}
	return strings.EqualFold(*have, want)
}

// containsAll implements the contains-all tag predicate: every requested
// entry must appear in the record's list, case-insensitively.
func containsAll(have []string, want []string) bool {
	lowered := make(map[string]struct{}, len(have))
	for _, entry := range have {
		lowered[strings.ToLower(entry)] = struct{}{}
	}
	for _, entry := range want {
		if _, ok := lowered[strings.ToLower(entry)]; !ok {
			return false
		}
	}
	return true
}

package catalog

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultPageSize bounds a result page when the caller does not say.
const DefaultPageSize = 20

// GuideSearchParams carries every optional guide filter plus sorting and
// pagination. Nil/empty fields mean "no constraint".
type GuideSearchParams struct {
	Location         string
	Area             string
	Specialties      []string
	Languages        []string
	MaxPrice         *float64
	MinRating        *float64
	ExperienceYears  *float64
	Services         []string
	AvailabilityDate string
	SortBy           string
	SortOrder        string
	Page             int
	Limit            int
}

// TransportSearchParams mirrors GuideSearchParams for the transport domain.
type TransportSearchParams struct {
	From          string
	To            string
	TransportType string
	MaxPrice      *float64
	Features      []string
	Date          string
	SortBy        string
	SortOrder     string
	Page          int
	Limit         int
}

// BuildGuideParams assembles search params from a loosely-typed request
// (query string values or a JSON body decoded into a map).
func BuildGuideParams(raw map[string]interface{}) GuideSearchParams {
	p := GuideSearchParams{
		Location:         ToString(raw["location"]),
		Area:             ToString(raw["area"]),
		Specialties:      ToList(raw["specialties"]),
		Languages:        ToList(raw["languages"]),
		MaxPrice:         ToNumber(raw["max_price"]),
		MinRating:        ToNumber(raw["min_rating"]),
		ExperienceYears:  ToNumber(raw["experience_years"]),
		Services:         ToList(raw["services"]),
		AvailabilityDate: ToString(raw["availability_date"]),
		SortBy:           ToString(raw["sort_by"]),
		SortOrder:        ToString(raw["sort_order"]),
		Page:             ToInt(raw["page"], 1),
		Limit:            ToInt(raw["limit"], DefaultPageSize),
	}
	if p.SortOrder == "" {
		p.SortOrder = "asc"
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	return p
}

// BuildTransportParams assembles transport search params the same way.
func BuildTransportParams(raw map[string]interface{}) TransportSearchParams {
	p := TransportSearchParams{
		From:          ToString(raw["from"]),
		To:            ToString(raw["to"]),
		TransportType: ToString(raw["transport_type"]),
		MaxPrice:      ToNumber(raw["max_price"]),
		Features:      ToList(raw["features"]),
		Date:          ToString(raw["date"]),
		SortBy:        ToString(raw["sort_by"]),
		SortOrder:     ToString(raw["sort_order"]),
		Page:          ToInt(raw["page"], 1),
		Limit:         ToInt(raw["limit"], DefaultPageSize),
	}
	if p.SortOrder == "" {
		p.SortOrder = "asc"
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	return p
}

// FiltersApplied reports which guide constraints were active, for the
// response envelope.
func (p GuideSearchParams) FiltersApplied() map[string]interface{} {
	filters := map[string]interface{}{}
	if p.Location != "" {
		filters["location"] = p.Location
	}
	if p.Area != "" {
		filters["area"] = p.Area
	}
	if len(p.Specialties) > 0 {
		filters["specialties"] = p.Specialties
	}
	if len(p.Languages) > 0 {
		filters["languages"] = p.Languages
	}
	if p.MaxPrice != nil {
		filters["max_price"] = *p.MaxPrice
	}
	if p.MinRating != nil {
		filters["min_rating"] = *p.MinRating
	}
	if p.ExperienceYears != nil {
		filters["experience_years"] = *p.ExperienceYears
	}
	if len(p.Services) > 0 {
		filters["services"] = p.Services
	}
	if p.AvailabilityDate != "" {
		filters["availability_date"] = p.AvailabilityDate
	}
	return filters
}

// FiltersApplied reports which transport constraints were active.
func (p TransportSearchParams) FiltersApplied() map[string]interface{} {
	filters := map[string]interface{}{}
	if p.From != "" {
		filters["from"] = p.From
	}
	if p.To != "" {
		filters["to"] = p.To
	}
	if p.TransportType != "" {
		filters["transport_type"] = p.TransportType
	}
	if p.MaxPrice != nil {
		filters["max_price"] = *p.MaxPrice
	}
	if len(p.Features) > 0 {
		filters["features"] = p.Features
	}
	if p.Date != "" {
		filters["date"] = p.Date
	}
	return filters
}

// ToString renders a scalar request value as a string.
func ToString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// ToList coerces a request value into a string list. Accepted shapes: an
// actual list, a JSON array in a string, or a comma-separated string.
func ToList(v interface{}) []string {
	switch value := v.(type) {
	case []string:
		return value
	case []interface{}:
		out := make([]string, 0, len(value))
		for _, entry := range value {
			if s, ok := entry.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil
		}
		var parsed []string
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return parsed
		}
		var out []string
		for _, entry := range strings.Split(trimmed, ",") {
			if entry = strings.TrimSpace(entry); entry != "" {
				out = append(out, entry)
			}
		}
		return out
	default:
		return nil
	}
}

// ToNumber coerces a request value into a float, accepting numeric strings.
// Anything else yields nil, which downstream treats as "constraint absent".
func ToNumber(v interface{}) *float64 {
	switch value := v.(type) {
	case float64:
		return &value
	case int:
		f := float64(value)
		return &f
	case string:
		if value == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}

// ToInt coerces a request value into an int with a fallback.
func ToInt(v interface{}, fallback int) int {
	if n := ToNumber(v); n != nil {
		return int(*n)
	}
	return fallback
}

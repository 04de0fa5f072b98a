package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripdesk/models"
	"tripdesk/services/catalog"
)

// PackageHandler serves the package-builder integration endpoints: trimmed
// catalog views and location/route analyses used when composing trip
// packages.
type PackageHandler struct {
	Catalog *catalog.Service
}

// GuideOptions handles GET /api/packages/guide-options.
func (h *PackageHandler) GuideOptions(c *gin.Context) {
	params := catalog.GuideSearchParams{
		Location:    c.Query("location"),
		Specialties: catalog.ToList(c.Query("specialties")),
		MaxPrice:    catalog.ToNumber(c.Query("budget_range")),
	}

	guides, _, err := h.Catalog.Guides(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	options := make([]gin.H, 0)
	for _, guide := range catalog.FilterGuides(guides, params) {
		options = append(options, gin.H{
			"id":                    guide.ID,
			"name":                  guide.Name,
			"description":           guide.Description,
			"image":                 guide.Image,
			"price":                 guide.Price,
			"area":                  guide.Area,
			"specialties":           guide.Specialties,
			"rating":                guide.Rating,
			"suitable_for_packages": true,
		})
	}

	respond(c, http.StatusOK, gin.H{"guide_options": options}, "Package guide options retrieved successfully")
}

// AnalyzeLocationGuides handles POST /api/packages/analyze-location-guides,
// scoring the guides available at one location against trip preferences.
func (h *PackageHandler) AnalyzeLocationGuides(c *gin.Context) {
	payload, err := bodyMap(c)
	if err != nil {
		respondError(c, err)
		return
	}
	location := catalog.ToString(payload["location"])
	if location == "" {
		respondError(c, catalog.ValidationError{Message: "location is required"})
		return
	}

	preferences, _ := payload["preferences"].(map[string]interface{})
	params := catalog.GuideSearchParams{
		Location:    location,
		Specialties: catalog.ToList(preferences["interests"]),
		Languages:   catalog.ToList(preferences["languages"]),
		MaxPrice:    catalog.ToNumber(payload["budget"]),
		MinRating:   catalog.ToNumber(preferences["min_rating"]),
		Services:    catalog.ToList(preferences["activities"]),
	}
	if catalog.ToString(preferences["experience_level"]) == "expert" {
		years := 5.0
		params.ExperienceYears = &years
	}

	guides, _, err := h.Catalog.Guides(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	filtered := catalog.FilterGuides(guides, params)

	recommended := make([]gin.H, 0, 3)
	for i, guide := range filtered {
		if i == 3 {
			break
		}
		status := "limited"
		if guide.Availability {
			status = "available"
		}
		recommended = append(recommended, gin.H{
			"guide":               guide,
			"match_score":         round2(0.9 - float64(i)*0.1),
			"reasons":             []string{"Matches requested specialties", "High rating"},
			"estimated_cost":      numOr(guide.Price, 0),
			"availability_status": status,
		})
	}

	prices := make([]float64, 0, len(filtered))
	specialties := []string{}
	services := []string{}
	for _, guide := range filtered {
		if guide.Price != nil {
			prices = append(prices, *guide.Price)
		}
		specialties = appendUnique(specialties, guide.Specialties...)
		services = appendUnique(services, guide.ServicesOffered...)
	}
	if len(services) > 5 {
		services = services[:5]
	}

	respond(c, http.StatusOK, gin.H{
		"location":              location,
		"available_guides":      filtered,
		"recommended_guides":    recommended,
		"specialties_available": specialties,
		"price_range":           priceRange(prices),
		"popular_services":      services,
	}, "Location guide analysis completed successfully")
}

// TransportOptions handles GET /api/packages/transport-options.
func (h *PackageHandler) TransportOptions(c *gin.Context) {
	params := catalog.TransportSearchParams{
		From:          c.Query("from_location"),
		To:            c.Query("to_location"),
		TransportType: c.Query("package_type"),
		MaxPrice:      catalog.ToNumber(c.Query("budget_range")),
	}

	transports, _, err := h.Catalog.Transports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	options := make([]gin.H, 0)
	for _, option := range catalog.FilterTransport(transports, params) {
		options = append(options, gin.H{
			"id":                    option.ID,
			"name":                  option.Name,
			"description":           option.Route,
			"image":                 option.Image,
			"price":                 option.Price,
			"type":                  option.Type,
			"route":                 option.Route,
			"features":              option.Features,
			"estimated_duration":    option.Schedule.Duration,
			"suitable_for_packages": true,
			"package_discount":      10,
		})
	}

	respond(c, http.StatusOK, gin.H{"transport_options": options}, "Package transport options retrieved successfully")
}

// AnalyzeRoute handles POST /api/packages/analyze-route, comparing the
// transport options between two locations.
func (h *PackageHandler) AnalyzeRoute(c *gin.Context) {
	payload, err := bodyMap(c)
	if err != nil {
		respondError(c, err)
		return
	}
	from := catalog.ToString(payload["from_location"])
	to := catalog.ToString(payload["to_location"])
	if from == "" || to == "" {
		respondError(c, catalog.ValidationError{Message: "from_location and to_location are required"})
		return
	}

	preferences, _ := payload["preferences"].(map[string]interface{})
	params := catalog.TransportSearchParams{
		From:          from,
		To:            to,
		TransportType: catalog.ToString(preferences["preferred_type"]),
		MaxPrice:      catalog.ToNumber(payload["package_budget"]),
		Features:      catalog.ToList(preferences["features"]),
	}

	transports, _, err := h.Catalog.Transports(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	filtered := catalog.FilterTransport(transports, params)

	duration := "Varies"
	var recommended gin.H
	if len(filtered) > 0 {
		best := filtered[0]
		if best.Schedule.Duration != nil {
			duration = *best.Schedule.Duration
		}
		recommended = gin.H{
			"id":     best.ID,
			"name":   best.Name,
			"reason": "Best match based on preferences",
		}
	}

	prices := make([]float64, 0, len(filtered))
	for _, option := range filtered {
		if option.Price != nil {
			prices = append(prices, *option.Price)
		}
	}

	response := gin.H{
		"from_location":         from,
		"to_location":           to,
		"distance":              numOr(catalog.ToNumber(payload["distance"]), 0),
		"estimated_duration":    duration,
		"available_transports":  filtered,
		"recommended_transport": recommended,
		"cost_comparison": gin.H{
			"cheapest":         cheapestOption(filtered),
			"fastest":          firstWithDuration(filtered),
			"most_comfortable": firstWithAmenities(filtered),
		},
	}
	if len(prices) > 0 {
		response["price_summary"] = priceRange(prices)
	}

	respond(c, http.StatusOK, response, "Route analysis completed successfully")
}

func cheapestOption(options []models.TransportOption) *models.TransportOption {
	var cheapest *models.TransportOption
	for i := range options {
		if options[i].Price == nil {
			continue
		}
		if cheapest == nil || *options[i].Price < *cheapest.Price {
			cheapest = &options[i]
		}
	}
	return cheapest
}

func firstWithDuration(options []models.TransportOption) *models.TransportOption {
	for i := range options {
		if options[i].Schedule.Duration != nil {
			return &options[i]
		}
	}
	return nil
}

func firstWithAmenities(options []models.TransportOption) *models.TransportOption {
	for i := range options {
		if len(options[i].Amenities) > 0 {
			return &options[i]
		}
	}
	return nil
}

func priceRange(prices []float64) gin.H {
	if len(prices) == 0 {
		return gin.H{"min": nil, "max": nil, "average": nil}
	}
	min, max, sum := prices[0], prices[0], 0.0
	for _, price := range prices {
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
		sum += price
	}
	return gin.H{
		"min":     min,
		"max":     max,
		"average": round2(sum / float64(len(prices))),
	}
}

func appendUnique(dst []string, items ...string) []string {
	for _, item := range items {
		seen := false
		for _, existing := range dst {
			if existing == item {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, item)
		}
	}
	return dst
}

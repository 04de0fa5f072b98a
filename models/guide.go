package models

// GuideProfile is the canonical guide record. Every field is present in the
// serialized form regardless of the shape of the source record; scalar
// pointers are null when the source carried nothing usable.
type GuideProfile struct {
	ID              interface{}    `json:"id"`
	Name            *string        `json:"name"`
	Description     *string        `json:"description"`
	Image           *string        `json:"image"`
	Price           *float64       `json:"price"`
	HourlyRate      *float64       `json:"hourly_rate"`
	DailyRate       *float64       `json:"daily_rate"`
	Currency        *string        `json:"currency"`
	Area            *string        `json:"area"`
	Specialties     []string       `json:"specialties"`
	Languages       []string       `json:"languages"`
	ExperienceYears *float64       `json:"experience_years"`
	Rating          *float64       `json:"rating"`
	TotalReviews    int            `json:"total_reviews"`
	Availability    bool           `json:"availability"`
	ContactInfo     ContactInfo    `json:"contact_info"`
	Location        Location       `json:"location"`
	ServicesOffered []string       `json:"services_offered"`
	Certifications  []string       `json:"certifications"`
	Schedule        GuideSchedule  `json:"schedule"`
	PricingDetails  PricingDetails `json:"pricing_details"`
	Gallery         []string       `json:"gallery"`
	Badges          []string       `json:"badges"`
	CreatedAt       *string        `json:"created_at"`
	UpdatedAt       *string        `json:"updated_at"`
}

type ContactInfo struct {
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	WhatsApp *string `json:"whatsapp"`
}

type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type Location struct {
	City        *string     `json:"city"`
	Region      *string     `json:"region"`
	Country     *string     `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

type GuideSchedule struct {
	WorkingHours  *string  `json:"working_hours"`
	AvailableDays []string `json:"available_days"`
	Timezone      *string  `json:"timezone"`
}

type PackageRates struct {
	HalfDay  *float64 `json:"half_day"`
	FullDay  *float64 `json:"full_day"`
	MultiDay *float64 `json:"multi_day"`
}

type PricingDetails struct {
	BaseRate       *float64      `json:"base_rate"`
	GroupDiscounts []interface{} `json:"group_discounts"`
	PackageRates   PackageRates  `json:"package_rates"`
}

// DefaultGuide returns the canonical guide shape with every field at its
// default. List fields start as empty slices, never nil.
func DefaultGuide() GuideProfile {
	return GuideProfile{
		Specialties:     []string{},
		Languages:       []string{},
		ServicesOffered: []string{},
		Certifications:  []string{},
		Gallery:         []string{},
		Badges:          []string{},
		Schedule:        GuideSchedule{AvailableDays: []string{}},
		PricingDetails:  PricingDetails{GroupDiscounts: []interface{}{}},
	}
}

// NormalizeGuide maps a raw guide record of arbitrary shape into the
// canonical GuideProfile. Resolution order per field: same-named key when
// present and non-null, then known legacy keys, then the default. Unknown
// input keys are discarded.
func NormalizeGuide(raw RawRecord) GuideProfile {
	g := DefaultGuide()

	if id, ok := raw["id"]; ok && id != nil {
		g.ID = normalizeID(id)
	} else if alt, ok := raw["guide_id"]; ok && alt != nil {
		g.ID = normalizeID(alt)
	}

	setString(&g.Name, raw, "name")
	setString(&g.Description, raw, "description")
	setString(&g.Image, raw, "image")
	setNumber(&g.Price, raw, "price")
	setNumber(&g.HourlyRate, raw, "hourly_rate")
	setNumber(&g.DailyRate, raw, "daily_rate")
	setString(&g.Currency, raw, "currency")
	setString(&g.Area, raw, "area")
	setNumber(&g.ExperienceYears, raw, "experience_years")
	setNumber(&g.Rating, raw, "rating")
	setString(&g.CreatedAt, raw, "created_at")
	setString(&g.UpdatedAt, raw, "updated_at")

	if n, ok := rawNumber(raw, "total_reviews"); ok {
		g.TotalReviews = int(n)
	}
	if b, ok := rawBool(raw, "availability"); ok {
		g.Availability = b
	}

	// Legacy field names still seen in older exports.
	if g.Currency == nil {
		setString(&g.Currency, raw, "currency_code")
	}
	if g.HourlyRate == nil {
		setNumber(&g.HourlyRate, raw, "hourlyRate")
	}
	if g.DailyRate == nil {
		setNumber(&g.DailyRate, raw, "dailyRate")
	}

	g.Specialties = listOrEmpty(raw, "specialties")
	g.Languages = listOrEmpty(raw, "languages")
	if services, ok := rawList(raw, "services_offered"); ok {
		g.ServicesOffered = services
	} else if services, ok := rawList(raw, "services"); ok {
		g.ServicesOffered = services
	}
	g.Certifications = listOrEmpty(raw, "certifications")
	g.Gallery = listOrEmpty(raw, "gallery")
	g.Badges = listOrEmpty(raw, "badges")

	if contact, ok := rawObject(raw, "contact_info"); ok {
		setString(&g.ContactInfo.Phone, contact, "phone")
		setString(&g.ContactInfo.Email, contact, "email")
		setString(&g.ContactInfo.WhatsApp, contact, "whatsapp")
	}

	// Location comes either embedded or from a joined destination record.
	location, haveLocation := rawObject(raw, "location")
	if !haveLocation {
		location, haveLocation = rawObject(raw, "destination")
	}
	if haveLocation {
		setString(&g.Location.City, location, "city")
		setString(&g.Location.Region, location, "region")
		setString(&g.Location.Country, location, "country")
		if coords, ok := rawObject(location, "coordinates"); ok {
			setNumber(&g.Location.Coordinates.Latitude, coords, "latitude")
			setNumber(&g.Location.Coordinates.Longitude, coords, "longitude")
		}
	}

	if schedule, ok := rawObject(raw, "schedule"); ok {
		setString(&g.Schedule.WorkingHours, schedule, "working_hours")
		setString(&g.Schedule.Timezone, schedule, "timezone")
		g.Schedule.AvailableDays = listOrEmpty(schedule, "available_days")
	}

	if pricing, ok := rawObject(raw, "pricing_details"); ok {
		setNumber(&g.PricingDetails.BaseRate, pricing, "base_rate")
		if discounts, ok := pricing["group_discounts"].([]interface{}); ok {
			g.PricingDetails.GroupDiscounts = discounts
		}
		if rates, ok := rawObject(pricing, "package_rates"); ok {
			setNumber(&g.PricingDetails.PackageRates.HalfDay, rates, "half_day")
			setNumber(&g.PricingDetails.PackageRates.FullDay, rates, "full_day")
			setNumber(&g.PricingDetails.PackageRates.MultiDay, rates, "multi_day")
		}
	}
	if g.PricingDetails.BaseRate == nil && g.Price != nil {
		g.PricingDetails.BaseRate = numPtr(*g.Price)
	}

	return g
}

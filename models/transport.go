package models

import (
	"fmt"
	"strings"
)

// TransportOption is the canonical transport record.
type TransportOption struct {
	ID           interface{}       `json:"id"`
	Type         *string           `json:"type"`
	Name         *string           `json:"name"`
	Route        *string           `json:"route"`
	FromLocation *string           `json:"from_location"`
	ToLocation   *string           `json:"to_location"`
	Frequency    *string           `json:"frequency"`
	Price        *float64          `json:"price"`
	Currency     *string           `json:"currency"`
	Image        *string           `json:"image"`
	Features     []string          `json:"features"`
	Rating       *float64          `json:"rating"`
	Availability bool              `json:"availability"`
	Operator     *string           `json:"operator"`
	ContactInfo  TransportContact  `json:"contact_info"`
	Schedule     TransportSchedule `json:"schedule"`
	Amenities    []string          `json:"amenities"`
	CreatedAt    *string           `json:"created_at"`
	UpdatedAt    *string           `json:"updated_at"`
}

type TransportContact struct {
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Website *string `json:"website"`
}

type TransportSchedule struct {
	DepartureTimes []string `json:"departure_times"`
	Duration       *string  `json:"duration"`
	Stops          []string `json:"stops"`
}

// DefaultTransportOption returns the canonical transport shape with every
// field at its default.
func DefaultTransportOption() TransportOption {
	return TransportOption{
		Features:  []string{},
		Amenities: []string{},
		Schedule:  TransportSchedule{DepartureTimes: []string{}, Stops: []string{}},
	}
}

// toTitleCase turns an underscore-delimited token into title case:
// "water_taxi" becomes "Water Taxi".
func toTitleCase(value string) string {
	words := strings.Split(value, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// NormalizeTransportOption maps a raw transport record of arbitrary shape
// into the canonical TransportOption.
func NormalizeTransportOption(raw RawRecord) TransportOption {
	t := DefaultTransportOption()

	if id, ok := raw["id"]; ok && id != nil {
		t.ID = normalizeID(id)
	} else if alt, ok := raw["transport_id"]; ok && alt != nil {
		t.ID = normalizeID(alt)
	}

	setString(&t.Type, raw, "type")
	setString(&t.Name, raw, "name")
	setString(&t.Route, raw, "route")
	setString(&t.FromLocation, raw, "from_location")
	setString(&t.ToLocation, raw, "to_location")
	setString(&t.Frequency, raw, "frequency")
	setNumber(&t.Price, raw, "price")
	setString(&t.Currency, raw, "currency")
	setString(&t.Image, raw, "image")
	setNumber(&t.Rating, raw, "rating")
	setString(&t.Operator, raw, "operator")
	setString(&t.CreatedAt, raw, "created_at")
	setString(&t.UpdatedAt, raw, "updated_at")

	if b, ok := rawBool(raw, "availability"); ok {
		t.Availability = b
	}

	// Joined destination records supply endpoints when the flat columns are
	// absent; the destination name wins over its city.
	if t.FromLocation == nil {
		if dest, ok := rawObject(raw, "from_destination"); ok {
			if name, ok := rawString(dest, "name"); ok {
				t.FromLocation = strPtr(name)
			} else if city, ok := rawString(dest, "city"); ok {
				t.FromLocation = strPtr(city)
			}
		}
	}
	if t.ToLocation == nil {
		if dest, ok := rawObject(raw, "to_destination"); ok {
			if name, ok := rawString(dest, "name"); ok {
				t.ToLocation = strPtr(name)
			} else if city, ok := rawString(dest, "city"); ok {
				t.ToLocation = strPtr(city)
			}
		}
	}

	if t.Type == nil {
		setString(&t.Type, raw, "transport_type")
	}
	if t.Type != nil {
		collapsed := strings.Join(strings.Fields(*t.Type), "_")
		t.Type = strPtr(toTitleCase(collapsed))
	}

	if t.Route == nil {
		from, okFrom := rawString(raw, "from_location")
		to, okTo := rawString(raw, "to_location")
		if okFrom && okTo {
			t.Route = strPtr(from + " to " + to)
		}
	}

	// Currency-specific price columns: first match wins and fixes the currency.
	if t.Price == nil {
		if chf, ok := rawNumber(raw, "price_chf"); ok {
			t.Price = numPtr(chf)
			if t.Currency == nil {
				t.Currency = strPtr("CHF")
			}
		}
	}
	if t.Price == nil {
		if usd, ok := rawNumber(raw, "price_usd"); ok {
			t.Price = numPtr(usd)
			if t.Currency == nil {
				t.Currency = strPtr("USD")
			}
		}
	}
	if t.Currency == nil {
		setString(&t.Currency, raw, "currency_code")
	}

	if t.Frequency == nil {
		if interval, ok := rawNumber(raw, "interval_minutes"); ok {
			t.Frequency = strPtr(fmt.Sprintf("Every %v minutes", trimFloat(interval)))
		}
	}

	t.Features = listOrEmpty(raw, "features")
	t.Amenities = listOrEmpty(raw, "amenities")

	if contact, ok := rawObject(raw, "contact_info"); ok {
		setString(&t.ContactInfo.Phone, contact, "phone")
		setString(&t.ContactInfo.Email, contact, "email")
		setString(&t.ContactInfo.Website, contact, "website")
	}

	schedule, _ := rawObject(raw, "schedule")

	if times, ok := rawList(schedule, "departure_times"); ok {
		t.Schedule.DepartureTimes = times
	} else if times, ok := rawList(raw, "departures"); ok {
		t.Schedule.DepartureTimes = times
	}

	if duration, ok := rawString(schedule, "duration"); ok {
		t.Schedule.Duration = strPtr(duration)
	} else if minutes, ok := rawNumber(raw, "duration_minutes"); ok {
		t.Schedule.Duration = strPtr(fmt.Sprintf("%v minutes", trimFloat(minutes)))
	}

	if stops, ok := rawList(schedule, "stops"); ok {
		t.Schedule.Stops = stops
	} else if stops, ok := rawList(raw, "stops"); ok {
		t.Schedule.Stops = stops
	}

	return t
}

// trimFloat renders whole numbers without a decimal point.
func trimFloat(f float64) interface{} {
	if f == float64(int64(f)) {
		return int64(f)
	}
	return f
}

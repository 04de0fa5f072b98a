package models

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTransportOptionEmptyRecord(t *testing.T) {
	opt := NormalizeTransportOption(RawRecord{})

	assert.Nil(t, opt.ID)
	assert.Nil(t, opt.Type)
	assert.Nil(t, opt.Route)
	assert.False(t, opt.Availability)
	assert.NotNil(t, opt.Features)
	assert.NotNil(t, opt.Amenities)
	assert.NotNil(t, opt.Schedule.DepartureTimes)
	assert.NotNil(t, opt.Schedule.Stops)
}

func TestNormalizeTransportOptionCurrencyColumns(t *testing.T) {
	opt := NormalizeTransportOption(RawRecord{
		"price_usd": float64(12),
		"from_destination": map[string]interface{}{
			"city": "Accra",
		},
	})

	require.NotNil(t, opt.Price)
	assert.Equal(t, float64(12), *opt.Price)
	assert.Equal(t, "USD", *opt.Currency)
	assert.Equal(t, "Accra", *opt.FromLocation)

	// CHF column outranks USD; an explicit price outranks both.
	chf := NormalizeTransportOption(RawRecord{
		"price_chf": float64(30),
		"price_usd": float64(33),
	})
	assert.Equal(t, float64(30), *chf.Price)
	assert.Equal(t, "CHF", *chf.Currency)

	explicit := NormalizeTransportOption(RawRecord{
		"price":     float64(5),
		"price_chf": float64(30),
		"currency":  "BDT",
	})
	assert.Equal(t, float64(5), *explicit.Price)
	assert.Equal(t, "BDT", *explicit.Currency)
}

func TestNormalizeTransportOptionTypeTitleCase(t *testing.T) {
	opt := NormalizeTransportOption(RawRecord{"type": "water_taxi"})
	assert.Equal(t, "Water Taxi", *opt.Type)

	legacy := NormalizeTransportOption(RawRecord{"transport_type": "intercity bus"})
	assert.Equal(t, "Intercity Bus", *legacy.Type)
}

func TestNormalizeTransportOptionRouteSynthesis(t *testing.T) {
	opt := NormalizeTransportOption(RawRecord{
		"from_location": "Dhaka",
		"to_location":   "Chittagong",
	})
	assert.Equal(t, "Dhaka to Chittagong", *opt.Route)

	// An explicit route always wins.
	explicit := NormalizeTransportOption(RawRecord{
		"route":         "Express Line",
		"from_location": "Dhaka",
		"to_location":   "Chittagong",
	})
	assert.Equal(t, "Express Line", *explicit.Route)
}

func TestNormalizeTransportOptionDestinationJoin(t *testing.T) {
	opt := NormalizeTransportOption(RawRecord{
		"from_destination": map[string]interface{}{"name": "Sadarghat Terminal", "city": "Dhaka"},
		"to_destination":   map[string]interface{}{"city": "Barishal"},
	})

	// The destination name wins over its city.
	assert.Equal(t, "Sadarghat Terminal", *opt.FromLocation)
	assert.Equal(t, "Barishal", *opt.ToLocation)
	assert.Equal(t, "Sadarghat Terminal to Barishal", *opt.Route)
}

func TestNormalizeTransportOptionScheduleSynthesis(t *testing.T) {
	opt := NormalizeTransportOption(RawRecord{
		"interval_minutes": float64(45),
		"duration_minutes": float64(360),
		"departures":       []interface{}{"07:00", "09:30"},
		"stops":            []interface{}{"Comilla"},
	})

	assert.Equal(t, "Every 45 minutes", *opt.Frequency)
	assert.Equal(t, "360 minutes", *opt.Schedule.Duration)
	assert.Equal(t, []string{"07:00", "09:30"}, opt.Schedule.DepartureTimes)
	assert.Equal(t, []string{"Comilla"}, opt.Schedule.Stops)

	nested := NormalizeTransportOption(RawRecord{
		"schedule": map[string]interface{}{
			"departure_times": []interface{}{"22:30"},
			"duration":        "6 hours",
			"stops":           []interface{}{"Feni"},
		},
	})
	assert.Equal(t, []string{"22:30"}, nested.Schedule.DepartureTimes)
	assert.Equal(t, "6 hours", *nested.Schedule.Duration)
	assert.Equal(t, []string{"Feni"}, nested.Schedule.Stops)
}

func TestNormalizeTransportOptionIdempotent(t *testing.T) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	first := NormalizeTransportOption(RawRecord{
		"id":               float64(3),
		"type":             "river_launch",
		"name":             "MV Parabat",
		"from_location":    "Dhaka",
		"to_location":      "Barishal",
		"price":            float64(6),
		"interval_minutes": float64(1440),
		"duration_minutes": float64(540),
		"features":         []interface{}{"cabin"},
		"availability":     true,
	})

	payload, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTrip RawRecord
	require.NoError(t, json.Unmarshal(payload, &roundTrip))

	assert.Equal(t, first, NormalizeTransportOption(roundTrip))
}

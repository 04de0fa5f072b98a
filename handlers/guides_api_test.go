package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchGuidesEnvelope(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/guides")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Guides retrieved successfully", body["message"])

	meta, ok := body["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "fallback", meta["source"])

	data := dataOf(t, body)
	guides, ok := data["guides"].([]interface{})
	require.True(t, ok)
	assert.Len(t, guides, 3)
	assert.Equal(t, float64(3), data["total_results"])
	assert.Equal(t, float64(1), data["page"])
	assert.Equal(t, float64(1), data["total_pages"])
}

func TestSearchGuidesLocationFilter(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/guides?location=Dhaka")
	require.Equal(t, http.StatusOK, w.Code)

	data := dataOf(t, decode(t, w))
	guides := data["guides"].([]interface{})
	require.Len(t, guides, 1)
	guide := guides[0].(map[string]interface{})
	assert.Equal(t, "Karim Hassan", guide["name"])

	filters := data["filters_applied"].(map[string]interface{})
	assert.Equal(t, "Dhaka", filters["location"])
}

func TestSearchGuidesBodySortsByPrice(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/guides/search", map[string]interface{}{
		"min_rating": 4.5,
		"sort_by":    "price",
		"sort_order": "asc",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Search completed successfully", body["message"])

	guides := dataOf(t, body)["guides"].([]interface{})
	require.Len(t, guides, 2)
	assert.Equal(t, "Karim Hassan", guides[0].(map[string]interface{})["name"])
	assert.Equal(t, "Arif Chowdhury", guides[1].(map[string]interface{})["name"])
}

func TestGetGuideByNumericID(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/guides/2")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Guide details retrieved successfully", body["message"])
	assert.Equal(t, "Nusrat Jahan", dataOf(t, body)["name"])
}

func TestGetGuideNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/guides/999")
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Guide not found", body["message"])
}

func TestGuideProfileSeededFromCatalog(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/guides/profile")
	require.Equal(t, http.StatusOK, w.Code)

	profile := dataOf(t, decode(t, w))
	assert.Equal(t, "Karim Hassan", profile["name"])
	assert.Equal(t, "Within 2 hours", profile["response_time"])
	assert.Equal(t, float64(0), profile["completed_tours"])
	assert.NotEmpty(t, profile["biography"])
}

func TestGuideProfilePatchMerges(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPatch, "/api/guides/profile", map[string]interface{}{
		"biography": "Updated biography",
	})
	require.Equal(t, http.StatusOK, w.Code)

	profile := dataOf(t, decode(t, w))
	assert.Equal(t, "Updated biography", profile["biography"])
	// Untouched seeded fields survive the merge.
	assert.Equal(t, "Karim Hassan", profile["name"])
	assert.NotEmpty(t, profile["updated_at"])
}

func TestGuideAvailabilityPatch(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPatch, "/api/guides/availability", map[string]interface{}{
		"schedule": map[string]interface{}{"monday": []string{"09:00-18:00"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Availability updated successfully", body["message"])
	schedule := dataOf(t, body)
	assert.Contains(t, schedule, "monday")
}

func TestGuideAvailabilitySlots(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/guides/1/availability?date=2026-09-01")
	require.Equal(t, http.StatusOK, w.Code)

	data := dataOf(t, decode(t, w))
	assert.Equal(t, "1", data["guide_id"])
	assert.Equal(t, "2026-09-01", data["date"])

	slots := data["available_slots"].([]interface{})
	require.Len(t, slots, 3)
	// Half-day slots price from the package rate, full day from the base rate.
	first := slots[0].(map[string]interface{})
	assert.Equal(t, "half_day", first["service_type"])
	assert.Equal(t, float64(30), first["price"])
	last := slots[2].(map[string]interface{})
	assert.Equal(t, "daily", last["service_type"])
	assert.Equal(t, float64(50), last["price"])
}

func TestGuideAvailabilityRequiresDate(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/guides/1/availability")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `Query parameter "date" is required`, decode(t, w)["message"])
}

func TestGuideBookingLifecycle(t *testing.T) {
	r := newTestRouter(t)

	// Create.
	w := do(t, r, http.MethodPost, "/api/guides/bookings", map[string]interface{}{
		"guide_id":      1,
		"booking_date":  "2026-09-01",
		"contact_email": "traveler@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := dataOf(t, decode(t, w))
	assert.Equal(t, "GDB-001", created["booking_id"])
	assert.Regexp(t, `^AR-20260901-\d{3}$`, created["booking_reference"])
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, float64(50), created["total_amount"])
	guideDetails := created["guide_details"].(map[string]interface{})
	assert.Equal(t, "Karim Hassan", guideDetails["name"])

	// List.
	w = get(t, r, "/api/guides/bookings/my-bookings")
	require.Equal(t, http.StatusOK, w.Code)
	listed := dataOf(t, decode(t, w))
	assert.Equal(t, float64(1), listed["total_bookings"])

	// Read.
	w = get(t, r, "/api/guides/bookings/GDB-001")
	require.Equal(t, http.StatusOK, w.Code)

	// Patch.
	w = do(t, r, http.MethodPatch, "/api/guides/bookings/GDB-001", map[string]interface{}{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)
	patched := dataOf(t, decode(t, w))
	assert.Equal(t, "confirmed", patched["status"])
	assert.Equal(t, "GDB-001", patched["booking_id"])

	// Earnings now reflect the confirmed booking.
	w = get(t, r, "/api/guides/earnings")
	require.Equal(t, http.StatusOK, w.Code)
	earnings := dataOf(t, decode(t, w))
	assert.Equal(t, float64(50), earnings["total_earnings"])
	assert.Equal(t, "USD", earnings["currency"])
	breakdown := earnings["breakdown"].([]interface{})
	require.Len(t, breakdown, 1)

	// Delete, then a read reports the booking gone.
	w = do(t, r, http.MethodDelete, "/api/guides/bookings/GDB-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking cancelled successfully", decode(t, w)["message"])

	w = get(t, r, "/api/guides/bookings/GDB-001")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decode(t, w)["message"])
}

func TestUpdateGuideBookingRejectedPatch(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/guides/bookings", map[string]interface{}{
		"guide_id":      1,
		"booking_date":  "2026-09-01",
		"contact_email": "traveler@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPatch, "/api/guides/bookings/GDB-001", map[string]interface{}{
		"status":       "confirmed",
		"total_amount": "oops",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", decode(t, w)["message"])

	// The entry is exactly as created.
	w = get(t, r, "/api/guides/bookings/GDB-001")
	require.Equal(t, http.StatusOK, w.Code)
	booking := dataOf(t, decode(t, w))
	assert.Equal(t, "pending", booking["status"])
	assert.Equal(t, float64(50), booking["total_amount"])
}

func TestSearchGuidesRepeatedTagParams(t *testing.T) {
	r := newTestRouter(t)

	// No guide carries both tags; the conjunction must exclude everyone.
	w := get(t, r, "/api/guides?specialties=historical&specialties=beach")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, decode(t, w))
	assert.Equal(t, float64(0), data["total_results"])

	filters := data["filters_applied"].(map[string]interface{})
	assert.Len(t, filters["specialties"].([]interface{}), 2)

	// Both tags on one guide keep it in.
	w = get(t, r, "/api/guides?specialties=historical&specialties=cultural")
	require.Equal(t, http.StatusOK, w.Code)
	guides := dataOf(t, decode(t, w))["guides"].([]interface{})
	require.Len(t, guides, 1)
	assert.Equal(t, "Karim Hassan", guides[0].(map[string]interface{})["name"])
}

func TestCreateGuideBookingValidation(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/guides/bookings", map[string]interface{}{
		"booking_date":  "2026-09-01",
		"contact_email": "traveler@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "guide_id is required", decode(t, w)["message"])

	w = do(t, r, http.MethodPost, "/api/guides/bookings", map[string]interface{}{
		"guide_id":      1,
		"contact_email": "traveler@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "booking_date is required", decode(t, w)["message"])

	w = do(t, r, http.MethodPost, "/api/guides/bookings", map[string]interface{}{
		"guide_id":     1,
		"booking_date": "2026-09-01",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "contact_email is required", decode(t, w)["message"])
}

func TestCreateGuideBookingUnknownGuide(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/guides/bookings", map[string]interface{}{
		"guide_id":      999,
		"booking_date":  "2026-09-01",
		"contact_email": "traveler@example.com",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// The rejected create leaves the ledger untouched.
	w = get(t, r, "/api/guides/bookings/my-bookings")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), dataOf(t, decode(t, w))["total_bookings"])
}

func TestGuideReviewsSeedAndCreate(t *testing.T) {
	r := newTestRouter(t)

	// First read seeds a single synthetic review from the guide's rating.
	w := get(t, r, "/api/guides/1/reviews")
	require.Equal(t, http.StatusOK, w.Code)
	summary := dataOf(t, decode(t, w))
	assert.Equal(t, float64(1), summary["total_reviews"])
	assert.Equal(t, float64(4.9), summary["average_rating"])

	// Submit a real one.
	w = do(t, r, http.MethodPost, "/api/guides/1/reviews", map[string]interface{}{
		"rating":  5,
		"comment": "Fantastic walking tour.",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	review := dataOf(t, decode(t, w))
	assert.Equal(t, "Anonymous Traveler", review["user_name"])
	assert.Equal(t, float64(5), review["rating"])

	w = get(t, r, "/api/guides/1/reviews")
	require.Equal(t, http.StatusOK, w.Code)
	summary = dataOf(t, decode(t, w))
	assert.Equal(t, float64(2), summary["total_reviews"])
	assert.Equal(t, 4.95, summary["average_rating"])
}

func TestCreateGuideReviewRequiresRating(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/guides/1/reviews", map[string]interface{}{
		"comment": "No rating supplied",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "rating is required", decode(t, w)["message"])
}

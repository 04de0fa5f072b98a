package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripdesk/models"
	"tripdesk/services/catalog"
	"tripdesk/services/ledger"
)

// GuideHandler serves the guide catalog: search, detail, the seeded guide
// profile, and the guide booking/review ledger.
type GuideHandler struct {
	Catalog *catalog.Service
	Ledger  *ledger.Ledger
	Profile *ledger.ProfileStore
}

// Search handles GET /api/guides with the filter set in the query string.
func (h *GuideHandler) Search(c *gin.Context) {
	h.runSearch(c, catalog.BuildGuideParams(queryMap(c)), "Guides retrieved successfully")
}

// SearchBody handles POST /api/guides/search with the same filters in the
// request body.
func (h *GuideHandler) SearchBody(c *gin.Context) {
	raw, err := bodyMap(c)
	if err != nil {
		respondError(c, err)
		return
	}
	h.runSearch(c, catalog.BuildGuideParams(raw), "Search completed successfully")
}

func (h *GuideHandler) runSearch(c *gin.Context, params catalog.GuideSearchParams, message string) {
	result, err := h.Catalog.SearchGuides(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSourced(c, gin.H{
		"guides":          result.Guides,
		"total_results":   result.Total,
		"page":            result.Page,
		"total_pages":     result.TotalPages,
		"filters_applied": result.FiltersApplied,
	}, message, result.Source)
}

// Get handles GET /api/guides/:guide_id.
func (h *GuideHandler) Get(c *gin.Context) {
	guide, err := h.Catalog.FindGuideByID(c.Request.Context(), c.Param("guide_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, guide, "Guide details retrieved successfully")
}

// GetProfile handles GET /api/guides/profile. The profile is seeded from the
// first catalog guide on first access and mutated only through patches.
func (h *GuideHandler) GetProfile(c *gin.Context) {
	profile, err := h.Profile.Ensure(h.profileSeed(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, profile, "Guide profile retrieved successfully")
}

// UpdateProfile handles PATCH /api/guides/profile with an arbitrary merge.
func (h *GuideHandler) UpdateProfile(c *gin.Context) {
	patch, err := bodyMap(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := h.Profile.Ensure(h.profileSeed(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, h.Profile.Merge(patch), "Guide profile updated successfully")
}

// UpdateAvailability handles PATCH /api/guides/availability, merging into
// the profile's schedule sub-document.
func (h *GuideHandler) UpdateAvailability(c *gin.Context) {
	var body struct {
		Schedule map[string]interface{} `json:"schedule"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, catalog.ValidationError{Message: "invalid request body"})
		return
	}
	if _, err := h.Profile.Ensure(h.profileSeed(c)); err != nil {
		respondError(c, err)
		return
	}
	profile := h.Profile.MergeSchedule(body.Schedule)
	respond(c, http.StatusOK, profile["schedule"], "Availability updated successfully")
}

func (h *GuideHandler) profileSeed(c *gin.Context) func() (map[string]interface{}, error) {
	return func() (map[string]interface{}, error) {
		guides, _, err := h.Catalog.Guides(c.Request.Context())
		if err != nil {
			return nil, err
		}
		if len(guides) == 0 {
			return map[string]interface{}{
				"id":              ledger.NewID("guide_"),
				"name":            "Guide Profile",
				"biography":       "",
				"response_time":   "Within 24 hours",
				"completed_tours": 0,
			}, nil
		}

		raw, err := json.Marshal(guides[0])
		if err != nil {
			return nil, err
		}
		profile := map[string]interface{}{}
		if err := json.Unmarshal(raw, &profile); err != nil {
			return nil, err
		}
		profile["biography"] = strOr(guides[0].Description, "")
		profile["response_time"] = "Within 2 hours"
		profile["completed_tours"] = 0
		return profile, nil
	}
}

// Earnings handles GET /api/guides/earnings, aggregating the ledger's
// confirmed and pending bookings.
func (h *GuideHandler) Earnings(c *gin.Context) {
	currency := c.DefaultQuery("currency", "USD")
	confirmed := h.Ledger.ListBookings(models.BookingStatusConfirmed, "", "")
	pending := h.Ledger.ListBookings(models.BookingStatusPending, "", "")

	total := 0.0
	breakdown := make([]gin.H, 0, len(confirmed))
	for _, booking := range confirmed {
		total += booking.TotalAmount
		var date interface{}
		if booking.ServiceDetails != nil {
			date = booking.ServiceDetails.Date
		}
		breakdown = append(breakdown, gin.H{
			"booking_id": booking.BookingID,
			"amount":     booking.TotalAmount,
			"date":       date,
			"status":     booking.Status,
		})
	}
	upcoming := 0.0
	for _, booking := range pending {
		upcoming += booking.TotalAmount
	}

	respond(c, http.StatusOK, gin.H{
		"total_earnings":    round2(total),
		"pending_payouts":   round2(upcoming),
		"upcoming_bookings": len(pending),
		"currency":          currency,
		"breakdown":         breakdown,
	}, "Guide earnings retrieved successfully")
}

type availabilitySlot struct {
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	ServiceType  string  `json:"service_type"`
	MaxGroupSize int     `json:"max_group_size"`
	Price        float64 `json:"price"`
}

type guideAvailability struct {
	GuideID            string             `json:"guide_id"`
	Date               string             `json:"date"`
	AvailableSlots     []availabilitySlot `json:"available_slots"`
	BookedSlots        []interface{}      `json:"booked_slots"`
	UnavailablePeriods []interface{}      `json:"unavailable_periods"`
}

// Availability handles GET /api/guides/:guide_id/availability?date=&days=,
// generating day slots from the guide's pricing.
func (h *GuideHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		respondError(c, catalog.ValidationError{Message: `Query parameter "date" is required`})
		return
	}
	start, err := time.Parse("2006-01-02", date)
	if err != nil {
		respondError(c, catalog.ValidationError{Message: `Query parameter "date" must be YYYY-MM-DD`})
		return
	}

	guide, err := h.Catalog.FindGuideByID(c.Request.Context(), c.Param("guide_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	days := 1
	if n := catalog.ToNumber(c.Query("days")); n != nil && *n >= 1 {
		days = int(*n)
	}
	availability := generateGuideAvailability(guide, start, days)
	respond(c, http.StatusOK, availability[0], "Availability retrieved successfully")
}

func generateGuideAvailability(guide *models.GuideProfile, start time.Time, days int) []guideAvailability {
	halfDay := numOr(guide.PricingDetails.PackageRates.HalfDay, numOr(guide.Price, 0))
	fullDay := numOr(guide.PricingDetails.BaseRate, numOr(guide.Price, 0))
	slots := []availabilitySlot{
		{StartTime: "09:00", EndTime: "13:00", ServiceType: "half_day", MaxGroupSize: 8, Price: halfDay},
		{StartTime: "14:00", EndTime: "18:00", ServiceType: "half_day", MaxGroupSize: 8, Price: halfDay},
		{StartTime: "09:00", EndTime: "18:00", ServiceType: "daily", MaxGroupSize: 8, Price: fullDay},
	}

	out := make([]guideAvailability, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, guideAvailability{
			GuideID:            fmt.Sprint(guide.ID),
			Date:               start.AddDate(0, 0, i).Format("2006-01-02"),
			AvailableSlots:     slots,
			BookedSlots:        []interface{}{},
			UnavailablePeriods: []interface{}{},
		})
	}
	return out
}

// CreateBooking handles POST /api/guides/bookings. The referenced guide must
// resolve against the current catalog; its identity and pricing are
// snapshotted into the entry.
func (h *GuideHandler) CreateBooking(c *gin.Context) {
	payload, err := bodyMap(c)
	if err != nil {
		respondError(c, err)
		return
	}

	guideID := payload["guide_id"]
	bookingDate := catalog.ToString(payload["booking_date"])
	contactEmail := catalog.ToString(payload["contact_email"])
	switch {
	case guideID == nil || guideID == "":
		respondError(c, catalog.ValidationError{Message: "guide_id is required"})
		return
	case bookingDate == "":
		respondError(c, catalog.ValidationError{Message: "booking_date is required"})
		return
	case contactEmail == "":
		respondError(c, catalog.ValidationError{Message: "contact_email is required"})
		return
	}

	guide, err := h.Catalog.FindGuideByID(c.Request.Context(), fmt.Sprint(guideID))
	if err != nil {
		respondError(c, err)
		return
	}

	serviceType := catalog.ToString(payload["service_type"])
	if serviceType == "" {
		serviceType = "daily"
	}
	var duration *string
	if hours := catalog.ToNumber(payload["duration_hours"]); hours != nil {
		d := formatNumber(*hours) + " hours"
		duration = &d
	} else if dys := catalog.ToNumber(payload["duration_days"]); dys != nil {
		d := formatNumber(*dys) + " days"
		duration = &d
	}
	var meetingPoint *string
	if mp := catalog.ToString(payload["meeting_point"]); mp != "" {
		meetingPoint = &mp
	}
	var contactPhone *string
	if phone := catalog.ToString(payload["contact_phone"]); phone != "" {
		contactPhone = &phone
	}
	status := catalog.ToString(payload["status"])
	if status == "" {
		status = models.BookingStatusPending
	}
	paymentStatus := catalog.ToString(payload["payment_status"])
	if paymentStatus == "" {
		paymentStatus = "pending"
	}
	total := numOr(guide.Price, 0)
	if price := catalog.ToNumber(payload["total_price"]); price != nil {
		total = *price
	}

	booking := &models.Booking{
		Status: status,
		GuideDetails: &models.GuideSnapshot{
			ID:      guide.ID,
			Name:    guide.Name,
			Contact: guide.ContactInfo.Phone,
			Rating:  guide.Rating,
		},
		ServiceDetails: &models.ServiceDetails{
			ServiceType:  serviceType,
			Date:         bookingDate,
			Duration:     duration,
			MeetingPoint: meetingPoint,
		},
		TotalAmount:         total,
		PaymentStatus:       paymentStatus,
		ConfirmationDetails: payload["confirmation_details"],
		GuideID:             guide.ID,
		ContactEmail:        contactEmail,
		ContactPhone:        contactPhone,
	}
	h.Ledger.AppendBooking(booking, bookingDate)

	respond(c, http.StatusCreated, booking, "Booking created successfully")
}

// MyBookings handles GET /api/guides/bookings/my-bookings with optional
// status and inclusive date-range filters.
func (h *GuideHandler) MyBookings(c *gin.Context) {
	bookings := h.Ledger.ListBookings(c.Query("status"), c.Query("date_from"), c.Query("date_to"))
	respond(c, http.StatusOK, gin.H{
		"bookings":       bookings,
		"total_bookings": len(bookings),
	}, "Bookings retrieved successfully")
}

// GetBooking handles GET /api/guides/bookings/:booking_id.
func (h *GuideHandler) GetBooking(c *gin.Context) {
	booking, err := h.Ledger.GetBooking(c.Param("booking_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, booking, "Booking details retrieved successfully")
}

// UpdateBooking handles PATCH /api/guides/bookings/:booking_id, merging the
// patch document into the entry.
func (h *GuideHandler) UpdateBooking(c *gin.Context) {
	patch, err := c.GetRawData()
	if err != nil {
		respondError(c, catalog.ValidationError{Message: "invalid request body"})
		return
	}
	booking, err := h.Ledger.UpdateBooking(c.Param("booking_id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, booking, "Booking updated successfully")
}

// DeleteBooking handles DELETE /api/guides/bookings/:booking_id. The entry
// is removed entirely, not marked cancelled.
func (h *GuideHandler) DeleteBooking(c *gin.Context) {
	if err := h.Ledger.DeleteBooking(c.Param("booking_id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Booking cancelled successfully")
}

// ListReviews handles GET /api/guides/:guide_id/reviews. The first read of a
// guide's reviews seeds one synthetic entry from its displayed rating.
func (h *GuideHandler) ListReviews(c *gin.Context) {
	guide, err := h.Catalog.FindGuideByID(c.Request.Context(), c.Param("guide_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	reviews := h.Ledger.ReviewsFor(fmt.Sprint(guide.ID), guideReviewSeed(guide))
	respond(c, http.StatusOK, ledger.Summarize(reviews), "Reviews retrieved successfully")
}

// CreateReview handles POST /api/guides/:guide_id/reviews.
func (h *GuideHandler) CreateReview(c *gin.Context) {
	payload, err := bodyMap(c)
	if err != nil {
		respondError(c, err)
		return
	}
	rating := catalog.ToNumber(payload["rating"])
	if rating == nil || *rating == 0 {
		respondError(c, catalog.ValidationError{Message: "rating is required"})
		return
	}

	guide, err := h.Catalog.FindGuideByID(c.Request.Context(), c.Param("guide_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	userID := catalog.ToString(payload["user_id"])
	if userID == "" {
		userID = ledger.NewID("user_")
	}
	userName := catalog.ToString(payload["user_name"])
	if userName == "" {
		userName = "Anonymous Traveler"
	}
	now := time.Now().UTC()
	bookingDate := catalog.ToString(payload["booking_date"])
	if bookingDate == "" {
		bookingDate = now.Format("2006-01-02")
	}
	serviceType := catalog.ToString(payload["service_type"])
	if serviceType == "" {
		serviceType = "daily"
	}
	verified, _ := payload["verified_booking"].(bool)

	review := models.Review{
		ID:              ledger.NewID("review_"),
		SubjectID:       fmt.Sprint(guide.ID),
		UserID:          userID,
		UserName:        userName,
		Rating:          *rating,
		Comment:         catalog.ToString(payload["comment"]),
		ServiceType:     serviceType,
		BookingDate:     bookingDate,
		VerifiedBooking: verified,
		CreatedAt:       now.Format(time.RFC3339),
		Images:          listOrEmpty(catalog.ToList(payload["images"])),
	}
	h.Ledger.AddReview(review.SubjectID, guideReviewSeed(guide), review)

	respond(c, http.StatusCreated, review, "Review submitted successfully")
}

func guideReviewSeed(guide *models.GuideProfile) func() models.Review {
	return func() models.Review {
		now := time.Now().UTC()
		return models.Review{
			ID:          ledger.NewID("review_"),
			SubjectID:   fmt.Sprint(guide.ID),
			UserID:      "user_demo",
			UserName:    "Demo Traveler",
			Rating:      numOr(guide.Rating, 4.5),
			Comment:     fmt.Sprintf("Had a wonderful experience with %s.", strOr(guide.Name, "this guide")),
			ServiceType: "daily",
			BookingDate: now.Format("2006-01-02"),
			CreatedAt:   now.Format(time.RFC3339),
			Images:      []string{},
		}
	}
}

func listOrEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

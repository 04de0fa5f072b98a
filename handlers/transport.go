package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tripdesk/models"
	"tripdesk/services/catalog"
	"tripdesk/services/ledger"
)

// TransportHandler serves the transport catalog: option search, detail, the
// transport booking ledger and the seeded real-time views.
type TransportHandler struct {
	Catalog *catalog.Service
	Ledger  *ledger.Ledger
	Board   *ledger.TransitBoard
}

// Search handles GET /api/transport/options.
func (h *TransportHandler) Search(c *gin.Context) {
	h.runSearch(c, catalog.BuildTransportParams(queryMap(c)), "Transport options retrieved successfully")
}

// SearchBody handles POST /api/transport/search.
func (h *TransportHandler) SearchBody(c *gin.Context) {
	raw, err := bodyMap(c)
	if err != nil {
		respondError(c, err)
		return
	}
	h.runSearch(c, catalog.BuildTransportParams(raw), "Search completed successfully")
}

func (h *TransportHandler) runSearch(c *gin.Context, params catalog.TransportSearchParams, message string) {
	result, err := h.Catalog.SearchTransport(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSourced(c, gin.H{
		"transports":      result.Transports,
		"total_results":   result.Total,
		"page":            result.Page,
		"total_pages":     result.TotalPages,
		"filters_applied": result.FiltersApplied,
	}, message, result.Source)
}

// Get handles GET /api/transport/options/:transport_id.
func (h *TransportHandler) Get(c *gin.Context) {
	option, err := h.Catalog.FindTransportByID(c.Request.Context(), c.Param("transport_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, option, "Transport details retrieved successfully")
}

// CreateBooking handles POST /api/transport/bookings, snapshotting the
// resolved option into the ledger entry.
func (h *TransportHandler) CreateBooking(c *gin.Context) {
	payload, err := bodyMap(c)
	if err != nil {
		respondError(c, err)
		return
	}

	transportID := payload["transport_id"]
	travelDate := catalog.ToString(payload["travel_date"])
	contactEmail := catalog.ToString(payload["contact_email"])
	switch {
	case transportID == nil || transportID == "":
		respondError(c, catalog.ValidationError{Message: "transport_id is required"})
		return
	case travelDate == "":
		respondError(c, catalog.ValidationError{Message: "travel_date is required"})
		return
	case contactEmail == "":
		respondError(c, catalog.ValidationError{Message: "contact_email is required"})
		return
	}

	option, err := h.Catalog.FindTransportByID(c.Request.Context(), fmt.Sprint(transportID))
	if err != nil {
		respondError(c, err)
		return
	}

	var departure *string
	if len(option.Schedule.DepartureTimes) > 0 {
		departure = &option.Schedule.DepartureTimes[0]
	}
	passengers, _ := payload["passengers"].([]interface{})
	if passengers == nil {
		passengers = []interface{}{}
	}
	status := catalog.ToString(payload["status"])
	if status == "" {
		status = models.BookingStatusPending
	}
	paymentStatus := catalog.ToString(payload["payment_status"])
	if paymentStatus == "" {
		paymentStatus = "pending"
	}
	total := numOr(option.Price, 0)
	if price := catalog.ToNumber(payload["total_price"]); price != nil {
		total = *price
	}

	booking := &models.Booking{
		Status: status,
		TransportDetails: &models.TransportSnapshot{
			ID:            option.ID,
			Name:          option.Name,
			Route:         option.Route,
			DepartureTime: departure,
			TravelDate:    travelDate,
		},
		Passengers:    passengers,
		TotalAmount:   total,
		PaymentStatus: paymentStatus,
		ContactEmail:  contactEmail,
	}
	h.Ledger.AppendBooking(booking, travelDate)

	respond(c, http.StatusCreated, booking, "Booking created successfully")
}

// MyBookings handles GET /api/transport/bookings/my-bookings.
func (h *TransportHandler) MyBookings(c *gin.Context) {
	bookings := h.Ledger.ListBookings(c.Query("status"), c.Query("date_from"), c.Query("date_to"))
	respond(c, http.StatusOK, gin.H{
		"bookings":       bookings,
		"total_bookings": len(bookings),
	}, "Bookings retrieved successfully")
}

// GetBooking handles GET /api/transport/bookings/:booking_id.
func (h *TransportHandler) GetBooking(c *gin.Context) {
	booking, err := h.Ledger.GetBooking(c.Param("booking_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, booking, "Booking details retrieved successfully")
}

// UpdateBooking handles PATCH /api/transport/bookings/:booking_id.
func (h *TransportHandler) UpdateBooking(c *gin.Context) {
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

// DeleteBooking handles DELETE /api/transport/bookings/:booking_id.
func (h *TransportHandler) DeleteBooking(c *gin.Context) {
	if err := h.Ledger.DeleteBooking(c.Param("booking_id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Booking cancelled successfully")
}

// LiveStatus handles GET /api/transport/live-status/:transport_id. The
// status is seeded on first read; an unresolved id still gets a placeholder
// entry, matching the demo nature of the feed.
func (h *TransportHandler) LiveStatus(c *gin.Context) {
	transportID := c.Param("transport_id")

	name := "Transport Option"
	option, err := h.Catalog.FindTransportByID(c.Request.Context(), transportID)
	if err != nil {
		var notFound catalog.NotFoundError
		if !errors.As(err, &notFound) {
			respondError(c, err)
			return
		}
	} else {
		name = strOr(option.Name, name)
	}

	status := h.Board.EnsureStatus(transportID, func() models.LiveStatus {
		return models.LiveStatus{
			TransportID:    transportID,
			Name:           name,
			CurrentStatus:  "on_time",
			NextDeparture:  "14:30",
			DelayMinutes:   0,
			AvailableSeats: 20,
		}
	})
	respond(c, http.StatusOK, status, "Live status retrieved successfully")
}

// RouteUpdates handles GET /api/transport/route-updates with optional route
// and transport_type filters.
func (h *TransportHandler) RouteUpdates(c *gin.Context) {
	updates := h.Board.EnsureUpdates(func() []models.RouteUpdate {
		return []models.RouteUpdate{{
			ID:            ledger.NewID("update_"),
			Route:         "Dhaka to Chittagong",
			TransportType: "bus",
			Status:        "on_schedule",
			Message:       "No delays reported.",
			UpdatedAt:     time.Now().UTC().Format(time.RFC3339),
		}}
	})

	route := c.Query("route")
	transportType := c.Query("transport_type")
	filtered := make([]models.RouteUpdate, 0, len(updates))
	for _, update := range updates {
		if route != "" && !strings.EqualFold(update.Route, route) {
			continue
		}
		if transportType != "" && !strings.EqualFold(update.TransportType, transportType) {
			continue
		}
		filtered = append(filtered, update)
	}
	respond(c, http.StatusOK, filtered, "Route updates retrieved successfully")
}

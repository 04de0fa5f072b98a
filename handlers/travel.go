package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	travelRepo "tripdesk/database/repository/travel"
)

// TravelHandler serves the hotel, flight and package passthrough tables.
type TravelHandler struct {
	Repo *travelRepo.Repo
}

// ListHotels handles GET /api/hotels.
func (h *TravelHandler) ListHotels(c *gin.Context) {
	hotels, err := h.Repo.ListHotels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"hotels": hotels}, "Hotels retrieved successfully")
}

// GetHotel handles GET /api/hotels/:id.
func (h *TravelHandler) GetHotel(c *gin.Context) {
	hotel, err := h.Repo.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, hotel, "Hotel retrieved successfully")
}

// ListFlights handles GET /api/flights. Only active flights with open seats
// are returned, soonest departure first.
func (h *TravelHandler) ListFlights(c *gin.Context) {
	flights, err := h.Repo.ListFlights(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"flights": flights}, "Flights retrieved successfully")
}

// GetFlight handles GET /api/flights/:id.
func (h *TravelHandler) GetFlight(c *gin.Context) {
	flight, err := h.Repo.GetFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, flight, "Flight retrieved successfully")
}

// ListPackages handles GET /api/packages/list.
func (h *TravelHandler) ListPackages(c *gin.Context) {
	packages, err := h.Repo.ListPackages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"packages": packages}, "Packages retrieved successfully")
}

// GetPackage handles GET /api/packages/list/:id.
func (h *TravelHandler) GetPackage(c *gin.Context) {
	pkg, err := h.Repo.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, pkg, "Package retrieved successfully")
}

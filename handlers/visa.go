package handlers

import (
	stdjson "encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	visaRepo "tripdesk/database/repository/visa"
	"tripdesk/middleware"
	"tripdesk/models"
	"tripdesk/services/catalog"
	"tripdesk/utils"
)

// VisaHandler serves the visa passthrough tables: country metadata and the
// per-user application workflow. Caller identity arrives pre-verified in the
// X-User-ID header; authorization policy lives outside this service.
type VisaHandler struct {
	Repo *visaRepo.Repo
}

func (h *VisaHandler) callerID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "X-User-ID header is required")
		return "", false
	}
	return userID, true
}

// ListCountries handles GET /api/visa/countries with optional name search
// and offset pagination.
func (h *VisaHandler) ListCountries(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	countries, total, err := h.Repo.ListCountries(c.Request.Context(), c.Query("q"), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    countries,
		"message": "Countries retrieved successfully",
		"meta": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": pageCount(total, limit),
		},
	})
}

// GetCountry handles GET /api/visa/countries/:code.
func (h *VisaHandler) GetCountry(c *gin.Context) {
	country, err := h.Repo.GetCountry(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, visaRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Country not found")
			return
		}
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, country, "Country retrieved successfully")
}

// CreateApplication handles POST /api/visa/applications. The referenced
// country/category pair must exist; new applications start as unpaid drafts.
func (h *VisaHandler) CreateApplication(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var body struct {
		CountryCode  string             `json:"country_code"`
		CategorySlug string             `json:"category_slug"`
		Applicant    stdjson.RawMessage `json:"applicant"`
		Travel       stdjson.RawMessage `json:"travel"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, catalog.ValidationError{Message: "invalid request body"})
		return
	}
	if body.CountryCode == "" || body.CategorySlug == "" {
		respondError(c, catalog.ValidationError{Message: "country_code and category_slug are required"})
		return
	}

	exists, err := h.Repo.CategoryExists(c.Request.Context(), body.CountryCode, body.CategorySlug)
	if err != nil {
		respondError(c, err)
		return
	}
	if !exists {
		respondError(c, catalog.ValidationError{Message: "Invalid country code or category slug"})
		return
	}

	application, err := h.Repo.CreateApplication(c.Request.Context(), models.VisaApplication{
		UserID:       userID,
		CountryCode:  body.CountryCode,
		CategorySlug: body.CategorySlug,
		Applicant:    body.Applicant,
		Travel:       body.Travel,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, application, "Application created successfully")
}

// ListApplications handles GET /api/visa/applications for the caller, with
// status/country/category and creation date-range filters.
func (h *VisaHandler) ListApplications(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	filters := visaRepo.ApplicationFilters{
		Status:       c.Query("status"),
		CountryCode:  c.Query("country_code"),
		CategorySlug: c.Query("category_slug"),
		DateFrom:     c.Query("date_from"),
		DateTo:       c.Query("date_to"),
		Page:         intQuery(c, "page", 1),
		Limit:        intQuery(c, "limit", 20),
	}

	applications, total, err := h.Repo.ListApplications(c.Request.Context(), userID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    applications,
		"message": "Applications retrieved successfully",
		"meta": gin.H{
			"page":        filters.Page,
			"limit":       filters.Limit,
			"total":       total,
			"total_pages": pageCount(total, filters.Limit),
		},
	})
}

// GetApplication handles GET /api/visa/applications/:id, scoped to the
// caller.
func (h *VisaHandler) GetApplication(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	application, err := h.Repo.GetApplication(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, visaRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Application not found")
			return
		}
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, application, "Application retrieved successfully")
}

// UpdateApplication handles PATCH /api/visa/applications/:id. Only draft
// applications accept changes.
func (h *VisaHandler) UpdateApplication(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var body struct {
		Applicant stdjson.RawMessage `json:"applicant"`
		Travel    stdjson.RawMessage `json:"travel"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, catalog.ValidationError{Message: "invalid request body"})
		return
	}

	application, err := h.Repo.UpdateApplication(c.Request.Context(), userID, c.Param("id"), body.Applicant, body.Travel)
	if err != nil {
		if errors.Is(err, visaRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Application not found or not in draft status")
			return
		}
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, application, "Application updated successfully")
}

// SubmitApplication handles POST /api/visa/applications/:id/submit, moving a
// draft into the submitted state.
func (h *VisaHandler) SubmitApplication(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	application, err := h.Repo.SubmitApplication(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, visaRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Application not found or not in draft status")
			return
		}
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, application, "Application submitted successfully")
}

func intQuery(c *gin.Context, key string, def int) int {
	if n := catalog.ToNumber(c.Query(key)); n != nil && *n >= 1 {
		return int(*n)
	}
	return def
}

func pageCount(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}

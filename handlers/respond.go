package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"

	travelRepo "tripdesk/database/repository/travel"
	visaRepo "tripdesk/database/repository/visa"
	"tripdesk/services/catalog"
	"tripdesk/services/ledger"
	"tripdesk/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope is the response shape shared by every endpoint. Meta carries the
// dataset source on catalog reads and is omitted elsewhere.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
	Meta    interface{} `json:"meta,omitempty"`
}

type sourceMeta struct {
	Source string `json:"source"`
}

func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, envelope{Success: true, Data: data, Message: message})
}

func respondSourced(c *gin.Context, data interface{}, message, source string) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data, Message: message, Meta: sourceMeta{Source: source}})
}

// respondError maps service errors onto HTTP statuses: validation failures
// to 400, unresolved ids to 404 and upstream datastore failures to 500 with
// the underlying message.
func respondError(c *gin.Context, err error) {
	var validation catalog.ValidationError
	var notFound catalog.NotFoundError
	switch {
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, validation.Message)
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, notFound.Error())
	case errors.Is(err, ledger.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ledger.ErrInvalidPatch):
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
	case errors.Is(err, travelRepo.ErrNotFound), errors.Is(err, visaRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, travelRepo.ErrUnavailable), errors.Is(err, visaRepo.ErrUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

// queryMap lifts the query string into the loosely-typed shape the search
// param builders accept. A repeated key becomes a list, so repeatable tag
// params carry every value into the contains-all filters.
func queryMap(c *gin.Context) map[string]interface{} {
	raw := map[string]interface{}{}
	for key, values := range c.Request.URL.Query() {
		switch {
		case len(values) > 1:
			entries := make([]interface{}, len(values))
			for i, value := range values {
				entries[i] = value
			}
			raw[key] = entries
		case len(values) == 1:
			raw[key] = values[0]
		}
	}
	return raw
}

// bodyMap decodes a JSON body into the same loose shape. A missing body is
// treated as an empty document, a malformed one as a validation failure.
func bodyMap(c *gin.Context) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	if err := c.ShouldBindJSON(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, catalog.ValidationError{Message: "invalid request body"}
	}
	return raw, nil
}

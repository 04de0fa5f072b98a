package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	catalogRepo "tripdesk/database/repository/catalog"
	travelRepo "tripdesk/database/repository/travel"
	visaRepo "tripdesk/database/repository/visa"
	"tripdesk/handlers"
	"tripdesk/routes"
	"tripdesk/services/catalog"
	"tripdesk/services/ledger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// newTestRouter assembles the full route tree against the static test
// datasets, with no primary datastore behind the provider.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := catalogRepo.NewProvider(
		catalogRepo.NewPostgresSource(nil),
		filepath.Join("testdata", "guides.json"),
		filepath.Join("testdata", "transport.json"),
		nil, 0, zap.NewNop())
	catalogService := catalog.NewService(provider)

	guideHandler := &handlers.GuideHandler{
		Catalog: catalogService,
		Ledger:  ledger.NewLedger("GDB-", "AR"),
		Profile: &ledger.ProfileStore{},
	}
	transportHandler := &handlers.TransportHandler{
		Catalog: catalogService,
		Ledger:  ledger.NewLedger("TRB-", "TR"),
		Board:   &ledger.TransitBoard{},
	}
	packageHandler := &handlers.PackageHandler{Catalog: catalogService}
	travelHandler := &handlers.TravelHandler{Repo: travelRepo.NewRepo(nil)}
	visaHandler := &handlers.VisaHandler{Repo: visaRepo.NewRepo(nil)}

	hb := &handlers.HandlerBundle{
		SearchGuidesHandler:      guideHandler.Search,
		SearchGuidesBodyHandler:  guideHandler.SearchBody,
		GetGuideHandler:          guideHandler.Get,
		GuideProfileHandler:      guideHandler.GetProfile,
		UpdateGuideProfile:       guideHandler.UpdateProfile,
		UpdateGuideAvailability:  guideHandler.UpdateAvailability,
		GuideEarningsHandler:     guideHandler.Earnings,
		GuideAvailabilityHandler: guideHandler.Availability,

		CreateGuideBooking: guideHandler.CreateBooking,
		ListGuideBookings:  guideHandler.MyBookings,
		GetGuideBooking:    guideHandler.GetBooking,
		UpdateGuideBooking: guideHandler.UpdateBooking,
		DeleteGuideBooking: guideHandler.DeleteBooking,
		ListGuideReviews:   guideHandler.ListReviews,
		CreateGuideReview:  guideHandler.CreateReview,

		SearchTransportHandler:     transportHandler.Search,
		SearchTransportBodyHandler: transportHandler.SearchBody,
		GetTransportHandler:        transportHandler.Get,
		TransportLiveStatus:        transportHandler.LiveStatus,
		TransportRouteUpdates:      transportHandler.RouteUpdates,

		CreateTransportBooking: transportHandler.CreateBooking,
		ListTransportBookings:  transportHandler.MyBookings,
		GetTransportBooking:    transportHandler.GetBooking,
		UpdateTransportBooking: transportHandler.UpdateBooking,
		DeleteTransportBooking: transportHandler.DeleteBooking,

		PackageGuideOptions:     packageHandler.GuideOptions,
		AnalyzeLocationGuides:   packageHandler.AnalyzeLocationGuides,
		PackageTransportOptions: packageHandler.TransportOptions,
		AnalyzeRoute:            packageHandler.AnalyzeRoute,

		ListHotelsHandler:   travelHandler.ListHotels,
		GetHotelHandler:     travelHandler.GetHotel,
		ListFlightsHandler:  travelHandler.ListFlights,
		GetFlightHandler:    travelHandler.GetFlight,
		ListPackagesHandler: travelHandler.ListPackages,
		GetPackageHandler:   travelHandler.GetPackage,

		ListVisaCountries:     visaHandler.ListCountries,
		GetVisaCountry:        visaHandler.GetCountry,
		CreateVisaApplication: visaHandler.CreateApplication,
		ListVisaApplications:  visaHandler.ListApplications,
		GetVisaApplication:    visaHandler.GetApplication,
		UpdateVisaApplication: visaHandler.UpdateApplication,
		SubmitVisaApplication: visaHandler.SubmitApplication,
	}

	r := gin.New()
	routes.RegisterRoutes(r, hb)
	return r
}

// do performs one request against the router and returns the recorder.
func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into the loose envelope shape.
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func dataOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "data is not an object: %v", body["data"])
	return data
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	return do(t, r, http.MethodGet, path, nil)
}

package routes

import (
	"net/http"
	"time"

	"tripdesk/handlers"
	"tripdesk/middleware"
	"tripdesk/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterGuideRoutes registers the guide catalog, profile and booking
// endpoints.
func RegisterGuideRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guides")
	{
		api.GET("", hb.SearchGuidesHandler)
		api.POST("/search", hb.SearchGuidesBodyHandler)

		api.GET("/profile", hb.GuideProfileHandler)
		api.PATCH("/profile", hb.UpdateGuideProfile)
		api.PATCH("/availability", hb.UpdateGuideAvailability)
		api.GET("/earnings", hb.GuideEarningsHandler)

		api.POST("/bookings", hb.CreateGuideBooking)
		api.GET("/bookings/my-bookings", hb.ListGuideBookings)
		api.GET("/bookings/:booking_id", hb.GetGuideBooking)
		api.PATCH("/bookings/:booking_id", hb.UpdateGuideBooking)
		api.DELETE("/bookings/:booking_id", hb.DeleteGuideBooking)

		api.GET("/:guide_id", hb.GetGuideHandler)
		api.GET("/:guide_id/availability", hb.GuideAvailabilityHandler)
		api.GET("/:guide_id/reviews", hb.ListGuideReviews)
		api.POST("/:guide_id/reviews", hb.CreateGuideReview)
	}
}

// RegisterTransportRoutes registers the transport catalog, booking and
// real-time endpoints.
func RegisterTransportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/transport")
	{
		api.GET("/options", hb.SearchTransportHandler)
		api.GET("/options/:transport_id", hb.GetTransportHandler)
		api.POST("/search", hb.SearchTransportBodyHandler)

		api.POST("/bookings", hb.CreateTransportBooking)
		api.GET("/bookings/my-bookings", hb.ListTransportBookings)
		api.GET("/bookings/:booking_id", hb.GetTransportBooking)
		api.PATCH("/bookings/:booking_id", hb.UpdateTransportBooking)
		api.DELETE("/bookings/:booking_id", hb.DeleteTransportBooking)

		api.GET("/live-status/:transport_id", hb.TransportLiveStatus)
		api.GET("/route-updates", hb.TransportRouteUpdates)
	}
}

// RegisterPackageRoutes registers the package-builder integration endpoints
// together with the package passthrough listing.
func RegisterPackageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/packages")
	{
		api.GET("/guide-options", hb.PackageGuideOptions)
		api.POST("/analyze-location-guides", hb.AnalyzeLocationGuides)
		api.GET("/transport-options", hb.PackageTransportOptions)
		api.POST("/analyze-route", hb.AnalyzeRoute)

		api.GET("/list", hb.ListPackagesHandler)
		api.GET("/list/:id", hb.GetPackageHandler)
	}
}

// RegisterTravelRoutes registers the hotel and flight passthrough endpoints.
func RegisterTravelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	hotels := r.Group("/api/hotels")
	{
		hotels.GET("", hb.ListHotelsHandler)
		hotels.GET("/:id", hb.GetHotelHandler)
	}

	flights := r.Group("/api/flights")
	{
		flights.GET("", hb.ListFlightsHandler)
		flights.GET("/:id", hb.GetFlightHandler)
	}
}

// RegisterVisaRoutes registers the visa country and application endpoints.
// Application routes are scoped to the caller identity supplied upstream.
func RegisterVisaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/visa")
	{
		api.GET("/countries", hb.ListVisaCountries)
		api.GET("/countries/:code", hb.GetVisaCountry)

		applications := api.Group("/applications")
		applications.Use(middleware.CallerIdentity())
		applications.POST("", hb.CreateVisaApplication)
		applications.GET("", hb.ListVisaApplications)
		applications.GET("/:id", hb.GetVisaApplication)
		applications.PATCH("/:id", hb.UpdateVisaApplication)
		applications.POST("/:id/submit", hb.SubmitVisaApplication)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm tripdesk", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterGuideRoutes(r, hb)
	RegisterTransportRoutes(r, hb)
	RegisterPackageRoutes(r, hb)
	RegisterTravelRoutes(r, hb)
	RegisterVisaRoutes(r, hb)
	RegisterHealthRoute(r)
}

package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Guide catalog endpoints
	SearchGuidesHandler      gin.HandlerFunc
	SearchGuidesBodyHandler  gin.HandlerFunc
	GetGuideHandler          gin.HandlerFunc
	GuideProfileHandler      gin.HandlerFunc
	UpdateGuideProfile       gin.HandlerFunc
	UpdateGuideAvailability  gin.HandlerFunc
	GuideEarningsHandler     gin.HandlerFunc
	GuideAvailabilityHandler gin.HandlerFunc

	// Guide booking/review endpoints
	CreateGuideBooking gin.HandlerFunc
	ListGuideBookings  gin.HandlerFunc
	GetGuideBooking    gin.HandlerFunc
	UpdateGuideBooking gin.HandlerFunc
	DeleteGuideBooking gin.HandlerFunc
	ListGuideReviews   gin.HandlerFunc
	CreateGuideReview  gin.HandlerFunc

	// Transport catalog endpoints
	SearchTransportHandler     gin.HandlerFunc
	SearchTransportBodyHandler gin.HandlerFunc
	GetTransportHandler        gin.HandlerFunc
	TransportLiveStatus        gin.HandlerFunc
	TransportRouteUpdates      gin.HandlerFunc

	// Transport booking endpoints
	CreateTransportBooking gin.HandlerFunc
	ListTransportBookings  gin.HandlerFunc
	GetTransportBooking    gin.HandlerFunc
	UpdateTransportBooking gin.HandlerFunc
	DeleteTransportBooking gin.HandlerFunc

	// Package integration endpoints
	PackageGuideOptions     gin.HandlerFunc
	AnalyzeLocationGuides   gin.HandlerFunc
	PackageTransportOptions gin.HandlerFunc
	AnalyzeRoute            gin.HandlerFunc

	// Travel passthrough endpoints
	ListHotelsHandler   gin.HandlerFunc
	GetHotelHandler     gin.HandlerFunc
	ListFlightsHandler  gin.HandlerFunc
	GetFlightHandler    gin.HandlerFunc
	ListPackagesHandler gin.HandlerFunc
	GetPackageHandler   gin.HandlerFunc

	// Visa endpoints
	ListVisaCountries     gin.HandlerFunc
	GetVisaCountry        gin.HandlerFunc
	CreateVisaApplication gin.HandlerFunc
	ListVisaApplications  gin.HandlerFunc
	GetVisaApplication    gin.HandlerFunc
	UpdateVisaApplication gin.HandlerFunc
	SubmitVisaApplication gin.HandlerFunc
}

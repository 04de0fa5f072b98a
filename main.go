package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripdesk/config"
	"tripdesk/database"
	catalogRepo "tripdesk/database/repository/catalog"
	travelRepo "tripdesk/database/repository/travel"
	visaRepo "tripdesk/database/repository/visa"
	"tripdesk/handlers"
	"tripdesk/middleware"
	"tripdesk/routes"
	"tripdesk/services/catalog"
	"tripdesk/services/ledger"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitDatasetCache()
	utils.StartHealthMonitor(database.Pool, utils.GetDatasetCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Dataset provider: primary datastore with static-file fallback.
	primary := catalogRepo.NewPostgresSource(database.Pool)
	provider := catalogRepo.NewProvider(
		primary,
		config.AppConfig.GuidesFallbackFile,
		config.AppConfig.TransportFallbackFile,
		utils.GetDatasetCacheClient(),
		config.AppConfig.DatasetCacheTTL,
		logger,
	)
	catalogService := catalog.NewService(provider)

	// Per-domain ephemeral state.
	guideLedger := ledger.NewLedger("GDB-", "AR")
	transportLedger := ledger.NewLedger("TRB-", "TR")
	guideProfile := &ledger.ProfileStore{}
	transitBoard := &ledger.TransitBoard{}

	travelRepository := travelRepo.NewRepo(database.Pool)
	visaRepository := visaRepo.NewRepo(database.Pool)

	guideHandler := &handlers.GuideHandler{
		Catalog: catalogService,
		Ledger:  guideLedger,
		Profile: guideProfile,
	}
	transportHandler := &handlers.TransportHandler{
		Catalog: catalogService,
		Ledger:  transportLedger,
		Board:   transitBoard,
	}
	packageHandler := &handlers.PackageHandler{Catalog: catalogService}
	travelHandler := &handlers.TravelHandler{Repo: travelRepository}
	visaHandler := &handlers.VisaHandler{Repo: visaRepository}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Guide endpoints.
		SearchGuidesHandler:      guideHandler.Search,
		SearchGuidesBodyHandler:  guideHandler.SearchBody,
		GetGuideHandler:          guideHandler.Get,
		GuideProfileHandler:      guideHandler.GetProfile,
		UpdateGuideProfile:       guideHandler.UpdateProfile,
		UpdateGuideAvailability:  guideHandler.UpdateAvailability,
		GuideEarningsHandler:     guideHandler.Earnings,
		GuideAvailabilityHandler: guideHandler.Availability,
		CreateGuideBooking:       guideHandler.CreateBooking,
		ListGuideBookings:        guideHandler.MyBookings,
		GetGuideBooking:          guideHandler.GetBooking,
		UpdateGuideBooking:       guideHandler.UpdateBooking,
		DeleteGuideBooking:       guideHandler.DeleteBooking,
		ListGuideReviews:         guideHandler.ListReviews,
		CreateGuideReview:        guideHandler.CreateReview,

		// Transport endpoints.
		SearchTransportHandler:     transportHandler.Search,
		SearchTransportBodyHandler: transportHandler.SearchBody,
		GetTransportHandler:        transportHandler.Get,
		TransportLiveStatus:        transportHandler.LiveStatus,
		TransportRouteUpdates:      transportHandler.RouteUpdates,
		CreateTransportBooking:     transportHandler.CreateBooking,
		ListTransportBookings:      transportHandler.MyBookings,
		GetTransportBooking:        transportHandler.GetBooking,
		UpdateTransportBooking:     transportHandler.UpdateBooking,
		DeleteTransportBooking:     transportHandler.DeleteBooking,

		// Package integration endpoints.
		PackageGuideOptions:     packageHandler.GuideOptions,
		AnalyzeLocationGuides:   packageHandler.AnalyzeLocationGuides,
		PackageTransportOptions: packageHandler.TransportOptions,
		AnalyzeRoute:            packageHandler.AnalyzeRoute,

		// Travel passthrough endpoints.
		ListHotelsHandler:   travelHandler.ListHotels,
		GetHotelHandler:     travelHandler.GetHotel,
		ListFlightsHandler:  travelHandler.ListFlights,
		GetFlightHandler:    travelHandler.GetFlight,
		ListPackagesHandler: travelHandler.ListPackages,
		GetPackageHandler:   travelHandler.GetPackage,

		// Visa endpoints.
		ListVisaCountries:     visaHandler.ListCountries,
		GetVisaCountry:        visaHandler.GetCountry,
		CreateVisaApplication: visaHandler.CreateApplication,
		ListVisaApplications:  visaHandler.ListApplications,
		GetVisaApplication:    visaHandler.GetApplication,
		UpdateVisaApplication: visaHandler.UpdateApplication,
		SubmitVisaApplication: visaHandler.SubmitApplication,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

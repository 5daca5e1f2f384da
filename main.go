// File: workhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"workhub/config"
	workercron "workhub/cron"
	"workhub/database"
	"workhub/database/memory"
	"workhub/handlers"
	"workhub/middleware"
	"workhub/routes"
	"workhub/services/alerts"
	"workhub/services/booking"
	"workhub/services/catalog"
	"workhub/services/occupancy"
	"workhub/services/stats"
	"workhub/services/telemetry"
	"workhub/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store := memory.NewStore()

	var snapshotter *database.Snapshotter
	if config.AppConfig.SnapshotEnabled {
		snapshotter = &database.Snapshotter{
			Client: utils.GetSnapshotClient(),
			Store:  store,
			Logger: logger,
		}
		if err := snapshotter.Restore(context.Background()); err != nil {
			logger.Sugar().Fatalf("main: failed to restore store snapshot: %v", err)
		}
	}

	// Services.
	catalogService := &catalog.DefaultCatalogService{
		Rooms:   store.Rooms,
		Desks:   store.Desks,
		Devices: store.Devices,
	}
	occupancyTracker := &occupancy.DefaultTracker{
		Repo: store.Occupancy,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:      store.Bookings,
		Users:     store.Users,
		Catalog:   catalogService,
		Occupancy: occupancyTracker,
		Locker:    store,
		Grace:     time.Duration(config.AppConfig.NoShowGraceMin) * time.Minute,
	}
	alertEngine := &alerts.DefaultAlertEngine{
		Alerts:       store.Alerts,
		Readings:     store.Readings,
		Catalog:      catalogService,
		Occupancy:    occupancyTracker,
		Bookings:     bookingService,
		Logger:       logger,
		CO2Threshold: config.AppConfig.CO2ThresholdPPM,
		DeviceStale:  time.Duration(config.AppConfig.DeviceStaleMin) * time.Minute,
	}
	statsAggregator := &stats.Aggregator{
		Catalog:   catalogService,
		Occupancy: occupancyTracker,
		Bookings:  store.Bookings,
		Alerts:    store.Alerts,
		Readings:  store.Readings,
	}
	telemetryIngestor := &telemetry.Ingestor{
		Catalog:   catalogService,
		Occupancy: occupancyTracker,
		Readings:  store.Readings,
		Alerts:    alertEngine,
		Logger:    logger,
	}

	// Background worker: lifecycle sweep and snapshots.
	worker := &workercron.Worker{
		Bookings:         bookingService,
		Alerts:           alertEngine,
		Snapshotter:      snapshotter,
		Logger:           logger,
		SweepInterval:    time.Duration(config.AppConfig.SweepIntervalSec) * time.Second,
		SnapshotInterval: time.Duration(config.AppConfig.SnapshotIntervalSec) * time.Second,
	}
	if err := worker.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start background worker: %v", err)
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Bookings:  handlers.NewBookingHandler(bookingService),
		Occupancy: handlers.NewOccupancyHandler(occupancyTracker, catalogService),
		Alerts:    handlers.NewAlertHandler(alertEngine),
		Stats:     handlers.NewStatsHandler(statsAggregator),
		Users:     handlers.NewUserHandler(store.Users),
		Telemetry: handlers.NewTelemetryHandler(telemetryIngestor),
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

	worker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

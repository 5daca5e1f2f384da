// File: workhub/routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"workhub/handlers"
	"workhub/middleware"
)

// RegisterCatalogRoutes registers the room/desk/device endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/rooms", hb.Catalog.ListRooms)
		api.GET("/desks", hb.Catalog.ListDesks)
		api.GET("/devices", hb.Catalog.ListDevices)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.POST("/rooms", hb.Catalog.CreateRoom)
		admin.PATCH("/rooms/:id", hb.Catalog.UpdateRoom)
		admin.POST("/desks", hb.Catalog.CreateDesk)
		admin.POST("/devices", hb.Catalog.CreateDevice)
	}
}

// RegisterBookingRoutes registers the booking endpoints, including badge
// check-in.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/bookings", hb.Bookings.List)
		api.GET("/bookings/active", hb.Bookings.ListActive)
		api.GET("/bookings/today", hb.Bookings.ListToday)
		api.POST("/bookings", hb.Bookings.Create)
		api.PATCH("/bookings/:id", hb.Bookings.Update)
		api.POST("/checkin", hb.Bookings.CheckIn)
	}
}

// RegisterOccupancyRoutes registers occupancy reads and the set-count path.
func RegisterOccupancyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/occupancy", hb.Occupancy.List)
		api.PATCH("/occupancy/:roomId", hb.Occupancy.SetCount)
	}
}

// RegisterAlertRoutes registers the alert endpoints.
func RegisterAlertRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/alerts", hb.Alerts.List)
		api.GET("/alerts/active", hb.Alerts.ListActive)
		api.PATCH("/alerts/:id/resolve", hb.Alerts.Resolve)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.POST("/alerts", hb.Alerts.Create)
	}
}

// RegisterUserRoutes registers account provisioning.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.GET("", hb.Users.List)
		api.POST("", hb.Users.Create)
	}
}

// RegisterTelemetryRoutes registers device telemetry ingestion.
func RegisterTelemetryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/telemetry", hb.Telemetry.Ingest)
}

// RegisterStatsRoute registers the dashboard summary endpoint.
func RegisterStatsRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/stats", hb.Stats.Get)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Workhub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOccupancyRoutes(r, hb)
	RegisterAlertRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterTelemetryRoutes(r, hb)
	RegisterStatsRoute(r, hb)
	RegisterHealthRoute(r)
}

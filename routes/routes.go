package routes

import (
	"net/http"
	"time"

	"maidly/handlers"
	"maidly/middleware"
	"maidly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPricingRoutes registers the catalog, preset and quote endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.GET("/catalog", hb.GetCatalog)
		api.GET("/presets", hb.GetPresets)
		api.POST("/quote", hb.Quote)
	}
}

// RegisterConfiguratorRoutes sets up the endpoints for the configurator sessions.
func RegisterConfiguratorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/configurator")
	{
		api.POST("/session", hb.InitiateSession)
		api.GET("/session/:sessionID", hb.GetSession)
		api.PATCH("/session/:sessionID", hb.UpdateSession)
		api.DELETE("/session/:sessionID", hb.CancelSession)
		api.POST("/session/:sessionID/reserve", hb.ConfirmReservation)
	}
}

// RegisterInquiryRoutes registers the public contact endpoint.
func RegisterInquiryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/inquiries", hb.CreateInquiry)
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/reservations", hb.ListReservations)
		adminGroup.GET("/reservations/:id", hb.GetReservation)
		adminGroup.PATCH("/reservations/:id/status", hb.UpdateReservationStatus)
		adminGroup.GET("/inquiries", hb.ListInquiries)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
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

	RegisterPricingRoutes(r, hb)
	RegisterConfiguratorRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

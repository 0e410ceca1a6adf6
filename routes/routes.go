package routes

import (
	"net/http"
	"time"

	"elysium/handlers"
	"elysium/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog and content endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServices)
		api.GET("/content", hb.GetContent)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.StartBookingSession)
		bookingGroup.POST("/coupon", hb.ApplyCoupon)
		bookingGroup.POST("/submit", hb.SubmitBooking)
	}
}

// RegisterConciergeRoutes registers the chat endpoint.
func RegisterConciergeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/concierge/chat", hb.ConciergeChat)
}

// RegisterAdminRoutes sets up endpoints for admin console operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.AdminLogin)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/appointments", hb.ListAppointments)
		adminGroup.PATCH("/appointments/:id/status", hb.TransitionAppointment)
		adminGroup.POST("/services", hb.AddService)
		adminGroup.PUT("/services/:id", hb.UpdateService)
		adminGroup.DELETE("/services/:id", hb.RemoveService)
		adminGroup.PUT("/content", hb.UpdateContent)
		adminGroup.PUT("/credentials", hb.UpdateCredentials)
		adminGroup.GET("/stats", hb.AdminStats)
		adminGroup.GET("/briefing", hb.AdminBriefing)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Elysium"})
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
	RegisterConciergeRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

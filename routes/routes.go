package routes

import (
	"net/http"
	"time"

	"quickscan/handlers"
	"quickscan/middleware"
	"quickscan/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers needed to wire the HTTP surface.
type HandlerBundle struct {
	Auth    *handlers.AuthHandler
	Catalog *handlers.CatalogHandler
	Booking *handlers.BookingHandler
}

// RegisterAuthRoutes registers credential endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)

		// Protected routes (Require Authentication)
		api.GET("/me", middleware.JWTAuthMiddleware(), hb.Auth.Me)
		api.PUT("/me", middleware.JWTAuthMiddleware(), hb.Auth.UpdateProfile)
		api.POST("/logout", middleware.JWTAuthMiddleware(), hb.Auth.Logout)
	}
}

// RegisterCatalogRoutes registers public service/lab browsing endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	services := r.Group("/api/services")
	{
		services.GET("", hb.Catalog.ListServices)
		services.GET("/:slug", hb.Catalog.GetService)
	}
	labs := r.Group("/api/labs")
	{
		labs.GET("", hb.Catalog.ListLabs)
		labs.GET("/:id", hb.Catalog.GetLab)
	}
}

// RegisterBookingRoutes sets up the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.GET("", hb.Booking.ListBookings)
		bookingGroup.GET("/:bookingId", hb.Booking.GetBooking)
		bookingGroup.DELETE("/:bookingId", hb.Booking.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}

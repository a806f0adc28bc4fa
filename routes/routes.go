// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"wanderly-api/config"
	"wanderly-api/controllers"
	"wanderly-api/middleware"
	"wanderly-api/repositories"
	"wanderly-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) *services.TripService {
	// Repositories
	tripRepo := repositories.NewTripRepository(db)
	savedTripRepo := repositories.NewSavedTripRepository(db)

	// Services
	tripService := services.NewTripService(tripRepo, savedTripRepo)
	popularityService := services.NewPopularityService(tripRepo, savedTripRepo)
	geocodingService := services.NewGeocodingService(cfg.MapboxToken)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	tripController := controllers.NewTripController(tripService, popularityService)
	savedTripController := controllers.NewSavedTripController(tripService)
	geocodingController := controllers.NewGeocodingController(geocodingService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(120, 20))

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.POST("/verify-code", authController.VerifyCode)
		auth.POST("/resend-verification", authController.ResendVerificationCode)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		trips := protected.Group("/trips")
		{
			trips.GET("", tripController.GetTrips)
			trips.POST("", tripController.CreateTrip)
			trips.GET("/popular", tripController.GetPopularTrips)
			trips.GET("/mine", tripController.GetMyTrips)
			trips.GET("/saved", savedTripController.GetSavedTrips)
			trips.GET("/:id", tripController.GetTrip)
			trips.DELETE("/:id", tripController.DeleteTrip)
			trips.POST("/:id/save", savedTripController.SaveTrip)
			trips.DELETE("/:id/save", savedTripController.UnsaveTrip)
			trips.GET("/:id/saved", savedTripController.IsSaved)
			trips.POST("/:id/toggle-started", savedTripController.ToggleStarted)
		}

		geocoding := protected.Group("/geocoding")
		{
			geocoding.GET("/search", geocodingController.Geocode)
			geocoding.GET("/reverse", geocodingController.ReverseGeocode)
			geocoding.POST("/directions", geocodingController.Directions)
		}
	}

	return tripService
}

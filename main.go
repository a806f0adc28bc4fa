// File: /main.go
package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"wanderly-api/config"
	"wanderly-api/database"
	"wanderly-api/jobs"
	"wanderly-api/middleware"
	"wanderly-api/routes"
	"wanderly-api/services"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with starter trips (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Email service for registration verification
	emailService := services.NewEmailService(cfg)

	// Create router
	router := gin.Default()

	// Middleware
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	// Setup routes
	tripService := routes.SetupRoutes(router, db, cfg, emailService)

	// Background sweep of save records for deleted trips
	reconcileJob := jobs.NewSaveSetReconcileJob(tripService, time.Duration(cfg.ReconcileIntervalMinutes)*time.Minute)
	reconcileJob.Start()
	defer reconcileJob.Stop()

	// Start server
	log.Printf("Starting Wanderly API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

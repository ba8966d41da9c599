package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tabiplan/internal/config"
	"tabiplan/internal/handler"
	"tabiplan/internal/planner"
	"tabiplan/internal/repository"
	"tabiplan/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Tabiplan Trip Planning Service")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewTripRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("Connected to PostgreSQL database")

	// Initialize the planning engine and services
	recommender := planner.NewRecommender(cfg.Scoring.WeightMatch, cfg.Scoring.WeightProximity)
	tripService := service.NewTripService(repo, recommender)

	log.Println("Services initialized")
	log.Printf("   - Match weight: %.2f", cfg.Scoring.WeightMatch)
	log.Printf("   - Proximity weight: %.2f", cfg.Scoring.WeightProximity)

	// Initialize handlers
	plannerHandler := handler.NewPlannerHandler(recommender)
	tripHandler := handler.NewTripHandler(tripService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "trip-planning-engine",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Catalog and recommendations
		apiV1.GET("/catalog/regions", plannerHandler.Regions)
		apiV1.GET("/catalog/cities", plannerHandler.Cities)
		apiV1.POST("/recommendations/regions", plannerHandler.RecommendRegions)
		apiV1.POST("/recommendations/cities", plannerHandler.RecommendCities)

		// On-demand analysis
		apiV1.POST("/warnings", plannerHandler.Warnings)
		apiV1.POST("/railpass", plannerHandler.RailPass)

		// Trips
		apiV1.POST("/trips", tripHandler.Create)
		apiV1.GET("/trips", tripHandler.List)
		apiV1.GET("/trips/:id", tripHandler.Get)
		apiV1.PUT("/trips/:id", tripHandler.Rename)
		apiV1.DELETE("/trips/:id", tripHandler.Delete)

		// Activity operations
		apiV1.POST("/trips/:id/days/:dayId/activities", tripHandler.AddActivity)
		apiV1.PUT("/trips/:id/days/:dayId/activities", tripHandler.ReorderActivities)
		apiV1.PUT("/trips/:id/days/:dayId/activities/:activityId", tripHandler.ReplaceActivity)
		apiV1.DELETE("/trips/:id/days/:dayId/activities/:activityId", tripHandler.DeleteActivity)

		// Day refinement
		apiV1.POST("/trips/:id/refine/:dayIndex", tripHandler.RefineDay)
	}

	// JSON-only service; anything else is a 404
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Endpoint not found"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

package routes

import (
	"ai-roadmap-backend/internal/api/handlers"
	"ai-roadmap-backend/internal/api/middleware"
	"ai-roadmap-backend/internal/config"
	"ai-roadmap-backend/internal/repository"
	"ai-roadmap-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Session(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	roadmapRepo := repository.NewRoadmapRepository(db)

	// Initialize services
	generatorService := service.NewGeneratorService(cfg)
	roadmapService := service.NewRoadmapService(roadmapRepo, generatorService, validate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Submission form
	router.GET("/", roadmapHandler.Index)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		roadmaps := v1.Group("/roadmaps")
		{
			roadmaps.GET("", roadmapHandler.ListRoadmaps)
			roadmaps.POST("", roadmapHandler.CreateRoadmap)
			roadmaps.GET("/:id", roadmapHandler.GetRoadmap)
			roadmaps.GET("/:id/page", roadmapHandler.GetRoadmapPage)
			roadmaps.GET("/:id/pdf", roadmapHandler.DownloadRoadmapPDF)
		}
	}

	return router
}

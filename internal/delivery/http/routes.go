package http

import (
	"github.com/gin-gonic/gin"

	"github.com/fitforge/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		plans := v1.Group("/plans")
		{
			plans.POST("/generate", handler.GeneratePlan)
		}

		// Read-only catalog previews for the UI collaborator
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/exercises", handler.ListExercises)
			catalog.GET("/meals/:mealType", handler.ListMealSuggestions)
		}
	}

	return router
}

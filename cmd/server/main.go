package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fitforge/backend/config"
	httpDelivery "github.com/fitforge/backend/internal/delivery/http"
	"github.com/fitforge/backend/internal/domain"
	"github.com/fitforge/backend/internal/infrastructure/cache"
	"github.com/fitforge/backend/internal/infrastructure/catalog"
	"github.com/fitforge/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting FitForge Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize catalogs; an authoring mistake fails startup, not a request
	exerciseStore := catalog.NewExerciseStore()
	if err := exerciseStore.Validate(); err != nil {
		log.Fatalf("Exercise catalog invalid: %v", err)
	}
	mealStore := catalog.NewMealStore()

	// Plan cache is optional
	var planCache domain.PlanCache
	if cfg.Cache.Enabled {
		planCache = cache.NewMemoryCache()
		log.Printf("Plan cache enabled (TTL: %s)", cfg.Cache.TTL)
	} else {
		log.Printf("Plan cache disabled")
	}

	// Initialize usecase layer
	trainingService := usecase.NewTrainingService(exerciseStore, usecase.TrainingServiceConfig{
		FallbackWorkoutDays: cfg.Plan.FallbackWorkoutDays,
	})
	nutritionService := usecase.NewNutritionService(mealStore)
	planService := usecase.NewPlanService(trainingService, nutritionService, planCache, usecase.PlanServiceConfig{
		CacheTTL: cfg.Cache.TTL,
	})

	log.Printf("Fallback workout days: %d", cfg.Plan.FallbackWorkoutDays)
	log.Printf("Rate limit: %d requests/minute per IP", cfg.RateLimit.PerIP)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(planService, exerciseStore, mealStore)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

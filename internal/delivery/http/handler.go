package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fitforge/backend/internal/domain"
	"github.com/fitforge/backend/internal/usecase"
)

// planErrorMessage is the only error detail exposed to callers for plan
// generation failures. Internal errors are logged, never leaked.
const planErrorMessage = "Failed to generate plan recommendation"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	plans     *usecase.PlanService
	exercises domain.ExerciseCatalog
	meals     domain.MealCatalog
}

// NewHandler creates a new HTTP handler
func NewHandler(plans *usecase.PlanService, exercises domain.ExerciseCatalog, meals domain.MealCatalog) *Handler {
	return &Handler{
		plans:     plans,
		exercises: exercises,
		meals:     meals,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "fitforge-backend",
		"version": "1.0.0",
	})
}

// GeneratePlan handles plan generation requests. The body is a UserProfile;
// missing fields take documented defaults. Malformed bodies and internal
// failures both surface as a generic 500.
func (h *Handler) GeneratePlan(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		log.Printf("plan request body rejected: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": planErrorMessage})
		return
	}

	plan, err := h.plans.GeneratePlan(c.Request.Context(), &profile)
	if err != nil {
		log.Printf("plan generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": planErrorMessage})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ListExercises previews one pre-authored workout-day routine for a
// goal/level pair. Unknown values fall back the same way plan generation
// does, so the preview always matches what a plan would contain.
func (h *Handler) ListExercises(c *gin.Context) {
	goal := domain.Goal(c.Query("goal")).Normalize()
	level := domain.FitnessLevel(c.Query("level")).Normalize()

	variant := 0
	if v, err := strconv.Atoi(c.Query("variant")); err == nil && v >= 0 {
		variant = v
	}

	c.JSON(http.StatusOK, gin.H{
		"goal":      goal,
		"level":     level,
		"variant":   variant,
		"exercises": h.exercises.Exercises(goal, level, variant),
	})
}

// ListMealSuggestions returns the catalog's suggestions for a meal type.
// Unrecognized meal types yield an empty list, not an error.
func (h *Handler) ListMealSuggestions(c *gin.Context) {
	mealType := domain.MealType(c.Param("mealType"))
	suggestions := h.meals.Suggestions(mealType)
	if suggestions == nil {
		suggestions = []domain.MealSuggestion{}
	}

	c.JSON(http.StatusOK, gin.H{
		"meal_type":   mealType,
		"suggestions": suggestions,
	})
}

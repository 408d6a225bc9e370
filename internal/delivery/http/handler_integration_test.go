package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitforge/backend/config"
	"github.com/fitforge/backend/internal/domain"
	"github.com/fitforge/backend/internal/infrastructure/catalog"
	"github.com/fitforge/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}

// setupTestRouter wires real catalogs and services behind a test router.
// The cache is left nil so each request exercises full generation.
func setupTestRouter() *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
		Cache:     config.CacheConfig{Enabled: false},
		RateLimit: config.RateLimitConfig{PerIP: 1000},
		Plan:      config.PlanConfig{FallbackWorkoutDays: 3},
	}

	exercises := catalog.NewExerciseStore()
	meals := catalog.NewMealStore()

	training := usecase.NewTrainingService(exercises, usecase.TrainingServiceConfig{
		FallbackWorkoutDays: cfg.Plan.FallbackWorkoutDays,
	})
	nutrition := usecase.NewNutritionService(meals)
	plans := usecase.NewPlanService(training, nutrition, nil, usecase.PlanServiceConfig{})

	handler := NewHandler(plans, exercises, meals)
	return SetupRouter(cfg, handler)
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", response["status"])
	}
	if response["service"] != "fitforge-backend" {
		t.Errorf("service = %v, want fitforge-backend", response["service"])
	}
}

func TestGeneratePlanEndpoint(t *testing.T) {
	t.Run("returns a complete plan for a full profile", func(t *testing.T) {
		router := setupTestRouter()

		payload := `{
			"weight_kg": 80, "height_cm": 180, "age": 30,
			"gender": "male", "fitness_level": "intermediate",
			"goal": "muscle_building", "activity_level": "moderately_active",
			"train_days_per_week": 3, "cardio_days_per_week": 2
		}`
		req, _ := http.NewRequest("POST", "/api/v1/plans/generate", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
		}

		var plan domain.PersonalizedPlan
		if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
			t.Fatalf("Failed to unmarshal plan: %v", err)
		}

		if plan.ID == "" {
			t.Error("plan has no ID")
		}
		if len(plan.TrainingRegimen) != 7 {
			t.Fatalf("len(TrainingRegimen) = %d, want 7", len(plan.TrainingRegimen))
		}

		workouts := 0
		for _, day := range plan.TrainingRegimen {
			if !day.IsRestDay {
				workouts++
			}
		}
		if workouts != 5 {
			t.Errorf("workout days = %d, want 5", workouts)
		}

		// BMR 1880 * 1.55 = 2914, +300 for muscle building.
		if plan.NutritionRegimen.DailyCalorieTarget != 3214 {
			t.Errorf("DailyCalorieTarget = %d, want 3214", plan.NutritionRegimen.DailyCalorieTarget)
		}
		if len(plan.NutritionRegimen.MealPlan) != 4 {
			t.Errorf("len(MealPlan) = %d, want 4", len(plan.NutritionRegimen.MealPlan))
		}
		if plan.CreatedAt.IsZero() || !withinDuration(plan.CreatedAt, time.Now(), time.Minute) {
			t.Errorf("CreatedAt = %v, want recent timestamp", plan.CreatedAt)
		}
	})

	t.Run("empty object takes all defaults", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("POST", "/api/v1/plans/generate", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var plan domain.PersonalizedPlan
		if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
			t.Fatalf("Failed to unmarshal plan: %v", err)
		}

		// Defaults: 70kg/170cm/30y male, moderately active, maintenance.
		// BMR = 700 + 1062.5 - 150 + 5 = 1617.5; TDEE = 2507.125 -> 2507.
		if plan.NutritionRegimen.DailyCalorieTarget != 2507 {
			t.Errorf("DailyCalorieTarget = %d, want 2507", plan.NutritionRegimen.DailyCalorieTarget)
		}

		// Zero requested days falls back to 3 workout days.
		workouts := 0
		for _, day := range plan.TrainingRegimen {
			if !day.IsRestDay {
				workouts++
			}
		}
		if workouts != 3 {
			t.Errorf("workout days = %d, want fallback 3", workouts)
		}
	})

	t.Run("malformed body returns the generic 500", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("POST", "/api/v1/plans/generate", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["error"] != planErrorMessage {
			t.Errorf("error = %v, want %q", response["error"], planErrorMessage)
		}
	})

	t.Run("rejects other HTTP methods", func(t *testing.T) {
		router := setupTestRouter()

		for _, method := range []string{"GET", "PUT", "DELETE", "PATCH"} {
			req, _ := http.NewRequest(method, "/api/v1/plans/generate", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

func TestCatalogEndpoints(t *testing.T) {
	t.Run("exercise preview honors fallbacks", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/catalog/exercises?goal=unknown&level=elite", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response struct {
			Goal      domain.Goal               `json:"goal"`
			Level     domain.FitnessLevel       `json:"level"`
			Exercises []domain.ExerciseTemplate `json:"exercises"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Goal != domain.GoalMaintenance {
			t.Errorf("goal = %s, want maintenance fallback", response.Goal)
		}
		if response.Level != domain.LevelBeginner {
			t.Errorf("level = %s, want beginner fallback", response.Level)
		}
		if len(response.Exercises) == 0 {
			t.Error("exercises list is empty")
		}
	})

	t.Run("meal suggestions for a known type", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/catalog/meals/breakfast", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response struct {
			Suggestions []domain.MealSuggestion `json:"suggestions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(response.Suggestions) == 0 {
			t.Error("suggestions list is empty")
		}
	})

	t.Run("unknown meal type yields an empty list, not an error", func(t *testing.T) {
		router := setupTestRouter()

		req, _ := http.NewRequest("GET", "/api/v1/catalog/meals/brunch", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response struct {
			Suggestions []domain.MealSuggestion `json:"suggestions"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(response.Suggestions) != 0 {
			t.Errorf("suggestions = %v, want empty", response.Suggestions)
		}
	})
}

func withinDuration(a, b time.Time, d time.Duration) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= d
}

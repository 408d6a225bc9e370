package domain

import (
	"context"
	"time"
)

// ExerciseCatalog defines the interface for the static exercise template
// catalog. Lookups are total: unknown goals fall back to the default goal,
// unknown levels to beginner, and the variant index wraps modulo the number
// of authored variants, so a workout day never comes back empty.
type ExerciseCatalog interface {
	Exercises(goal Goal, level FitnessLevel, variantIndex int) []ExerciseTemplate
	Validate() error
}

// MealCatalog defines the interface for the static meal suggestion catalog.
// Unknown meal types yield an empty list, never an error.
type MealCatalog interface {
	Suggestions(mealType MealType) []MealSuggestion
}

// PlanCache defines the interface for caching generated plans as encoded
// bytes.
type PlanCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

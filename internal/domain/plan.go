package domain

import "time"

// ExerciseType distinguishes how an exercise is prescribed: strength work
// gets sets×reps, cardio and flexibility work gets a duration.
type ExerciseType string

// ExerciseType values.
const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseFlexibility ExerciseType = "flexibility"
)

// Weekday is a calendar day of the training week, Monday first.
type Weekday string

// Weekday values.
const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// WeekOrder is the fixed Monday-first emission order for training regimens.
var WeekOrder = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// MealType is one of the four daily meal slots.
type MealType string

// MealType values.
const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ExerciseTemplate is a single pre-authored exercise. Templates are sourced
// only from the catalog and never mutated by generators; the catalog hands
// out copies so shared instances cannot be corrupted.
type ExerciseTemplate struct {
	Name            string                  `json:"name"`
	Type            ExerciseType            `json:"exercise_type"`
	Sets            int                     `json:"sets,omitempty"`
	Reps            int                     `json:"reps,omitempty"`
	DurationSeconds int                     `json:"duration_seconds,omitempty"`
	RestTimeSeconds int                     `json:"rest_time_seconds"`
	Instructions    []string                `json:"instructions"`
	Modifications   map[FitnessLevel]string `json:"modifications,omitempty"`
}

// WeeklyWorkoutPlan is one calendar day of the training regimen. A day with
// no exercises is a rest day.
type WeeklyWorkoutPlan struct {
	Day       Weekday            `json:"day"`
	Exercises []ExerciseTemplate `json:"exercises,omitempty"`
	IsRestDay bool               `json:"is_rest_day"`
}

// MacroGrams holds macronutrient targets in grams.
type MacroGrams struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// MacroTargets holds daily macronutrient targets in grams plus the display
// percentages they were derived from.
type MacroTargets struct {
	ProteinG   int `json:"protein_g"`
	CarbsG     int `json:"carbs_g"`
	FatG       int `json:"fat_g"`
	ProteinPct int `json:"protein_pct"`
	CarbsPct   int `json:"carbs_pct"`
	FatPct     int `json:"fat_pct"`
}

// MealSuggestion is a pre-authored meal idea attached to a meal slot.
type MealSuggestion struct {
	Name            string     `json:"name"`
	Ingredients     []string   `json:"ingredients"`
	Calories        int        `json:"calories"`
	Macros          MacroGrams `json:"macros"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	Difficulty      string     `json:"difficulty"`
}

// MealPlanTemplate is one meal slot of the daily meal plan with its calorie
// and macro share of the daily totals.
type MealPlanTemplate struct {
	MealType       MealType         `json:"meal_type"`
	TargetCalories int              `json:"target_calories"`
	TargetMacros   MacroGrams       `json:"target_macros"`
	Suggestions    []MealSuggestion `json:"suggestions"`
}

// NutritionRegimen is the complete nutrition half of a plan.
type NutritionRegimen struct {
	DailyCalorieTarget    int                `json:"daily_calorie_target"`
	MacroTargets          MacroTargets       `json:"macro_targets"`
	MealPlan              []MealPlanTemplate `json:"meal_plan"`
	HydrationTargetLiters float64            `json:"hydration_target_liters"`
	Supplements           []string           `json:"supplements"`
}

// PersonalizedPlan is the engine's output: a full week of training plus a
// nutrition regimen. It is either returned complete or not at all.
type PersonalizedPlan struct {
	ID               string              `json:"id"`
	TrainingRegimen  []WeeklyWorkoutPlan `json:"training_regimen"`
	NutritionRegimen NutritionRegimen    `json:"nutrition_regimen"`
	CreatedAt        time.Time           `json:"created_at"`
	LastUpdated      time.Time           `json:"last_updated"`
}

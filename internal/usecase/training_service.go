package usecase

import (
	"github.com/fitforge/backend/internal/domain"
)

// DefaultFallbackWorkoutDays is used when the profile requests zero workout
// days and no override is configured, so a week never degenerates to
// all-rest unintentionally.
const DefaultFallbackWorkoutDays = 3

// dayPatterns maps a total workout-day count to the fixed weekday indices
// (0=Monday) used as workout days. Chosen to spread rest days through the
// week rather than stacking sessions back to back.
var dayPatterns = map[int][]int{
	1: {0},
	2: {0, 2},
	3: {0, 2, 4},
	4: {0, 1, 3, 5},
	5: {0, 1, 2, 4, 5},
	6: {0, 1, 2, 3, 4, 5},
	7: {0, 1, 2, 3, 4, 5, 6},
}

// TrainingServiceConfig holds configuration for the training service.
type TrainingServiceConfig struct {
	// FallbackWorkoutDays is used when train+cardio days resolve to zero.
	// Negative means "use the default"; zero is honored and produces an
	// all-rest week.
	FallbackWorkoutDays int
}

// TrainingService generates the weekly training regimen by selecting a
// day-index pattern and rotating through the exercise catalog's pre-authored
// day variants.
type TrainingService struct {
	catalog      domain.ExerciseCatalog
	fallbackDays int
}

// NewTrainingService creates a new training service.
func NewTrainingService(catalog domain.ExerciseCatalog, config TrainingServiceConfig) *TrainingService {
	fallbackDays := config.FallbackWorkoutDays
	if fallbackDays < 0 {
		fallbackDays = DefaultFallbackWorkoutDays
	}
	if fallbackDays > 7 {
		fallbackDays = 7
	}

	return &TrainingService{
		catalog:      catalog,
		fallbackDays: fallbackDays,
	}
}

// GenerateTrainingRegimen produces exactly 7 entries, one per calendar day
// in Monday-first order. The Nth workout day of the week receives variant N
// of the goal/level's pre-authored routines, giving weekly variety without
// randomness.
func (s *TrainingService) GenerateTrainingRegimen(profile domain.ResolvedProfile) []domain.WeeklyWorkoutPlan {
	totalWorkoutDays := profile.TrainDaysPerWeek + profile.CardioDaysPerWeek
	if totalWorkoutDays > 7 {
		totalWorkoutDays = 7
	}
	if totalWorkoutDays == 0 {
		totalWorkoutDays = s.fallbackDays
	}

	pattern := dayPatterns[totalWorkoutDays]
	if pattern == nil && totalWorkoutDays != 0 {
		pattern = dayPatterns[DefaultFallbackWorkoutDays]
	}

	workoutIndices := make(map[int]bool, len(pattern))
	for _, idx := range pattern {
		workoutIndices[idx] = true
	}

	regimen := make([]domain.WeeklyWorkoutPlan, 0, len(domain.WeekOrder))
	workoutDayCounter := 0
	for i, day := range domain.WeekOrder {
		if !workoutIndices[i] {
			regimen = append(regimen, domain.WeeklyWorkoutPlan{Day: day, IsRestDay: true})
			continue
		}

		exercises := s.catalog.Exercises(profile.Goal, profile.FitnessLevel, workoutDayCounter)
		regimen = append(regimen, domain.WeeklyWorkoutPlan{Day: day, Exercises: exercises})
		workoutDayCounter++
	}

	return regimen
}

package domain

import "strings"

// Gender is the biological sex used by the BMR formula.
type Gender string

// Gender values.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// FitnessLevel is the user's self-reported training experience.
type FitnessLevel string

// FitnessLevel values.
const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

// Goal selects which calorie delta, macro ratio, and exercise tables apply.
type Goal string

// Goal values.
const (
	GoalFatLoss        Goal = "fat_loss"
	GoalMuscleBuilding Goal = "muscle_building"
	GoalMaintenance    Goal = "maintenance"
	GoalStrength       Goal = "strength"
	GoalEndurance      Goal = "endurance"
)

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

// ActivityLevel values.
const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

// Profile defaults applied by Resolve. Single source of truth — never inline
// these at formula sites.
const (
	DefaultWeightKg = 70.0
	DefaultHeightCm = 170.0
	DefaultAge      = 30
)

// Default enum fallbacks. Every lookup site that meets an unknown enum value
// resolves it through the Normalize methods below, which land on these.
const (
	DefaultGender        = GenderMale
	DefaultFitnessLevel  = LevelBeginner
	DefaultGoal          = GoalMaintenance
	DefaultActivityLevel = ActivityModeratelyActive
)

// Normalize maps unknown gender strings to the documented default.
func (g Gender) Normalize() Gender {
	switch g {
	case GenderMale, GenderFemale:
		return g
	}
	return DefaultGender
}

// Normalize maps unknown fitness levels to beginner.
func (l FitnessLevel) Normalize() FitnessLevel {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return l
	}
	return DefaultFitnessLevel
}

// Normalize maps unknown goals to maintenance. This is the canonical goal
// fallback; the catalog, calorie-delta, macro-ratio, and supplement tables
// all resolve through it.
func (g Goal) Normalize() Goal {
	switch g {
	case GoalFatLoss, GoalMuscleBuilding, GoalMaintenance, GoalStrength, GoalEndurance:
		return g
	}
	return DefaultGoal
}

// Normalize maps unknown activity levels to moderately active.
func (a ActivityLevel) Normalize() ActivityLevel {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive,
		ActivityVeryActive, ActivityExtremelyActive:
		return a
	}
	return DefaultActivityLevel
}

// UserProfile is the raw plan-generation request. Every field is optional;
// zero values mean "not supplied" and are filled in by Resolve.
type UserProfile struct {
	WeightKg            float64       `json:"weight_kg"`
	HeightCm            float64       `json:"height_cm"`
	Age                 int           `json:"age"`
	Gender              Gender        `json:"gender"`
	FitnessLevel        FitnessLevel  `json:"fitness_level"`
	Goal                Goal          `json:"goal"`
	ActivityLevel       ActivityLevel `json:"activity_level"`
	TrainDaysPerWeek    int           `json:"train_days_per_week"`
	CardioDaysPerWeek   int           `json:"cardio_days_per_week"`
	DietaryRestrictions []string      `json:"dietary_restrictions"`
}

// ResolvedProfile is a UserProfile with all defaults applied. Generators only
// ever see resolved profiles, so no formula runs on a non-positive or
// unknown value.
type ResolvedProfile struct {
	WeightKg            float64
	HeightCm            float64
	Age                 int
	Gender              Gender
	FitnessLevel        FitnessLevel
	Goal                Goal
	ActivityLevel       ActivityLevel
	TrainDaysPerWeek    int
	CardioDaysPerWeek   int
	DietaryRestrictions []string
}

// Resolve applies all documented defaults once, up front: non-positive
// measurements clamp to the defaults, unknown enum strings normalize, day
// counts clamp to [0,7], and dietary restrictions are lowercased and
// de-duplicated preserving order.
func (p *UserProfile) Resolve() ResolvedProfile {
	r := ResolvedProfile{
		WeightKg:          p.WeightKg,
		HeightCm:          p.HeightCm,
		Age:               p.Age,
		Gender:            p.Gender.Normalize(),
		FitnessLevel:      p.FitnessLevel.Normalize(),
		Goal:              p.Goal.Normalize(),
		ActivityLevel:     p.ActivityLevel.Normalize(),
		TrainDaysPerWeek:  clampDays(p.TrainDaysPerWeek),
		CardioDaysPerWeek: clampDays(p.CardioDaysPerWeek),
	}

	if r.WeightKg <= 0 {
		r.WeightKg = DefaultWeightKg
	}
	if r.HeightCm <= 0 {
		r.HeightCm = DefaultHeightCm
	}
	if r.Age <= 0 {
		r.Age = DefaultAge
	}

	seen := make(map[string]bool, len(p.DietaryRestrictions))
	for _, restriction := range p.DietaryRestrictions {
		normalized := strings.ToLower(strings.TrimSpace(restriction))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		r.DietaryRestrictions = append(r.DietaryRestrictions, normalized)
	}

	return r
}

// HasRestriction reports whether the resolved restriction set contains the
// given (already lowercase) restriction.
func (r ResolvedProfile) HasRestriction(restriction string) bool {
	for _, have := range r.DietaryRestrictions {
		if have == restriction {
			return true
		}
	}
	return false
}

func clampDays(days int) int {
	if days < 0 {
		return 0
	}
	if days > 7 {
		return 7
	}
	return days
}

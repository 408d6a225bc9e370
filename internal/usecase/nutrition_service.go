package usecase

import (
	"math"

	"github.com/fitforge/backend/internal/domain"
)

// Calorie content per gram of macronutrient.
const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// Hydration targets: 35 ml per kg of body weight, never below 2 liters.
const (
	hydrationMlPerKg       = 35
	hydrationMinimumLiters = 2.0
)

// activityMultipliers scales BMR into TDEE. Single source of truth for valid
// activity levels; unknown levels normalize to moderately active before the
// lookup.
var activityMultipliers = map[domain.ActivityLevel]float64{
	domain.ActivitySedentary:        1.2,
	domain.ActivityLightlyActive:    1.375,
	domain.ActivityModeratelyActive: 1.55,
	domain.ActivityVeryActive:       1.725,
	domain.ActivityExtremelyActive:  1.9,
}

// goalCalorieDeltas adjusts TDEE per goal, in kcal.
var goalCalorieDeltas = map[domain.Goal]int{
	domain.GoalFatLoss:        -500,
	domain.GoalMuscleBuilding: 300,
	domain.GoalMaintenance:    0,
	domain.GoalStrength:       200,
	domain.GoalEndurance:      100,
}

// macroRatio is a protein/carbs/fat calorie split. Each triple must sum to 1.
type macroRatio struct {
	protein float64
	carbs   float64
	fat     float64
}

// goalMacroRatios selects the macro split per goal.
var goalMacroRatios = map[domain.Goal]macroRatio{
	domain.GoalFatLoss:        {protein: 0.35, carbs: 0.35, fat: 0.30},
	domain.GoalMuscleBuilding: {protein: 0.30, carbs: 0.45, fat: 0.25},
	domain.GoalMaintenance:    {protein: 0.25, carbs: 0.45, fat: 0.30},
	domain.GoalStrength:       {protein: 0.30, carbs: 0.40, fat: 0.30},
	domain.GoalEndurance:      {protein: 0.20, carbs: 0.55, fat: 0.25},
}

// mealDistribution fixes each meal slot's share of daily calories and
// macros, in serving order. The fractions sum to 1.
var mealDistribution = []struct {
	mealType domain.MealType
	fraction float64
}{
	{domain.MealBreakfast, 0.25},
	{domain.MealLunch, 0.35},
	{domain.MealDinner, 0.30},
	{domain.MealSnack, 0.10},
}

// baseSupplements is recommended regardless of goal.
var baseSupplements = []string{"Multivitamin", "Omega-3"}

// goalSupplements extends the base list per goal.
var goalSupplements = map[domain.Goal][]string{
	domain.GoalFatLoss:        {"Whey protein", "Green tea extract"},
	domain.GoalMuscleBuilding: {"Whey protein", "Creatine", "BCAAs"},
	domain.GoalMaintenance:    nil,
	domain.GoalStrength:       {"Whey protein", "Creatine"},
	domain.GoalEndurance:      {"Electrolytes", "Beta-alanine"},
}

// Dietary restrictions that exclude whey.
const (
	restrictionVegan      = "vegan"
	restrictionVegetarian = "vegetarian"
)

const (
	wheyProtein  = "Whey protein"
	plantProtein = "Plant protein"
)

// NutritionService derives the nutrition regimen: calorie target via
// Mifflin-St Jeor BMR and activity-scaled TDEE, goal-adjusted, then macro
// targets, meal plan, hydration, and supplements.
type NutritionService struct {
	catalog domain.MealCatalog
}

// NewNutritionService creates a new nutrition service.
func NewNutritionService(catalog domain.MealCatalog) *NutritionService {
	return &NutritionService{catalog: catalog}
}

// GenerateNutritionRegimen computes the full nutrition half of a plan from a
// resolved profile. Resolution guarantees all formula inputs are positive
// and all enum values are known.
func (s *NutritionService) GenerateNutritionRegimen(profile domain.ResolvedProfile) domain.NutritionRegimen {
	calories := s.dailyCalorieTarget(profile)
	macros := s.macroTargets(profile.Goal, calories)

	return domain.NutritionRegimen{
		DailyCalorieTarget:    calories,
		MacroTargets:          macros,
		MealPlan:              s.mealPlan(calories, macros),
		HydrationTargetLiters: hydrationTarget(profile.WeightKg),
		Supplements:           s.supplements(profile),
	}
}

// dailyCalorieTarget computes BMR (Mifflin-St Jeor), scales by the activity
// multiplier, and applies the per-goal calorie delta.
func (s *NutritionService) dailyCalorieTarget(profile domain.ResolvedProfile) int {
	bmr := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age)
	if profile.Gender == domain.GenderFemale {
		bmr -= 161
	} else {
		bmr += 5
	}

	tdee := bmr * activityMultipliers[profile.ActivityLevel.Normalize()]
	delta := goalCalorieDeltas[profile.Goal.Normalize()]

	return int(math.Round(tdee)) + delta
}

// macroTargets converts the goal's calorie split to grams: protein and carbs
// at 4 kcal/g, fat at 9 kcal/g. Percentages are emitted for display.
func (s *NutritionService) macroTargets(goal domain.Goal, calories int) domain.MacroTargets {
	ratio := goalMacroRatios[goal.Normalize()]
	cals := float64(calories)

	return domain.MacroTargets{
		ProteinG:   int(math.Round(cals * ratio.protein / kcalPerGramProtein)),
		CarbsG:     int(math.Round(cals * ratio.carbs / kcalPerGramCarbs)),
		FatG:       int(math.Round(cals * ratio.fat / kcalPerGramFat)),
		ProteinPct: int(math.Round(ratio.protein * 100)),
		CarbsPct:   int(math.Round(ratio.carbs * 100)),
		FatPct:     int(math.Round(ratio.fat * 100)),
	}
}

// mealPlan splits daily calories and macros across the four meal slots and
// attaches the catalog's suggestions for each slot.
func (s *NutritionService) mealPlan(calories int, macros domain.MacroTargets) []domain.MealPlanTemplate {
	plan := make([]domain.MealPlanTemplate, 0, len(mealDistribution))
	for _, slot := range mealDistribution {
		plan = append(plan, domain.MealPlanTemplate{
			MealType:       slot.mealType,
			TargetCalories: roundFraction(calories, slot.fraction),
			TargetMacros: domain.MacroGrams{
				ProteinG: roundFraction(macros.ProteinG, slot.fraction),
				CarbsG:   roundFraction(macros.CarbsG, slot.fraction),
				FatG:     roundFraction(macros.FatG, slot.fraction),
			},
			Suggestions: s.catalog.Suggestions(slot.mealType),
		})
	}
	return plan
}

// supplements builds the ordered, de-duplicated supplement list: base list,
// then the goal's additions, with whey swapped for plant protein under vegan
// or vegetarian restrictions.
func (s *NutritionService) supplements(profile domain.ResolvedProfile) []string {
	meatFree := profile.HasRestriction(restrictionVegan) || profile.HasRestriction(restrictionVegetarian)

	candidates := append([]string{}, baseSupplements...)
	candidates = append(candidates, goalSupplements[profile.Goal.Normalize()]...)
	if meatFree {
		candidates = append(candidates, plantProtein)
	}

	seen := make(map[string]bool, len(candidates))
	supplements := make([]string, 0, len(candidates))
	for _, supplement := range candidates {
		if meatFree && supplement == wheyProtein {
			continue
		}
		if seen[supplement] {
			continue
		}
		seen[supplement] = true
		supplements = append(supplements, supplement)
	}

	return supplements
}

// hydrationTarget returns liters per day, rounded to one decimal.
func hydrationTarget(weightKg float64) float64 {
	liters := math.Round(weightKg*hydrationMlPerKg/100) / 10
	return math.Max(hydrationMinimumLiters, liters)
}

func roundFraction(total int, fraction float64) int {
	return int(math.Round(float64(total) * fraction))
}

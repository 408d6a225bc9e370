package catalog

import "github.com/fitforge/backend/internal/domain"

// Suggestion difficulty labels.
const (
	difficultyEasy   = "easy"
	difficultyMedium = "medium"
)

// mealTable is the static per-meal-type suggestion list. Suggestions are not
// personalized by calorie target; generators attach the full list for a slot.
var mealTable = map[domain.MealType][]domain.MealSuggestion{
	domain.MealBreakfast: {
		{
			Name:        "Greek yogurt with berries and granola",
			Ingredients: []string{"greek yogurt", "mixed berries", "granola", "honey"},
			Calories:    380,
			Macros:      domain.MacroGrams{ProteinG: 24, CarbsG: 48, FatG: 10},
			PrepTimeMinutes: 5, Difficulty: difficultyEasy,
		},
		{
			Name:        "Veggie omelette with whole-grain toast",
			Ingredients: []string{"eggs", "spinach", "bell pepper", "onion", "whole-grain bread", "olive oil"},
			Calories:    420,
			Macros:      domain.MacroGrams{ProteinG: 26, CarbsG: 32, FatG: 20},
			PrepTimeMinutes: 15, Difficulty: difficultyMedium,
		},
		{
			Name:        "Overnight oats with banana and peanut butter",
			Ingredients: []string{"rolled oats", "milk", "banana", "peanut butter", "chia seeds"},
			Calories:    450,
			Macros:      domain.MacroGrams{ProteinG: 18, CarbsG: 62, FatG: 16},
			PrepTimeMinutes: 10, Difficulty: difficultyEasy,
		},
		{
			Name:        "Protein smoothie bowl",
			Ingredients: []string{"protein powder", "frozen berries", "banana", "almond milk", "granola"},
			Calories:    400,
			Macros:      domain.MacroGrams{ProteinG: 30, CarbsG: 52, FatG: 8},
			PrepTimeMinutes: 8, Difficulty: difficultyEasy,
		},
	},
	domain.MealLunch: {
		{
			Name:        "Grilled chicken and quinoa bowl",
			Ingredients: []string{"chicken breast", "quinoa", "broccoli", "olive oil", "lemon"},
			Calories:    560,
			Macros:      domain.MacroGrams{ProteinG: 42, CarbsG: 52, FatG: 18},
			PrepTimeMinutes: 25, Difficulty: difficultyMedium,
		},
		{
			Name:        "Tuna salad wrap",
			Ingredients: []string{"canned tuna", "whole-wheat tortilla", "lettuce", "tomato", "light mayo"},
			Calories:    480,
			Macros:      domain.MacroGrams{ProteinG: 34, CarbsG: 44, FatG: 18},
			PrepTimeMinutes: 10, Difficulty: difficultyEasy,
		},
		{
			Name:        "Lentil and vegetable curry with rice",
			Ingredients: []string{"red lentils", "coconut milk", "mixed vegetables", "curry paste", "brown rice"},
			Calories:    590,
			Macros:      domain.MacroGrams{ProteinG: 22, CarbsG: 82, FatG: 18},
			PrepTimeMinutes: 30, Difficulty: difficultyMedium,
		},
		{
			Name:        "Turkey and avocado sandwich",
			Ingredients: []string{"turkey breast", "whole-grain bread", "avocado", "lettuce", "mustard"},
			Calories:    520,
			Macros:      domain.MacroGrams{ProteinG: 36, CarbsG: 46, FatG: 20},
			PrepTimeMinutes: 8, Difficulty: difficultyEasy,
		},
	},
	domain.MealDinner: {
		{
			Name:        "Baked salmon with sweet potato and greens",
			Ingredients: []string{"salmon fillet", "sweet potato", "kale", "olive oil", "garlic"},
			Calories:    610,
			Macros:      domain.MacroGrams{ProteinG: 40, CarbsG: 46, FatG: 28},
			PrepTimeMinutes: 35, Difficulty: difficultyMedium,
		},
		{
			Name:        "Lean beef stir-fry with rice",
			Ingredients: []string{"lean beef strips", "mixed stir-fry vegetables", "soy sauce", "ginger", "jasmine rice"},
			Calories:    580,
			Macros:      domain.MacroGrams{ProteinG: 38, CarbsG: 58, FatG: 20},
			PrepTimeMinutes: 25, Difficulty: difficultyMedium,
		},
		{
			Name:        "Chickpea and spinach stew",
			Ingredients: []string{"chickpeas", "spinach", "tomatoes", "onion", "cumin", "olive oil"},
			Calories:    490,
			Macros:      domain.MacroGrams{ProteinG: 20, CarbsG: 64, FatG: 18},
			PrepTimeMinutes: 30, Difficulty: difficultyEasy,
		},
		{
			Name:        "Grilled chicken with roasted vegetables",
			Ingredients: []string{"chicken thighs", "zucchini", "bell pepper", "red onion", "olive oil", "herbs"},
			Calories:    540,
			Macros:      domain.MacroGrams{ProteinG: 42, CarbsG: 28, FatG: 28},
			PrepTimeMinutes: 40, Difficulty: difficultyMedium,
		},
	},
	domain.MealSnack: {
		{
			Name:        "Apple with almond butter",
			Ingredients: []string{"apple", "almond butter"},
			Calories:    220,
			Macros:      domain.MacroGrams{ProteinG: 6, CarbsG: 26, FatG: 12},
			PrepTimeMinutes: 2, Difficulty: difficultyEasy,
		},
		{
			Name:        "Cottage cheese with pineapple",
			Ingredients: []string{"cottage cheese", "pineapple chunks"},
			Calories:    180,
			Macros:      domain.MacroGrams{ProteinG: 20, CarbsG: 18, FatG: 4},
			PrepTimeMinutes: 3, Difficulty: difficultyEasy,
		},
		{
			Name:        "Trail mix",
			Ingredients: []string{"almonds", "walnuts", "raisins", "dark chocolate chips"},
			Calories:    250,
			Macros:      domain.MacroGrams{ProteinG: 7, CarbsG: 22, FatG: 16},
			PrepTimeMinutes: 1, Difficulty: difficultyEasy,
		},
	},
}

// MealStore serves the static meal suggestion table.
type MealStore struct{}

// NewMealStore creates the meal catalog.
func NewMealStore() *MealStore {
	return &MealStore{}
}

// Suggestions returns the pre-authored suggestions for a meal type, or an
// empty list for an unrecognized meal type. It never fails.
func (s *MealStore) Suggestions(mealType domain.MealType) []domain.MealSuggestion {
	suggestions, ok := mealTable[mealType]
	if !ok {
		return nil
	}

	out := make([]domain.MealSuggestion, len(suggestions))
	for i, suggestion := range suggestions {
		out[i] = suggestion
		out[i].Ingredients = append([]string(nil), suggestion.Ingredients...)
	}
	return out
}

package catalog

import (
	"testing"

	"github.com/fitforge/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionsKnownMealTypes(t *testing.T) {
	store := NewMealStore()

	for _, mealType := range []domain.MealType{
		domain.MealBreakfast, domain.MealLunch, domain.MealDinner, domain.MealSnack,
	} {
		suggestions := store.Suggestions(mealType)
		require.NotEmptyf(t, suggestions, "Suggestions(%q) empty", mealType)

		for _, s := range suggestions {
			assert.NotEmpty(t, s.Name)
			assert.NotEmpty(t, s.Ingredients)
			assert.Greater(t, s.Calories, 0)
			assert.Greater(t, s.PrepTimeMinutes, 0)
		}
	}
}

func TestSuggestionsUnknownMealType(t *testing.T) {
	store := NewMealStore()
	assert.Empty(t, store.Suggestions(domain.MealType("brunch")))
}

func TestSuggestionsReturnsDefensiveCopies(t *testing.T) {
	store := NewMealStore()

	first := store.Suggestions(domain.MealBreakfast)
	require.NotEmpty(t, first)
	first[0].Ingredients[0] = "corrupted"

	second := store.Suggestions(domain.MealBreakfast)
	assert.NotEqual(t, "corrupted", second[0].Ingredients[0])
}

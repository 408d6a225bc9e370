package catalog

import (
	"testing"

	"github.com/fitforge/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExerciseStoreValidate(t *testing.T) {
	store := NewExerciseStore()
	require.NoError(t, store.Validate())
}

func TestExercisesNeverEmpty(t *testing.T) {
	store := NewExerciseStore()

	goals := append([]domain.Goal{}, allGoals...)
	goals = append(goals, domain.Goal("crossfit")) // unknown, falls back

	levels := append([]domain.FitnessLevel{}, allLevels...)
	levels = append(levels, domain.FitnessLevel("elite")) // unknown, falls back

	for _, goal := range goals {
		for _, level := range levels {
			for variant := 0; variant <= 10; variant++ {
				exercises := store.Exercises(goal, level, variant)
				assert.NotEmptyf(t, exercises,
					"Exercises(%q, %q, %d) returned empty list", goal, level, variant)
			}
		}
	}
}

func TestExercisesVariantRotation(t *testing.T) {
	store := NewExerciseStore()

	// Variant index wraps modulo the authored count, so index N and
	// N+count produce the same routine.
	count := len(exerciseTable[domain.GoalStrength][domain.LevelAdvanced])
	require.Greater(t, count, 1)

	first := store.Exercises(domain.GoalStrength, domain.LevelAdvanced, 0)
	wrapped := store.Exercises(domain.GoalStrength, domain.LevelAdvanced, count)
	assert.Equal(t, first, wrapped)

	second := store.Exercises(domain.GoalStrength, domain.LevelAdvanced, 1)
	assert.NotEqual(t, first, second, "consecutive variants should differ")
}

func TestExercisesNegativeVariantIndex(t *testing.T) {
	store := NewExerciseStore()

	got := store.Exercises(domain.GoalMaintenance, domain.LevelBeginner, -3)
	want := store.Exercises(domain.GoalMaintenance, domain.LevelBeginner, 0)
	assert.Equal(t, want, got)
}

func TestExercisesUnknownGoalUsesDefaultGoal(t *testing.T) {
	store := NewExerciseStore()

	got := store.Exercises(domain.Goal("powerbuilding"), domain.LevelIntermediate, 0)
	want := store.Exercises(domain.GoalMaintenance, domain.LevelIntermediate, 0)
	assert.Equal(t, want, got)
}

func TestExercisesReturnsDefensiveCopies(t *testing.T) {
	store := NewExerciseStore()

	first := store.Exercises(domain.GoalMuscleBuilding, domain.LevelAdvanced, 0)
	require.NotEmpty(t, first)

	// Corrupt everything mutable on the returned copy.
	first[0].Name = "corrupted"
	first[0].Instructions[0] = "corrupted"
	for k := range first[0].Modifications {
		first[0].Modifications[k] = "corrupted"
	}

	second := store.Exercises(domain.GoalMuscleBuilding, domain.LevelAdvanced, 0)
	assert.NotEqual(t, "corrupted", second[0].Name)
	assert.NotEqual(t, "corrupted", second[0].Instructions[0])
	for _, v := range second[0].Modifications {
		assert.NotEqual(t, "corrupted", v)
	}
}

func TestValidateTemplate(t *testing.T) {
	tests := []struct {
		name    string
		ex      domain.ExerciseTemplate
		wantErr bool
	}{
		{
			name: "valid strength",
			ex: domain.ExerciseTemplate{
				Name: "Rows", Type: domain.ExerciseStrength,
				Sets: 3, Reps: 10, Instructions: []string{"pull"},
			},
		},
		{
			name: "valid cardio",
			ex: domain.ExerciseTemplate{
				Name: "Run", Type: domain.ExerciseCardio,
				DurationSeconds: 600, Instructions: []string{"run"},
			},
		},
		{
			name: "strength with duration",
			ex: domain.ExerciseTemplate{
				Name: "Rows", Type: domain.ExerciseStrength,
				Sets: 3, Reps: 10, DurationSeconds: 60, Instructions: []string{"pull"},
			},
			wantErr: true,
		},
		{
			name: "cardio with reps",
			ex: domain.ExerciseTemplate{
				Name: "Run", Type: domain.ExerciseCardio,
				DurationSeconds: 600, Reps: 10, Instructions: []string{"run"},
			},
			wantErr: true,
		},
		{
			name:    "unnamed",
			ex:      domain.ExerciseTemplate{Type: domain.ExerciseCardio, DurationSeconds: 60},
			wantErr: true,
		},
		{
			name: "unknown type",
			ex: domain.ExerciseTemplate{
				Name: "Mystery", Type: domain.ExerciseType("balance"),
				Instructions: []string{"balance"},
			},
			wantErr: true,
		},
		{
			name: "no instructions",
			ex: domain.ExerciseTemplate{
				Name: "Run", Type: domain.ExerciseCardio, DurationSeconds: 600,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTemplate(tt.ex)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

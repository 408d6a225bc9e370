package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/fitforge/backend/internal/domain"
)

// MockPlanCache is a mock implementation of domain.PlanCache.
type MockPlanCache struct {
	data      map[string][]byte
	getError  error
	setError  error
	getCalled bool
	setCalled bool
}

func NewMockPlanCache() *MockPlanCache {
	return &MockPlanCache{data: make(map[string][]byte)}
}

func (m *MockPlanCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.getCalled = true
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockPlanCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.setCalled = true
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockPlanCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockPlanCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func newTestPlanService(cache domain.PlanCache) *PlanService {
	training := NewTrainingService(&MockExerciseCatalog{}, TrainingServiceConfig{FallbackWorkoutDays: 3})
	nutrition := NewNutritionService(&MockMealCatalog{})
	svc := NewPlanService(training, nutrition, cache, PlanServiceConfig{})

	// Pin the clock and ID source so generated plans are comparable.
	fixed := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	svc.newID = func() string { return "test-plan-id" }
	return svc
}

func TestNewPlanService(t *testing.T) {
	svc := newTestPlanService(nil)
	if svc.cacheTTL != 24*time.Hour {
		t.Errorf("cacheTTL = %v, want 24h", svc.cacheTTL)
	}
}

func TestGeneratePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("returns error for nil profile", func(t *testing.T) {
		svc := newTestPlanService(nil)
		_, err := svc.GeneratePlan(ctx, nil)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("returns a complete plan", func(t *testing.T) {
		svc := newTestPlanService(nil)
		plan, err := svc.GeneratePlan(ctx, &domain.UserProfile{TrainDaysPerWeek: 3})
		if err != nil {
			t.Fatalf("GeneratePlan() error = %v", err)
		}

		if plan.ID == "" {
			t.Error("plan has no ID")
		}
		if len(plan.TrainingRegimen) != 7 {
			t.Errorf("len(TrainingRegimen) = %d, want 7", len(plan.TrainingRegimen))
		}
		if plan.NutritionRegimen.DailyCalorieTarget <= 0 {
			t.Error("nutrition regimen missing calorie target")
		}
		if !plan.CreatedAt.Equal(plan.LastUpdated) {
			t.Error("CreatedAt and LastUpdated differ on a fresh plan")
		}
	})

	t.Run("is idempotent for identical profiles", func(t *testing.T) {
		svc := newTestPlanService(nil)

		profile := &domain.UserProfile{
			WeightKg: 80, HeightCm: 180, Age: 30,
			Goal:             domain.GoalMuscleBuilding,
			FitnessLevel:     domain.LevelIntermediate,
			TrainDaysPerWeek: 4, CardioDaysPerWeek: 1,
		}

		first, err := svc.GeneratePlan(ctx, profile)
		if err != nil {
			t.Fatalf("first GeneratePlan() error = %v", err)
		}
		second, err := svc.GeneratePlan(ctx, profile)
		if err != nil {
			t.Fatalf("second GeneratePlan() error = %v", err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Error("identical profiles produced different plans")
		}
	})

	t.Run("serves the cached plan on a second call", func(t *testing.T) {
		cache := NewMockPlanCache()
		svc := newTestPlanService(cache)

		profile := &domain.UserProfile{TrainDaysPerWeek: 3}

		first, err := svc.GeneratePlan(ctx, profile)
		if err != nil {
			t.Fatalf("GeneratePlan() error = %v", err)
		}
		if !cache.setCalled {
			t.Error("first call did not populate the cache")
		}

		second, err := svc.GeneratePlan(ctx, profile)
		if err != nil {
			t.Fatalf("GeneratePlan() error = %v", err)
		}
		if !cache.getCalled {
			t.Error("second call did not consult the cache")
		}
		if !first.CreatedAt.Equal(second.CreatedAt) {
			t.Error("cached plan has a different creation time")
		}
	})

	t.Run("cache failures do not fail generation", func(t *testing.T) {
		cache := NewMockPlanCache()
		cache.getError = errors.New("cache down")
		cache.setError = errors.New("cache down")
		svc := newTestPlanService(cache)

		plan, err := svc.GeneratePlan(ctx, &domain.UserProfile{})
		if err != nil {
			t.Fatalf("GeneratePlan() error = %v", err)
		}
		if len(plan.TrainingRegimen) != 7 {
			t.Error("plan incomplete despite healthy generators")
		}
	})
}

func TestPlanCacheKey(t *testing.T) {
	base := domain.UserProfile{
		WeightKg: 80, HeightCm: 180, Age: 30,
		Goal: domain.GoalFatLoss, TrainDaysPerWeek: 3,
	}

	t.Run("restriction order does not change the key", func(t *testing.T) {
		a := base
		a.DietaryRestrictions = []string{"vegan", "gluten-free"}
		b := base
		b.DietaryRestrictions = []string{"gluten-free", "vegan"}

		if planCacheKey(a.Resolve()) != planCacheKey(b.Resolve()) {
			t.Error("restriction order changed the cache key")
		}
	})

	t.Run("different goals produce different keys", func(t *testing.T) {
		a := base
		b := base
		b.Goal = domain.GoalStrength

		if planCacheKey(a.Resolve()) == planCacheKey(b.Resolve()) {
			t.Error("different goals share a cache key")
		}
	})
}

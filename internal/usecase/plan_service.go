package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitforge/backend/internal/domain"
)

// PlanServiceConfig holds configuration for the plan service.
type PlanServiceConfig struct {
	CacheTTL time.Duration
}

// PlanService assembles personalized plans: training regimen plus nutrition
// regimen, stamped with an ID and timestamps. Generation is pure and
// idempotent, so identical resolved profiles may be served from the cache.
type PlanService struct {
	training  *TrainingService
	nutrition *NutritionService
	cache     domain.PlanCache
	cacheTTL  time.Duration

	// now and newID are injectable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewPlanService creates a new plan service. cache may be nil to disable
// plan caching.
func NewPlanService(
	training *TrainingService,
	nutrition *NutritionService,
	cache domain.PlanCache,
	config PlanServiceConfig,
) *PlanService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &PlanService{
		training:  training,
		nutrition: nutrition,
		cache:     cache,
		cacheTTL:  cacheTTL,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// GeneratePlan resolves the profile, generates both regimens, and returns
// the composed plan. Flow: resolve -> check cache -> generate -> cache ->
// return. A plan is either returned complete or not at all.
func (s *PlanService) GeneratePlan(ctx context.Context, profile *domain.UserProfile) (*domain.PersonalizedPlan, error) {
	if profile == nil {
		return nil, domain.ErrInvalidRequest
	}

	resolved := profile.Resolve()
	cacheKey := planCacheKey(resolved)

	if cached := s.getFromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	now := s.now()
	plan := &domain.PersonalizedPlan{
		ID:               s.newID(),
		TrainingRegimen:  s.training.GenerateTrainingRegimen(resolved),
		NutritionRegimen: s.nutrition.GenerateNutritionRegimen(resolved),
		CreatedAt:        now,
		LastUpdated:      now,
	}

	if err := s.setInCache(ctx, cacheKey, plan); err != nil {
		// Caching is best-effort; the plan is still valid.
		log.Printf("plan cache set failed: %v", err)
	}

	return plan, nil
}

// planCacheKey builds a deterministic key from every resolved field that
// influences generation.
// Format: "plan:{goal}:{level}:{gender}:{activity}:{weight}:{height}:{age}:{train}:{cardio}:{restrictions}"
func planCacheKey(p domain.ResolvedProfile) string {
	restrictions := append([]string(nil), p.DietaryRestrictions...)
	sort.Strings(restrictions)

	return fmt.Sprintf("plan:%s:%s:%s:%s:%g:%g:%d:%d:%d:%s",
		p.Goal, p.FitnessLevel, p.Gender, p.ActivityLevel,
		p.WeightKg, p.HeightCm, p.Age,
		p.TrainDaysPerWeek, p.CardioDaysPerWeek,
		strings.Join(restrictions, ","))
}

// getFromCache returns the cached plan for key, or nil on miss or decode
// failure.
func (s *PlanService) getFromCache(ctx context.Context, key string) *domain.PersonalizedPlan {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	var plan domain.PersonalizedPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		log.Printf("plan cache decode failed for %q: %v", key, err)
		return nil
	}
	return &plan
}

// setInCache stores the plan under key.
func (s *PlanService) setInCache(ctx context.Context, key string, plan *domain.PersonalizedPlan) error {
	if s.cache == nil {
		return nil
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, data, s.cacheTTL)
}

package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/services"
)

func TestNutritionService(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Meals and water accumulate on today's record", func(t *testing.T) {
		repo := newFakeNutritionRepo()
		svc := services.NewNutritionService(repo).WithClock(clock)

		_, err := svc.LogMeal(ctx, domain.Meal{Calories: 450, ProteinG: 30, CarbsG: 50, FatG: 12})
		require.NoError(t, err)
		_, err = svc.LogMeal(ctx, domain.Meal{Calories: 350, ProteinG: 20})
		require.NoError(t, err)
		rec, err := svc.AddWater(ctx)
		require.NoError(t, err)

		assert.Equal(t, 800, rec.CaloriesConsumed)
		assert.Equal(t, 50.0, rec.ProteinG)
		assert.Equal(t, 1, rec.WaterGlasses)
		assert.Len(t, repo.store, 1)

		today, err := svc.Today(ctx)
		require.NoError(t, err)
		assert.Equal(t, day(0), today.Date)
	})

	t.Run("Error: Invalid meal is not stored", func(t *testing.T) {
		repo := newFakeNutritionRepo()
		svc := services.NewNutritionService(repo).WithClock(clock)

		_, err := svc.LogMeal(ctx, domain.Meal{Calories: -10})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, repo.store)
	})

	t.Run("Error: Non-positive limit", func(t *testing.T) {
		svc := services.NewNutritionService(newFakeNutritionRepo())

		_, err := svc.Recent(ctx, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestNutritionService_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Concurrent taps on a fresh day are all counted", func(t *testing.T) {
		repo := slowNutritionRepo{repository.NewInMemoryNutritionRepository()}
		svc := services.NewNutritionService(repo).WithClock(clock)

		const taps, meals = 20, 10
		errs := make(chan error, taps+meals)
		var wg sync.WaitGroup
		for i := 0; i < taps; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.AddWater(ctx)
				errs <- err
			}()
		}
		for i := 0; i < meals; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.LogMeal(ctx, domain.Meal{Calories: 100, ProteinG: 5})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}

		stored, err := repo.GetByDate(ctx, day(0))
		require.NoError(t, err)
		assert.Equal(t, taps, stored.WaterGlasses)
		assert.Equal(t, meals*100, stored.CaloriesConsumed)
		assert.Equal(t, 50.0, stored.ProteinG)
	})

	t.Run("Success: Record created elsewhere after the read is updated, not rejected", func(t *testing.T) {
		inner := repository.NewInMemoryNutritionRepository()
		existing := domain.NewNutritionRecord(day(0))
		existing.AddWater()
		require.NoError(t, inner.Create(ctx, existing))

		svc := services.NewNutritionService(&staleReadNutritionRepo{InMemoryNutritionRepository: inner}).WithClock(clock)

		rec, err := svc.AddWater(ctx)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, rec.ID)
		assert.Equal(t, 2, rec.WaterGlasses)
	})
}

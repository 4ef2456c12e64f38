package repository

import (
	"context"
	"fmt"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupDB(t *testing.T, driver string) *sqlx.DB {
	t.Helper()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "kanso_user"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "kanso_db"),
	)

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		t.Skipf("Database connection failed (skipping integration tests): %v", err)
	}

	require.NoError(t, EnsureSchema(context.Background(), db))
	db.MustExec("TRUNCATE TABLE activity_records, nutrition_records")

	t.Cleanup(func() { db.Close() })
	return db
}

func TestPostgresActivityRepository_Integration(t *testing.T) {
	for _, driver := range []string{"pgx", "postgres"} {
		t.Run(driver, func(t *testing.T) {
			db := setupDB(t, driver)
			repo := NewPostgresActivityRepository(db)
			ctx := context.Background()

			rec, err := domain.NewActivityRecord(baseDay, 8000, 350, 6.2, 45)
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, rec))

			t.Run("Duplicate day maps to immutable", func(t *testing.T) {
				dup, _ := domain.NewActivityRecord(baseDay, 1, 1, 1, 1)
				assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrRecordImmutable)
			})

			t.Run("Fetch and update today", func(t *testing.T) {
				got, err := repo.GetByDate(ctx, baseDay)
				require.NoError(t, err)
				assert.Equal(t, rec.ID, got.ID)
				assert.Equal(t, 6.2, got.DistanceKm)
				assert.True(t, baseDay.Equal(got.Date))

				require.NoError(t, got.Apply(9000, 400, 7, 50))
				require.NoError(t, repo.Update(ctx, got))

				again, _ := repo.GetByDate(ctx, baseDay)
				assert.Equal(t, 9000, again.Steps)
			})

			t.Run("ListRecent ordering", func(t *testing.T) {
				older, _ := domain.NewActivityRecord(baseDay.AddDate(0, 0, -1), 100, 0, 0, 0)
				require.NoError(t, repo.Create(ctx, older))

				list, err := repo.ListRecent(ctx, 7)
				require.NoError(t, err)
				require.Len(t, list, 2)
				assert.True(t, list[0].Date.After(list[1].Date))
			})

			t.Run("Missing day", func(t *testing.T) {
				_, err := repo.GetByDate(ctx, baseDay.AddDate(0, 0, 5))
				assert.ErrorIs(t, err, domain.ErrRecordNotFound)

				ghost, _ := domain.NewActivityRecord(baseDay.AddDate(0, 0, 5), 1, 1, 1, 1)
				assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrRecordNotFound)
			})
		})
	}
}

func TestPostgresNutritionRepository_Integration(t *testing.T) {
	db := setupDB(t, "pgx")
	repo := NewPostgresNutritionRepository(db)
	ctx := context.Background()

	rec := domain.NewNutritionRecord(baseDay)
	require.NoError(t, rec.AddMeal(domain.Meal{Calories: 700, CarbsG: 80}))
	require.NoError(t, repo.Create(ctx, rec))

	rec.AddWater()
	require.NoError(t, repo.Update(ctx, rec))

	got, err := repo.GetByDate(ctx, baseDay)
	require.NoError(t, err)
	assert.Equal(t, 700, got.CaloriesConsumed)
	assert.Equal(t, 1, got.WaterGlasses)

	assert.ErrorIs(t, repo.Create(ctx, domain.NewNutritionRecord(baseDay)), domain.ErrRecordImmutable)
}

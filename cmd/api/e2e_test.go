package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/storage"
	"github.com/comitanigiacomo/kanso-pulse/internal/config"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/services"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

const profileYAML = `name: Sam
age: 31
height_cm: 175
weight_kg: 70
activity_level: moderate
`

func testConfig(t *testing.T, dir string) config.Config {
	t.Helper()

	profilePath := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profilePath, []byte(profileYAML), 0o600))

	return config.Config{
		StorageDriver: config.StorageSQLite,
		SQLitePath:    filepath.Join(dir, "pulse.db"),
		GoalsKey:      config.DefaultGoalsKey,
		ProfilePath:   profilePath,
		JWTSecret:     "e2e-secret",
		JWTIssuer:     "kanso-pulse",
		JWTDuration:   time.Hour,
	}
}

func call(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEndToEnd_GoalsAndAchievements(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	cfg := testConfig(t, dir)
	token, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTDuration).GenerateToken("e2e")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first, err := newApp(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	first.worker.Start(ctx)

	t.Run("1. Defaults are seeded", func(t *testing.T) {
		w := call(t, first.router, http.MethodGet, "/api/v1/goals", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var goals []domain.GoalTarget
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goals))
		assert.Len(t, goals, 4)
	})

	t.Run("2. Writes need a token", func(t *testing.T) {
		w := call(t, first.router, http.MethodPut, "/api/v1/goals/Daily%20Steps", `{"target":6000}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("3. Set the steps target", func(t *testing.T) {
		w := call(t, first.router, http.MethodPut, "/api/v1/goals/Daily%20Steps", `{"target":6000}`, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("4. Logging today triggers an achievement", func(t *testing.T) {
		w := call(t, first.router, http.MethodPost, "/api/v1/activities/today",
			`{"steps":6500,"calories_burned":300,"distance_km":5,"active_minutes":40}`, token)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Eventually(t, func() bool {
			w := call(t, first.router, http.MethodGet, "/api/v1/notifications", "", "")
			var list []domain.Notification
			if json.Unmarshal(w.Body.Bytes(), &list) != nil || len(list) == 0 {
				return false
			}
			return list[0].Title == "Goal achieved!"
		}, 2*time.Second, 20*time.Millisecond)
	})

	t.Run("5. Dashboard reflects the new target", func(t *testing.T) {
		w := call(t, first.router, http.MethodGet, "/api/v1/dashboard/summary", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var summary domain.DashboardSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, 100, summary.Goals[0].Percentage)
		assert.Equal(t, 1, summary.StreakDays)
		require.NotNil(t, summary.BMI)
		assert.Equal(t, 22.9, summary.BMI.Value)
	})

	first.Close()

	t.Run("6. Target survives a restart", func(t *testing.T) {
		second, err := newApp(ctx, cfg, logger.Nop())
		require.NoError(t, err)
		defer second.Close()

		w := call(t, second.router, http.MethodGet, "/api/v1/goals/Daily%20Steps", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var g domain.GoalTarget
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &g))
		assert.Equal(t, 6000.0, g.Target)
	})
}

func TestNewApp_CorruptGoalsAreReseeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig(t, t.TempDir())
	cfg.JWTSecret = ""

	kv, err := storage.NewSQLiteStore(cfg.SQLitePath)
	require.NoError(t, err)
	require.NoError(t, kv.Set(context.Background(), cfg.GoalsKey, []byte(`{"not":"a list"`)))
	require.NoError(t, kv.Close())

	a, err := newApp(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer a.Close()

	w := call(t, a.router, http.MethodGet, "/api/v1/goals", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var goals []domain.GoalTarget
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goals))
	assert.Equal(t, domain.DefaultGoals(), goals)

	t.Run("Open write routes without JWT_SECRET", func(t *testing.T) {
		w := call(t, a.router, http.MethodPut, "/api/v1/goals/Distance", `{"target":9}`, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

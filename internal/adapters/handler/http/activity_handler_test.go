package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

func TestActivityHandler(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("Success: Log today twice overwrites", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/activities/today", `{"steps":4000,"calories_burned":150,"distance_km":3,"active_minutes":20}`)
		require.Equal(t, http.StatusOK, w.Code)

		w = s.do(t, http.MethodPost, "/api/v1/activities/today", `{"steps":9000,"calories_burned":380,"distance_km":6.5,"active_minutes":55}`)
		require.Equal(t, http.StatusOK, w.Code)

		var rec domain.ActivityRecord
		decode(t, w, &rec)
		assert.Equal(t, 9000, rec.Steps)
	})

	t.Run("Error: Negative steps", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/activities/today", `{"steps":-1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Success: Past day created once", func(t *testing.T) {
		body := `{"date":"2024-03-08","steps":11000,"calories_burned":420,"distance_km":8.2,"active_minutes":70}`

		assert.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/activities", body).Code)
		assert.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, "/api/v1/activities", body).Code)
	})

	t.Run("Error: Bad or future dates", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/activities", `{"date":"08/03/2024","steps":1}`).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/activities", `{"date":"2024-03-11","steps":1}`).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/activities", `{"steps":1}`).Code)
	})

	t.Run("Success: List newest first", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/activities?limit=5", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list []domain.ActivityRecord
		decode(t, w, &list)
		require.Len(t, list, 2)
		assert.Equal(t, 9000, list[0].Steps)
		assert.Equal(t, 11000, list[1].Steps)
	})

	t.Run("Error: Invalid limit", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/activities?limit=zero", nil).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/activities?limit=0", nil).Code)
	})
}

func TestNutritionHandler(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/api/v1/nutrition/today/meals", `{"calories":520,"protein_g":35,"carbs_g":60,"fat_g":14}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/nutrition/today/water", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rec domain.NutritionRecord
	decode(t, w, &rec)
	assert.Equal(t, 520, rec.CaloriesConsumed)
	assert.Equal(t, 1, rec.WaterGlasses)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/nutrition/today/meals", `{"calories":-20}`).Code)

	w = s.do(t, http.MethodGet, "/api/v1/nutrition", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.NutritionRecord
	decode(t, w, &list)
	assert.Len(t, list, 1)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

func TestLoad(t *testing.T) {
	t.Run("Success: Defaults", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "")
		t.Setenv("GOALS_STORAGE_KEY", "")
		t.Setenv("PORT", "")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, StorageSQLite, cfg.StorageDriver)
		assert.Equal(t, DefaultGoalsKey, cfg.GoalsKey)
		assert.Equal(t, 24*time.Hour, cfg.JWTDuration)
	})

	t.Run("Success: Reads .env file", func(t *testing.T) {
		dir := t.TempDir()
		envFile := filepath.Join(dir, ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("GOALS_STORAGE_KEY=from-dotenv\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("GOALS_STORAGE_KEY") })
		os.Unsetenv("GOALS_STORAGE_KEY")

		cfg, err := Load(envFile)
		require.NoError(t, err)
		assert.Equal(t, "from-dotenv", cfg.GoalsKey)
	})

	t.Run("Error: Unknown storage driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "floppy")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("Error: Redis storage without host", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", StorageRedis)
		t.Setenv("REDIS_HOST", "")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("Success: CORS origins list", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", StorageMemory)
		t.Setenv("CORS_ORIGINS", " http://localhost:5173, ,http://127.0.0.1:3000")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:3000"}, cfg.CORSOrigins)
		assert.Equal(t, 100, cfg.RateLimit)
	})

	t.Run("Error: Bad JWT duration", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", StorageMemory)
		t.Setenv("JWT_DURATION", "forever")
		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d"}
	assert.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", cfg.DSN())
	assert.True(t, cfg.PostgresEnabled())
	assert.False(t, cfg.RedisEnabled())
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()

	t.Run("Success: Valid YAML", func(t *testing.T) {
		path := filepath.Join(dir, "profile.yaml")
		body := "name: Alex\nage: 34\nheight_cm: 175\nweight_kg: 70\nactivity_level: moderate\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		p, err := LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, "Alex", p.Name)
		assert.Equal(t, 175.0, p.HeightCm)
		assert.Equal(t, domain.ActivityModerate, p.ActivityLevel)
	})

	t.Run("Error: Missing file", func(t *testing.T) {
		_, err := LoadProfile(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("Error: Malformed YAML", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: [unterminated"), 0o600))

		_, err := LoadProfile(path)
		assert.ErrorIs(t, err, domain.ErrDeserialization)
	})

	t.Run("Error: Invalid activity level", func(t *testing.T) {
		path := filepath.Join(dir, "lazy.yaml")
		body := "name: Sam\nage: 30\nheight_cm: 180\nweight_kg: 80\nactivity_level: couch\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		_, err := LoadProfile(path)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

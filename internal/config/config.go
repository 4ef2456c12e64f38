package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"

	DefaultGoalsKey = "fitness-goals"
)

type Config struct {
	Port    string
	LogMode string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	StorageDriver string
	SQLitePath    string
	GoalsKey      string

	ProfilePath string

	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration

	CORSOrigins []string
	RateLimit   int
}

// Load reads envFile (missing files are ignored) and then the process environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}

	jwtDuration, err := time.ParseDuration(getEnv("JWT_DURATION", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid JWT_DURATION: %w", err)
	}

	cfg := Config{
		Port:    getEnv("PORT", "8080"),
		LogMode: getEnv("LOG_MODE", "dev"),

		DBDriver:   getEnv("DB_DRIVER", "pgx"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		StorageDriver: getEnv("STORAGE_DRIVER", StorageSQLite),
		SQLitePath:    getEnv("SQLITE_PATH", "data/pulse.db"),
		GoalsKey:      getEnv("GOALS_STORAGE_KEY", DefaultGoalsKey),

		ProfilePath: getEnv("PROFILE_PATH", "profile.yaml"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISSUER", "kanso-pulse"),
		JWTDuration: jwtDuration,

		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),
		RateLimit:   rateLimit,
	}

	switch cfg.StorageDriver {
	case StorageMemory, StorageSQLite, StorageRedis, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if cfg.StorageDriver == StorageRedis && !cfg.RedisEnabled() {
		return Config{}, fmt.Errorf("STORAGE_DRIVER=redis requires REDIS_HOST")
	}
	if cfg.StorageDriver == StoragePostgres && !cfg.PostgresEnabled() {
		return Config{}, fmt.Errorf("STORAGE_DRIVER=postgres requires DB_HOST")
	}
	if cfg.DBDriver != "pgx" && cfg.DBDriver != "postgres" {
		return Config{}, fmt.Errorf("unknown DB_DRIVER %q (pgx or postgres)", cfg.DBDriver)
	}

	return cfg, nil
}

func (c Config) PostgresEnabled() bool {
	return c.DBHost != ""
}

func (c Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// LoadProfile parses the YAML profile seed. A missing file is ErrProfileNotFound.
func LoadProfile(path string) (*domain.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p domain.UserProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: profile yaml: %v", domain.ErrDeserialization, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

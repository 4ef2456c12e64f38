package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-pulse/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/notify"
	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/storage"
	"github.com/comitanigiacomo/kanso-pulse/internal/config"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/services"
	"github.com/comitanigiacomo/kanso-pulse/internal/core/workers"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

const redisKeyPrefix = "pulse"

type app struct {
	router  *gin.Engine
	worker  *workers.AchievementWorker
	closers []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

// newApp connects the configured backends and wires every component.
func newApp(ctx context.Context, cfg config.Config, log *logger.Logger) (*app, error) {
	a := &app{}
	startTime := time.Now()

	var db *sqlx.DB
	if cfg.PostgresEnabled() {
		var err error
		db, err = sqlx.Connect(cfg.DBDriver, cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		a.closers = append(a.closers, db.Close)

		if err := repository.EnsureSchema(ctx, db); err != nil {
			a.Close()
			return nil, err
		}
		log.Info("database connected", "driver", cfg.DBDriver, "host", cfg.DBHost)
	}

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		var err error
		rdb, err = cache.NewRedisClient(ctx, cache.Options{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
		log.Info("redis connected", "host", cfg.RedisHost)
	}

	kv, err := openStore(ctx, cfg, db, rdb, a)
	if err != nil {
		a.Close()
		return nil, err
	}

	var activityRepo domain.ActivityRepository
	var nutritionRepo domain.NutritionRepository
	if db != nil {
		activityRepo = repository.NewPostgresActivityRepository(db)
		nutritionRepo = repository.NewPostgresNutritionRepository(db)
	} else {
		log.Warn("DB_HOST not set, activity and nutrition logs are kept in memory")
		activityRepo = repository.NewInMemoryActivityRepository()
		nutritionRepo = repository.NewInMemoryNutritionRepository()
	}
	if rdb != nil {
		activityRepo = repository.NewCachedActivityRepository(activityRepo, rdb, log)
	}

	feed := notify.NewFeed(notify.DefaultFeedSize)
	notifier := notify.Multi{feed}
	if rdb != nil {
		notifier = append(notifier, notify.NewRedisPublisher(rdb, notify.DefaultChannel, log))
	}

	profile, err := config.LoadProfile(cfg.ProfilePath)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		log.Warn("no profile file, BMI and activity level are disabled", "path", cfg.ProfilePath)
	case err != nil:
		a.Close()
		return nil, err
	}

	goals := services.NewGoalStore(kv, cfg.GoalsKey, notifier, log)
	if _, err := goals.Load(ctx); err != nil {
		log.Warn("goal storage unavailable, serving defaults", "error", err)
	}

	a.worker = workers.NewAchievementWorker(activityRepo, goals, notifier, log)

	activity := services.NewActivityService(activityRepo, a.worker)
	nutrition := services.NewNutritionService(nutritionRepo)
	dashboard := services.NewDashboardService(goals, activityRepo, nutritionRepo, repository.NewStaticProfileRepository(profile), log)

	deps := adapterHTTP.RouterDependencies{
		GoalHandler:         adapterHTTP.NewGoalHandler(goals, log),
		ActivityHandler:     adapterHTTP.NewActivityHandler(activity, log),
		NutritionHandler:    adapterHTTP.NewNutritionHandler(nutrition, log),
		MetricsHandler:      adapterHTTP.NewMetricsHandler(dashboard, log),
		NotificationHandler: adapterHTTP.NewNotificationHandler(feed),
		DB:                  db,
		Redis:               rdb,
		CORSOrigins:         cfg.CORSOrigins,
		RateLimit:           cfg.RateLimit,
		Log:                 log,
		StartTime:           startTime,
	}
	if cfg.JWTSecret != "" {
		deps.Tokens = services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTDuration)
	} else {
		log.Warn("JWT_SECRET not set, write endpoints are unauthenticated")
	}

	a.router = adapterHTTP.NewRouter(deps)
	return a, nil
}

func openStore(ctx context.Context, cfg config.Config, db *sqlx.DB, rdb *redis.Client, a *app) (domain.KeyValueStore, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		return storage.NewMemoryStore(), nil
	case config.StorageSQLite:
		s, err := storage.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, s.Close)
		return s, nil
	case config.StorageRedis:
		return storage.NewRedisStore(rdb, redisKeyPrefix), nil
	case config.StoragePostgres:
		return storage.NewPostgresStore(ctx, db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/kanso-pulse/docs"
	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-pulse/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

type RouterDependencies struct {
	GoalHandler         *GoalHandler
	ActivityHandler     *ActivityHandler
	NutritionHandler    *NutritionHandler
	MetricsHandler      *MetricsHandler
	NotificationHandler *NotificationHandler

	// Tokens guards mutating routes. Nil leaves them open.
	Tokens middleware.TokenValidator

	DB          *sqlx.DB
	Redis       *redis.Client
	CORSOrigins []string
	RateLimit   int
	Log         *logger.Logger
	StartTime   time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(deps.Log))
	router.Use(middleware.CORS(deps.CORSOrigins))

	if deps.Redis != nil && deps.RateLimit > 0 {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, time.Minute, deps.Log))
	}

	router.GET("/health", healthHandler(deps))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	protected := apiV1.Group("")
	if deps.Tokens != nil {
		protected.Use(middleware.AuthMiddleware(deps.Tokens))
	}

	deps.GoalHandler.RegisterRoutes(apiV1, protected)
	deps.ActivityHandler.RegisterRoutes(apiV1, protected)
	deps.NutritionHandler.RegisterRoutes(apiV1, protected)
	deps.MetricsHandler.RegisterRoutes(apiV1)
	deps.NotificationHandler.RegisterRoutes(apiV1)

	return router
}

func healthHandler(deps RouterDependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "disabled"
		if deps.DB != nil {
			dbStatus = "connected"
			if err := deps.DB.PingContext(c.Request.Context()); err != nil {
				dbStatus = "unreachable"
			}
		}

		redisStatus := cache.Status(c.Request.Context(), deps.Redis)

		statusCode := http.StatusOK
		status := "ok"
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = http.StatusServiceUnavailable
			status = "degraded"
		}

		c.JSON(statusCode, gin.H{
			"status":   status,
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	}
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}

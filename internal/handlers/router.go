package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"taskboard/backend/internal/config"
	"taskboard/backend/internal/middleware"
	"taskboard/backend/internal/monitoring"
	"taskboard/backend/internal/services"
)

// RouterDeps carries the explicitly constructed components the router wires
// together; there are no process-wide singletons.
type RouterDeps struct {
	Config       *config.Config
	Log          *logrus.Logger
	TaskService  services.TaskService
	StateService services.StateService
	AuthService  services.AuthService
	Tokens       *services.TokenManager
	Metrics      *monitoring.Metrics
	Health       *monitoring.HealthChecker
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Log))
	router.Use(middleware.RecoveryWithLog(deps.Log))
	router.Use(deps.Metrics.Middleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if deps.Config.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
			RequestsPerMin: deps.Config.RateLimit.RequestsPerMin,
			BurstSize:      deps.Config.RateLimit.BurstSize,
			CleanupEvery:   deps.Config.RateLimit.CleanupEvery,
		})
		router.Use(limiter.Middleware())
	}

	healthHandler := NewHealthHandler(deps.Health)
	authHandler := NewAuthHandler(deps.AuthService, deps.Log)
	taskHandler := NewTaskHandler(deps.TaskService, deps.Log)
	stateHandler := NewStateHandler(deps.StateService, deps.Log)

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", deps.Metrics.Handler())

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.GET("/check-email/:email", authHandler.CheckEmail)
	}

	authorized := router.Group("/", middleware.AuthRequired(deps.Tokens))
	{
		tasks := authorized.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/states", taskHandler.ListStates)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		states := authorized.Group("/states")
		{
			states.GET("", stateHandler.ListStates)
			states.GET("/:id", stateHandler.GetState)
			states.POST("", stateHandler.CreateState)
			states.PUT("/:id", stateHandler.UpdateState)
			states.DELETE("/:id", stateHandler.DeleteState)
		}
	}

	return router
}

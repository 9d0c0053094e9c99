package delivery

import (
	"time"

	"adsdash/internal/auth"
	"adsdash/internal/delivery/middleware"
	"adsdash/pkg/logger"
	"adsdash/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type HTTPRouter struct {
	handlers *HTTPHandlers
	tokens   *auth.TokenManager
	logger   *logger.Logger
	metrics  *metrics.Metrics
}

func NewHTTPRouter(handlers *HTTPHandlers, tokens *auth.TokenManager, logger *logger.Logger, metrics *metrics.Metrics) *HTTPRouter {
	return &HTTPRouter{
		handlers: handlers,
		tokens:   tokens,
		logger:   logger,
		metrics:  metrics,
	}
}

func (r *HTTPRouter) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.Recovery(r.logger))
	router.Use(middleware.Metrics(r.metrics))
	router.Use(middleware.Timeout(30 * time.Second))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
	config.ExposeHeaders = []string{"X-Request-ID"}

	router.Use(cors.New(config))

	// Health endpoint
	router.GET("/health", r.handlers.HealthCheck)

	// Login is the only unauthenticated API route
	router.POST("/api/auth/login", r.handlers.Login)

	// Everything else behind the session token
	api := router.Group("/api")
	api.Use(middleware.RequireAuth(r.tokens, r.logger))
	{
		api.GET("/ads", r.handlers.GetAds)

		reportGroup := api.Group("/report")
		{
			reportGroup.GET("", r.handlers.GetReport)
			reportGroup.GET("/summary", r.handlers.GetReportSummary)
			reportGroup.GET("/export", r.handlers.ExportReport)
		}
	}

	// Prometheus metrics endpoint
	router.GET("/metrics", middleware.PrometheusHandler())

	return router
}

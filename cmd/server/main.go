package main

import (
	"database/sql"
	"fmt"
	"os"

	"adsdash/internal/auth"
	"adsdash/internal/delivery"
	"adsdash/internal/infrastructure"
	"adsdash/internal/usecase"
	"adsdash/pkg/config"
	"adsdash/pkg/logger"
	"adsdash/pkg/metrics"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info("Starting ads dashboard server")

	m := metrics.New(prometheus.DefaultRegisterer)

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize token manager")
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.WithError(err).Fatal("Failed to open user database")
	}
	defer db.Close()

	if cfg.Feed.DataURL == "" {
		log.Fatal("DATA_URL is required")
	}

	userRepo := infrastructure.NewUserRepository(db, log)
	feedClient := infrastructure.NewFeedClient(
		cfg.Feed.DataURL,
		cfg.Feed.RequestTimeout,
		cfg.Feed.RateLimitPerSecond,
		log,
		m,
	)

	authService := usecase.NewAuthService(userRepo, tokens, log, m)
	reportService := usecase.NewReportService(feedClient, log, m)

	handlers := delivery.NewHTTPHandlers(authService, reportService, log, m)
	router := delivery.NewHTTPRouter(handlers, tokens, log, m)

	engine := router.SetupRoutes()

	log.WithField("port", cfg.Server.Port).Info("Listening")
	if err := engine.Run(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

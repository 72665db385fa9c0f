package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/astromitra/astro-ai-go/internal/api"
	"github.com/astromitra/astro-ai-go/internal/api/handlers"
	"github.com/astromitra/astro-ai-go/internal/astro"
	"github.com/astromitra/astro-ai-go/internal/cache"
	"github.com/astromitra/astro-ai-go/internal/config"
	"github.com/astromitra/astro-ai-go/internal/database"
	"github.com/astromitra/astro-ai-go/internal/ephemeris"
	"github.com/astromitra/astro-ai-go/internal/logging"
	"github.com/astromitra/astro-ai-go/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithField("error", err.Error()).Fatal("Failed to load configuration")
	}

	logger := logging.New(cfg.Environment, cfg.LogLevel)
	logger.WithField("environment", cfg.Environment).Info("Starting astro service")

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	tp, err := initTracing()
	if err != nil {
		logger.WithField("error", err.Error()).Fatal("Failed to initialize tracing")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.WithField("error", err.Error()).Warn("Tracer provider shutdown failed")
		}
	}()

	db, err := database.NewPostgresDB(&cfg.Database, logger)
	if err != nil {
		logger.WithField("error", err.Error()).Fatal("Failed to connect to PostgreSQL")
	}
	defer db.Close()

	redisClient, err := database.NewRedisClient(&cfg.Redis, logger)
	if err != nil {
		logger.WithField("error", err.Error()).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	ephClient := ephemeris.NewClient(&cfg.Ephemeris)
	engine := astro.NewEngine(ephClient, cfg.Engine.DashaHorizonMonths, logger)

	cacheTTL, _ := time.ParseDuration(cfg.Engine.SnapshotCacheTTL)
	snapshotCache := cache.NewSnapshotCache(redisClient.Client, cacheTTL, logger)

	users := database.NewUserRepository(db.Pool)
	profiles := database.NewProfileRepository(db.Pool)
	snapshots := database.NewSnapshotRepository(db.Pool)
	predictions := database.NewPredictionRepository(db.Pool)

	jwtExpiry, _ := time.ParseDuration(cfg.Security.JWTExpiry)
	authService := services.NewAuthService(users, cfg.Security.JWTSecret, jwtExpiry, cfg.Security.BcryptCost)
	snapshotService := services.NewSnapshotService(engine, snapshotCache, snapshots, cfg.Ephemeris.Version, logger)
	predictionService := services.NewPredictionService(cfg.LLM, predictions, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("astro-ai"))

	api.SetupRoutes(router, &api.Handlers{
		Health:      handlers.NewHealthHandler(db, redisClient, ephClient),
		Auth:        handlers.NewAuthHandler(authService, logger),
		Profiles:    handlers.NewProfileHandler(profiles, logger),
		Snapshots:   handlers.NewSnapshotHandler(snapshotService, profiles, snapshots, logger),
		Predictions: handlers.NewPredictionHandler(snapshotService, predictionService, profiles, predictions, logger),
	}, cfg.Security.JWTSecret)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithField("error", err.Error()).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithField("error", err.Error()).Error("Forced shutdown")
	}
	logger.Info("Server stopped")
}

// initTracing registers a global tracer provider backed by a stdout span
// exporter, which keeps request spans from otelgin visible without an
// external collector.
func initTracing() (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return tp, nil
}

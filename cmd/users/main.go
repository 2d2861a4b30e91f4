package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/config"
	"github.com/piresc/senyum/internal/pkg/database"
	"github.com/piresc/senyum/internal/pkg/health"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/metrics"
	"github.com/piresc/senyum/internal/pkg/middleware"
	nrpkg "github.com/piresc/senyum/internal/pkg/newrelic"
	"github.com/piresc/senyum/internal/pkg/server"
	"github.com/piresc/senyum/services/users/handler"
	"github.com/piresc/senyum/services/users/repository"
	"github.com/piresc/senyum/services/users/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "users-service"
	configs := config.InitConfig("config/users.env")

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repository
	userRepo := repository.NewUserRepository(configs, postgresClient.GetDB())

	// Initialize usecase
	userUC := usecase.NewUserUC(userRepo, configs)

	// Initialize handlers
	h := handler.NewHandler(userUC, redisClient, configs)

	registry := metrics.NewRegistry()
	m := metrics.NewMetrics(registry)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(m.Middleware())

	checks := health.NewService()
	checks.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	checks.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	health.RegisterHealthEndpoints(e, appName, checks)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(registry)))

	h.RegisterRoutes(e)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(context.Context) error { return redisClient.Close() })
	shutdown.Register(func(context.Context) error { return postgresClient.Close() })
	if nrApp != nil {
		shutdown.Register(func(context.Context) error {
			nrApp.Shutdown(5 * time.Second)
			return nil
		})
	}

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(shutdown)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", zap.String("app", appName), zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/config"
	"github.com/piresc/senyum/internal/pkg/database"
	"github.com/piresc/senyum/internal/pkg/geocoding"
	"github.com/piresc/senyum/internal/pkg/health"
	"github.com/piresc/senyum/internal/pkg/locationtoken"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/metrics"
	"github.com/piresc/senyum/internal/pkg/middleware"
	natspkg "github.com/piresc/senyum/internal/pkg/nats"
	nrpkg "github.com/piresc/senyum/internal/pkg/newrelic"
	"github.com/piresc/senyum/internal/pkg/server"
	"github.com/piresc/senyum/internal/pkg/storage"
	"github.com/piresc/senyum/services/dentists/gateway"
	"github.com/piresc/senyum/services/dentists/handler"
	httpHandler "github.com/piresc/senyum/services/dentists/handler/http"
	"github.com/piresc/senyum/services/dentists/repository"
	"github.com/piresc/senyum/services/dentists/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "directory-service"
	configs := config.InitConfig("config/directory.env")

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

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	minioClient, err := storage.NewMinioClient(context.Background(), configs.Storage)
	if err != nil {
		zapLogger.Fatal("Failed to connect to object storage", zap.Error(err))
	}

	registry := metrics.NewRegistry()
	m := metrics.NewMetrics(registry)

	geocoder, err := geocoding.NewProvider(configs.Geocoding, m)
	if err != nil {
		// coordinates can still be set directly
		zapLogger.Warn("Geocoding disabled", zap.Error(err))
	}

	// Initialize repository
	dentistRepo := repository.NewDentistRepository(configs, postgresClient.GetDB())
	profileCache := repository.NewProfileCache(redisClient, configs.Search.ProfileCacheTTL)

	// Initialize gateway
	dentistGW := gateway.NewDentistGW(natsClient, geocoder, storage.NewMinioStore(minioClient, configs.Storage), m)

	// Initialize usecase
	dentistUC := usecase.NewDentistUC(dentistRepo, profileCache, dentistGW, configs, m)

	// Initialize handlers
	h := handler.NewHandler(
		httpHandler.NewDentistHandler(dentistUC, locationtoken.NewCodec(configs.Location)),
		httpHandler.NewManageHandler(dentistUC, configs),
		httpHandler.NewAdminHandler(dentistUC),
		redisClient,
		configs,
	)

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
	checks.AddChecker("nats", natsClient)
	health.RegisterHealthEndpoints(e, appName, checks)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(registry)))

	h.RegisterRoutes(e)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(context.Context) error { return natsClient.Close() })
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

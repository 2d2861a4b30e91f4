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
	natspkg "github.com/piresc/senyum/internal/pkg/nats"
	nrpkg "github.com/piresc/senyum/internal/pkg/newrelic"
	"github.com/piresc/senyum/internal/pkg/server"
	"github.com/piresc/senyum/services/appointments/gateway"
	"github.com/piresc/senyum/services/appointments/handler"
	"github.com/piresc/senyum/services/appointments/repository"
	"github.com/piresc/senyum/services/appointments/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "appointments-service"
	configs := config.InitConfig("config/appointments.env")

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

	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}

	registry := metrics.NewRegistry()
	m := metrics.NewMetrics(registry)

	// Initialize repository
	appointmentRepo := repository.NewAppointmentRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	appointmentGW := gateway.NewAppointmentGW(natsClient, m)

	// Initialize usecase
	appointmentUC := usecase.NewAppointmentUC(appointmentRepo, appointmentGW, configs)

	// Initialize handlers
	h := handler.NewHandler(appointmentUC, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(m.Middleware())

	checks := health.NewService()
	checks.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	checks.AddChecker("nats", natsClient)
	health.RegisterHealthEndpoints(e, appName, checks)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(registry)))

	h.RegisterRoutes(e)

	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register(func(context.Context) error { return natsClient.Close() })
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

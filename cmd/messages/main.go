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
	"github.com/piresc/senyum/internal/pkg/websocket"
	"github.com/piresc/senyum/services/messages/gateway"
	"github.com/piresc/senyum/services/messages/handler"
	"github.com/piresc/senyum/services/messages/repository"
	"github.com/piresc/senyum/services/messages/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "messages-service"
	configs := config.InitConfig("config/messages.env")

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
	messageRepo := repository.NewMessageRepository(configs, postgresClient.GetDB())

	// Initialize gateway
	messageGW := gateway.NewMessageGW(natsClient, m)

	// Websocket manager doubles as the notifier for NATS deliveries
	wsManager := websocket.NewManager(configs.JWT)

	// Initialize usecase
	messageUC := usecase.NewMessageUC(messageRepo, messageGW, wsManager, configs)

	// Initialize handlers
	consumer := natspkg.NewConsumer(natsClient)
	h := handler.NewHandler(messageUC, consumer, wsManager, configs)
	if err := h.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", zap.Error(err))
	}

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
	shutdown.Register(consumer.Close)
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

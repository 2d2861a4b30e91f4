package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/piresc/senyum/internal/pkg/config"
	"github.com/piresc/senyum/internal/pkg/database"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/services/dentists/repository"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath = flag.String("config", "config/directory.env", "env file for local runs")
		count      = flag.Int("n", 50, "number of dentists to insert")
		lat        = flag.Float64("lat", -6.2088, "center latitude")
		lon        = flag.Float64("lon", 106.8456, "center longitude")
		area       = flag.String("geohash", "", "center as a geohash, overrides -lat/-lon")
		radius     = flag.Float64("radius", 15, "scatter radius in km")
		seed       = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	configs := config.InitConfig(*configPath)
	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nil)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	center := geo.Coordinate{Latitude: *lat, Longitude: *lon}
	if *area != "" {
		if !geo.ValidGeohash(*area) {
			zapLogger.Fatal("Invalid geohash", zap.String("geohash", *area))
		}
		center = geo.DecodeGeohash(*area)
	}
	if err := center.Validate(); err != nil {
		zapLogger.Fatal("Invalid center", zap.Error(err))
	}
	if *count <= 0 || *radius <= 0 {
		zapLogger.Fatal("n and radius must be positive")
	}

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	seeder := NewSeeder(repository.NewDentistRepository(configs, postgresClient.GetDB()), center, *radius, *seed)
	written, err := seeder.Run(ctx, *count)
	if err != nil {
		zapLogger.Error("Seeding stopped early", zap.Int("written", written), zap.Error(err))
		return
	}
	zapLogger.Info("Seeding completed",
		zap.Int("written", written),
		zap.Float64("latitude", center.Latitude),
		zap.Float64("longitude", center.Longitude),
		zap.Float64("radius_km", *radius))
}

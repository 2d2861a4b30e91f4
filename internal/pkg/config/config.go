package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var env = newEnv()

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// InitConfig loads the env file for local runs and builds the config from
// environment variables
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "senyum")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "development")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.MetricsPort = GetEnvAsInt("SERVER_METRICS_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "senyum")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "senyum")

	// Location cookie config
	configs.Location.CookieName = GetEnv("LOCATION_COOKIE_NAME", "senyum_location")
	configs.Location.Secret = GetEnv("LOCATION_TOKEN_SECRET", "")
	configs.Location.TTL = GetEnvAsDuration("LOCATION_TOKEN_TTL", 24*time.Hour)
	configs.Location.Secure = GetEnvAsBool("LOCATION_COOKIE_SECURE", true)

	// Search config
	configs.Search.DefaultRadiusKm = GetEnvAsFloat("SEARCH_DEFAULT_RADIUS_KM", 20)
	configs.Search.MaxRadiusKm = GetEnvAsFloat("SEARCH_MAX_RADIUS_KM", 100)
	configs.Search.ResultLimit = GetEnvAsInt("SEARCH_RESULT_LIMIT", 50)
	configs.Search.ProfileCacheTTL = GetEnvAsDuration("SEARCH_PROFILE_CACHE_TTL", 10*time.Minute)

	// Storage config
	configs.Storage.Endpoint = GetEnv("STORAGE_ENDPOINT", "localhost:9000")
	configs.Storage.AccessKey = GetEnv("STORAGE_ACCESS_KEY", "")
	configs.Storage.SecretKey = GetEnv("STORAGE_SECRET_KEY", "")
	configs.Storage.Bucket = GetEnv("STORAGE_BUCKET", "dentist-media")
	configs.Storage.UseSSL = GetEnvAsBool("STORAGE_USE_SSL", false)
	configs.Storage.PublicBaseURL = GetEnv("STORAGE_PUBLIC_BASE_URL", "")
	configs.Storage.MaxUploadSize = GetEnvAsInt64("STORAGE_MAX_UPLOAD_SIZE", 5<<20)

	// Geocoding config
	configs.Geocoding.Provider = GetEnv("GEOCODING_PROVIDER", "nominatim")
	configs.Geocoding.APIKey = GetEnv("GEOCODING_API_KEY", "")
	configs.Geocoding.RateLimit = GetEnvAsInt("GEOCODING_RATE_LIMIT", 1)
	configs.Geocoding.UserAgent = GetEnv("GEOCODING_USER_AGENT", "senyum-directory/1.0")
	configs.Geocoding.MaxRetries = GetEnvAsInt("GEOCODING_MAX_RETRIES", 2)

	// Rate limit config
	configs.RateLimit.Limit = GetEnvAsInt("RATE_LIMIT_REQUESTS", 20)
	configs.RateLimit.Period = GetEnvAsDuration("RATE_LIMIT_PERIOD", time.Minute)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// GetEnv returns the value of key or defaultValue when it is unset or empty
func GetEnv(key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value, err := cast.ToIntE(env.Get(key))
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value, err := cast.ToInt64E(env.Get(key))
	if err != nil {
		log.Printf("Warning: Invalid int64 value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value, err := cast.ToBoolE(env.Get(key))
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value, err := cast.ToFloat64E(env.Get(key))
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsDuration accepts Go duration strings such as "90s" or "24h"
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if GetEnv(key, "") == "" {
		return defaultValue
	}
	value, err := cast.ToDurationE(env.Get(key))
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}
	return value
}

package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Location  LocationConfig
	Search    SearchConfig
	Storage   StorageConfig
	Geocoding GeocodingConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	MetricsPort     int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LocationConfig controls the signed location cookie
type LocationConfig struct {
	CookieName string
	Secret     string
	TTL        time.Duration
	Secure     bool
}

// SearchConfig holds the nearby and directory search limits
type SearchConfig struct {
	DefaultRadiusKm float64
	MaxRadiusKm     float64
	ResultLimit     int
	ProfileCacheTTL time.Duration
}

// StorageConfig contains object storage settings for dentist media
type StorageConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
	MaxUploadSize int64
}

// GeocodingConfig selects and configures the address geocoder
type GeocodingConfig struct {
	Provider   string
	APIKey     string
	RateLimit  int
	UserAgent  string
	MaxRetries int
}

// RateLimitConfig configures the Redis backed request limiter
type RateLimitConfig struct {
	Limit  int
	Period time.Duration
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

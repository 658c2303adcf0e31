package app

import (
	"os"
	"strconv"
	"time"

	"github.com/harvestnet/platform/internal/platform/service"
	"github.com/harvestnet/platform/internal/platform/weather"
	"github.com/harvestnet/platform/pkg/httpx"
	"github.com/harvestnet/platform/pkg/jwtx"
)

type Config struct {
	JWTSecret   string        // Optional: HS256 signing secret; generated per process when empty
	TokenIssuer string        // Optional: issuer claim for tokens (default: harvestnet)
	TokenTTL    time.Duration // Optional: access token lifetime (default: 24h)

	DatabaseFile string // Optional: path to SQLite database file (default: harvestnet.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: pepper)
	SeedPassword string // Optional: password given to newly created seed accounts (default: password123)

	WeatherBaseURL     string        // Optional: forecast endpoint (default: met.no compact)
	WeatherUserAgent   string        // Optional: User-Agent sent upstream
	WeatherTimeout     time.Duration // Optional: upstream client timeout (default: 10s)
	WeatherCacheWindow time.Duration // Optional: how long a cached forecast is served (default: 1h)

	CORSAllowedOrigin string // Optional: Access-Control-Allow-Origin value (default: *)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Weather cache pruning interval; 0 disables (default: 0)

	RateLimits httpx.RateLimitProfiles
}

func LoadConfig() Config {
	return Config{
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenIssuer: getEnvOrDefault("TOKEN_ISSUER", "harvestnet"),
		TokenTTL:    getEnvDurationOrDefault("TOKEN_TTL", jwtx.DefaultAccessTokenTTL),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "harvestnet.db"),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),
		SeedPassword: getEnvOrDefault("SEED_PASSWORD", service.DefaultSeedPassword),

		WeatherBaseURL:     getEnvOrDefault("WEATHER_BASE_URL", weather.DefaultBaseURL),
		WeatherUserAgent:   getEnvOrDefault("WEATHER_USER_AGENT", weather.DefaultUserAgent),
		WeatherTimeout:     getEnvDurationOrDefault("WEATHER_TIMEOUT", weather.DefaultTimeout),
		WeatherCacheWindow: getEnvDurationOrDefault("WEATHER_CACHE_WINDOW", service.DefaultCacheWindow),

		CORSAllowedOrigin: getEnvOrDefault("CORS_ALLOWED_ORIGIN", "*"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 0),

		RateLimits: httpx.LoadRateLimitProfiles(),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "1h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hushryd/tracking-service/internal/pkg/models"
)

// InitConfig loads configuration from the environment. When running locally
// (APP_ENV=local) a .env file at configPath is loaded first.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "tracking-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// NSQ config
	configs.NSQ.NSQDAddress = GetEnv("NSQD_ADDRESS", "")
	configs.NSQ.LookupdAddress = GetEnv("NSQ_LOOKUPD_ADDRESS", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")
	configs.JWT.ExpirationMinutes = GetEnvAsInt("JWT_EXPIRATION_MINUTES", 1440)

	// Tracking config
	configs.Tracking.CacheTTLSeconds = GetEnvAsInt("TRACKING_CACHE_TTL_SECONDS", 300)
	configs.Tracking.StaleAfterSeconds = GetEnvAsInt("TRACKING_STALE_AFTER_SECONDS", 60)
	configs.Tracking.FlushIntervalSeconds = GetEnvAsInt("TRACKING_FLUSH_INTERVAL_SECONDS", 30)
	configs.Tracking.FlushThreshold = GetEnvAsInt("TRACKING_FLUSH_THRESHOLD", 50)
	configs.Tracking.HistoryLimitPerTrip = GetEnvAsInt("TRACKING_HISTORY_LIMIT", 1000)
	configs.Tracking.ProximityRadiusM = GetEnvAsFloat("TRACKING_PROXIMITY_RADIUS_M", 200)
	configs.Tracking.SessionWindowSeconds = GetEnvAsInt("TRACKING_SESSION_WINDOW_SECONDS", 600)

	// Safety config
	configs.Safety.StationaryRadiusM = GetEnvAsFloat("SAFETY_STATIONARY_RADIUS_M", 50)
	configs.Safety.StationaryAfterMinutes = GetEnvAsInt("SAFETY_STATIONARY_AFTER_MINUTES", 15)
	configs.Safety.EscalationDelayMinutes = GetEnvAsInt("SAFETY_ESCALATION_DELAY_MINUTES", 5)
	configs.Safety.SOSTrackIntervalSec = GetEnvAsInt("SAFETY_SOS_TRACK_INTERVAL_SECONDS", 5)
	configs.Safety.StopMinDurationSec = GetEnvAsInt("SAFETY_STOP_MIN_DURATION_SECONDS", 120)

	// Notification collaborator config
	configs.Notification.ServiceURL = GetEnv("NOTIFICATION_SERVICE_URL", "http://localhost:9994")
	configs.Notification.APIKey = GetEnv("NOTIFICATION_API_KEY", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/tracking-service.log")
	configs.Logger.Type = GetEnv("LOG_TYPE", "stdout")

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}

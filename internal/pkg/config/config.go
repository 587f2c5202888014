package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/spf13/viper"
)

// defaults is applied before the env file and the process environment
var defaults = map[string]interface{}{
	"APP_NAME":    "jackmarvels",
	"APP_ENV":     "local",
	"APP_DEBUG":   true,
	"APP_VERSION": "development",

	"SERVER_HOST":             "0.0.0.0",
	"SERVER_PORT":             8080,
	"SERVER_READ_TIMEOUT":     15,
	"SERVER_WRITE_TIMEOUT":    15,
	"SERVER_SHUTDOWN_TIMEOUT": 30,

	"BACKEND_MODE":           models.BackendModeMock,
	"BACKEND_BASE_URL":       "http://localhost:8080",
	"BACKEND_TIMEOUT":        "30s",
	"BACKEND_MOCK_LATENCY":   "500ms",
	"BACKEND_REFRESH_PATH":   "/auth/refresh-token",
	"BACKEND_HEALTH_PATH":    "/ping",
	"BACKEND_PROBE_INTERVAL": "10s",

	"DB_DRIVER":     "pgx",
	"DB_HOST":       "localhost",
	"DB_PORT":       5432,
	"DB_SSL_MODE":   "disable",
	"DB_MAX_CONNS":  10,
	"DB_IDLE_CONNS": 2,

	"REDIS_HOST":      "localhost",
	"REDIS_PORT":      6379,
	"REDIS_DB":        0,
	"REDIS_POOL_SIZE": 10,

	"NSQ_ADDRESS": "localhost:4150",
	"NSQ_ENABLED": false,

	"JWT_SECRET":             "change-me",
	"JWT_EXPIRATION":         60,
	"JWT_REFRESH_EXPIRATION": 60 * 24 * 30,
	"JWT_ISSUER":             "jackmarvels",

	"LOG_LEVEL": "info",

	"STORAGE_TYPE":       models.StorageMemory,
	"STORAGE_KEY_PREFIX": "jm:",
	"STORAGE_TABLE":      "kv_store",
}

// InitConfig loads configuration from an optional env file and the process
// environment. Environment variables always win over the file.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				logger.Debug("Config file not found, using environment", logger.String("path", configPath))
			} else {
				logger.Warn("Error loading config from file", logger.String("path", configPath), logger.Err(err))
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return loadConfig(v)
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Backend config
	configs.Backend.Mode = strings.ToLower(v.GetString("BACKEND_MODE"))
	configs.Backend.BaseURL = strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/")
	configs.Backend.Timeout = getDuration(v, "BACKEND_TIMEOUT", 30*time.Second)
	configs.Backend.MockLatency = getDuration(v, "BACKEND_MOCK_LATENCY", 500*time.Millisecond)
	configs.Backend.RefreshPath = v.GetString("BACKEND_REFRESH_PATH")
	configs.Backend.HealthPath = v.GetString("BACKEND_HEALTH_PATH")
	configs.Backend.ProbeInterval = getDuration(v, "BACKEND_PROBE_INTERVAL", 10*time.Second)

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Enabled = v.GetBool("NSQ_ENABLED")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.RefreshExpiration = v.GetInt("JWT_REFRESH_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// Storage config
	configs.Storage.Type = strings.ToLower(v.GetString("STORAGE_TYPE"))
	configs.Storage.KeyPrefix = v.GetString("STORAGE_KEY_PREFIX")
	configs.Storage.Table = v.GetString("STORAGE_TABLE")

	return configs
}

// getDuration reads a duration, accepting either Go duration strings or
// bare integers interpreted as milliseconds.
func getDuration(v *viper.Viper, key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if ms := v.GetInt64(key); ms > 0 || raw == "0" {
		return time.Duration(ms) * time.Millisecond
	}
	logger.Warn("Invalid duration value, using default",
		logger.String("key", key),
		logger.Duration("default", defaultValue))
	return defaultValue
}
